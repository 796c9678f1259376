package interfaces

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrResultNotFound is returned by Get when the locator does not resolve or
// the backing artifact is missing or corrupt.
var ErrResultNotFound = errors.New("analysis result not found")

// IResultStore stores one JSON artifact per completed solicitação.
//
// Put must persist the payload durably before returning its locator: a reader
// that later observes the concluido status must always be able to resolve the
// artifact, even if the process crashes right after Put returns.

type IResultStore interface {
	Put(ctx context.Context, key string, payload json.RawMessage) (locator string, err error)
	Get(ctx context.Context, locator string) (json.RawMessage, error)
}
