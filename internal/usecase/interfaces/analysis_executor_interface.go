package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"avaliadores_api/internal/domain/entities"
)

// ErrFileNotFound indicates the document path did not resolve on the node
// running the analysis. An empty path counts as not found, not as a crash.
var ErrFileNotFound = errors.New("document file not found")

// AnalysisError is any processing failure other than a missing file:
// malformed document, unsupported type, internal engine failure.
type AnalysisError struct {
	Message string
}

func NewAnalysisError(format string, args ...any) *AnalysisError {
	return &AnalysisError{Message: fmt.Sprintf(format, args...)}
}

func (e *AnalysisError) Error() string {
	return e.Message
}

// IAnalysisExecutor abstracts the document analysis engine (mock or real,
// chosen by configuration at startup).
//
// The coordinator treats implementations as untrusted: any error, and even a
// panic, is converted into an erro transition and never escapes the worker.

type IAnalysisExecutor interface {
	Analyze(ctx context.Context, caminhoArquivo string, tipo entities.TipoDocumento) (json.RawMessage, error)
}
