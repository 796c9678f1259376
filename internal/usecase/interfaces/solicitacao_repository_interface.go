package interfaces

import (
	"context"
	"errors"

	"avaliadores_api/internal/domain/entities"
)

// ErrInvalidTransition is returned by Transition when the solicitação exists
// but is not in the status required by the state machine. Racing workers on a
// duplicate dispatch see this error; it is never a normal business outcome.
var ErrInvalidTransition = errors.New("invalid status transition")

// ISolicitacaoRepository abstracts DynamoDB persistence for Solicitacao.
//
// Not-found follows the repository convention used across the service:
// a zero-value Solicitacao with no error.
//
// Transition must be an atomic conditional update at the storage layer
// (compare-and-swap on status), never read-then-write: two workers racing on
// the same id must not both observe pendente and both proceed.

type ISolicitacaoRepository interface {
	Create(ctx context.Context, s entities.Solicitacao) (entities.Solicitacao, error)
	GetByID(ctx context.Context, id string) (entities.Solicitacao, error)
	GetByUUID(ctx context.Context, uuid string) (entities.Solicitacao, error)
	List(ctx context.Context, offset, limit int) ([]entities.Solicitacao, error)
	Transition(ctx context.Context, id string, to entities.StatusSolicitacao, fields entities.TransitionFields) (entities.Solicitacao, error)
}
