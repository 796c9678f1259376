package interfaces

import (
	"context"

	"avaliadores_api/internal/domain/entities"
)

// IResultadoRepository abstracts DynamoDB persistence for ResultadoAnalise.
//
// The resultado id equals the solicitação id, so GetBySolicitacaoID resolves
// by primary key and Create enforces at most one resultado per solicitação.

type IResultadoRepository interface {
	Create(ctx context.Context, r entities.ResultadoAnalise) (entities.ResultadoAnalise, error)
	GetBySolicitacaoID(ctx context.Context, solicitacaoID string) (entities.ResultadoAnalise, error)
}
