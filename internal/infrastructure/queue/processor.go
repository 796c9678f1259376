package queue

import (
	"context"

	"avaliadores_api/internal/usecase"
)

// Processor is what an execution facility needs from the analysis
// coordinator: one driving run per dispatched id, plus the on-failure hook
// invoked once when that run reports a fault it could not absorb.

type Processor interface {
	Process(ctx context.Context, solicitacaoID, taskID string) (usecase.ProcessOutcome, error)
	MarkFailed(ctx context.Context, solicitacaoID, message string)
}

// taskMessage is the transport format shared by the queue backends.
type taskMessage struct {
	SolicitacaoID string `json:"solicitacao_id"`
	TaskID        string `json:"task_id"`
	RequestedAt   string `json:"requested_at"`
}
