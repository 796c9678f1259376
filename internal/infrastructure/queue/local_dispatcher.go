package queue

import (
	"context"
	"errors"
	"log"
	"time"

	"avaliadores_api/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ErrQueueFull is returned when the in-process queue cannot accept another
// task without blocking. The solicitação stays pendente; intake may retry.
var ErrQueueFull = errors.New("task queue full")

// LocalDispatcher runs analyses on an in-process worker pool fed by a
// buffered channel. It is the default execution facility for single-node
// deployments; intake and workers share no state beyond the channel and the
// repository.

type LocalDispatcher struct {
	tasks   chan taskMessage
	workers int
	proc    Processor
}

var _ interfaces.ITaskDispatcher = (*LocalDispatcher)(nil)

func NewLocalDispatcher(proc Processor, workers, buffer int) *LocalDispatcher {
	if workers <= 0 {
		workers = 4
	}
	if buffer <= 0 {
		buffer = 256
	}
	return &LocalDispatcher{
		tasks:   make(chan taskMessage, buffer),
		workers: workers,
		proc:    proc,
	}
}

// Dispatch enqueues without blocking; a full queue is a dispatch failure, not
// a stall of the request path.
func (d *LocalDispatcher) Dispatch(ctx context.Context, solicitacaoID string) (string, error) {
	msg := taskMessage{
		SolicitacaoID: solicitacaoID,
		TaskID:        uuid.NewString(),
		RequestedAt:   time.Now().UTC().Format(time.RFC3339Nano),
	}
	select {
	case d.tasks <- msg:
		log.Printf("[dispatcher][local] enqueued solicitacao_id=%s task_id=%s", solicitacaoID, msg.TaskID)
		return msg.TaskID, nil
	default:
		return "", ErrQueueFull
	}
}

// Start runs the worker pool until ctx is cancelled.
func (d *LocalDispatcher) Start(ctx context.Context) error {
	log.Printf("[dispatcher][local] starting %d workers", d.workers)
	eg, gctx := errgroup.WithContext(ctx)
	for i := 0; i < d.workers; i++ {
		eg.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return nil
				case msg := <-d.tasks:
					handleTask(gctx, d.proc, msg)
				}
			}
		})
	}
	return eg.Wait()
}

// handleTask runs the coordinator and, on a fault it could not absorb, calls
// the on-failure hook once before giving the task up.
func handleTask(ctx context.Context, proc Processor, msg taskMessage) {
	outcome, err := proc.Process(ctx, msg.SolicitacaoID, msg.TaskID)
	if err != nil {
		log.Printf("[worker] task %s for solicitacao %s faulted: %v", msg.TaskID, msg.SolicitacaoID, err)
		proc.MarkFailed(ctx, msg.SolicitacaoID, err.Error())
		return
	}
	log.Printf("[worker] task %s for solicitacao %s finished outcome=%s", msg.TaskID, msg.SolicitacaoID, outcome)
}
