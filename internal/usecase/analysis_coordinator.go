package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"avaliadores_api/internal/domain/entities"
	"avaliadores_api/internal/usecase/interfaces"
)

// ProcessOutcome is the terminal tag reported by one coordinator run, used by
// the execution facility for observability only.
type ProcessOutcome string

const (
	OutcomeSuccess ProcessOutcome = "success"
	OutcomeFailure ProcessOutcome = "failure"
	OutcomeSkipped ProcessOutcome = "skipped"
)

// AnalysisCoordinator drives a dispatched solicitação through
// pendente → em_processamento → {concluido, erro}.
//
// It is invoked once per dispatched id by a background worker. The
// pendente→em_processamento claim is the sole mutual-exclusion point: when it
// is rejected the run aborts with no side effects, which is what guarantees at
// most one active run per solicitação under duplicate dispatch.

type AnalysisCoordinator struct {
	repo       interfaces.ISolicitacaoRepository
	resultRepo interfaces.IResultadoRepository
	store      interfaces.IResultStore
	executor   interfaces.IAnalysisExecutor
}

func NewAnalysisCoordinator(
	repo interfaces.ISolicitacaoRepository,
	resultRepo interfaces.IResultadoRepository,
	store interfaces.IResultStore,
	executor interfaces.IAnalysisExecutor,
) *AnalysisCoordinator {
	return &AnalysisCoordinator{repo: repo, resultRepo: resultRepo, store: store, executor: executor}
}

// Process runs the driving algorithm for one dispatched solicitação.
//
// A non-nil error means a fault the coordinator could not absorb (repository
// or store failure); the execution facility is expected to call MarkFailed
// once and give up. Handled analysis failures return (OutcomeFailure, nil):
// the erro status was recorded durably and nothing propagates.
func (c *AnalysisCoordinator) Process(ctx context.Context, solicitacaoID, taskID string) (ProcessOutcome, error) {
	log.Printf("[coordinator] start solicitacao_id=%s task_id=%s", solicitacaoID, taskID)

	s, err := c.repo.GetByID(ctx, solicitacaoID)
	if err != nil {
		return OutcomeFailure, fmt.Errorf("loading solicitacao %s: %w", solicitacaoID, err)
	}
	if s.ID == "" {
		// Operational fault: the dispatched id references a row that is gone.
		// Do not create synthetic state.
		log.Printf("[coordinator] solicitacao %s not found; dropping task %s", solicitacaoID, taskID)
		return OutcomeSkipped, nil
	}

	_, err = c.repo.Transition(ctx, solicitacaoID, entities.StatusEmProcessamento, entities.TransitionFields{TaskID: taskID})
	if err != nil {
		if errors.Is(err, interfaces.ErrInvalidTransition) {
			log.Printf("[coordinator] duplicate dispatch for solicitacao %s (status=%s); skipping", solicitacaoID, s.Status)
			return OutcomeSkipped, nil
		}
		return OutcomeFailure, fmt.Errorf("claiming solicitacao %s: %w", solicitacaoID, err)
	}

	payload, err := c.runAnalysis(ctx, s)
	if err != nil {
		return c.recordFailure(ctx, solicitacaoID, err)
	}

	locator, err := c.store.Put(ctx, s.UUID, payload)
	if err != nil {
		// Storage fault on the success path: the row stays em_processamento
		// for operator reconciliation. Retrying here could duplicate results.
		log.Printf("[coordinator] FAILED persisting resultado payload for solicitacao %s: %v", solicitacaoID, err)
		return OutcomeFailure, fmt.Errorf("persisting resultado for solicitacao %s: %w", solicitacaoID, err)
	}

	_, err = c.resultRepo.Create(ctx, entities.ResultadoAnalise{
		ID:               s.ID,
		SolicitacaoID:    s.ID,
		CaminhoResultado: locator,
		DataCriacao:      time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[coordinator] FAILED creating resultado record for solicitacao %s (artifact at %s): %v", solicitacaoID, locator, err)
		return OutcomeFailure, fmt.Errorf("creating resultado record for solicitacao %s: %w", solicitacaoID, err)
	}

	_, err = c.repo.Transition(ctx, solicitacaoID, entities.StatusConcluido, entities.TransitionFields{})
	if err != nil {
		// Known failure mode: resultado persisted, final transition failed.
		// The row is orphaned in em_processamento until an operator reconciles.
		log.Printf("[coordinator] FAILED final transition for solicitacao %s; resultado at %s is orphaned: %v", solicitacaoID, locator, err)
		return OutcomeFailure, fmt.Errorf("completing solicitacao %s: %w", solicitacaoID, err)
	}

	log.Printf("[coordinator] done solicitacao_id=%s task_id=%s outcome=%s", solicitacaoID, taskID, OutcomeSuccess)
	return OutcomeSuccess, nil
}

// recordFailure converts an analysis failure into a durable erro status. The
// transition is attempted even though the primary operation already failed; if
// it fails too, that is a double fault the facility's on-failure hook retries.
func (c *AnalysisCoordinator) recordFailure(ctx context.Context, solicitacaoID string, cause error) (ProcessOutcome, error) {
	msg := cause.Error()
	log.Printf("[coordinator] analysis failed solicitacao_id=%s err=%s", solicitacaoID, msg)

	if _, err := c.repo.Transition(ctx, solicitacaoID, entities.StatusErro, entities.TransitionFields{Erro: msg}); err != nil {
		log.Printf("[coordinator] FAILED recording erro for solicitacao %s: %v (analysis error was: %s)", solicitacaoID, err, msg)
		return OutcomeFailure, fmt.Errorf("recording erro for solicitacao %s: %w", solicitacaoID, err)
	}
	return OutcomeFailure, nil
}

// MarkFailed is the on-failure hook for the execution facility: a single
// best-effort erro transition after Process reported a fault it could not
// absorb. It never re-runs the analysis.
func (c *AnalysisCoordinator) MarkFailed(ctx context.Context, solicitacaoID, message string) {
	_, err := c.repo.Transition(ctx, solicitacaoID, entities.StatusErro, entities.TransitionFields{Erro: message})
	if err != nil {
		if errors.Is(err, interfaces.ErrInvalidTransition) {
			log.Printf("[coordinator] on-failure hook: solicitacao %s not em_processamento; leaving as is", solicitacaoID)
			return
		}
		log.Printf("[coordinator] on-failure hook FAILED for solicitacao %s: %v", solicitacaoID, err)
	}
}

// runAnalysis shields the coordinator from the executor: any panic becomes an
// analysis error carrying the stringified panic value.
func (c *AnalysisCoordinator) runAnalysis(ctx context.Context, s entities.Solicitacao) (payload json.RawMessage, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[coordinator] analysis panic for solicitacao %s: %v", s.ID, r)
			payload = nil
			err = interfaces.NewAnalysisError("%v", r)
		}
	}()
	return c.executor.Analyze(ctx, s.CaminhoArquivo, s.TipoDocumento)
}
