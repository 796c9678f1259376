package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"avaliadores_api/internal/domain/entities"
	"avaliadores_api/internal/usecase/interfaces"
	mock_interfaces "avaliadores_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newCoordinatorMocks(t *testing.T) (*gomock.Controller, *mock_interfaces.MockISolicitacaoRepository, *mock_interfaces.MockIResultadoRepository, *mock_interfaces.MockIResultStore, *mock_interfaces.MockIAnalysisExecutor, *AnalysisCoordinator) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockISolicitacaoRepository(ctrl)
	resultRepo := mock_interfaces.NewMockIResultadoRepository(ctrl)
	store := mock_interfaces.NewMockIResultStore(ctrl)
	executor := mock_interfaces.NewMockIAnalysisExecutor(ctrl)
	return ctrl, repo, resultRepo, store, executor, NewAnalysisCoordinator(repo, resultRepo, store, executor)
}

func pendingSolicitacao() entities.Solicitacao {
	return entities.Solicitacao{
		ID:             "sol-1",
		UUID:           "uuid-1",
		TipoDocumento:  entities.TipoContratoSocial,
		NomeArquivo:    "contrato.pdf",
		CaminhoArquivo: "documentos/contrato.pdf",
		Status:         entities.StatusPendente,
	}
}

func TestAnalysisCoordinator_Process(t *testing.T) {
	t.Run("solicitacao not found skips without side effects", func(t *testing.T) {
		ctrl, repo, _, _, _, c := newCoordinatorMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "sol-1").Return(entities.Solicitacao{}, nil)

		outcome, err := c.Process(context.Background(), "sol-1", "task-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome != OutcomeSkipped {
			t.Fatalf("expected %s, got %s", OutcomeSkipped, outcome)
		}
	})

	t.Run("load failure is fatal", func(t *testing.T) {
		ctrl, repo, _, _, _, c := newCoordinatorMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "sol-1").Return(entities.Solicitacao{}, errors.New("db down"))

		outcome, err := c.Process(context.Background(), "sol-1", "task-1")
		if err == nil {
			t.Fatalf("expected error")
		}
		if outcome != OutcomeFailure {
			t.Fatalf("expected %s, got %s", OutcomeFailure, outcome)
		}
	})

	t.Run("duplicate dispatch skips without touching the executor", func(t *testing.T) {
		ctrl, repo, _, _, _, c := newCoordinatorMocks(t)
		defer ctrl.Finish()

		s := pendingSolicitacao()
		s.Status = entities.StatusConcluido
		repo.EXPECT().GetByID(gomock.Any(), "sol-1").Return(s, nil)
		repo.EXPECT().Transition(gomock.Any(), "sol-1", entities.StatusEmProcessamento, entities.TransitionFields{TaskID: "task-2"}).
			Return(entities.Solicitacao{}, interfaces.ErrInvalidTransition)

		outcome, err := c.Process(context.Background(), "sol-1", "task-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome != OutcomeSkipped {
			t.Fatalf("expected %s, got %s", OutcomeSkipped, outcome)
		}
	})

	t.Run("claim failure is fatal", func(t *testing.T) {
		ctrl, repo, _, _, _, c := newCoordinatorMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "sol-1").Return(pendingSolicitacao(), nil)
		repo.EXPECT().Transition(gomock.Any(), "sol-1", entities.StatusEmProcessamento, gomock.Any()).
			Return(entities.Solicitacao{}, errors.New("throttled"))

		outcome, err := c.Process(context.Background(), "sol-1", "task-1")
		if err == nil {
			t.Fatalf("expected error")
		}
		if outcome != OutcomeFailure {
			t.Fatalf("expected %s, got %s", OutcomeFailure, outcome)
		}
	})

	t.Run("success persists payload before concluido", func(t *testing.T) {
		ctrl, repo, resultRepo, store, executor, c := newCoordinatorMocks(t)
		defer ctrl.Finish()

		s := pendingSolicitacao()
		payload := json.RawMessage(`{"razao_social":"Empresa Teste Ltda"}`)

		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "sol-1").Return(s, nil),
			repo.EXPECT().Transition(gomock.Any(), "sol-1", entities.StatusEmProcessamento, entities.TransitionFields{TaskID: "task-1"}).
				Return(s, nil),
			executor.EXPECT().Analyze(gomock.Any(), s.CaminhoArquivo, s.TipoDocumento).Return(payload, nil),
			store.EXPECT().Put(gomock.Any(), s.UUID, payload).Return("documentos/resultados/resultado_uuid-1.json", nil),
			resultRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ResultadoAnalise{})).DoAndReturn(
				func(_ context.Context, r entities.ResultadoAnalise) (entities.ResultadoAnalise, error) {
					if r.ID != "sol-1" || r.SolicitacaoID != "sol-1" {
						t.Fatalf("unexpected resultado identity: %+v", r)
					}
					if r.CaminhoResultado != "documentos/resultados/resultado_uuid-1.json" {
						t.Fatalf("unexpected locator: %s", r.CaminhoResultado)
					}
					if r.DataCriacao.IsZero() {
						t.Fatalf("expected creation timestamp")
					}
					return r, nil
				},
			),
			repo.EXPECT().Transition(gomock.Any(), "sol-1", entities.StatusConcluido, entities.TransitionFields{}).
				Return(s, nil),
		)

		outcome, err := c.Process(context.Background(), "sol-1", "task-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome != OutcomeSuccess {
			t.Fatalf("expected %s, got %s", OutcomeSuccess, outcome)
		}
	})

	t.Run("analysis error is recorded as erro", func(t *testing.T) {
		ctrl, repo, _, _, executor, c := newCoordinatorMocks(t)
		defer ctrl.Finish()

		s := pendingSolicitacao()
		repo.EXPECT().GetByID(gomock.Any(), "sol-1").Return(s, nil)
		repo.EXPECT().Transition(gomock.Any(), "sol-1", entities.StatusEmProcessamento, gomock.Any()).Return(s, nil)
		executor.EXPECT().Analyze(gomock.Any(), s.CaminhoArquivo, s.TipoDocumento).
			Return(nil, interfaces.NewAnalysisError("engine exploded"))
		repo.EXPECT().Transition(gomock.Any(), "sol-1", entities.StatusErro, entities.TransitionFields{Erro: "engine exploded"}).
			Return(s, nil)

		outcome, err := c.Process(context.Background(), "sol-1", "task-1")
		if err != nil {
			t.Fatalf("handled failure should not propagate, got %v", err)
		}
		if outcome != OutcomeFailure {
			t.Fatalf("expected %s, got %s", OutcomeFailure, outcome)
		}
	})

	t.Run("missing file is recorded as erro", func(t *testing.T) {
		ctrl, repo, _, _, executor, c := newCoordinatorMocks(t)
		defer ctrl.Finish()

		s := pendingSolicitacao()
		repo.EXPECT().GetByID(gomock.Any(), "sol-1").Return(s, nil)
		repo.EXPECT().Transition(gomock.Any(), "sol-1", entities.StatusEmProcessamento, gomock.Any()).Return(s, nil)
		executor.EXPECT().Analyze(gomock.Any(), s.CaminhoArquivo, s.TipoDocumento).Return(nil, interfaces.ErrFileNotFound)
		repo.EXPECT().Transition(gomock.Any(), "sol-1", entities.StatusErro, entities.TransitionFields{Erro: interfaces.ErrFileNotFound.Error()}).
			Return(s, nil)

		outcome, err := c.Process(context.Background(), "sol-1", "task-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome != OutcomeFailure {
			t.Fatalf("expected %s, got %s", OutcomeFailure, outcome)
		}
	})

	t.Run("executor panic becomes erro with the panic value", func(t *testing.T) {
		ctrl, repo, _, _, executor, c := newCoordinatorMocks(t)
		defer ctrl.Finish()

		s := pendingSolicitacao()
		repo.EXPECT().GetByID(gomock.Any(), "sol-1").Return(s, nil)
		repo.EXPECT().Transition(gomock.Any(), "sol-1", entities.StatusEmProcessamento, gomock.Any()).Return(s, nil)
		executor.EXPECT().Analyze(gomock.Any(), s.CaminhoArquivo, s.TipoDocumento).DoAndReturn(
			func(context.Context, string, entities.TipoDocumento) (json.RawMessage, error) {
				panic("corrupted parser state")
			},
		)
		repo.EXPECT().Transition(gomock.Any(), "sol-1", entities.StatusErro, entities.TransitionFields{Erro: "corrupted parser state"}).
			Return(s, nil)

		outcome, err := c.Process(context.Background(), "sol-1", "task-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome != OutcomeFailure {
			t.Fatalf("expected %s, got %s", OutcomeFailure, outcome)
		}
	})

	t.Run("erro transition failure is fatal", func(t *testing.T) {
		ctrl, repo, _, _, executor, c := newCoordinatorMocks(t)
		defer ctrl.Finish()

		s := pendingSolicitacao()
		repo.EXPECT().GetByID(gomock.Any(), "sol-1").Return(s, nil)
		repo.EXPECT().Transition(gomock.Any(), "sol-1", entities.StatusEmProcessamento, gomock.Any()).Return(s, nil)
		executor.EXPECT().Analyze(gomock.Any(), s.CaminhoArquivo, s.TipoDocumento).
			Return(nil, interfaces.NewAnalysisError("bad input"))
		repo.EXPECT().Transition(gomock.Any(), "sol-1", entities.StatusErro, gomock.Any()).
			Return(entities.Solicitacao{}, errors.New("db down"))

		outcome, err := c.Process(context.Background(), "sol-1", "task-1")
		if err == nil {
			t.Fatalf("expected error")
		}
		if outcome != OutcomeFailure {
			t.Fatalf("expected %s, got %s", OutcomeFailure, outcome)
		}
	})

	t.Run("store failure leaves em_processamento", func(t *testing.T) {
		ctrl, repo, _, store, executor, c := newCoordinatorMocks(t)
		defer ctrl.Finish()

		s := pendingSolicitacao()
		payload := json.RawMessage(`{"ok":true}`)
		repo.EXPECT().GetByID(gomock.Any(), "sol-1").Return(s, nil)
		repo.EXPECT().Transition(gomock.Any(), "sol-1", entities.StatusEmProcessamento, gomock.Any()).Return(s, nil)
		executor.EXPECT().Analyze(gomock.Any(), s.CaminhoArquivo, s.TipoDocumento).Return(payload, nil)
		store.EXPECT().Put(gomock.Any(), s.UUID, payload).Return("", errors.New("disk full"))

		outcome, err := c.Process(context.Background(), "sol-1", "task-1")
		if err == nil {
			t.Fatalf("expected error")
		}
		if outcome != OutcomeFailure {
			t.Fatalf("expected %s, got %s", OutcomeFailure, outcome)
		}
	})

	t.Run("resultado record failure is fatal", func(t *testing.T) {
		ctrl, repo, resultRepo, store, executor, c := newCoordinatorMocks(t)
		defer ctrl.Finish()

		s := pendingSolicitacao()
		payload := json.RawMessage(`{"ok":true}`)
		repo.EXPECT().GetByID(gomock.Any(), "sol-1").Return(s, nil)
		repo.EXPECT().Transition(gomock.Any(), "sol-1", entities.StatusEmProcessamento, gomock.Any()).Return(s, nil)
		executor.EXPECT().Analyze(gomock.Any(), s.CaminhoArquivo, s.TipoDocumento).Return(payload, nil)
		store.EXPECT().Put(gomock.Any(), s.UUID, payload).Return("loc-1", nil)
		resultRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ResultadoAnalise{}, errors.New("conditional check"))

		outcome, err := c.Process(context.Background(), "sol-1", "task-1")
		if err == nil {
			t.Fatalf("expected error")
		}
		if outcome != OutcomeFailure {
			t.Fatalf("expected %s, got %s", OutcomeFailure, outcome)
		}
	})

	t.Run("final transition failure is fatal", func(t *testing.T) {
		ctrl, repo, resultRepo, store, executor, c := newCoordinatorMocks(t)
		defer ctrl.Finish()

		s := pendingSolicitacao()
		payload := json.RawMessage(`{"ok":true}`)
		repo.EXPECT().GetByID(gomock.Any(), "sol-1").Return(s, nil)
		repo.EXPECT().Transition(gomock.Any(), "sol-1", entities.StatusEmProcessamento, gomock.Any()).Return(s, nil)
		executor.EXPECT().Analyze(gomock.Any(), s.CaminhoArquivo, s.TipoDocumento).Return(payload, nil)
		store.EXPECT().Put(gomock.Any(), s.UUID, payload).Return("loc-1", nil)
		resultRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ResultadoAnalise{ID: "sol-1"}, nil)
		repo.EXPECT().Transition(gomock.Any(), "sol-1", entities.StatusConcluido, entities.TransitionFields{}).
			Return(entities.Solicitacao{}, errors.New("db down"))

		outcome, err := c.Process(context.Background(), "sol-1", "task-1")
		if err == nil {
			t.Fatalf("expected error")
		}
		if outcome != OutcomeFailure {
			t.Fatalf("expected %s, got %s", OutcomeFailure, outcome)
		}
	})
}

func TestAnalysisCoordinator_MarkFailed(t *testing.T) {
	t.Run("records erro", func(t *testing.T) {
		ctrl, repo, _, _, _, c := newCoordinatorMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().Transition(gomock.Any(), "sol-1", entities.StatusErro, entities.TransitionFields{Erro: "worker crashed"}).
			Return(entities.Solicitacao{ID: "sol-1"}, nil)

		c.MarkFailed(context.Background(), "sol-1", "worker crashed")
	})

	t.Run("leaves terminal rows alone", func(t *testing.T) {
		ctrl, repo, _, _, _, c := newCoordinatorMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().Transition(gomock.Any(), "sol-1", entities.StatusErro, gomock.Any()).
			Return(entities.Solicitacao{}, interfaces.ErrInvalidTransition)

		c.MarkFailed(context.Background(), "sol-1", "worker crashed")
	})

	t.Run("swallows repository failures", func(t *testing.T) {
		ctrl, repo, _, _, _, c := newCoordinatorMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().Transition(gomock.Any(), "sol-1", entities.StatusErro, gomock.Any()).
			Return(entities.Solicitacao{}, errors.New("db down"))

		c.MarkFailed(context.Background(), "sol-1", "worker crashed")
	})
}
