package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"avaliadores_api/internal/domain/entities"
	"avaliadores_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSolicitacaoNotFound  = errors.New("solicitacao not found")
	ErrResultadoNotFound    = errors.New("resultado not found")
	ErrInvalidTipoDocumento = errors.New("invalid tipo_documento")
	ErrInvalidNomeArquivo   = errors.New("invalid nome_arquivo")
	ErrInvalidUUID          = errors.New("invalid solicitacao uuid")
	ErrDispatchFailed       = errors.New("failed to dispatch analysis task")
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// ISolicitacaoUseCase exposes the intake and query operations consumed by the
// HTTP layer.
//
//   - POST /documents/upload           => CreateAndDispatch()
//   - GET  /documents/solicitacoes     => List()
//   - GET  /documents/solicitacoes/:uuid => GetByUUID()
//   - GET  /documents/resultados/:uuid => GetResultado()

type ISolicitacaoUseCase interface {
	CreateAndDispatch(ctx context.Context, tipo, nomeArquivo, caminhoArquivo string) (entities.Solicitacao, error)
	GetByUUID(ctx context.Context, uuid string) (entities.Solicitacao, error)
	List(ctx context.Context, offset, limit int) ([]entities.Solicitacao, error)
	GetResultado(ctx context.Context, uuid string) (json.RawMessage, error)
}

type SolicitacaoUseCase struct {
	repo       interfaces.ISolicitacaoRepository
	resultRepo interfaces.IResultadoRepository
	store      interfaces.IResultStore
	dispatcher interfaces.ITaskDispatcher
}

var _ ISolicitacaoUseCase = (*SolicitacaoUseCase)(nil)

func NewSolicitacaoUseCase(
	repo interfaces.ISolicitacaoRepository,
	resultRepo interfaces.IResultadoRepository,
	store interfaces.IResultStore,
	dispatcher interfaces.ITaskDispatcher,
) *SolicitacaoUseCase {
	return &SolicitacaoUseCase{repo: repo, resultRepo: resultRepo, store: store, dispatcher: dispatcher}
}

// CreateAndDispatch records a pendente solicitação and hands its id to the
// task dispatcher. When dispatch fails the solicitação stays pendente with no
// partial state, and the caller gets ErrDispatchFailed.
func (u *SolicitacaoUseCase) CreateAndDispatch(ctx context.Context, tipo, nomeArquivo, caminhoArquivo string) (entities.Solicitacao, error) {
	tipoDocumento, ok := entities.ParseTipoDocumento(strings.TrimSpace(tipo))
	if !ok {
		return entities.Solicitacao{}, ErrInvalidTipoDocumento
	}
	nomeArquivo = strings.TrimSpace(nomeArquivo)
	caminhoArquivo = strings.TrimSpace(caminhoArquivo)
	if nomeArquivo == "" || caminhoArquivo == "" {
		return entities.Solicitacao{}, ErrInvalidNomeArquivo
	}

	s := entities.Solicitacao{
		ID:              uuid.NewString(),
		UUID:            uuid.NewString(),
		TipoDocumento:   tipoDocumento,
		NomeArquivo:     nomeArquivo,
		CaminhoArquivo:  caminhoArquivo,
		Status:          entities.StatusPendente,
		DataSolicitacao: time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.Solicitacao{}, err
	}

	taskID, err := u.dispatcher.Dispatch(ctx, created.ID)
	if err != nil {
		log.Printf("[solicitacao][usecase] dispatch failed solicitacao_id=%s err=%v", created.ID, err)
		return entities.Solicitacao{}, fmt.Errorf("%w: %v", ErrDispatchFailed, err)
	}
	log.Printf("[solicitacao][usecase] dispatched solicitacao_id=%s uuid=%s task_id=%s", created.ID, created.UUID, taskID)

	return created, nil
}

func (u *SolicitacaoUseCase) GetByUUID(ctx context.Context, externalUUID string) (entities.Solicitacao, error) {
	externalUUID = strings.TrimSpace(externalUUID)
	if externalUUID == "" {
		return entities.Solicitacao{}, ErrInvalidUUID
	}

	s, err := u.repo.GetByUUID(ctx, externalUUID)
	if err != nil {
		return entities.Solicitacao{}, err
	}
	if s.ID == "" {
		return entities.Solicitacao{}, ErrSolicitacaoNotFound
	}
	return s, nil
}

func (u *SolicitacaoUseCase) List(ctx context.Context, offset, limit int) ([]entities.Solicitacao, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return u.repo.List(ctx, offset, limit)
}

// GetResultado returns the stored analysis payload verbatim. Reading the same
// concluido solicitação twice yields byte-identical JSON.
func (u *SolicitacaoUseCase) GetResultado(ctx context.Context, externalUUID string) (json.RawMessage, error) {
	s, err := u.GetByUUID(ctx, externalUUID)
	if err != nil {
		return nil, err
	}

	res, err := u.resultRepo.GetBySolicitacaoID(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	if res.ID == "" {
		return nil, ErrResultadoNotFound
	}

	payload, err := u.store.Get(ctx, res.CaminhoResultado)
	if err != nil {
		if errors.Is(err, interfaces.ErrResultNotFound) {
			log.Printf("[solicitacao][usecase] resultado record exists but artifact missing solicitacao_id=%s locator=%s", s.ID, res.CaminhoResultado)
			return nil, ErrResultadoNotFound
		}
		return nil, err
	}
	return payload, nil
}
