package response

import (
	"time"

	"avaliadores_api/internal/domain/entities"
)

// SolicitacaoResponse is the external snapshot of a solicitação. Only the
// uuid identifies it to clients; the internal id and the on-disk path never
// leave the service.
type SolicitacaoResponse struct {
	UUID                    string     `json:"uuid"`
	TipoDocumento           string     `json:"tipo_documento"`
	NomeArquivo             string     `json:"nome_arquivo"`
	Status                  string     `json:"status"`
	DataSolicitacao         time.Time  `json:"data_solicitacao"`
	DataInicioProcessamento *time.Time `json:"data_inicio_processamento,omitempty"`
	DataConclusao           *time.Time `json:"data_conclusao,omitempty"`
	Erro                    string     `json:"erro,omitempty"`
}

type SolicitacaoDetailResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    SolicitacaoResponse `json:"data"`
}

type SolicitacaoListResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    []SolicitacaoResponse `json:"data"`
}

func FromSolicitacao(s entities.Solicitacao) SolicitacaoResponse {
	return SolicitacaoResponse{
		UUID:                    s.UUID,
		TipoDocumento:           string(s.TipoDocumento),
		NomeArquivo:             s.NomeArquivo,
		Status:                  string(s.Status),
		DataSolicitacao:         s.DataSolicitacao,
		DataInicioProcessamento: s.DataInicioProcessamento,
		DataConclusao:           s.DataConclusao,
		Erro:                    s.Erro,
	}
}

func FromSolicitacoes(items []entities.Solicitacao) []SolicitacaoResponse {
	out := make([]SolicitacaoResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromSolicitacao(s))
	}
	return out
}
