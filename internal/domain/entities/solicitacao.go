package entities

import "time"

// StatusSolicitacao represents the lifecycle of a document analysis request
// (solicitação).
//
// Domain notes:
//   - pendente is the state set at intake; only the analysis coordinator
//     moves a solicitação past it.
//   - concluido and erro are terminal: no automatic transition leaves them.
//     Reprocessing, if ever needed, is an explicit operator action.

type StatusSolicitacao string

const (
	StatusPendente        StatusSolicitacao = "pendente"
	StatusEmProcessamento StatusSolicitacao = "em_processamento"
	StatusConcluido       StatusSolicitacao = "concluido"
	StatusErro            StatusSolicitacao = "erro"
)

// TransitionSource returns the only status a solicitação may be in for a
// transition into s to be valid. pendente is the initial state and is never a
// transition target.
func TransitionSource(s StatusSolicitacao) (StatusSolicitacao, bool) {
	switch s {
	case StatusEmProcessamento:
		return StatusPendente, true
	case StatusConcluido, StatusErro:
		return StatusEmProcessamento, true
	}
	return "", false
}

// IsTerminal reports whether no further automatic transitions happen.
func (s StatusSolicitacao) IsTerminal() bool {
	return s == StatusConcluido || s == StatusErro
}

// TipoDocumento enumerates the supported document types.

type TipoDocumento string

const (
	TipoContratoSocial     TipoDocumento = "contrato_social"
	TipoBalancoPatrimonial TipoDocumento = "balanco_patrimonial"
	TipoDRE                TipoDocumento = "dre"
)

// ParseTipoDocumento validates an externally supplied document type.
func ParseTipoDocumento(v string) (TipoDocumento, bool) {
	switch TipoDocumento(v) {
	case TipoContratoSocial, TipoBalancoPatrimonial, TipoDRE:
		return TipoDocumento(v), true
	}
	return "", false
}

// Solicitacao is the analysis request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (uuid-index): uuid
//   - GSI2 (data_solicitacao-index): entity (constant) + data_solicitacao,
//     used for stable insertion-ordered listing.
//
// Identity:
//   - ID is internal only; it is what travels through the task queue.
//   - UUID is the sole identifier exposed by the API.
//
// Set-once fields:
//   - DataInicioProcessamento and TaskID are written on pendente→em_processamento.
//   - DataConclusao is written on the transition into concluido or erro.
//   - Erro is present iff the status is erro.

type Solicitacao struct {
	ID                      string            `json:"id"`
	UUID                    string            `json:"uuid"`
	TipoDocumento           TipoDocumento     `json:"tipo_documento"`
	NomeArquivo             string            `json:"nome_arquivo"`
	CaminhoArquivo          string            `json:"caminho_arquivo"`
	Status                  StatusSolicitacao `json:"status"`
	DataSolicitacao         time.Time         `json:"data_solicitacao"`
	DataInicioProcessamento *time.Time        `json:"data_inicio_processamento,omitempty"`
	DataConclusao           *time.Time        `json:"data_conclusao,omitempty"`
	TaskID                  string            `json:"task_id,omitempty"`
	Erro                    string            `json:"erro,omitempty"`
}

// TransitionFields carries the status-specific attributes written together
// with a status change. Timestamps are assigned by the repository.
type TransitionFields struct {
	TaskID string
	Erro   string
}
