package entities

import "time"

// ResultadoAnalise records where the JSON artifact produced by a successful
// analysis was stored.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//
// We purposely use the solicitação id as the resultado id to guarantee one
// resultado per solicitação; the conditional create then makes the write
// idempotent-safe against a retried run.
//
// CaminhoResultado is an opaque locator understood by the result store that
// wrote it (filesystem path or object key).

type ResultadoAnalise struct {
	ID               string    `json:"id"`
	SolicitacaoID    string    `json:"solicitacao_id"`
	CaminhoResultado string    `json:"caminho_resultado"`
	DataCriacao      time.Time `json:"data_criacao"`
}
