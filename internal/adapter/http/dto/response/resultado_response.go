package response

import "encoding/json"

// ResultadoDetailResponse wraps the analysis payload verbatim: Resultado is
// the stored JSON artifact, byte for byte.
type ResultadoDetailResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	UUID      string          `json:"uuid"`
	Resultado json.RawMessage `json:"resultado"`
}
