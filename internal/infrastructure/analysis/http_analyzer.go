package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"avaliadores_api/internal/domain/entities"
	"avaliadores_api/internal/usecase/interfaces"
)

// HTTPAnalyzer delegates document analysis to an external engine over HTTP.
//
// Request:  POST <baseURL>/analyze {"caminho_arquivo": ..., "tipo_documento": ...}
// Response: 200 with the analysis JSON, 404 when the engine cannot resolve the
// document path, any other status is an analysis failure.

type HTTPAnalyzer struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IAnalysisExecutor = (*HTTPAnalyzer)(nil)

func NewHTTPAnalyzer(baseURL string) *HTTPAnalyzer {
	return &HTTPAnalyzer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Minute},
	}
}

type analyzeRequest struct {
	CaminhoArquivo string `json:"caminho_arquivo"`
	TipoDocumento  string `json:"tipo_documento"`
}

func (a *HTTPAnalyzer) Analyze(ctx context.Context, caminhoArquivo string, tipo entities.TipoDocumento) (json.RawMessage, error) {
	if caminhoArquivo == "" {
		return nil, interfaces.ErrFileNotFound
	}

	body, err := json.Marshal(analyzeRequest{CaminhoArquivo: caminhoArquivo, TipoDocumento: string(tipo)})
	if err != nil {
		return nil, interfaces.NewAnalysisError("failed encoding request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, interfaces.NewAnalysisError("failed building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, interfaces.NewAnalysisError("analysis engine unreachable: %v", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, interfaces.NewAnalysisError("failed reading engine response: %v", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		if !json.Valid(b) {
			return nil, interfaces.NewAnalysisError("engine returned invalid JSON")
		}
		log.Printf("[analysis][http] analysis done path=%s tipo=%s bytes=%d", caminhoArquivo, tipo, len(b))
		return b, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", interfaces.ErrFileNotFound, caminhoArquivo)
	default:
		return nil, interfaces.NewAnalysisError("engine returned status %d: %s", resp.StatusCode, string(b))
	}
}
