package analysis

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"avaliadores_api/internal/domain/entities"
	"avaliadores_api/internal/usecase/interfaces"
)

// MockAnalyzer is the stand-in analysis engine used for local development and
// tests. It validates that the document exists and is readable, then returns a
// canned structured payload per document type.

type MockAnalyzer struct{}

var _ interfaces.IAnalysisExecutor = (*MockAnalyzer)(nil)

func NewMockAnalyzer() *MockAnalyzer {
	return &MockAnalyzer{}
}

func (a *MockAnalyzer) Analyze(ctx context.Context, caminhoArquivo string, tipo entities.TipoDocumento) (json.RawMessage, error) {
	if caminhoArquivo == "" {
		return nil, interfaces.ErrFileNotFound
	}
	if _, err := os.Stat(caminhoArquivo); err != nil {
		log.Printf("[analysis][mock] file not found path=%s", caminhoArquivo)
		return nil, interfaces.ErrFileNotFound
	}

	if _, err := os.ReadFile(caminhoArquivo); err != nil {
		return nil, interfaces.NewAnalysisError("failed reading document: %v", err)
	}

	today := time.Now().UTC().Format("2006-01-02")

	var result map[string]any
	switch tipo {
	case entities.TipoContratoSocial:
		result = map[string]any{
			"razao_social":      "Empresa Teste Ltda",
			"nome_fantasia":     "Teste",
			"cnpj":              "12.345.678/0001-90",
			"tipo_societario":   "LTDA",
			"data_constituicao": today,
			"prazo_duracao":     "Indeterminado",
			"socios": []map[string]any{
				{
					"nome_completo":           "Sócio Teste",
					"nacionalidade":           "Brasileira",
					"estado_civil":            "Solteiro",
					"profissao":               "Empresário",
					"endereco":                "Rua Teste, 123",
					"cpf":                     "123.456.789-00",
					"percentual_participacao": 100.0,
					"quantidade_quotas":       100,
					"valor_quotas":            100000.0,
				},
			},
			"capital_social": map[string]any{
				"valor_total":             100000.0,
				"valor_integralizado":     100000.0,
				"valor_a_integralizar":    0.0,
				"quantidade_total_quotas": 100,
				"valor_nominal_quota":     1000.0,
				"forma_integralizacao":    "Dinheiro",
			},
			"objeto_social": map[string]any{
				"descricao_completa": "Desenvolvimento de software",
				"cnae_principal":     "62.01-5-01",
				"cnae_secundarios":   []string{"62.02-3-00"},
			},
			"governanca": map[string]any{
				"administradores": []map[string]any{
					{
						"nome_completo": "Sócio Teste",
						"cargo":         "Administrador",
						"poderes":       "Todos os poderes",
						"e_socio":       true,
					},
				},
			},
			"cessao_transferencia": map[string]any{
				"regras_cessao":       "Mediante autorização dos demais sócios",
				"direito_preferencia": true,
			},
			"localizacao": map[string]any{
				"endereco_sede": "Rua Teste, 123",
				"foro_eleicao":  "São Paulo",
			},
			"distribuicao_lucros": map[string]any{
				"regras_distribuicao": "Proporcional à participação",
			},
			"observacoes_adicionais": "Documento de teste",
			"pontos_atencao":         []string{"Este é um documento de teste"},
			"data_analise":           today,
		}
	case entities.TipoBalancoPatrimonial:
		result = map[string]any{
			"empresa":          "Empresa Teste Ltda",
			"cnpj":             "12.345.678/0001-90",
			"data_referencia":  today,
			"periodo_apuracao": "Anual",
			"total_ativo":      1000000.0,
			"total_passivo_pl": 1000000.0,
		}
	case entities.TipoDRE:
		result = map[string]any{
			"empresa":           "Empresa Teste Ltda",
			"cnpj":              "12.345.678/0001-90",
			"data_referencia":   today,
			"periodo_apuracao":  "Anual",
			"receita_bruta":     500000.0,
			"resultado_liquido": 100000.0,
		}
	default:
		return nil, interfaces.NewAnalysisError("unsupported document type: %s", tipo)
	}

	b, err := json.Marshal(result)
	if err != nil {
		return nil, interfaces.NewAnalysisError("failed encoding result: %v", err)
	}
	log.Printf("[analysis][mock] analysis done path=%s tipo=%s bytes=%d", caminhoArquivo, tipo, len(b))
	return b, nil
}
