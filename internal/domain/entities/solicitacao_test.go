package entities

import "testing"

func TestTransitionSource(t *testing.T) {
	cases := []struct {
		target StatusSolicitacao
		source StatusSolicitacao
		ok     bool
	}{
		{StatusEmProcessamento, StatusPendente, true},
		{StatusConcluido, StatusEmProcessamento, true},
		{StatusErro, StatusEmProcessamento, true},
		{StatusPendente, "", false},
		{StatusSolicitacao("arquivado"), "", false},
	}

	for _, tc := range cases {
		source, ok := TransitionSource(tc.target)
		if ok != tc.ok || source != tc.source {
			t.Fatalf("TransitionSource(%s) = (%s, %v), expected (%s, %v)", tc.target, source, ok, tc.source, tc.ok)
		}
	}
}

func TestStatusIsTerminal(t *testing.T) {
	if StatusPendente.IsTerminal() || StatusEmProcessamento.IsTerminal() {
		t.Fatalf("pendente and em_processamento must not be terminal")
	}
	if !StatusConcluido.IsTerminal() || !StatusErro.IsTerminal() {
		t.Fatalf("concluido and erro must be terminal")
	}
}

func TestParseTipoDocumento(t *testing.T) {
	for _, v := range []string{"contrato_social", "balanco_patrimonial", "dre"} {
		tipo, ok := ParseTipoDocumento(v)
		if !ok || string(tipo) != v {
			t.Fatalf("expected %s to parse", v)
		}
	}
	for _, v := range []string{"", "nota_fiscal", "CONTRATO_SOCIAL", " dre"} {
		if _, ok := ParseTipoDocumento(v); ok {
			t.Fatalf("expected %q to be rejected", v)
		}
	}
}
