package request

import "testing"

func TestIsSupportedExtension(t *testing.T) {
	supported := []string{"doc.pdf", "doc.docx", "doc.doc", "doc.txt", "DOC.PDF", "a.b.txt"}
	for _, name := range supported {
		if !IsSupportedExtension(name) {
			t.Fatalf("expected %s to be supported", name)
		}
	}

	rejected := []string{"doc.exe", "doc", "", "doc.pdf.exe", ".pdfx"}
	for _, name := range rejected {
		if IsSupportedExtension(name) {
			t.Fatalf("expected %s to be rejected", name)
		}
	}
}

func TestResolveTipoDocumento(t *testing.T) {
	r := UploadDocumentoRequest{TipoDocumento: "  contrato_social  "}
	if r.ResolveTipoDocumento() != "contrato_social" {
		t.Fatalf("expected trimmed tipo, got %q", r.ResolveTipoDocumento())
	}
}
