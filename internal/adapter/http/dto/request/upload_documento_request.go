package request

import (
	"path/filepath"
	"strings"
)

// validExtensions mirrors the formats the analysis pipeline accepts.
var validExtensions = []string{".pdf", ".docx", ".doc", ".txt"}

// UploadDocumentoRequest is the multipart form accepted by the upload
// endpoint; the file part travels separately.
type UploadDocumentoRequest struct {
	TipoDocumento string `form:"tipo_documento" binding:"required"`
}

func (r UploadDocumentoRequest) ResolveTipoDocumento() string {
	return strings.TrimSpace(r.TipoDocumento)
}

// IsSupportedExtension checks the uploaded file name against the accepted
// document formats, case-insensitively.
func IsSupportedExtension(nomeArquivo string) bool {
	ext := strings.ToLower(filepath.Ext(nomeArquivo))
	for _, v := range validExtensions {
		if ext == v {
			return true
		}
	}
	return false
}

// SupportedExtensions returns the accepted formats for error messages.
func SupportedExtensions() string {
	return strings.Join(validExtensions, ", ")
}
