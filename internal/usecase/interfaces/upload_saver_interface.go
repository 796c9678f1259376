package interfaces

import "io"

// IUploadSaver persists an uploaded document and returns the path handed to
// the analysis pipeline.

type IUploadSaver interface {
	SaveUpload(nomeArquivo string, r io.Reader) (caminhoArquivo string, err error)
}
