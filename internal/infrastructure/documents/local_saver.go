package documents

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"avaliadores_api/internal/usecase/interfaces"
)

// LocalSaver stores uploaded documents under the documents folder, prefixing
// the client file name with a timestamp so concurrent uploads of the same
// name never collide.

type LocalSaver struct {
	baseDir string
}

var _ interfaces.IUploadSaver = (*LocalSaver)(nil)

func NewLocalSaver(baseDir string) *LocalSaver {
	return &LocalSaver{baseDir: baseDir}
}

func (s *LocalSaver) SaveUpload(nomeArquivo string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", err
	}

	// filepath.Base strips any client-supplied directory components.
	filename := fmt.Sprintf("%s_%s", time.Now().UTC().Format("20060102_150405"), filepath.Base(nomeArquivo))
	path := filepath.Join(s.baseDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	written, err := io.Copy(f, r)
	if err != nil {
		os.Remove(path)
		return "", err
	}

	log.Printf("[documents] saved upload name=%s path=%s bytes=%d", nomeArquivo, path, written)
	return path, nil
}
