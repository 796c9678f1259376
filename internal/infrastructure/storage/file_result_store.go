package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"avaliadores_api/internal/usecase/interfaces"
)

// FileResultStore keeps one JSON artifact per solicitação on the local
// filesystem, as resultado_<uuid>.json under the results folder.
//
// Put writes to a temporary file, fsyncs and renames so the artifact is
// durable before the locator is returned.

type FileResultStore struct {
	baseDir string
}

var _ interfaces.IResultStore = (*FileResultStore)(nil)

func NewFileResultStore(baseDir string) *FileResultStore {
	return &FileResultStore{baseDir: baseDir}
}

func (s *FileResultStore) Put(ctx context.Context, key string, payload json.RawMessage) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(s.baseDir, fmt.Sprintf("resultado_%s.json", key))

	tmp, err := os.CreateTemp(s.baseDir, "resultado_*.tmp")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", err
	}

	log.Printf("[store][file] saved resultado key=%s path=%s bytes=%d", key, path, len(payload))
	return path, nil
}

func (s *FileResultStore) Get(ctx context.Context, locator string) (json.RawMessage, error) {
	b, err := os.ReadFile(locator)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, interfaces.ErrResultNotFound
		}
		return nil, err
	}
	if !json.Valid(b) {
		log.Printf("[store][file] corrupt resultado at %s", locator)
		return nil, interfaces.ErrResultNotFound
	}
	return b, nil
}
