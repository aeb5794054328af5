package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FSStore keeps documents on the local filesystem and serves them from a
// configured public base URL. Each upload is prefixed with a fresh UUID
// so successive saves of the same report never collide.
type FSStore struct {
	baseDir string
	baseURL string
}

func NewFSStore(baseDir, baseURL string) (*FSStore, error) {
	if baseDir == "" {
		baseDir = "./documents"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating document dir: %w", err)
	}
	return &FSStore{baseDir: baseDir, baseURL: baseURL}, nil
}

func (s *FSStore) Upload(fileName string, data []byte) (string, error) {
	if fileName == "" {
		return "", errors.New("empty file name")
	}
	key := uuid.NewString() + "_" + filepath.Base(fileName)
	dst := filepath.Join(s.baseDir, key)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("writing document %s: %w", key, err)
	}
	return s.baseURL + "/" + key, nil
}
