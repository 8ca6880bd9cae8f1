package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStorage keeps the snapshot in a single local file. Writes go through a
// temp file plus rename so readers never observe a partial snapshot.
type FileStorage struct {
	path string
}

// NewFileStorage builds a file-backed snapshot store at the given path.
func NewFileStorage(path string) (*FileStorage, error) {
	if path == "" {
		return nil, fmt.Errorf("storage file path required")
	}
	return &FileStorage{path: path}, nil
}

func (f *FileStorage) Load(ctx context.Context) ([]byte, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	return raw, nil
}

func (f *FileStorage) Save(ctx context.Context, raw []byte) error {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("swap snapshot file: %w", err)
	}
	return nil
}

func (f *FileStorage) Clear(ctx context.Context) error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove snapshot file: %w", err)
	}
	return nil
}
