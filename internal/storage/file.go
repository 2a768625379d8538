package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"taskbot/internal/task"
)

// FileStore persists tasks as a YAML file. Saves are atomic: the new
// content is written to a temp file and renamed over the old one.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path. The file is
// created on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save implements Store.
func (s *FileStore) Save(ctx context.Context, tasks []task.Task) error {
	data, err := yaml.Marshal(Encode(tasks))
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tasks-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write tasks: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write tasks: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

// Load implements Store. A missing file yields an empty list.
func (s *FileStore) Load(ctx context.Context) ([]task.Task, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return Decode(records)
}

// Close implements Store.
func (s *FileStore) Close() error { return nil }
