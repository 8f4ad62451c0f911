package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSlot keeps the serialized collection in a single JSON file.
type FileSlot struct {
	path string
}

func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

func (s *FileSlot) Read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("read slot file: %w", err)
	}
	return data, nil
}

func (s *FileSlot) Write(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create slot dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write slot file: %w", err)
	}
	return nil
}

func (s *FileSlot) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove slot file: %w", err)
	}
	return nil
}
