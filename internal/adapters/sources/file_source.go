package sources

import (
	"context"
	"customer-directory-service/internal/domain"
	"errors"
	"fmt"
	"os"
)

// FileSource reads the dataset from a JSON (or zstd-compressed JSON) file.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (f *FileSource) LoadCustomers(ctx context.Context) (*domain.CustomerSet, error) {
	if f.Path == "" {
		return nil, errors.New("file source: path is empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("file source: %w", err)
	}

	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("file source: read %q: %w", f.Path, err)
	}

	set, err := DecodeBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("file source: %q: %w", f.Path, err)
	}
	return set, nil
}
