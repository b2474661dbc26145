package sources

import (
	"context"
	"customer-directory-service/internal/dataset"
	"customer-directory-service/internal/domain"
	"fmt"
)

// EmbeddedSource decodes the dataset bundled into the binary.
type EmbeddedSource struct {
	data []byte
}

func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{data: dataset.Customers()}
}

func (e *EmbeddedSource) LoadCustomers(ctx context.Context) (*domain.CustomerSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("embedded source: %w", err)
	}
	if len(e.data) == 0 {
		return nil, fmt.Errorf("embedded source: bundled dataset %q is empty", dataset.Name)
	}

	set, err := DecodeBytes(e.data)
	if err != nil {
		return nil, fmt.Errorf("embedded source: %w", err)
	}
	return set, nil
}
