package ports

import (
	"context"
	"customer-directory-service/internal/domain"
)

// Port: a boundary for obtaining the customer dataset.
// Implementations read their backing store once per call and never cache;
// the directory service decides how often that happens.
type CustomerSource interface {
	// Return every customer in dataset order.
	LoadCustomers(ctx context.Context) (*domain.CustomerSet, error)
}
