// Package bootstrap turns configuration into concrete adapters for the
// binaries under cmd/.
package bootstrap

import (
	"context"
	"customer-directory-service/internal/adapters/repositories"
	"customer-directory-service/internal/adapters/sources"
	"customer-directory-service/internal/config"
	"customer-directory-service/internal/platform/db"
	"customer-directory-service/internal/ports"
	"fmt"
)

// OpenSource returns the CustomerSource selected by cfg.DatasetSource and a
// func releasing any connection it holds.
func OpenSource(ctx context.Context, cfg config.Config) (ports.CustomerSource, func(), error) {
	noop := func() {}

	switch cfg.DatasetSource {
	case config.SourceEmbedded:
		return sources.NewEmbeddedSource(), noop, nil

	case config.SourceFile:
		return sources.NewFileSource(cfg.DatasetPath), noop, nil

	case config.SourceSQLite:
		conn, err := db.OpenSQLite(ctx, cfg.DBPath)
		if err != nil {
			return nil, noop, fmt.Errorf("open source: %w", err)
		}
		return repositories.NewSQLCustomerRepository(conn), func() { conn.Close() }, nil

	case config.SourcePostgres:
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, fmt.Errorf("open source: %w", err)
		}
		return repositories.NewSQLCustomerRepository(conn), func() { conn.Close() }, nil
	}

	return nil, noop, fmt.Errorf("open source: unknown dataset source %q", cfg.DatasetSource)
}
