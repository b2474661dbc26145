package main

import (
	"context"
	"customer-directory-service/internal/adapters/repositories"
	"customer-directory-service/internal/adapters/sources"
	"customer-directory-service/internal/config"
	"customer-directory-service/internal/domain"
	"customer-directory-service/internal/platform/db"
	"customer-directory-service/internal/platform/logx"
	"customer-directory-service/internal/ports"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
)

// dbtool imports the customer dataset into SQLite (DB_PATH) or, when
// DATABASE_URL is set or DB_DIALECT=postgres, Postgres. The dataset comes from DATASET_PATH or
// the bundled asset.
func main() {
	config.LoadDotEnv()
	log := logx.New(config.Get("LOG_LEVEL", "info"))
	ctx := context.Background()

	var source ports.CustomerSource = sources.NewEmbeddedSource()
	if path := config.Get("DATASET_PATH", ""); path != "" {
		source = sources.NewFileSource(path)
	}

	set, err := source.LoadCustomers(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("read dataset")
	}
	log.Info().Int("customers", set.Len()).Msg("dataset read")

	conn, dialect, err := openTarget(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer conn.Close()

	if err := initAndSeed(ctx, log, conn, dialect, set); err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}
}

// openTarget picks the database from DB_DIALECT, defaulting to postgres when
// DATABASE_URL is set and sqlite otherwise.
func openTarget(ctx context.Context) (*sql.DB, repositories.Dialect, error) {
	url := config.Get("DATABASE_URL", "")
	fallback := string(repositories.SQLite)
	if url != "" {
		fallback = string(repositories.Postgres)
	}

	dialect, err := repositories.ParseDialect(config.Get("DB_DIALECT", fallback))
	if err != nil {
		return nil, "", err
	}

	if dialect == repositories.Postgres {
		if url == "" {
			return nil, "", fmt.Errorf("open target: DATABASE_URL is required for dialect %q", dialect)
		}
		conn, err := db.Open(ctx, url)
		return conn, dialect, err
	}
	conn, err := db.OpenSQLite(ctx, config.Get("DB_PATH", "data/customers.db"))
	return conn, dialect, err
}

func initAndSeed(
	ctx context.Context,
	log zerolog.Logger,
	conn *sql.DB,
	dialect repositories.Dialect,
	set *domain.CustomerSet,
) error {
	log.Info().Str("dialect", string(dialect)).Msg("initializing database schema")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	bar := progressbar.Default(int64(set.Len()), "importing customers")
	err := repositories.SeedCustomers(ctx, conn, dialect, set, func(string) {
		_ = bar.Add(1)
	})
	_ = bar.Finish()
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	log.Info().Int("customers", set.Len()).Msg("seeding complete")
	return nil
}
