package repositories

import (
	"context"
	"customer-directory-service/internal/domain"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Initialize the customers table. The DDL is valid for both SQLite and Postgres.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createCustomersQuery := `
	CREATE TABLE IF NOT EXISTS customers (
		customer_number TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		city TEXT NOT NULL,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		trip_days TEXT NOT NULL,
		delivery_code TEXT NOT NULL,
		avg_volume DOUBLE PRECISION,
		maintenance_revenue DOUBLE PRECISION,
		rental_items TEXT,
		stop_sequence INTEGER,
		has_master_data BOOLEAN,
		has_route_data BOOLEAN
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_customers_position
	ON customers(position);
	`

	statements := []string{
		createCustomersQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// SeedCustomers upserts every customer of set, recording dataset order in
// the position column. onRow, when non-nil, is called after each insert.
func SeedCustomers(
	ctx context.Context,
	db *sql.DB,
	dialect Dialect,
	set *domain.CustomerSet,
	onRow func(id string),
) error {
	if db == nil {
		return errors.New("seed customers: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed customers: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := dialect.Rebind(`
	INSERT INTO customers (
		customer_number,
		position,
		name,
		address,
		city,
		latitude,
		longitude,
		trip_days,
		delivery_code,
		avg_volume,
		maintenance_revenue,
		rental_items,
		stop_sequence,
		has_master_data,
		has_route_data
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (customer_number) DO UPDATE
	SET position = EXCLUDED.position,
		name = EXCLUDED.name,
		address = EXCLUDED.address,
		city = EXCLUDED.city,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude,
		trip_days = EXCLUDED.trip_days,
		delivery_code = EXCLUDED.delivery_code,
		avg_volume = EXCLUDED.avg_volume,
		maintenance_revenue = EXCLUDED.maintenance_revenue,
		rental_items = EXCLUDED.rental_items,
		stop_sequence = EXCLUDED.stop_sequence,
		has_master_data = EXCLUDED.has_master_data,
		has_route_data = EXCLUDED.has_route_data;
	`)
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed customers: prepare insert: %w", err)
	}
	defer stmt.Close()

	position := 0
	for id, c := range set.All() {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("seed customers: item at position %d: customer number cannot be empty", position+1)
		}

		args, err := customerArgs(c)
		if err != nil {
			return fmt.Errorf("seed customers: customer_number=%s: %w", id, err)
		}
		args = append([]any{id, position}, args...)

		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("seed customers: insert customer_number=%s: %w", id, err)
		}
		position++

		if onRow != nil {
			onRow(id)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed customers: commit tx: %w", err)
	}

	return nil
}

// customerArgs flattens the record columns after customer_number and position.
func customerArgs(c *domain.Customer) ([]any, error) {
	var lat, lon sql.NullFloat64
	if c.Coordinates != nil {
		if c.Coordinates.Latitude != nil {
			lat = sql.NullFloat64{Float64: *c.Coordinates.Latitude, Valid: true}
		}
		if c.Coordinates.Longitude != nil {
			lon = sql.NullFloat64{Float64: *c.Coordinates.Longitude, Valid: true}
		}
	}

	var rental sql.NullString
	if c.RentalItems != nil {
		b, err := json.Marshal(c.RentalItems)
		if err != nil {
			return nil, fmt.Errorf("encode rental items: %w", err)
		}
		rental = sql.NullString{String: string(b), Valid: true}
	}

	var stopSeq sql.NullInt64
	if c.RouteData != nil && c.RouteData.StopSequence != nil {
		stopSeq = sql.NullInt64{Int64: int64(*c.RouteData.StopSequence), Valid: true}
	}

	var hasMaster, hasRoute sql.NullBool
	if c.DataSources != nil {
		hasMaster = sql.NullBool{Bool: c.DataSources.HasMasterData, Valid: true}
		hasRoute = sql.NullBool{Bool: c.DataSources.HasRouteData, Valid: true}
	}

	return []any{
		c.Name,
		c.Address,
		c.City,
		lat,
		lon,
		c.TripDays,
		c.DeliveryCode,
		nullFloat(c.AvgVolume),
		nullFloat(c.MaintenanceRevenue),
		rental,
		stopSeq,
		hasMaster,
		hasRoute,
	}, nil
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
