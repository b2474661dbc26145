package repositories

import (
	"context"
	"customer-directory-service/internal/domain"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// SQL-backed implementation of the CustomerSource port.
// Works against SQLite and Postgres databases initialised by InitSchema.
type SQLCustomerRepository struct{ DB *sql.DB }

func NewSQLCustomerRepository(db *sql.DB) *SQLCustomerRepository {
	return &SQLCustomerRepository{DB: db}
}

// Return all customers in their original dataset order.
func (s *SQLCustomerRepository) LoadCustomers(ctx context.Context) (*domain.CustomerSet, error) {
	if s.DB == nil {
		return nil, errors.New("sql customer repository: DB is nil")
	}

	query := `
	SELECT
		customer_number,
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
	FROM customers
	ORDER BY position, customer_number;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load customers: query customers table: %w", err)
	}
	defer rows.Close()

	set := domain.NewCustomerSet(256)
	for rows.Next() {
		var (
			c                   domain.Customer
			lat, lon            sql.NullFloat64
			avgVolume, revenue  sql.NullFloat64
			rental              sql.NullString
			stopSeq             sql.NullInt64
			hasMaster, hasRoute sql.NullBool
		)
		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Address,
			&c.City,
			&lat,
			&lon,
			&c.TripDays,
			&c.DeliveryCode,
			&avgVolume,
			&revenue,
			&rental,
			&stopSeq,
			&hasMaster,
			&hasRoute,
		)
		if err != nil {
			return nil, fmt.Errorf("load customers: scan row: %w", err)
		}

		if lat.Valid || lon.Valid {
			c.Coordinates = &domain.Coordinates{}
			if lat.Valid {
				c.Coordinates.Latitude = &lat.Float64
			}
			if lon.Valid {
				c.Coordinates.Longitude = &lon.Float64
			}
		}
		if avgVolume.Valid {
			c.AvgVolume = &avgVolume.Float64
		}
		if revenue.Valid {
			c.MaintenanceRevenue = &revenue.Float64
		}
		if rental.Valid {
			if err := json.Unmarshal([]byte(rental.String), &c.RentalItems); err != nil {
				return nil, fmt.Errorf("load customers: customer_number=%s: decode rental items: %w", c.ID, err)
			}
		}
		if stopSeq.Valid {
			seq := int(stopSeq.Int64)
			c.RouteData = &domain.RouteData{StopSequence: &seq}
		}
		if hasMaster.Valid || hasRoute.Valid {
			c.DataSources = &domain.DataSources{HasMasterData: hasMaster.Bool, HasRouteData: hasRoute.Bool}
		}

		set.Put(&c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load customers: row iteration: %w", err)
	}

	return set, nil
}
