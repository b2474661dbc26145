package repositories

import (
	"context"
	"customer-directory-service/internal/adapters/sources"
	"customer-directory-service/internal/platform/db"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLCustomerRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()

	conn, err := db.OpenSQLite(ctx, filepath.Join(t.TempDir(), "customers.db"))
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, InitSchema(ctx, conn))

	want, err := sources.NewEmbeddedSource().LoadCustomers(ctx)
	require.NoError(t, err)

	var seeded []string
	require.NoError(t, SeedCustomers(ctx, conn, SQLite, want, func(id string) {
		seeded = append(seeded, id)
	}))
	assert.Equal(t, want.IDs(), seeded)

	// Seeding twice upserts instead of failing on the primary key.
	require.NoError(t, SeedCustomers(ctx, conn, SQLite, want, nil))

	got, err := NewSQLCustomerRepository(conn).LoadCustomers(ctx)
	require.NoError(t, err)

	assert.Equal(t, want.IDs(), got.IDs())
	for id, w := range want.All() {
		g, ok := got.Get(id)
		require.True(t, ok, id)

		assert.Equal(t, w.Name, g.Name, id)
		assert.Equal(t, w.TripDays, g.TripDays, id)
		assert.Equal(t, w.Geolocated(), g.Geolocated(), id)
		assert.Equal(t, w.HasRentalItems(), g.HasRentalItems(), id)
		assert.Equal(t, w.AvgVolume == nil, g.AvgVolume == nil, id)
	}

	marina, _ := got.Get("101022")
	assert.Nil(t, marina.Coordinates)

	diner, _ := got.Get("100587")
	require.NotNil(t, diner.RouteData)
	assert.Equal(t, 7, *diner.RouteData.StopSequence)
	require.NotNil(t, diner.DataSources)
	assert.True(t, diner.DataSources.HasRouteData)
}

func TestSQLCustomerRepositoryNilDB(t *testing.T) {
	_, err := NewSQLCustomerRepository(nil).LoadCustomers(context.Background())
	assert.Error(t, err)
}

func TestDialectRebind(t *testing.T) {
	q := "INSERT INTO t (a, b) VALUES (?, ?)"
	assert.Equal(t, q, SQLite.Rebind(q))
	assert.Equal(t, "INSERT INTO t (a, b) VALUES ($1, $2)", Postgres.Rebind(q))

	d, err := ParseDialect(" Postgres ")
	require.NoError(t, err)
	assert.Equal(t, Postgres, d)

	_, err = ParseDialect("mysql")
	assert.Error(t, err)
}
