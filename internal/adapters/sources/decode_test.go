package sources

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDataset = `{
	// route 33 export
	"300": {"name": "Third", "address": "3 Elm St", "city": "Anderson", "trip_days": "W", "delivery_code": "C"},
	"100": {
		"name": "First",
		"address": "1 Main St",
		"city": "Redding",
		"coordinates": {"latitude": 40.58, "longitude": -122.39},
		"trip_days": "MWF",
		"delivery_code": "A",
		"avg_volume": 12.5,
		"rental_items": [{"sku": "X59"}, 7],
	},
	"200": {"name": "Second", "address": "2 Oak St", "city": "Redding", "coordinates": null, "trip_days": "", "delivery_code": "B"},
}`

func TestDecodeKeepsDatasetOrder(t *testing.T) {
	set, err := Decode(strings.NewReader(sampleDataset))
	require.NoError(t, err)

	assert.Equal(t, []string{"300", "100", "200"}, set.IDs())

	first, ok := set.Get("100")
	require.True(t, ok)
	assert.Equal(t, "100", first.ID)
	assert.True(t, first.Geolocated())
	require.NotNil(t, first.AvgVolume)
	assert.InDelta(t, 12.5, *first.AvgVolume, 1e-9)
	require.Len(t, first.RentalItems, 2)
	assert.JSONEq(t, `{"sku": "X59"}`, string(first.RentalItems[0]))
	assert.Equal(t, "7", string(first.RentalItems[1]))

	second, _ := set.Get("200")
	assert.Nil(t, second.Coordinates)
	assert.False(t, second.Geolocated())
}

func TestDecodeDuplicateKeyKeepsFirstPosition(t *testing.T) {
	set, err := Decode(strings.NewReader(`{"a": {"name": "one"}, "b": {}, "a": {"name": "two"}}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, set.IDs())
	a, _ := set.Get("a")
	assert.Equal(t, "two", a.Name)
}

func TestDecodeRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"empty":         ``,
		"array":         `[{"name": "x"}]`,
		"null record":   `{"a": null}`,
		"bad record":    `{"a": {"name": 5}}`,
		"truncated":     `{"a": {"name": "x"}`,
		"trailing data": `{"a": {}} {"b": {}}`,
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestDecodeCompressed(t *testing.T) {
	packed, err := Compress([]byte(sampleDataset))
	require.NoError(t, err)

	set, err := DecodeBytes(packed)
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "customers.json.zst")

	packed, err := Compress([]byte(sampleDataset))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, packed, 0o644))

	set, err := NewFileSource(path).LoadCustomers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"300", "100", "200"}, set.IDs())

	_, err = NewFileSource(filepath.Join(dir, "missing.json")).LoadCustomers(context.Background())
	assert.Error(t, err)
}

func TestEmbeddedSource(t *testing.T) {
	set, err := NewEmbeddedSource().LoadCustomers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, set.Len())
	assert.Equal(t, "100412", set.IDs()[0])
}
