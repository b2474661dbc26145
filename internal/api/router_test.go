package api

import (
	"context"
	"customer-directory-service/internal/adapters/sources"
	"customer-directory-service/internal/api/dto"
	"customer-directory-service/internal/config"
	"customer-directory-service/internal/domain"
	"customer-directory-service/internal/services"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSource struct{}

func (failingSource) LoadCustomers(context.Context) (*domain.CustomerSet, error) {
	return nil, errors.New("bundle missing")
}

var testDepot = config.Depot{Name: "Shop", Address: "2502 Churn Creek Rd", Latitude: 40.5865, Longitude: -122.3917}

func newTestServer(t *testing.T) (*httptest.Server, *services.DirectoryService) {
	t.Helper()
	svc := services.NewDirectoryService(sources.NewEmbeddedSource(), zerolog.Nop(), services.Options{})
	srv := httptest.NewServer(NewRouter(svc, testDepot, zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv, svc
}

func getJSON(t *testing.T, url string, wantStatus int, v any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, wantStatus, resp.StatusCode, url)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp
}

func TestHealthReportsLoadState(t *testing.T) {
	srv, svc := newTestServer(t)

	var before map[string]any
	getJSON(t, srv.URL+"/health", http.StatusOK, &before)
	assert.Equal(t, false, before["loaded"])

	require.NoError(t, svc.Initialize(context.Background()))

	var after map[string]any
	resp := getJSON(t, srv.URL+"/health", http.StatusOK, &after)
	assert.Equal(t, true, after["loaded"])
	assert.EqualValues(t, 1, after["load_attempts"])
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestCustomersByDayEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	var res dto.ListCustomersResponse
	getJSON(t, srv.URL+"/customers?day=Wednesday", http.StatusOK, &res)

	require.Equal(t, 4, res.Count)
	ids := make([]string, 0, len(res.Customers))
	for _, c := range res.Customers {
		ids = append(ids, c.CustomerNumber)
		assert.NotNil(t, c.Coordinates, c.CustomerNumber)
	}
	assert.Equal(t, []string{"100412", "100587", "101390", "101502"}, ids)

	var unknown dto.ListCustomersResponse
	getJSON(t, srv.URL+"/customers?day=Funday", http.StatusOK, &unknown)
	assert.Zero(t, unknown.Count)
	assert.NotNil(t, unknown.Customers)

	getJSON(t, srv.URL+"/customers", http.StatusBadRequest, nil)
}

func TestGetCustomerEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	var c dto.CustomerResponse
	getJSON(t, srv.URL+"/customers/101022", http.StatusOK, &c)
	assert.Equal(t, "Lake Shasta Marina Cafe", c.Name)
	assert.Nil(t, c.Coordinates)

	getJSON(t, srv.URL+"/customers/999999", http.StatusNotFound, nil)
}

func TestSearchEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	var res dto.ListCustomersResponse
	getJSON(t, srv.URL+"/search?q=ANDERSON", http.StatusOK, &res)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "100904", res.Customers[0].CustomerNumber)

	var all dto.ListCustomersResponse
	getJSON(t, srv.URL+"/search", http.StatusOK, &all)
	assert.Equal(t, 10, all.Count)
}

func TestStatsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	var res dto.StatsResponse
	getJSON(t, srv.URL+"/stats", http.StatusOK, &res)

	assert.Equal(t, 10, res.TotalCustomers)
	assert.Equal(t, 8, res.WithCoordinates)
	assert.Equal(t, 5, res.ByDay["Wednesday"])
	assert.Equal(t, 3, res.ByDay["Monday"])
	assert.Len(t, res.ByDay, 6)
	assert.InDelta(t, 80.0, res.CoordinatesCoverage, 1e-9)
}

func TestMarkersEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	var res dto.ListMarkersResponse
	getJSON(t, srv.URL+"/markers?day=S", http.StatusOK, &res)

	assert.Equal(t, "Shop", res.Depot.Name)
	require.Len(t, res.Markers, 1)
	m := res.Markers[0]
	assert.Equal(t, "101390", m.ID)
	assert.Equal(t, m.ID, m.CustomerNum)
	require.NotNil(t, m.Amount)
	assert.InDelta(t, 73.9, *m.Amount, 1e-9)
	assert.InDelta(t, -122.3917, m.Coordinates.Longitude, 1e-9)
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/stats", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, http.MethodGet, resp.Header.Get("Allow"))
}

func TestLoadFailureIsServiceUnavailable(t *testing.T) {
	svc := services.NewDirectoryService(failingSource{}, zerolog.Nop(), services.Options{})
	srv := httptest.NewServer(NewRouter(svc, testDepot, zerolog.Nop()))
	defer srv.Close()

	var res map[string]string
	getJSON(t, srv.URL+"/stats", http.StatusServiceUnavailable, &res)
	assert.NotEmpty(t, res["error"])
}
