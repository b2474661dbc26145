package handlers

import (
	"context"
	"customer-directory-service/internal/api/dto"
	"customer-directory-service/internal/domain"
	"customer-directory-service/internal/services"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
)

// Directory is the slice of the directory service the HTTP layer needs.
type Directory interface {
	IsLoaded() bool
	GetCustomer(ctx context.Context, id string) (*domain.Customer, bool, error)
	CustomersByDay(ctx context.Context, day string) (*domain.CustomerSet, error)
	SearchCustomers(ctx context.Context, query string) (*domain.CustomerSet, error)
	DatabaseStats(ctx context.Context) (domain.Stats, error)
}

func writeJSON(w http.ResponseWriter, r *http.Request, log zerolog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, log zerolog.Logger, status int, msg string) {
	writeJSON(w, r, log, status, map[string]string{"error": msg})
}

// allowGet rejects anything but GET and reports whether to continue.
func allowGet(w http.ResponseWriter, r *http.Request, log zerolog.Logger) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	writeError(w, r, log, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

// writeDirectoryError maps a directory failure to a response. Load failures
// are retryable, so they surface as 503.
func writeDirectoryError(w http.ResponseWriter, r *http.Request, log zerolog.Logger, op string, err error) {
	log.Error().Err(err).Str("op", op).Msg("directory query failed")
	if errors.Is(err, services.ErrLoadFailure) {
		writeError(w, r, log, http.StatusServiceUnavailable, "customer data is unavailable, retry later")
		return
	}
	writeError(w, r, log, http.StatusInternalServerError, "internal server error")
}

func toCoordinates(c *domain.Coordinates) *dto.CoordinatesResponse {
	if !c.Valid() {
		return nil
	}
	return &dto.CoordinatesResponse{Latitude: *c.Latitude, Longitude: *c.Longitude}
}

func toCustomerResponse(c *domain.Customer) dto.CustomerResponse {
	res := dto.CustomerResponse{
		CustomerNumber:     c.ID,
		Name:               c.Name,
		Address:            c.Address,
		City:               c.City,
		Coordinates:        toCoordinates(c.Coordinates),
		TripDays:           c.TripDays,
		DeliveryCode:       c.DeliveryCode,
		AvgVolume:          c.AvgVolume,
		MaintenanceRevenue: c.MaintenanceRevenue,
		RentalItems:        c.RentalItems,
	}
	if c.RouteData != nil {
		res.StopSequence = c.RouteData.StopSequence
	}
	return res
}

func toListResponse(set *domain.CustomerSet) dto.ListCustomersResponse {
	res := dto.ListCustomersResponse{
		Count:     set.Len(),
		Customers: make([]dto.CustomerResponse, 0, set.Len()),
	}
	for _, c := range set.All() {
		res.Customers = append(res.Customers, toCustomerResponse(c))
	}
	return res
}
