package handlers

import (
	"customer-directory-service/internal/api/dto"
	"customer-directory-service/internal/domain"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// CustomerHandler exposes read-only directory queries.
type CustomerHandler struct {
	Directory Directory
	Log       zerolog.Logger
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r, h.Log) {
		return
	}

	id := strings.TrimSpace(r.PathValue("id"))
	c, ok, err := h.Directory.GetCustomer(r.Context(), id)
	if err != nil {
		writeDirectoryError(w, r, h.Log, "get customer", err)
		return
	}
	if !ok {
		writeError(w, r, h.Log, http.StatusNotFound, "customer not found")
		return
	}

	writeJSON(w, r, h.Log, http.StatusOK, toCustomerResponse(c))
}

// ByDay lists the mappable customers for ?day=, a day name or trip code.
func (h *CustomerHandler) ByDay(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r, h.Log) {
		return
	}

	day := strings.TrimSpace(r.URL.Query().Get("day"))
	if day == "" {
		writeError(w, r, h.Log, http.StatusBadRequest, "day is required")
		return
	}

	set, err := h.Directory.CustomersByDay(r.Context(), day)
	if err != nil {
		writeDirectoryError(w, r, h.Log, "customers by day", err)
		return
	}

	writeJSON(w, r, h.Log, http.StatusOK, toListResponse(set))
}

// Search matches ?q= against customer number, name, address and city.
// A missing or empty q lists every customer.
func (h *CustomerHandler) Search(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r, h.Log) {
		return
	}

	set, err := h.Directory.SearchCustomers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeDirectoryError(w, r, h.Log, "search customers", err)
		return
	}

	writeJSON(w, r, h.Log, http.StatusOK, toListResponse(set))
}

func (h *CustomerHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r, h.Log) {
		return
	}

	stats, err := h.Directory.DatabaseStats(r.Context())
	if err != nil {
		writeDirectoryError(w, r, h.Log, "database stats", err)
		return
	}

	res := dto.StatsResponse{
		TotalCustomers:      stats.TotalCustomers,
		WithCoordinates:     stats.WithCoordinates,
		WithRentalItems:     stats.WithRentalItems,
		ByDay:               make(map[string]int, len(domain.DeliveryDays)),
		CoordinatesCoverage: stats.CoordinatesCoverage,
		RentalDataCoverage:  stats.RentalDataCoverage,
	}
	for _, d := range domain.DeliveryDays {
		res.ByDay[d.String()] = stats.ByDay[d]
	}

	writeJSON(w, r, h.Log, http.StatusOK, res)
}
