package handlers

import (
	"customer-directory-service/internal/api/dto"
	"customer-directory-service/internal/config"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// MarkerHandler serves the map screen: one marker per mappable customer on
// the selected day, plus the depot the map centers on.
type MarkerHandler struct {
	Directory Directory
	Depot     config.Depot
	Log       zerolog.Logger
}

func (h *MarkerHandler) List(w http.ResponseWriter, r *http.Request) {
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
		writeDirectoryError(w, r, h.Log, "markers", err)
		return
	}

	res := dto.ListMarkersResponse{
		Day: day,
		Depot: dto.DepotResponse{
			Name:    h.Depot.Name,
			Address: h.Depot.Address,
			Coordinates: dto.CoordinatesResponse{
				Latitude:  h.Depot.Latitude,
				Longitude: h.Depot.Longitude,
			},
		},
		Markers: make([]dto.MarkerResponse, 0, set.Len()),
	}
	for id, c := range set.All() {
		// CustomersByDay only returns geolocated customers.
		res.Markers = append(res.Markers, dto.MarkerResponse{
			ID:          id,
			CustomerNum: id,
			Name:        c.Name,
			Address:     c.Address,
			Coordinates: *toCoordinates(c.Coordinates),
			Amount:      c.AvgVolume,
		})
	}

	writeJSON(w, r, h.Log, http.StatusOK, res)
}
