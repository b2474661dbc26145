package domain

import (
	"encoding/json"
	"strings"
)

// Represents a single delivery customer from the bundled dataset.
// ID is the customer number; it is the key of the dataset object and is
// not repeated inside the record body.
type Customer struct {
	ID                 string            `json:"-"`
	Name               string            `json:"name"`
	Address            string            `json:"address"`
	City               string            `json:"city"`
	Coordinates        *Coordinates      `json:"coordinates,omitempty"`
	TripDays           string            `json:"trip_days"`
	DeliveryCode       string            `json:"delivery_code"`
	AvgVolume          *float64          `json:"avg_volume,omitempty"`
	MaintenanceRevenue *float64          `json:"maintenance_revenue,omitempty"`
	RentalItems        []json.RawMessage `json:"rental_items,omitempty"`
	RouteData          *RouteData        `json:"route_data,omitempty"`
	DataSources        *DataSources      `json:"data_sources,omitempty"`
}

// Routing metadata carried through from the route export.
type RouteData struct {
	StopSequence *int `json:"stop_sequence,omitempty"`
}

// Which upstream exports contributed to a record.
type DataSources struct {
	HasMasterData bool `json:"has_master_data"`
	HasRouteData  bool `json:"has_route_data"`
}

func (c *Customer) Geolocated() bool { return c.Coordinates.Valid() }

func (c *Customer) HasRentalItems() bool { return len(c.RentalItems) > 0 }

// DeliversOn reports whether the trip days contain code. Matching is by
// exact character; unknown characters never match a day.
func (c *Customer) DeliversOn(code byte) bool {
	return code != 0 && strings.IndexByte(c.TripDays, code) >= 0
}

// Matches reports whether the lowercased query is a substring of the
// customer number, name, address or city, ignoring case.
func (c *Customer) Matches(lowerQuery string) bool {
	return strings.Contains(strings.ToLower(c.ID), lowerQuery) ||
		strings.Contains(strings.ToLower(c.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(c.Address), lowerQuery) ||
		strings.Contains(strings.ToLower(c.City), lowerQuery)
}
