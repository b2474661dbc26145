package dto

// MarkerResponse is the per-customer shape the map screen renders.
type MarkerResponse struct {
	ID          string              `json:"id"`
	CustomerNum string              `json:"customer_num"`
	Name        string              `json:"name"`
	Address     string              `json:"address"`
	Coordinates CoordinatesResponse `json:"coordinates"`
	Amount      *float64            `json:"amount,omitempty"`
}

type DepotResponse struct {
	Name        string              `json:"name"`
	Address     string              `json:"address"`
	Coordinates CoordinatesResponse `json:"coordinates"`
}

type ListMarkersResponse struct {
	Day     string           `json:"day"`
	Depot   DepotResponse    `json:"depot"`
	Markers []MarkerResponse `json:"markers"`
}
