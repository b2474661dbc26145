package dto

import "encoding/json"

type CoordinatesResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type CustomerResponse struct {
	CustomerNumber     string               `json:"customer_number"`
	Name               string               `json:"name"`
	Address            string               `json:"address"`
	City               string               `json:"city"`
	Coordinates        *CoordinatesResponse `json:"coordinates"`
	TripDays           string               `json:"trip_days"`
	DeliveryCode       string               `json:"delivery_code"`
	AvgVolume          *float64             `json:"avg_volume,omitempty"`
	MaintenanceRevenue *float64             `json:"maintenance_revenue,omitempty"`
	RentalItems        []json.RawMessage    `json:"rental_items,omitempty"`
	StopSequence       *int                 `json:"stop_sequence,omitempty"`
}

type ListCustomersResponse struct {
	Count     int                `json:"count"`
	Customers []CustomerResponse `json:"customers"`
}

type StatsResponse struct {
	TotalCustomers      int            `json:"total_customers"`
	WithCoordinates     int            `json:"with_coordinates"`
	WithRentalItems     int            `json:"with_rental_items"`
	ByDay               map[string]int `json:"by_day"`
	CoordinatesCoverage float64        `json:"coordinates_coverage"`
	RentalDataCoverage  float64        `json:"rental_data_coverage"`
}
