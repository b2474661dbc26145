package domain

import "time"

// Aggregate view of the raw dataset.
// ByDay counts every customer whose trip days include the day, whether or
// not it can be placed on a map. Coverage values are percentages and are 0
// for an empty dataset.
type Stats struct {
	TotalCustomers      int
	WithCoordinates     int
	WithRentalItems     int
	ByDay               map[time.Weekday]int
	CoordinatesCoverage float64
	RentalDataCoverage  float64
}
