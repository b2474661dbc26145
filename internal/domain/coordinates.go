package domain

// Geographic position of a customer. Either component may be absent in the dataset.
type Coordinates struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// NewCoordinates returns a fully populated position.
func NewCoordinates(lat, lon float64) *Coordinates {
	return &Coordinates{Latitude: &lat, Longitude: &lon}
}

// Valid reports whether the position can be placed on a map.
//
// A zero latitude or longitude is treated as missing, matching how the
// bundled dataset marks customers that were never geocoded. Real points on
// the equator or the prime meridian are therefore misclassified.
func (c *Coordinates) Valid() bool {
	if c == nil || c.Latitude == nil || c.Longitude == nil {
		return false
	}
	return *c.Latitude != 0 && *c.Longitude != 0
}

