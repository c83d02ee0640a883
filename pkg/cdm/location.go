package cdm

import "fmt"

// Coordinate is a WGS84 point in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude" yaml:"latitude" groups:"basic"`
	Longitude float64 `json:"longitude" yaml:"longitude" groups:"basic"`
}

// String renders the coordinate as "lat,lng", the form the Directions API expects.
func (c Coordinate) String() string {
	return fmt.Sprintf("%f,%f", c.Latitude, c.Longitude)
}

// DistanceSquaredFrom is the squared distance to other in raw degree space.
// Not geodesic corrected - fine for comparing points a few kilometres apart
// against two fixed campus centres.
func (c Coordinate) DistanceSquaredFrom(other Coordinate) float64 {
	dLat := c.Latitude - other.Latitude
	dLon := c.Longitude - other.Longitude

	return dLat*dLat + dLon*dLon
}
