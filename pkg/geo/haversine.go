// Package geo provides the geographic primitives shared by the routing
// engine: coordinates and great-circle distance.
package geo

import "github.com/umahmood/haversine"

// Coordinate is a lat/lon pair. lat ∈ [-90, 90], lon ∈ [-180, 180].
type Coordinate struct {
	Lat float64
	Lon float64
}

// Valid reports whether c falls within the legal coordinate range.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// DistanceKM returns the great-circle distance between two points in
// kilometers, using the Haversine formula with Earth radius 6371 km.
func DistanceKM(a, b Coordinate) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: a.Lat, Lon: a.Lon},
		haversine.Coord{Lat: b.Lat, Lon: b.Lon},
	)
	return km
}
