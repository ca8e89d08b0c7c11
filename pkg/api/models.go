package api

import (
	"encoding/json"
	"errors"

	"github.com/openroutenav/router/pkg/alert"
	"github.com/openroutenav/router/pkg/geo"
)

// CoordinateJSON is the wire form of a lat/lon pair.
type CoordinateJSON struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// VehicleJSON is the wire form of vehicle parameters.
type VehicleJSON struct {
	VehicleType string   `json:"vehicle_type"`
	Height      *float64 `json:"height,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
}

// RouteRequest is the JSON body for POST /route. Origin and Destination may
// each be a CoordinateJSON object or a free-form place-name string; a
// string is resolved to a coordinate by a GeocodeFunc before the core runs.
type RouteRequest struct {
	Origin      json.RawMessage `json:"origin"`
	Destination json.RawMessage `json:"destination"`
	Vehicle     VehicleJSON     `json:"vehicle"`
}

// errOriginDestinationRequired is returned when either endpoint is missing.
var errOriginDestinationRequired = errors.New("origin and destination are required")

// resolveEndpoint decodes a RouteRequest origin/destination field, which is
// either a coordinate object or a string place name resolved via geocode.
func resolveEndpoint(raw json.RawMessage, geocode GeocodeFunc) (geo.Coordinate, error) {
	if len(raw) == 0 {
		return geo.Coordinate{}, errOriginDestinationRequired
	}

	var c CoordinateJSON
	if err := json.Unmarshal(raw, &c); err == nil {
		coord := geo.Coordinate{Lat: c.Lat, Lon: c.Lon}
		if !coord.Valid() {
			return geo.Coordinate{}, errors.New("coordinate out of range")
		}
		return coord, nil
	}

	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		if geocode == nil {
			return geo.Coordinate{}, errors.New("place-name lookup is not configured")
		}
		return geocode(name)
	}

	return geo.Coordinate{}, errors.New("origin/destination must be a coordinate or a place name")
}

// AlertJSON is the wire form of a route alert.
type AlertJSON struct {
	Level    string          `json:"level"`
	Message  string          `json:"message"`
	Location *CoordinateJSON `json:"location"`
}

// RouteJSON is the wire form of a single criterion's computed route.
type RouteJSON struct {
	Type       string       `json:"type"`
	DistanceKM float64      `json:"distance_km"`
	Geometry   [][2]float64 `json:"geometry"`
	Alerts     []AlertJSON  `json:"alerts"`
	Summary    string       `json:"summary"`
}

// RouteResponse is the JSON response for a successful route query.
type RouteResponse struct {
	Routes            []RouteJSON    `json:"routes"`
	OriginCoords      CoordinateJSON `json:"origin_coords"`
	DestinationCoords CoordinateJSON `json:"destination_coords"`
}

// ErrorResponse is the JSON response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// HealthResponse is the JSON response for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func alertsToJSON(alerts []alert.Alert) []AlertJSON {
	out := make([]AlertJSON, len(alerts))
	for i, a := range alerts {
		aj := AlertJSON{Level: string(a.Level), Message: a.Message}
		if a.Location != nil {
			aj.Location = &CoordinateJSON{Lat: a.Location.Lat, Lon: a.Location.Lon}
		}
		out[i] = aj
	}
	return out
}
