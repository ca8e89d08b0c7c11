package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/openroutenav/router/pkg/cost"
	"github.com/openroutenav/router/pkg/geo"
	"github.com/openroutenav/router/pkg/graph"
	"github.com/openroutenav/router/pkg/osmfetch"
	"github.com/openroutenav/router/pkg/routing"
)

// GeocodeFunc resolves a free-form place name to a coordinate. Geocoding
// itself is out of scope for this service; callers wire in whatever
// external geocoder collaborator they have.
type GeocodeFunc func(name string) (geo.Coordinate, error)

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	Fetcher *osmfetch.Fetcher
	Geocode GeocodeFunc
	SnapK   int
}

// NewHandlers creates handlers backed by fetcher. geocode may be nil if
// string place names are not supported by the deployment.
func NewHandlers(fetcher *osmfetch.Fetcher, geocode GeocodeFunc, snapK int) *Handlers {
	return &Handlers{Fetcher: fetcher, Geocode: geocode, SnapK: snapK}
}

// HandleRoute handles POST /route.
func (h *Handlers) HandleRoute(w http.ResponseWriter, r *http.Request) {
	var req RouteRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}

	origin, err := resolveEndpoint(req.Origin, h.Geocode)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_origin", "origin")
		return
	}
	destination, err := resolveEndpoint(req.Destination, h.Geocode)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_destination", "destination")
		return
	}

	vehicle := cost.Vehicle{VehicleType: req.Vehicle.VehicleType}
	if req.Vehicle.Height != nil {
		vehicle.HeightM = *req.Vehicle.Height
	}
	if req.Vehicle.Weight != nil {
		vehicle.WeightT = *req.Vehicle.Weight
	}

	bbox := osmfetch.ComputeBBox(origin, destination)
	resp, err := h.Fetcher.Fetch(r.Context(), bbox)
	if err != nil {
		h.writeFetchError(w, err)
		return
	}

	g := graph.Build(resp, origin, destination, graph.BuildOptions{SnapK: h.SnapK})

	routes, err := routing.Plan(r.Context(), g, vehicle, routing.Criteria(vehicle))
	if err != nil {
		if errors.Is(err, routing.ErrNoRoutes) {
			writeError(w, http.StatusNotFound, "no_valid_routes_found", "")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	if r.URL.Query().Get("format") == "geojson" {
		w.Header().Set("Content-Type", "application/geo+json")
		json.NewEncoder(w).Encode(routing.ExportGeoJSON(routes))
		return
	}

	out := RouteResponse{
		Routes:            make([]RouteJSON, len(routes)),
		OriginCoords:      CoordinateJSON{Lat: origin.Lat, Lon: origin.Lon},
		DestinationCoords: CoordinateJSON{Lat: destination.Lat, Lon: destination.Lon},
	}
	for i, r := range routes {
		out.Routes[i] = RouteJSON{
			Type:       string(r.Type),
			DistanceKM: r.DistanceKM,
			Geometry:   r.Geometry,
			Alerts:     alertsToJSON(r.Alerts),
			Summary:    r.Summary,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func (h *Handlers) writeFetchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "request_timeout", "")
	case errors.Is(err, osmfetch.ErrUpstreamTimeout):
		writeError(w, http.StatusGatewayTimeout, "overpass_timeout", "")
	case errors.Is(err, osmfetch.ErrUpstreamTransport):
		writeError(w, http.StatusBadGateway, "overpass_unavailable", "")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "")
	}
}

// HandleHealth handles GET /health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
}

func writeError(w http.ResponseWriter, status int, code, field string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: code, Field: field}); err != nil {
		log.Printf("writeError: encoding response: %v", err)
	}
}
