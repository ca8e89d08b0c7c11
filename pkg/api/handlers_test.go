package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/openroutenav/router/pkg/geo"
	"github.com/openroutenav/router/pkg/osmfetch"
)

func TestHandleHealth(t *testing.T) {
	h := &Handlers{}
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	h.HandleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("Status = %q, want ok", resp.Status)
	}
}

func TestResolveEndpointCoordinate(t *testing.T) {
	raw := json.RawMessage(`{"lat": 1.35, "lon": 103.8}`)
	c, err := resolveEndpoint(raw, nil)
	if err != nil {
		t.Fatalf("resolveEndpoint: %v", err)
	}
	want := geo.Coordinate{Lat: 1.35, Lon: 103.8}
	if c != want {
		t.Errorf("coordinate = %+v, want %+v", c, want)
	}
}

func TestResolveEndpointRejectsOutOfRangeCoordinate(t *testing.T) {
	raw := json.RawMessage(`{"lat": 200, "lon": 103.8}`)
	if _, err := resolveEndpoint(raw, nil); err == nil {
		t.Error("expected error for out-of-range latitude")
	}
}

func TestResolveEndpointStringRequiresGeocode(t *testing.T) {
	raw := json.RawMessage(`"Singapore"`)
	if _, err := resolveEndpoint(raw, nil); err == nil {
		t.Error("expected error when no GeocodeFunc is configured")
	}

	geocode := func(name string) (geo.Coordinate, error) {
		return geo.Coordinate{Lat: 1.35, Lon: 103.8}, nil
	}
	c, err := resolveEndpoint(raw, geocode)
	if err != nil {
		t.Fatalf("resolveEndpoint with geocode: %v", err)
	}
	if c.Lat != 1.35 {
		t.Errorf("Lat = %f, want 1.35", c.Lat)
	}
}

func TestResolveEndpointMissing(t *testing.T) {
	if _, err := resolveEndpoint(nil, nil); err != errOriginDestinationRequired {
		t.Errorf("err = %v, want errOriginDestinationRequired", err)
	}
}

func TestHandleRouteRejectsMalformedBody(t *testing.T) {
	h := &Handlers{}
	req := httptest.NewRequest(http.MethodPost, "/route", nil)
	w := httptest.NewRecorder()

	h.HandleRoute(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

// TestHandleRouteGeoJSONFormat exercises the ?format=geojson branch against
// a local fixture server standing in for Overpass, not the public API.
func TestHandleRouteGeoJSONFormat(t *testing.T) {
	const overpassBody = `{"elements":[
		{"type":"node","id":1,"lat":1.0,"lon":103.0},
		{"type":"node","id":2,"lat":1.001,"lon":103.001},
		{"type":"way","id":10,"nodes":[1,2],"tags":{"highway":"residential"}}
	]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(overpassBody))
	}))
	defer srv.Close()

	fetcher := osmfetch.NewFetcher(srv.URL, 5*time.Second)
	h := NewHandlers(fetcher, nil, 5)

	body := `{"origin":{"lat":1.0,"lon":103.0},"destination":{"lat":1.001,"lon":103.001}}`
	req := httptest.NewRequest(http.MethodPost, "/route?format=geojson", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.HandleRoute(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/geo+json" {
		t.Errorf("Content-Type = %q, want application/geo+json", ct)
	}

	var fc struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &fc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fc.Type != "FeatureCollection" {
		t.Errorf("type = %q, want FeatureCollection", fc.Type)
	}
	if len(fc.Features) == 0 {
		t.Error("expected at least one feature")
	}
}
