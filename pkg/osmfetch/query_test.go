package osmfetch

import (
	"strings"
	"testing"

	"github.com/openroutenav/router/pkg/geo"
)

func TestComputeBBoxPadding(t *testing.T) {
	origin := geo.Coordinate{Lat: -5.7945, Lon: -35.2110}
	dest := geo.Coordinate{Lat: -5.8822, Lon: -35.1767}

	bbox := ComputeBBox(origin, dest)

	wantMinLat := -5.8822 - padding
	wantMaxLat := -5.7945 + padding
	if diff := bbox.MinLat - wantMinLat; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("MinLat = %v, want %v", bbox.MinLat, wantMinLat)
	}
	if diff := bbox.MaxLat - wantMaxLat; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("MaxLat = %v, want %v", bbox.MaxLat, wantMaxLat)
	}
}

func TestBuildQueryShape(t *testing.T) {
	bbox := BBox{MinLat: 1, MinLon: 2, MaxLat: 3, MaxLon: 4}
	q := BuildQuery(bbox, 60)

	for _, want := range []string{
		`[out:json][timeout:60];`,
		`way["highway"]`,
		`["highway"!="footway"]`,
		`["highway"!="path"]`,
		`["highway"!="steps"]`,
		`["highway"!="cycleway"]`,
		`["highway"!="bridleway"]`,
		`["highway"!="construction"]`,
		`["highway"!="proposed"]`,
		`(1,2,3,4);`,
		`out body;`,
		`>;`,
		`out skel qt;`,
	} {
		if !strings.Contains(q, want) {
			t.Errorf("query missing expected fragment %q\nfull query:\n%s", want, q)
		}
	}
}
