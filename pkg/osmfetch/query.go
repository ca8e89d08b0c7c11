package osmfetch

import (
	"fmt"

	"github.com/openroutenav/router/pkg/geo"
)

// padding is the bbox margin in degrees, roughly 5.5 km.
const padding = 0.05

// BBox is a (min_lat, min_lon, max_lat, max_lon) bounding box.
type BBox struct {
	MinLat, MinLon, MaxLat, MaxLon float64
}

// ComputeBBox derives the padded bounding box enclosing two terminals.
func ComputeBBox(origin, destination geo.Coordinate) BBox {
	minLat, maxLat := origin.Lat, destination.Lat
	if minLat > maxLat {
		minLat, maxLat = maxLat, minLat
	}
	minLon, maxLon := origin.Lon, destination.Lon
	if minLon > maxLon {
		minLon, maxLon = maxLon, minLon
	}
	return BBox{
		MinLat: minLat - padding,
		MinLon: minLon - padding,
		MaxLat: maxLat + padding,
		MaxLon: maxLon + padding,
	}
}

// BuildQuery renders the Overpass QL query body for bbox, restricted to
// drivable highway classes.
func BuildQuery(bbox BBox, timeoutSeconds int) string {
	return fmt.Sprintf(`[out:json][timeout:%d];
(
  way["highway"]
     ["highway"!="footway"]
     ["highway"!="path"]
     ["highway"!="steps"]
     ["highway"!="cycleway"]
     ["highway"!="bridleway"]
     ["highway"!="construction"]
     ["highway"!="proposed"]
     (%g,%g,%g,%g);
);
out body;
>;
out skel qt;
`, timeoutSeconds, bbox.MinLat, bbox.MinLon, bbox.MaxLat, bbox.MaxLon)
}
