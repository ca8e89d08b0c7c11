package routing

import "github.com/paulmach/go.geojson"

// ExportGeoJSON renders routes as a FeatureCollection of LineStrings, one
// per criterion, for callers that want a route export rather than the raw
// [lon, lat] geometry arrays.
func ExportGeoJSON(routes []Route) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, r := range routes {
		points := make([][]float64, len(r.Geometry))
		for i, p := range r.Geometry {
			points[i] = []float64{p[0], p[1]}
		}
		feature := geojson.NewLineStringFeature(points)
		feature.SetProperty("type", string(r.Type))
		feature.SetProperty("distance_km", r.DistanceKM)
		feature.SetProperty("summary", r.Summary)
		fc.AddFeature(feature)
	}
	return fc
}
