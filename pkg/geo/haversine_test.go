package geo

import "testing"

func TestDistanceKM(t *testing.T) {
	a := Coordinate{Lat: -5.7945, Lon: -35.2110}
	b := Coordinate{Lat: -5.8822, Lon: -35.1767}

	got := DistanceKM(a, b)
	want := 10.39
	if diff := got - want; diff > 0.05 || diff < -0.05 {
		t.Errorf("DistanceKM(%v, %v) = %.4f, want ~%.2f", a, b, got, want)
	}
}

func TestDistanceKMZero(t *testing.T) {
	p := Coordinate{Lat: 1.3, Lon: 103.8}
	if got := DistanceKM(p, p); got != 0 {
		t.Errorf("DistanceKM(p, p) = %v, want 0", got)
	}
}

func TestCoordinateValid(t *testing.T) {
	cases := []struct {
		c    Coordinate
		want bool
	}{
		{Coordinate{Lat: 90, Lon: 180}, true},
		{Coordinate{Lat: -90, Lon: -180}, true},
		{Coordinate{Lat: 90.1, Lon: 0}, false},
		{Coordinate{Lat: 0, Lon: -180.1}, false},
	}
	for _, tc := range cases {
		if got := tc.c.Valid(); got != tc.want {
			t.Errorf("Coordinate(%v).Valid() = %v, want %v", tc.c, got, tc.want)
		}
	}
}
