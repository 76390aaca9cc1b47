package geo

import (
	"testing"

	"github.com/provhatrahman/Ahwaaz/internal/config"
)

func TestLookupKnownCities(t *testing.T) {
	svc := NewService(config.Default().Geo.Cities)

	tests := []struct {
		name string
		city string
		lat  float64
		lon  float64
	}{
		{name: "mumbai", city: "Mumbai", lat: 19.0760, lon: 72.8777},
		{name: "karachi", city: "Karachi", lat: 24.8607, lon: 67.0011},
		{name: "dhaka", city: "Dhaka", lat: 23.8103, lon: 90.4125},
		{name: "london", city: "London", lat: 51.5074, lon: -0.1278},
		{name: "sydney", city: "Sydney", lat: -33.8688, lon: 151.2093},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon, ok := svc.Lookup(tt.city)
			if !ok {
				t.Fatalf("city %s should resolve", tt.city)
			}
			if lat != tt.lat || lon != tt.lon {
				t.Fatalf("unexpected coordinates for %s: got (%v, %v) want (%v, %v)", tt.city, lat, lon, tt.lat, tt.lon)
			}
		})
	}
}

func TestLookupIsCaseAndSpaceInsensitive(t *testing.T) {
	svc := NewService(config.Default().Geo.Cities)

	lat, lon, ok := svc.Lookup("  mumbai ")
	if !ok {
		t.Fatalf("normalized lookup should resolve")
	}
	if lat == 0 && lon == 0 {
		t.Fatalf("resolved coordinates should not be zero")
	}
}

func TestLookupUnknownCity(t *testing.T) {
	svc := NewService(config.Default().Geo.Cities)

	lat, lon, ok := svc.Lookup("Atlantis")
	if ok {
		t.Fatalf("unknown city should not resolve")
	}
	if lat != 0 || lon != 0 {
		t.Fatalf("unknown city should return zero coordinates")
	}
}
