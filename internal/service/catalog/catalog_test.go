package catalog

import "testing"

func TestCatalogSizes(t *testing.T) {
	s := New()

	if got := len(s.TurkishCities()); got != 30 {
		t.Fatalf("expected 30 Turkish cities, got %d", got)
	}
	if got := len(s.WorldCities()); got != 20 {
		t.Fatalf("expected 20 world cities, got %d", got)
	}
	if got := len(s.CalculationMethods()); got != 14 {
		t.Fatalf("expected 14 calculation methods, got %d", got)
	}
}

func TestValidMethod(t *testing.T) {
	s := New()

	if !s.ValidMethod(13) {
		t.Fatal("method 13 (Diyanet) must be valid")
	}
	if s.ValidMethod(6) {
		t.Fatal("method 6 does not exist upstream")
	}
	if s.ValidMethod(-1) || s.ValidMethod(99) {
		t.Fatal("out-of-range methods must be invalid")
	}
}

func TestCityCoordinatesAreValid(t *testing.T) {
	s := New()

	for _, c := range append(s.TurkishCities(), s.WorldCities()...) {
		if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
			t.Errorf("city %s has invalid coordinates (%g, %g)", c.Name, c.Latitude, c.Longitude)
		}
	}
}
