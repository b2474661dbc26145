package domain

import (
	"encoding/json"
	"testing"
)

func TestCoordinatesValid(t *testing.T) {
	lat := 40.58
	zero := 0.0

	cases := []struct {
		name string
		c    *Coordinates
		want bool
	}{
		{"nil", nil, false},
		{"both", NewCoordinates(40.58, -122.39), true},
		{"missing lon", &Coordinates{Latitude: &lat}, false},
		{"zero lat", &Coordinates{Latitude: &zero, Longitude: &lat}, false},
		{"zero lon", NewCoordinates(40.58, 0), false},
	}

	for _, tc := range cases {
		if got := tc.c.Valid(); got != tc.want {
			t.Errorf("%s: Valid() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCustomerDeliversOn(t *testing.T) {
	c := &Customer{ID: "1", TripDays: "MWFX"}

	for _, code := range []byte{'M', 'W', 'F'} {
		if !c.DeliversOn(code) {
			t.Errorf("DeliversOn(%q) = false, want true", code)
		}
	}
	for _, code := range []byte{'T', 'H', 'S', 0} {
		if c.DeliversOn(code) {
			t.Errorf("DeliversOn(%q) = true, want false", code)
		}
	}
}

func TestCustomerMatches(t *testing.T) {
	c := &Customer{ID: "100234", Name: "Acme Linen", Address: "12 Main St", City: "Redding"}

	for _, q := range []string{"red", "acme", "main", "0023", ""} {
		if !c.Matches(q) {
			t.Errorf("Matches(%q) = false, want true", q)
		}
	}
	if c.Matches("anderson") {
		t.Errorf("Matches(anderson) = true, want false")
	}
}

func TestCustomerSetOrderAndDuplicates(t *testing.T) {
	s := NewCustomerSet(3)
	s.Put(&Customer{ID: "b", Name: "first"})
	s.Put(&Customer{ID: "a"})
	s.Put(&Customer{ID: "b", Name: "second"})

	ids := s.IDs()
	if len(ids) != 2 || ids[0] != "b" || ids[1] != "a" {
		t.Fatalf("IDs() = %v, want [b a]", ids)
	}

	c, ok := s.Get("b")
	if !ok || c.Name != "second" {
		t.Fatalf("Get(b) = %+v, %v, want second", c, ok)
	}

	raw, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"b":{"name":"second","address":"","city":"","trip_days":"","delivery_code":""},"a":{"name":"","address":"","city":"","trip_days":"","delivery_code":""}}`
	if string(raw) != want {
		t.Fatalf("MarshalJSON = %s, want %s", raw, want)
	}
}

func TestCustomerSetNil(t *testing.T) {
	var s *CustomerSet
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
	if _, ok := s.Get("x"); ok {
		t.Fatalf("Get on nil set reported a record")
	}
}
