package domain

import (
	"encoding/json"
	"strings"
)

// Venue is an immutable value object for the physical location of an event.
// Name, city, and country are required; address and capacity are optional.
// Equality is by value.
type Venue struct {
	name        string
	city        string
	country     string
	address     string
	capacity    int
	hasCapacity bool
}

// NewVenue validates the venue fields. capacity, when non-nil, must be a
// positive integer.
func NewVenue(name, city, country, address string, capacity *int) (Venue, error) {
	if strings.TrimSpace(name) == "" {
		return Venue{}, NewValidationError("venue_name", "must not be empty")
	}
	if strings.TrimSpace(city) == "" {
		return Venue{}, NewValidationError("venue_city", "must not be empty")
	}
	if strings.TrimSpace(country) == "" {
		return Venue{}, NewValidationError("venue_country", "must not be empty")
	}
	v := Venue{
		name:    strings.TrimSpace(name),
		city:    strings.TrimSpace(city),
		country: strings.TrimSpace(country),
		address: strings.TrimSpace(address),
	}
	if capacity != nil {
		if *capacity <= 0 {
			return Venue{}, NewValidationError("venue_capacity", "must be a positive integer")
		}
		v.capacity = *capacity
		v.hasCapacity = true
	}
	return v, nil
}

// Name returns the venue name.
func (v Venue) Name() string { return v.name }

// City returns the venue city.
func (v Venue) City() string { return v.city }

// Country returns the venue country.
func (v Venue) Country() string { return v.country }

// Address returns the optional street address ("" when absent).
func (v Venue) Address() string { return v.address }

// Capacity returns the venue capacity and whether one was provided.
func (v Venue) Capacity() (int, bool) { return v.capacity, v.hasCapacity }

// FullName returns "name, city, country".
func (v Venue) FullName() string {
	return v.name + ", " + v.city + ", " + v.country
}

// Equals reports value equality across all fields.
func (v Venue) Equals(other Venue) bool { return v == other }

func (v Venue) String() string { return v.FullName() }

// MarshalJSON encodes the venue as a flat object; capacity is omitted when absent.
func (v Venue) MarshalJSON() ([]byte, error) {
	out := struct {
		Name     string `json:"name"`
		City     string `json:"city"`
		Country  string `json:"country"`
		Address  string `json:"address,omitempty"`
		Capacity *int   `json:"capacity,omitempty"`
	}{
		Name:    v.name,
		City:    v.city,
		Country: v.country,
		Address: v.address,
	}
	if v.hasCapacity {
		c := v.capacity
		out.Capacity = &c
	}
	return json.Marshal(out)
}
