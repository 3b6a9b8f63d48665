package domain

import (
	"encoding/json"
	"strings"
)

// validCategories maps a normalized category identifier to its display name.
// Team sports carry home/away team semantics on events.
var validCategories = map[string]struct {
	display   string
	teamSport bool
}{
	"football":   {"Football", true},
	"basketball": {"Basketball", true},
	"tennis":     {"Tennis", false},
	"baseball":   {"Baseball", true},
	"hockey":     {"Hockey", true},
	"rugby":      {"Rugby", true},
	"cricket":    {"Cricket", true},
	"boxing":     {"Boxing", false},
	"golf":       {"Golf", false},
	"motorsport": {"Motorsport", false},
}

// SportCategory is an immutable value object identifying a sport type.
// Construction normalizes case and rejects anything outside the accepted set.
type SportCategory struct {
	value string
}

// NewSportCategory validates and normalizes raw into a SportCategory.
func NewSportCategory(raw string) (SportCategory, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return SportCategory{}, NewValidationError("category", "must not be empty")
	}
	if _, ok := validCategories[normalized]; !ok {
		return SportCategory{}, NewValidationError("category", "unrecognized sport category "+normalized)
	}
	return SportCategory{value: normalized}, nil
}

// Football returns the football category.
func Football() SportCategory { return SportCategory{value: "football"} }

// Basketball returns the basketball category.
func Basketball() SportCategory { return SportCategory{value: "basketball"} }

// Tennis returns the tennis category.
func Tennis() SportCategory { return SportCategory{value: "tennis"} }

// ValidCategories returns the accepted category identifiers, unordered.
func ValidCategories() []string {
	out := make([]string, 0, len(validCategories))
	for k := range validCategories {
		out = append(out, k)
	}
	return out
}

// Value returns the normalized category identifier.
func (c SportCategory) Value() string { return c.value }

// DisplayName returns the human-readable category name.
func (c SportCategory) DisplayName() string { return validCategories[c.value].display }

// IsTeamSport reports whether events in this category are matches between two teams.
func (c SportCategory) IsTeamSport() bool { return validCategories[c.value].teamSport }

// Equals reports value equality.
func (c SportCategory) Equals(other SportCategory) bool { return c.value == other.value }

func (c SportCategory) String() string { return c.value }

// MarshalJSON encodes the category as its normalized identifier.
func (c SportCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.value)
}
