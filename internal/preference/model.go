package preference

// Preference is a user's partially-specified dietary profile. A nil slice
// or empty string means "no constraint"; an empty non-nil slice is a
// constraint that was explicitly cleared. The two survive JSON and storage
// round-trips distinctly (null vs []).
type Preference struct {
	DietaryRestrictions []string          `json:"dietary_restrictions"`
	SpiceLevel          string            `json:"spice_level"`
	PreferredProtein    string            `json:"preferred_protein"`
	Avoid               []string          `json:"avoid"`
	OtherPreferences    map[string]string `json:"other_preferences"`
}

// Update is a partial change. Pointer fields distinguish "not present"
// (nil: leave the stored value untouched) from "present and empty"
// (clear the constraint).
type Update struct {
	DietaryRestrictions *[]string          `json:"dietary_restrictions"`
	SpiceLevel          *string            `json:"spice_level"`
	PreferredProtein    *string            `json:"preferred_protein"`
	Avoid               *[]string          `json:"avoid"`
	OtherPreferences    *map[string]string `json:"other_preferences"`
}

const (
	SpiceMild   = "mild"
	SpiceMedium = "medium"
	SpiceHot    = "hot"
)

var validSpiceLevels = map[string]bool{
	SpiceMild:   true,
	SpiceMedium: true,
	SpiceHot:    true,
}
