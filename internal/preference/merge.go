package preference

import "strings"

// Merge applies a partial update field-wise. Absent fields leave prior
// values untouched; present-but-empty fields clear the constraint.
// Merge never fails: preferences are advisory, so malformed values are
// coerced or dropped rather than rejected.
func Merge(existing Preference, update Update) Preference {
	merged := existing

	if update.DietaryRestrictions != nil {
		merged.DietaryRestrictions = normalizeTags(*update.DietaryRestrictions)
	}

	if update.SpiceLevel != nil {
		level := strings.ToLower(strings.TrimSpace(*update.SpiceLevel))
		switch {
		case level == "":
			merged.SpiceLevel = ""
		case validSpiceLevels[level]:
			merged.SpiceLevel = level
		}
		// unknown levels are dropped, keeping the prior value
	}

	if update.PreferredProtein != nil {
		merged.PreferredProtein = strings.TrimSpace(*update.PreferredProtein)
	}

	if update.Avoid != nil {
		merged.Avoid = normalizeTags(*update.Avoid)
	}

	if update.OtherPreferences != nil {
		// pass-through mapping; no core logic reads its contents
		merged.OtherPreferences = *update.OtherPreferences
	}

	return merged
}

// normalizeTags trims and drops empty entries but keeps the slice non-nil,
// preserving "explicitly cleared" when the input was empty.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
