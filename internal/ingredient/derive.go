package ingredient

import (
	"sort"
	"strings"
)

// MenuText is the free-text surface of one menu item.
type MenuText struct {
	Name        string
	Description string
}

// DeriveFromMenu is the pure menu -> ingredient set function: it scans
// menu item names and descriptions for vocabulary ingredient names.
// Matching is case-insensitive on word boundaries, so "fried rice"
// yields rice but "price list" does not.
func DeriveFromMenu(items []MenuText, vocab []Ingredient) []Ingredient {
	var texts []string
	for _, item := range items {
		texts = append(texts, strings.ToLower(item.Name+" "+item.Description))
	}

	seen := make(map[string]bool)
	var out []Ingredient

	for _, ing := range vocab {
		name := strings.ToLower(ing.Name)
		for _, text := range texts {
			if containsWord(text, name) {
				if !seen[ing.ID] {
					seen[ing.ID] = true
					out = append(out, ing)
				}
				break
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// containsWord reports whether word occurs in text with non-letter
// characters (or string edges) on both sides. word may contain spaces.
func containsWord(text, word string) bool {
	for start := 0; ; {
		idx := strings.Index(text[start:], word)
		if idx < 0 {
			return false
		}
		idx += start

		before := idx == 0 || !isLetter(text[idx-1])
		afterIdx := idx + len(word)
		after := afterIdx == len(text) || !isLetter(text[afterIdx])
		if before && after {
			return true
		}
		start = idx + 1
	}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
