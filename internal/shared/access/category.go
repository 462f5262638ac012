package access

import "strings"

// Category is one of the fixed artwork mediums that scope judge visibility
// and partition rankings.
type Category string

const (
	CategoryPhotography     Category = "Photography"
	CategoryPaintings       Category = "Paintings"
	CategoryDigitalPainting Category = "Digital Painting"
	CategoryDrawing         Category = "Drawing"
)

// Categories returns the fixed category set in display order. The returned
// slice is a fresh copy.
func Categories() []Category {
	return []Category{
		CategoryPhotography,
		CategoryPaintings,
		CategoryDigitalPainting,
		CategoryDrawing,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryPhotography, CategoryPaintings, CategoryDigitalPainting, CategoryDrawing:
		return true
	default:
		return false
	}
}

// ParseCategory trims the raw value and matches it exactly against the set.
func ParseCategory(raw string) (Category, bool) {
	category := Category(strings.TrimSpace(raw))
	if !category.Valid() {
		return "", false
	}
	return category, true
}

// NormalizeCategories parses, validates and deduplicates a category list while
// keeping first-seen order. The bool is false when any value is invalid.
func NormalizeCategories(raw []string) ([]Category, bool) {
	seen := make(map[Category]struct{}, len(raw))
	out := make([]Category, 0, len(raw))
	for _, value := range raw {
		category, ok := ParseCategory(value)
		if !ok {
			return nil, false
		}
		if _, exists := seen[category]; exists {
			continue
		}
		seen[category] = struct{}{}
		out = append(out, category)
	}
	return out, true
}

func CategoryStrings(categories []Category) []string {
	out := make([]string, 0, len(categories))
	for _, category := range categories {
		out = append(out, string(category))
	}
	return out
}
