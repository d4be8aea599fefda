package constants

import "strings"

// FormCategory identifies which known FRA form template a document matched.
type FormCategory string

const (
	CategoryIndividual   FormCategory = "Individual"
	CategoryVillage      FormCategory = "Village"
	CategoryForest       FormCategory = "Forest"
	CategoryUnrecognized FormCategory = "Unrecognized"
)

// allCategories lists the persistable categories.
var allCategories = []FormCategory{
	CategoryIndividual,
	CategoryForest,
	CategoryVillage,
}

// TableName maps a category to its persisted table.
// Unrecognized has no table and maps to "".
func (c FormCategory) TableName() string {
	switch c {
	case CategoryIndividual:
		return "individual_forms"
	case CategoryVillage:
		return "village_form"
	case CategoryForest:
		return "forest_form"
	default:
		return ""
	}
}

func AllCategories() []FormCategory {
	out := make([]FormCategory, len(allCategories))
	copy(out, allCategories)
	return out
}

// ParseCategory resolves user input ("individual", "Forest", "village_form")
// to a category.
func ParseCategory(input string) (FormCategory, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, c := range allCategories {
		if normalized == strings.ToLower(string(c)) || normalized == c.TableName() {
			return c, true
		}
	}
	return CategoryUnrecognized, false
}
