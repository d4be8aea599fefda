// Package templates holds the form template registry: for each document
// category, the set of recognized title strings and the title→status lookup.
// Constructed once at startup and read-only thereafter.
package templates

import "github.com/fra-atlas/claims-tracker/constants"

// Template describes one known form category.
type Template struct {
	Category      constants.FormCategory
	Titles        []string
	StatusByTitle map[string]constants.ClaimStatus
}

// Registry is an ordered collection of templates. Order matters: the
// classifier tries templates in registration order and the first title hit
// wins.
type Registry struct {
	templates []Template
}

func NewRegistry(templates ...Template) *Registry {
	return &Registry{templates: templates}
}

// Templates returns the templates in registration order.
func (r *Registry) Templates() []Template {
	return r.templates
}

// StatusFor looks up the status mapped to a matched title. A title without a
// mapping yields the Unknown sentinel, never an absent status.
func (r *Registry) StatusFor(category constants.FormCategory, title string) constants.ClaimStatus {
	for _, t := range r.templates {
		if t.Category != category {
			continue
		}
		if status, ok := t.StatusByTitle[title]; ok {
			return status
		}
	}
	return constants.StatusUnknown
}

// DefaultRegistry returns the registry of known FRA form templates. The
// misspelled variants ("FOIREST", "COMMMUNITY") are deliberate: they are
// recurring OCR readings of the printed titles.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Template{
			Category: constants.CategoryIndividual,
			Titles: []string{
				"CLAIM FORM FOR RIGHTS TO FOIREST LAND",
				"CLAIM FORM FOR RIGHTS TO FOREST LAND",
				"TITLE FOR FOREST LAND UNDER OCCUPATION",
			},
			StatusByTitle: map[string]constants.ClaimStatus{
				"CLAIM FORM FOR RIGHTS TO FOIREST LAND":  constants.StatusPending,
				"CLAIM FORM FOR RIGHTS TO FOREST LAND":   constants.StatusPending,
				"TITLE FOR FOREST LAND UNDER OCCUPATION": constants.StatusApproved,
			},
		},
		Template{
			Category: constants.CategoryForest,
			Titles: []string{
				"CLAIM FORM FOR COMMUNITY RIGHTS",
				"TITLE TO COMMMUNITY FOREST RIGHTS",
				"TITLE TO COMMUNITY FOREST RIGHTS",
			},
			StatusByTitle: map[string]constants.ClaimStatus{
				"CLAIM FORM FOR COMMUNITY RIGHTS":   constants.StatusPending,
				"TITLE TO COMMMUNITY FOREST RIGHTS": constants.StatusApproved,
				"TITLE TO COMMUNITY FOREST RIGHTS":  constants.StatusApproved,
			},
		},
		Template{
			Category: constants.CategoryVillage,
			Titles: []string{
				"CLAIM FORM FOR RIGHTS TO COMMUNITY FOREST RESOURCE",
				"TITLE TO COMMUNITY FOREST RESOURCES",
			},
			StatusByTitle: map[string]constants.ClaimStatus{
				"CLAIM FORM FOR RIGHTS TO COMMUNITY FOREST RESOURCE": constants.StatusPending,
				"TITLE TO COMMUNITY FOREST RESOURCES":                constants.StatusApproved,
			},
		},
	)
}
