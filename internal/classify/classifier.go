// Package classify decides which known form template a block of extracted
// text belongs to.
package classify

import (
	"strings"

	"github.com/fra-atlas/claims-tracker/constants"
	"github.com/fra-atlas/claims-tracker/internal/templates"
)

// Result is a successful classification.
type Result struct {
	Category constants.FormCategory
	Title    string
}

type Classifier struct {
	registry *templates.Registry
}

func NewClassifier(registry *templates.Registry) *Classifier {
	return &Classifier{registry: registry}
}

// Classify upper-cases the text once and tests substring containment of each
// registered title, in registry order. First match wins; if a document's
// text contains titles from two templates, registration order decides.
// No match returns (Result{Category: Unrecognized}, false), a valid
// terminal outcome rather than an error.
func (c *Classifier) Classify(text string) (Result, bool) {
	upper := strings.ToUpper(text)
	for _, t := range c.registry.Templates() {
		for _, title := range t.Titles {
			if strings.Contains(upper, strings.ToUpper(title)) {
				return Result{Category: t.Category, Title: title}, true
			}
		}
	}
	return Result{Category: constants.CategoryUnrecognized}, false
}
