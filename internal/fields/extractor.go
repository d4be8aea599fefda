// Package fields turns classified extracted text into a normalized record:
// typed values, canonical casing, derived status.
package fields

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/fra-atlas/claims-tracker/constants"
	"github.com/fra-atlas/claims-tracker/internal/patterns"
	"github.com/fra-atlas/claims-tracker/internal/templates"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	trailingPunct = regexp.MustCompile(`[.,;]+$`)
	placeholder   = regexp.MustCompile(`^_+$`)
	numberRun     = regexp.MustCompile(`[\d.]+`)
)

type Extractor struct {
	library  *patterns.Library
	registry *templates.Registry
	log      *slog.Logger
}

func NewExtractor(library *patterns.Library, registry *templates.Registry, log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{library: library, registry: registry, log: log}
}

// Extract produces a normalized record for a classified document. It is
// total: a field whose patterns never match is simply absent, and the status
// field is always set (Unknown when the title carries no mapping).
func (e *Extractor) Extract(text string, category constants.FormCategory, title string) *Record {
	lower := strings.ToLower(text)

	rec := &Record{
		Category:  category,
		FormTitle: title,
		Fields:    make(map[string]any),
	}

	for _, name := range FieldsFor(category) {
		value, ok := e.fieldValue(lower, name)
		if !ok {
			continue
		}
		if numericFields[name] {
			if n, ok := coerceNumeric(value); ok {
				rec.Fields[name] = n
			}
			continue
		}
		if uppercaseFields[name] {
			value = strings.ToUpper(value)
		}
		rec.Fields[name] = value
	}

	rec.Fields[FieldStatus] = string(e.registry.StatusFor(category, title))

	e.log.Debug("fields.extract.ok",
		"category", category,
		"title", title,
		"fields", len(rec.Fields),
	)
	return rec
}

// fieldValue applies the field's patterns in order until one yields a
// candidate that survives cleanup. Exhausting the patterns means absent.
func (e *Extractor) fieldValue(lowerText, name string) (string, bool) {
	for _, rule := range e.library.Rules(name) {
		raw, ok := rule.FindValue(lowerText)
		if !ok {
			continue
		}
		value := cleanValue(raw)
		if value == "" || placeholder.MatchString(value) {
			continue
		}
		return value, true
	}
	return "", false
}

// cleanValue trims, collapses internal whitespace runs, and strips trailing
// punctuation.
func cleanValue(raw string) string {
	value := strings.TrimSpace(raw)
	value = whitespaceRun.ReplaceAllString(value, " ")
	value = trailingPunct.ReplaceAllString(value, "")
	return strings.TrimSpace(value)
}

// coerceNumeric parses the first digits-and-decimal-point run that yields a
// number; runs like the "." in "rs. 95000" are skipped. No parseable run
// means the field is absent, never zero or NaN.
func coerceNumeric(value string) (float64, bool) {
	for _, run := range numberRun.FindAllString(value, -1) {
		if n, err := strconv.ParseFloat(run, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}
