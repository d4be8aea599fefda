// Package patterns holds the field pattern library: for each logical field
// name, an ordered list of line-anchored label rules. Rules are plain data
// compiled to regexps once at construction; the library is read-only after
// that and safe for concurrent use.
package patterns

import "regexp"

// RuleKind selects how a label anchors to a line.
type RuleKind int

const (
	// LabelRule matches lines of the form "<label>: <value>".
	LabelRule RuleKind = iota
	// NumberedLabelRule matches lines of the form "3) <label>: <value>".
	NumberedLabelRule
)

// Rule is one text-matching rule for a field. Label is a regexp fragment
// (already lower-case; matched against lower-cased text).
type Rule struct {
	Kind  RuleKind
	Label string
}

func (r Rule) compile() *regexp.Regexp {
	expr := r.Label + `\s*:\s*(.+)`
	if r.Kind == NumberedLabelRule {
		expr = `\d+\)\s*` + expr
	}
	return regexp.MustCompile(expr)
}

// CompiledRule is a Rule plus its compiled expression.
type CompiledRule struct {
	Rule
	re *regexp.Regexp
}

// FindValue returns the raw value capture of the first line this rule
// matches. The caller is responsible for cleanup and placeholder rejection.
func (r CompiledRule) FindValue(text string) (string, bool) {
	m := r.re.FindStringSubmatch(text)
	if len(m) < 2 || m[1] == "" {
		return "", false
	}
	return m[1], true
}

// Library maps field names to their ordered rule lists.
type Library struct {
	rules map[string][]CompiledRule
}

func NewLibrary() *Library {
	return &Library{rules: make(map[string][]CompiledRule)}
}

// Register appends rules for a field, preserving order.
func (l *Library) Register(field string, rules ...Rule) {
	for _, r := range rules {
		l.rules[field] = append(l.rules[field], CompiledRule{Rule: r, re: r.compile()})
	}
}

// Rules returns the ordered rules for a field, or nil if none are
// registered. An unregistered field is not an error: extraction for it
// simply yields absent.
func (l *Library) Rules(field string) []CompiledRule {
	return l.rules[field]
}

// labeled registers the standard rule pair for a label expression: the bare
// label line and its numbered variant, in that order.
func labeled(l *Library, field, labelExpr string) {
	l.Register(field,
		Rule{Kind: LabelRule, Label: labelExpr},
		Rule{Kind: NumberedLabelRule, Label: labelExpr},
	)
}

// DefaultLibrary returns the pattern library for the known FRA form fields.
func DefaultLibrary() *Library {
	l := NewLibrary()
	labeled(l, "claimant_name", `claimant\s*name`)
	labeled(l, "address", `address`)
	labeled(l, "village", `village`)
	labeled(l, "land_no", `land\s*no`)
	labeled(l, "gram_panchayat", `gram\s*panchayat`)
	labeled(l, "taluka", `taluka`)
	labeled(l, "district", `district`)
	labeled(l, "state", `state`)
	labeled(l, "area", `area`)
	labeled(l, "income", `income`)
	labeled(l, "forest_near", `forest\s*present\s*near`)
	// tolerate common OCR misspellings of "aadhar"
	labeled(l, "aadhar_number", `aa*dha*a*r\s*number`)
	labeled(l, "forest", `forest`)
	labeled(l, "forest_no", `forest\s*no`)
	labeled(l, "resource", `resource`)
	labeled(l, "village_no", `village\s*no`)
	// same label as "resource"; the two fields belong to disjoint categories
	labeled(l, "resources_rights", `resource`)
	return l
}
