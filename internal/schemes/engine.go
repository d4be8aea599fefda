// Package schemes is the rule-based scheme-eligibility engine. It evaluates
// stored claim records against fixed per-category decision tables and is a
// pure function of its input: no clock, no randomness, no hidden state, so
// re-evaluating the same record always yields the same recommendation.
package schemes

import (
	"fmt"
	"strings"

	"github.com/fra-atlas/claims-tracker/constants"
	"github.com/fra-atlas/claims-tracker/internal/entity"
)

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Recommendation is a derived view over one claim record. It is recomputed
// on demand and never persisted.
type Recommendation struct {
	ClaimID      string                 `json:"claim_id"`
	ClaimantName string                 `json:"claimant_name"`
	ClaimType    constants.FormCategory `json:"claim_type"`
	Village      *string                `json:"village,omitempty"`
	District     *string                `json:"district,omitempty"`
	State        *string                `json:"state,omitempty"`
	Status       constants.ClaimStatus  `json:"status,omitempty"`
	Schemes      []constants.Scheme     `json:"recommended_schemes"`
	Reasons      []string               `json:"eligibility_reasons"`
	// Primary is the lowest-rank triggered scheme, or "" when nothing
	// triggered.
	Primary constants.Scheme `json:"primary_scheme,omitempty"`
}

// Eligible reports whether any scheme triggered.
func (r Recommendation) Eligible() bool {
	return len(r.Schemes) > 0
}

// Per-category priority ranks; lower rank wins the primary slot.
var (
	individualRank = map[constants.Scheme]int{
		constants.SchemePMKisan:   1,
		constants.SchemeJalJeevan: 2,
		constants.SchemeMGNREGA:   3,
	}
	villageRank = map[constants.Scheme]int{
		constants.SchemeJalJeevan: 1,
		constants.SchemeMGNREGA:   2,
	}
	forestRank = map[constants.Scheme]int{
		constants.SchemeDAJGUA: 1,
	}
)

type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate produces a recommendation for exactly one claim record; the other
// two arguments must be nil. All-nil input yields the explicit empty
// recommendation, never an error.
func (e *Engine) Evaluate(individual *entity.IndividualClaim, village *entity.VillageClaim, forest *entity.ForestClaim) Recommendation {
	switch {
	case individual != nil:
		return e.EvaluateIndividual(individual)
	case village != nil:
		return e.EvaluateVillage(village)
	case forest != nil:
		return e.EvaluateForest(forest)
	default:
		return Recommendation{
			ClaimType: constants.CategoryIndividual,
			Schemes:   []constants.Scheme{},
			Reasons:   []string{},
		}
	}
}

func (e *Engine) EvaluateIndividual(c *entity.IndividualClaim) Recommendation {
	t := newTriggers()

	// PM-KISAN: smallholder with cultivable land above one acre and income
	// within the ceiling. Strictly > 1.0; income ceiling inclusive.
	if c.Area != nil && *c.Area > 1.0 && c.Income != nil && *c.Income <= 200000 {
		t.add(constants.SchemePMKisan,
			fmt.Sprintf("Cultivable land > 1.0 acre (%g acres) and income <= Rs.2,00,000", *c.Area))
	}

	// Jal Jeevan Mission: pending claims imply no tap water connection yet.
	if c.Status == constants.StatusPending {
		t.add(constants.SchemeJalJeevan, "No tap water connection (status: Pending)")
	}

	// MGNREGA: low income or recorded unemployment, independently evaluated.
	if c.Income != nil && *c.Income <= 120000 {
		t.add(constants.SchemeMGNREGA,
			fmt.Sprintf("Low income <= Rs.1,20,000 (Rs.%g)", *c.Income))
	}
	if c.Status == constants.StatusUnemployed {
		t.add(constants.SchemeMGNREGA, "Employment status: Unemployed")
	}

	return Recommendation{
		ClaimID:      c.ClaimID,
		ClaimantName: c.ClaimantName,
		ClaimType:    constants.CategoryIndividual,
		Village:      c.Village,
		District:     c.District,
		State:        c.State,
		Status:       c.Status,
		Schemes:      t.schemes,
		Reasons:      t.reasons,
		Primary:      t.primary(individualRank),
	}
}

func (e *Engine) EvaluateVillage(c *entity.VillageClaim) Recommendation {
	t := newTriggers()

	if c.ResourcesRights != nil && containsFold(*c.ResourcesRights, "water") {
		t.add(constants.SchemeJalJeevan, "Village has water resource rights")
	}

	if c.Status == constants.StatusUnemployed || c.Status == constants.StatusPending {
		t.add(constants.SchemeMGNREGA,
			fmt.Sprintf("Village employment status: %s", c.Status))
	}

	return Recommendation{
		ClaimID:      c.ClaimID,
		ClaimantName: c.ClaimantName,
		ClaimType:    constants.CategoryVillage,
		Village:      c.Village,
		District:     c.District,
		State:        c.State,
		Status:       c.Status,
		Schemes:      t.schemes,
		Reasons:      t.reasons,
		Primary:      t.primary(villageRank),
	}
}

func (e *Engine) EvaluateForest(c *entity.ForestClaim) Recommendation {
	t := newTriggers()

	if c.Status == constants.StatusApproved {
		t.add(constants.SchemeDAJGUA, "Forest rights approved for community resource management")
	}

	return Recommendation{
		ClaimID:      c.ClaimID,
		ClaimantName: c.ClaimantName,
		ClaimType:    constants.CategoryForest,
		Village:      c.Village,
		District:     c.District,
		State:        c.State,
		Status:       c.Status,
		Schemes:      t.schemes,
		Reasons:      t.reasons,
		Primary:      t.primary(forestRank),
	}
}

// triggers collects triggered schemes de-duplicated in first-trigger order,
// with one reason per trigger (a scheme triggered twice keeps both reasons).
type triggers struct {
	schemes []constants.Scheme
	reasons []string
	seen    map[constants.Scheme]bool
}

func newTriggers() *triggers {
	return &triggers{
		schemes: []constants.Scheme{},
		reasons: []string{},
		seen:    make(map[constants.Scheme]bool),
	}
}

func (t *triggers) add(s constants.Scheme, reason string) {
	if !t.seen[s] {
		t.seen[s] = true
		t.schemes = append(t.schemes, s)
	}
	t.reasons = append(t.reasons, reason)
}

func (t *triggers) primary(rank map[constants.Scheme]int) constants.Scheme {
	var best constants.Scheme
	bestRank := 0
	for _, s := range t.schemes {
		r, ok := rank[s]
		if !ok {
			continue
		}
		if best == "" || r < bestRank {
			best = s
			bestRank = r
		}
	}
	return best
}
