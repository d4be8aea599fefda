package schemes

import (
	"github.com/fra-atlas/claims-tracker/constants"
	"github.com/fra-atlas/claims-tracker/internal/entity"
)

// Summary is the dashboard rollup over all stored claims.
type Summary struct {
	ClaimsByType         map[string]int           `json:"claims_by_type"`
	SchemeEligibility    map[constants.Scheme]int `json:"scheme_eligibility"`
	StateDistribution    map[string]int           `json:"state_distribution"`
	StatusSummary        map[string]int           `json:"status_summary"`
	TotalRecommendations int                      `json:"total_recommendations"`
}

// Recommendations evaluates every claim, individual forms first, then
// village, then forest.
func (e *Engine) Recommendations(individuals []*entity.IndividualClaim, villages []*entity.VillageClaim, forests []*entity.ForestClaim) []Recommendation {
	out := make([]Recommendation, 0, len(individuals)+len(villages)+len(forests))
	for _, c := range individuals {
		out = append(out, e.EvaluateIndividual(c))
	}
	for _, c := range villages {
		out = append(out, e.EvaluateVillage(c))
	}
	for _, c := range forests {
		out = append(out, e.EvaluateForest(c))
	}
	return out
}

// Analytics computes the claim and eligibility rollups for the dashboard.
func (e *Engine) Analytics(individuals []*entity.IndividualClaim, villages []*entity.VillageClaim, forests []*entity.ForestClaim) Summary {
	recommendations := e.Recommendations(individuals, villages, forests)

	claimsByType := map[string]int{
		string(constants.CategoryIndividual): len(individuals),
		string(constants.CategoryVillage):    len(villages),
		string(constants.CategoryForest):     len(forests),
		"Total":                              len(individuals) + len(villages) + len(forests),
	}

	schemeEligibility := make(map[constants.Scheme]int, 4)
	for _, s := range constants.AllSchemes() {
		schemeEligibility[s] = 0
	}
	for _, r := range recommendations {
		for _, s := range r.Schemes {
			schemeEligibility[s]++
		}
	}

	stateDistribution := make(map[string]int)
	statusSummary := make(map[string]int)
	countCommon := func(state *string, status constants.ClaimStatus) {
		if state != nil && *state != "" {
			stateDistribution[*state]++
		}
		if status == "" {
			status = constants.StatusPending
		}
		statusSummary[string(status)]++
	}
	for _, c := range individuals {
		countCommon(c.State, c.Status)
	}
	for _, c := range villages {
		countCommon(c.State, c.Status)
	}
	for _, c := range forests {
		countCommon(c.State, c.Status)
	}

	return Summary{
		ClaimsByType:         claimsByType,
		SchemeEligibility:    schemeEligibility,
		StateDistribution:    stateDistribution,
		StatusSummary:        statusSummary,
		TotalRecommendations: len(recommendations),
	}
}
