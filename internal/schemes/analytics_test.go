package schemes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fra-atlas/claims-tracker/constants"
	"github.com/fra-atlas/claims-tracker/internal/entity"
)

func TestRecommendationsOrder(t *testing.T) {
	e := NewEngine()

	individuals := []*entity.IndividualClaim{
		individual(numPtr(2.5), numPtr(95000), constants.StatusPending),
	}
	villages := []*entity.VillageClaim{
		{ClaimID: "vil-1", Status: constants.StatusPending},
	}
	forests := []*entity.ForestClaim{
		{ClaimID: "for-1", Status: constants.StatusApproved},
	}

	recs := e.Recommendations(individuals, villages, forests)
	require.Len(t, recs, 3)
	assert.Equal(t, constants.CategoryIndividual, recs[0].ClaimType)
	assert.Equal(t, constants.CategoryVillage, recs[1].ClaimType)
	assert.Equal(t, constants.CategoryForest, recs[2].ClaimType)
}

func TestAnalytics(t *testing.T) {
	e := NewEngine()

	individuals := []*entity.IndividualClaim{
		individual(numPtr(2.5), numPtr(95000), constants.StatusPending),
		{
			ClaimID: "ind-2",
			State:   strPtr("MADHYA PRADESH"),
			Status:  constants.StatusApproved,
		},
	}
	villages := []*entity.VillageClaim{
		{
			ClaimID:         "vil-1",
			State:           strPtr("ODISHA"),
			ResourcesRights: strPtr("water body"),
			Status:          constants.StatusPending,
		},
	}
	forests := []*entity.ForestClaim{
		{ClaimID: "for-1", Status: constants.StatusApproved},
	}

	s := e.Analytics(individuals, villages, forests)

	assert.Equal(t, 2, s.ClaimsByType[string(constants.CategoryIndividual)])
	assert.Equal(t, 1, s.ClaimsByType[string(constants.CategoryVillage)])
	assert.Equal(t, 1, s.ClaimsByType[string(constants.CategoryForest)])
	assert.Equal(t, 4, s.ClaimsByType["Total"])
	assert.Equal(t, 4, s.TotalRecommendations)

	// ind-1 (pm-kisan, jal jeevan, mgnrega) + vil-1 (jal jeevan, mgnrega) +
	// for-1 (dajgua)
	assert.Equal(t, 1, s.SchemeEligibility[constants.SchemePMKisan])
	assert.Equal(t, 2, s.SchemeEligibility[constants.SchemeJalJeevan])
	assert.Equal(t, 2, s.SchemeEligibility[constants.SchemeMGNREGA])
	assert.Equal(t, 1, s.SchemeEligibility[constants.SchemeDAJGUA])

	assert.Equal(t, 2, s.StateDistribution["MADHYA PRADESH"])
	assert.Equal(t, 1, s.StateDistribution["ODISHA"])

	assert.Equal(t, 2, s.StatusSummary[string(constants.StatusPending)])
	assert.Equal(t, 2, s.StatusSummary[string(constants.StatusApproved)])
}

func TestAnalyticsEmpty(t *testing.T) {
	e := NewEngine()
	s := e.Analytics(nil, nil, nil)

	assert.Equal(t, 0, s.ClaimsByType["Total"])
	assert.Equal(t, 0, s.TotalRecommendations)
	// every scheme key is present even with nothing eligible
	for _, scheme := range constants.AllSchemes() {
		_, ok := s.SchemeEligibility[scheme]
		assert.True(t, ok, "missing scheme key %s", scheme)
	}
}

func TestAnalyticsBlankStatusCountsAsPending(t *testing.T) {
	e := NewEngine()
	s := e.Analytics([]*entity.IndividualClaim{{ClaimID: "ind-1"}}, nil, nil)
	assert.Equal(t, 1, s.StatusSummary[string(constants.StatusPending)])
}
