package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fra-atlas/claims-tracker/constants"
)

func TestDefaultRegistryOrder(t *testing.T) {
	r := DefaultRegistry()
	ts := r.Templates()
	require.Len(t, ts, 3)

	assert.Equal(t, constants.CategoryIndividual, ts[0].Category)
	assert.Equal(t, constants.CategoryForest, ts[1].Category)
	assert.Equal(t, constants.CategoryVillage, ts[2].Category)
}

func TestStatusFor(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		name     string
		category constants.FormCategory
		title    string
		want     constants.ClaimStatus
	}{
		{
			name:     "individual claim form is pending",
			category: constants.CategoryIndividual,
			title:    "CLAIM FORM FOR RIGHTS TO FOREST LAND",
			want:     constants.StatusPending,
		},
		{
			name:     "individual misspelled claim form is pending",
			category: constants.CategoryIndividual,
			title:    "CLAIM FORM FOR RIGHTS TO FOIREST LAND",
			want:     constants.StatusPending,
		},
		{
			name:     "individual title is approved",
			category: constants.CategoryIndividual,
			title:    "TITLE FOR FOREST LAND UNDER OCCUPATION",
			want:     constants.StatusApproved,
		},
		{
			name:     "forest claim form is pending",
			category: constants.CategoryForest,
			title:    "CLAIM FORM FOR COMMUNITY RIGHTS",
			want:     constants.StatusPending,
		},
		{
			name:     "forest misspelled title is approved",
			category: constants.CategoryForest,
			title:    "TITLE TO COMMMUNITY FOREST RIGHTS",
			want:     constants.StatusApproved,
		},
		{
			name:     "village title is approved",
			category: constants.CategoryVillage,
			title:    "TITLE TO COMMUNITY FOREST RESOURCES",
			want:     constants.StatusApproved,
		},
		{
			name:     "unmapped title yields unknown",
			category: constants.CategoryIndividual,
			title:    "SOME OTHER TITLE",
			want:     constants.StatusUnknown,
		},
		{
			name:     "title looked up under wrong category yields unknown",
			category: constants.CategoryVillage,
			title:    "CLAIM FORM FOR RIGHTS TO FOREST LAND",
			want:     constants.StatusUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.StatusFor(tt.category, tt.title))
		})
	}
}
