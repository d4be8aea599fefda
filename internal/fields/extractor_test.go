package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fra-atlas/claims-tracker/constants"
	"github.com/fra-atlas/claims-tracker/internal/patterns"
	"github.com/fra-atlas/claims-tracker/internal/templates"
)

func newTestExtractor() *Extractor {
	return NewExtractor(patterns.DefaultLibrary(), templates.DefaultRegistry(), nil)
}

const individualTitle = "CLAIM FORM FOR RIGHTS TO FOREST LAND"

func TestExtractIndividualForm(t *testing.T) {
	e := newTestExtractor()

	text := `CLAIM FORM FOR RIGHTS TO FOREST LAND
Claimant Name: Ram Singh
Address: Near Primary School
Village: Khairlanji
District: Balaghat
State: Madhya Pradesh
Area: 2.5 acres
Income: Rs. 95000 per year
Aadhar Number: 1234 5678 9012`

	rec := e.Extract(text, constants.CategoryIndividual, individualTitle)

	name, ok := rec.Str(FieldClaimantName)
	require.True(t, ok)
	assert.Equal(t, "ram singh", name)

	// district, village, state are canonicalized to upper case
	district, ok := rec.Str(FieldDistrict)
	require.True(t, ok)
	assert.Equal(t, "BALAGHAT", district)
	village, _ := rec.Str(FieldVillage)
	assert.Equal(t, "KHAIRLANJI", village)
	state, _ := rec.Str(FieldState)
	assert.Equal(t, "MADHYA PRADESH", state)

	area, ok := rec.Num(FieldArea)
	require.True(t, ok)
	assert.Equal(t, 2.5, area)

	income, ok := rec.Num(FieldIncome)
	require.True(t, ok)
	assert.Equal(t, 95000.0, income)

	aadhar, ok := rec.Str(FieldAadharNumber)
	require.True(t, ok)
	assert.Equal(t, "1234 5678 9012", aadhar)

	assert.Equal(t, constants.StatusPending, rec.Status())
}

func TestExtractValueCleanup(t *testing.T) {
	e := newTestExtractor()

	tests := []struct {
		name  string
		text  string
		field string
		want  string
		found bool
	}{
		{
			name:  "internal whitespace collapsed",
			text:  "claimant name: ram    kumar   singh",
			field: FieldClaimantName,
			want:  "ram kumar singh",
			found: true,
		},
		{
			name:  "trailing punctuation stripped",
			text:  "claimant name: ram singh.,;",
			field: FieldClaimantName,
			want:  "ram singh",
			found: true,
		},
		{
			name:  "underscore placeholder rejected",
			text:  "claimant name: ____",
			field: FieldClaimantName,
			found: false,
		},
		{
			name:  "value that cleans to empty rejected",
			text:  "claimant name: ...",
			field: FieldClaimantName,
			found: false,
		},
		{
			name:  "numbered line variant",
			text:  "2) claimant name: ram singh",
			field: FieldClaimantName,
			want:  "ram singh",
			found: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := e.Extract(tt.text, constants.CategoryIndividual, individualTitle)
			got, ok := rec.Str(tt.field)
			require.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExtractNumericCoercion(t *testing.T) {
	e := newTestExtractor()

	tests := []struct {
		name  string
		text  string
		want  float64
		found bool
	}{
		{name: "plain number", text: "area: 2.5", want: 2.5, found: true},
		{name: "number with unit suffix", text: "area: 3 acres", want: 3, found: true},
		{name: "number embedded after currency", text: "income: rs. 120000", want: 120000, found: true},
		{name: "currency prefix dot skipped", text: "area: rs. 2.5", want: 2.5, found: true},
		{name: "no digits at all", text: "area: two acres", found: false},
		{name: "no parseable run", text: "area: n/a", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := e.Extract(tt.text, constants.CategoryIndividual, individualTitle)
			got, ok := rec.Num(FieldArea)
			if !ok {
				got, ok = rec.Num(FieldIncome)
			}
			require.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// A category only ever yields its own field set, even when the text carries
// labels belonging to another category.
func TestExtractCategoryFieldIsolation(t *testing.T) {
	e := newTestExtractor()

	text := `CLAIM FORM FOR RIGHTS TO COMMUNITY FOREST RESOURCE
Village: Khairlanji
Village No: 42
Resource: water body and grazing land
Area: 2.5
Aadhar Number: 1234`

	rec := e.Extract(text, constants.CategoryVillage, "CLAIM FORM FOR RIGHTS TO COMMUNITY FOREST RESOURCE")

	_, hasArea := rec.Fields[FieldArea]
	assert.False(t, hasArea, "area belongs to individual forms only")
	_, hasAadhar := rec.Fields[FieldAadharNumber]
	assert.False(t, hasAadhar)

	villageNo, ok := rec.Str(FieldVillageNo)
	require.True(t, ok)
	assert.Equal(t, "42", villageNo)

	rights, ok := rec.Str(FieldResourcesRights)
	require.True(t, ok)
	assert.Equal(t, "water body and grazing land", rights)
}

func TestExtractStatusAlwaysPresent(t *testing.T) {
	e := newTestExtractor()

	rec := e.Extract("no labels here", constants.CategoryIndividual, "SOME UNMAPPED TITLE")
	assert.Equal(t, constants.StatusUnknown, rec.Status())

	rec = e.Extract("", constants.CategoryForest, "TITLE TO COMMUNITY FOREST RIGHTS")
	assert.Equal(t, constants.StatusApproved, rec.Status())
}
