package fields

import "github.com/fra-atlas/claims-tracker/constants"

// Canonical field names. These double as table column names and JSON keys.
const (
	FieldClaimantName    = "claimant_name"
	FieldAddress         = "address"
	FieldVillage         = "village"
	FieldLandNo          = "land_no"
	FieldGramPanchayat   = "gram_panchayat"
	FieldTaluka          = "taluka"
	FieldDistrict        = "district"
	FieldState           = "state"
	FieldArea            = "area"
	FieldIncome          = "income"
	FieldForestNear      = "forest_near"
	FieldAadharNumber    = "aadhar_number"
	FieldForest          = "forest"
	FieldForestNo        = "forest_no"
	FieldResource        = "resource"
	FieldVillageNo       = "village_no"
	FieldResourcesRights = "resources_rights"
	FieldStatus          = "status"
)

// sharedFields are extracted for every category.
var sharedFields = []string{
	FieldClaimantName,
	FieldVillage,
	FieldGramPanchayat,
	FieldTaluka,
	FieldDistrict,
	FieldState,
}

// categoryFields are the extra fields per category. A field outside the
// active category's set never appears in the output record.
var categoryFields = map[constants.FormCategory][]string{
	constants.CategoryIndividual: {
		FieldAddress,
		FieldLandNo,
		FieldArea,
		FieldIncome,
		FieldForestNear,
		FieldAadharNumber,
	},
	constants.CategoryVillage: {
		FieldVillageNo,
		FieldResourcesRights,
	},
	constants.CategoryForest: {
		FieldForest,
		FieldForestNo,
		FieldResource,
	},
}

// numericFields are coerced to float64 or dropped.
var numericFields = map[string]bool{
	FieldArea:   true,
	FieldIncome: true,
}

// uppercaseFields are upper-cased when present.
var uppercaseFields = map[string]bool{
	FieldDistrict: true,
	FieldVillage:  true,
	FieldState:    true,
	FieldForest:   true,
}

// FieldsFor returns the full extraction field set for a category, shared
// fields first.
func FieldsFor(category constants.FormCategory) []string {
	out := make([]string, 0, len(sharedFields)+len(categoryFields[category]))
	out = append(out, sharedFields...)
	out = append(out, categoryFields[category]...)
	return out
}

// Record is the normalized result of extracting one classified document.
// Fields maps field name to string or float64; the status field is always
// present. The claim identifier is assigned at persistence time, not here.
type Record struct {
	Category  constants.FormCategory `json:"category"`
	FormTitle string                 `json:"form_title"`
	Fields    map[string]any         `json:"fields"`
}

// Str returns a string field, or ("", false) when absent or non-string.
func (r *Record) Str(name string) (string, bool) {
	v, ok := r.Fields[name].(string)
	return v, ok
}

// Num returns a numeric field, or (0, false) when absent.
func (r *Record) Num(name string) (float64, bool) {
	v, ok := r.Fields[name].(float64)
	return v, ok
}

// Status returns the derived status. It is always present; Unknown is the
// absent-mapping sentinel.
func (r *Record) Status() constants.ClaimStatus {
	if s, ok := r.Str(FieldStatus); ok {
		return constants.ClaimStatus(s)
	}
	return constants.StatusUnknown
}
