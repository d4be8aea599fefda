// Package entity holds the persisted claim shapes for data transfer between
// layers. Optional fields are pointers; Status is always set.
package entity

import (
	"time"

	"github.com/fra-atlas/claims-tracker/constants"
	"github.com/fra-atlas/claims-tracker/internal/fields"
)

// IndividualClaim is a row in individual_forms (IFR claims).
type IndividualClaim struct {
	ClaimID       string                `json:"claim_id"`
	ClaimantName  string                `json:"claimant_name"`
	Address       *string               `json:"address,omitempty"`
	Village       *string               `json:"village,omitempty"`
	LandNo        *string               `json:"land_no,omitempty"`
	GramPanchayat *string               `json:"gram_panchayat,omitempty"`
	Taluka        *string               `json:"taluka,omitempty"`
	District      *string               `json:"district,omitempty"`
	State         *string               `json:"state,omitempty"`
	Area          *float64              `json:"area,omitempty"`
	Income        *float64              `json:"income,omitempty"`
	ForestNear    *string               `json:"forest_near,omitempty"`
	AadharNumber  *string               `json:"aadhar_number,omitempty"`
	Status        constants.ClaimStatus `json:"status"`
	CreatedAt     time.Time             `json:"created_at"`
}

// VillageClaim is a row in village_form (CFR claims).
type VillageClaim struct {
	ClaimID         string                `json:"claim_id"`
	ClaimantName    string                `json:"claimant_name"`
	Village         *string               `json:"village,omitempty"`
	GramPanchayat   *string               `json:"gram_panchayat,omitempty"`
	Taluka          *string               `json:"taluka,omitempty"`
	District        *string               `json:"district,omitempty"`
	State           *string               `json:"state,omitempty"`
	VillageNo       *string               `json:"village_no,omitempty"`
	ResourcesRights *string               `json:"resources_rights,omitempty"`
	Status          constants.ClaimStatus `json:"status"`
	CreatedAt       time.Time             `json:"created_at"`
}

// ForestClaim is a row in forest_form (CR claims).
type ForestClaim struct {
	ClaimID       string                `json:"claim_id"`
	ClaimantName  string                `json:"claimant_name"`
	Village       *string               `json:"village,omitempty"`
	GramPanchayat *string               `json:"gram_panchayat,omitempty"`
	Taluka        *string               `json:"taluka,omitempty"`
	Forest        *string               `json:"forest,omitempty"`
	District      *string               `json:"district,omitempty"`
	State         *string               `json:"state,omitempty"`
	ForestNo      *string               `json:"forest_no,omitempty"`
	Resource      *string               `json:"resource,omitempty"`
	Status        constants.ClaimStatus `json:"status"`
	CreatedAt     time.Time             `json:"created_at"`
}

func strField(rec *fields.Record, name string) *string {
	if v, ok := rec.Str(name); ok {
		return &v
	}
	return nil
}

func strOrEmpty(rec *fields.Record, name string) string {
	v, _ := rec.Str(name)
	return v
}

func numField(rec *fields.Record, name string) *float64 {
	if v, ok := rec.Num(name); ok {
		return &v
	}
	return nil
}

// IndividualFromRecord builds an entity from an extracted record. The claim
// id comes from the storage layer, never from extraction.
func IndividualFromRecord(claimID string, rec *fields.Record, createdAt time.Time) *IndividualClaim {
	return &IndividualClaim{
		ClaimID:       claimID,
		ClaimantName:  strOrEmpty(rec, fields.FieldClaimantName),
		Address:       strField(rec, fields.FieldAddress),
		Village:       strField(rec, fields.FieldVillage),
		LandNo:        strField(rec, fields.FieldLandNo),
		GramPanchayat: strField(rec, fields.FieldGramPanchayat),
		Taluka:        strField(rec, fields.FieldTaluka),
		District:      strField(rec, fields.FieldDistrict),
		State:         strField(rec, fields.FieldState),
		Area:          numField(rec, fields.FieldArea),
		Income:        numField(rec, fields.FieldIncome),
		ForestNear:    strField(rec, fields.FieldForestNear),
		AadharNumber:  strField(rec, fields.FieldAadharNumber),
		Status:        rec.Status(),
		CreatedAt:     createdAt,
	}
}

func VillageFromRecord(claimID string, rec *fields.Record, createdAt time.Time) *VillageClaim {
	return &VillageClaim{
		ClaimID:         claimID,
		ClaimantName:    strOrEmpty(rec, fields.FieldClaimantName),
		Village:         strField(rec, fields.FieldVillage),
		GramPanchayat:   strField(rec, fields.FieldGramPanchayat),
		Taluka:          strField(rec, fields.FieldTaluka),
		District:        strField(rec, fields.FieldDistrict),
		State:           strField(rec, fields.FieldState),
		VillageNo:       strField(rec, fields.FieldVillageNo),
		ResourcesRights: strField(rec, fields.FieldResourcesRights),
		Status:          rec.Status(),
		CreatedAt:       createdAt,
	}
}

func ForestFromRecord(claimID string, rec *fields.Record, createdAt time.Time) *ForestClaim {
	return &ForestClaim{
		ClaimID:       claimID,
		ClaimantName:  strOrEmpty(rec, fields.FieldClaimantName),
		Village:       strField(rec, fields.FieldVillage),
		GramPanchayat: strField(rec, fields.FieldGramPanchayat),
		Taluka:        strField(rec, fields.FieldTaluka),
		Forest:        strField(rec, fields.FieldForest),
		District:      strField(rec, fields.FieldDistrict),
		State:         strField(rec, fields.FieldState),
		ForestNo:      strField(rec, fields.FieldForestNo),
		Resource:      strField(rec, fields.FieldResource),
		Status:        rec.Status(),
		CreatedAt:     createdAt,
	}
}
