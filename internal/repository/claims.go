package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fra-atlas/claims-tracker/constants"
	"github.com/fra-atlas/claims-tracker/internal/common"
	"github.com/fra-atlas/claims-tracker/internal/entity"
	"github.com/fra-atlas/claims-tracker/internal/fields"
)

// ClaimRepository persists extracted records and reads claims back for
// eligibility evaluation. InsertRecord assigns the claim identifier; the
// extraction core never generates identifiers.
type ClaimRepository interface {
	InsertRecord(ctx context.Context, rec *fields.Record) (string, error)
	GetIndividual(ctx context.Context, claimID string) (*entity.IndividualClaim, error)
	GetVillage(ctx context.Context, claimID string) (*entity.VillageClaim, error)
	GetForest(ctx context.Context, claimID string) (*entity.ForestClaim, error)
	ListIndividual(ctx context.Context) ([]*entity.IndividualClaim, error)
	ListVillage(ctx context.Context) ([]*entity.VillageClaim, error)
	ListForest(ctx context.Context) ([]*entity.ForestClaim, error)
}

type claimRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewClaimRepository(db *sql.DB, logger *slog.Logger) ClaimRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &claimRepository{db: db, logger: logger}
}

// InsertRecord validates the record against its category schema, assigns a
// claim id, and inserts into the category-appropriate table.
func (r *claimRepository) InsertRecord(ctx context.Context, rec *fields.Record) (string, error) {
	if rec.Category.TableName() == "" {
		return "", common.NewAppError("INVALID_CATEGORY",
			fmt.Sprintf("category %q has no claim table", rec.Category), common.ErrInvalidInput)
	}
	if err := fields.ValidateRecord(rec); err != nil {
		return "", common.NewAppError("RECORD_INVALID", "record failed schema validation", err)
	}

	claimID := uuid.New().String()
	now := time.Now().UTC()

	var err error
	switch rec.Category {
	case constants.CategoryIndividual:
		c := entity.IndividualFromRecord(claimID, rec, now)
		_, err = r.db.ExecContext(ctx,
			`INSERT INTO individual_forms
				(claim_id, claimant_name, address, village, land_no, gram_panchayat,
				 taluka, district, state, area, income, forest_near, aadhar_number,
				 status, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
			c.ClaimID, c.ClaimantName, c.Address, c.Village, c.LandNo, c.GramPanchayat,
			c.Taluka, c.District, c.State, c.Area, c.Income, c.ForestNear, c.AadharNumber,
			string(c.Status), c.CreatedAt)
	case constants.CategoryVillage:
		c := entity.VillageFromRecord(claimID, rec, now)
		_, err = r.db.ExecContext(ctx,
			`INSERT INTO village_form
				(claim_id, claimant_name, village, gram_panchayat, taluka, district,
				 state, village_no, resources_rights, status, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			c.ClaimID, c.ClaimantName, c.Village, c.GramPanchayat, c.Taluka, c.District,
			c.State, c.VillageNo, c.ResourcesRights, string(c.Status), c.CreatedAt)
	case constants.CategoryForest:
		c := entity.ForestFromRecord(claimID, rec, now)
		_, err = r.db.ExecContext(ctx,
			`INSERT INTO forest_form
				(claim_id, claimant_name, village, gram_panchayat, taluka, forest,
				 district, state, forest_no, resource, status, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			c.ClaimID, c.ClaimantName, c.Village, c.GramPanchayat, c.Taluka, c.Forest,
			c.District, c.State, c.ForestNo, c.Resource, string(c.Status), c.CreatedAt)
	}
	if err != nil {
		r.logger.Error("failed to insert claim", "category", rec.Category, "error", err)
		return "", common.WrapError(err, "insert claim")
	}

	r.logger.Info("claim inserted", "claim_id", claimID, "category", rec.Category)
	return claimID, nil
}

const individualColumns = `claim_id, claimant_name, address, village, land_no, gram_panchayat,
	taluka, district, state, area, income, forest_near, aadhar_number, status, created_at`

func scanIndividual(row interface{ Scan(...any) error }) (*entity.IndividualClaim, error) {
	var (
		c         entity.IndividualClaim
		status    string
		createdAt sql.NullTime
	)
	var address, village, landNo, gramPanchayat, taluka, district, state, forestNear, aadhar sql.NullString
	var area, income sql.NullFloat64
	if err := row.Scan(&c.ClaimID, &c.ClaimantName, &address, &village, &landNo, &gramPanchayat,
		&taluka, &district, &state, &area, &income, &forestNear, &aadhar, &status, &createdAt); err != nil {
		return nil, err
	}
	c.Address = nullStr(address)
	c.Village = nullStr(village)
	c.LandNo = nullStr(landNo)
	c.GramPanchayat = nullStr(gramPanchayat)
	c.Taluka = nullStr(taluka)
	c.District = nullStr(district)
	c.State = nullStr(state)
	c.Area = nullFloat(area)
	c.Income = nullFloat(income)
	c.ForestNear = nullStr(forestNear)
	c.AadharNumber = nullStr(aadhar)
	c.Status = constants.ClaimStatus(status)
	c.CreatedAt = createdAt.Time
	return &c, nil
}

func (r *claimRepository) GetIndividual(ctx context.Context, claimID string) (*entity.IndividualClaim, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+individualColumns+` FROM individual_forms WHERE claim_id = $1`, claimID)
	c, err := scanIndividual(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	return c, err
}

func (r *claimRepository) ListIndividual(ctx context.Context) ([]*entity.IndividualClaim, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+individualColumns+` FROM individual_forms ORDER BY claim_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.IndividualClaim
	for rows.Next() {
		c, err := scanIndividual(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

const villageColumns = `claim_id, claimant_name, village, gram_panchayat, taluka, district,
	state, village_no, resources_rights, status, created_at`

func scanVillage(row interface{ Scan(...any) error }) (*entity.VillageClaim, error) {
	var (
		c         entity.VillageClaim
		status    string
		createdAt sql.NullTime
	)
	var village, gramPanchayat, taluka, district, state, villageNo, resourcesRights sql.NullString
	if err := row.Scan(&c.ClaimID, &c.ClaimantName, &village, &gramPanchayat, &taluka, &district,
		&state, &villageNo, &resourcesRights, &status, &createdAt); err != nil {
		return nil, err
	}
	c.Village = nullStr(village)
	c.GramPanchayat = nullStr(gramPanchayat)
	c.Taluka = nullStr(taluka)
	c.District = nullStr(district)
	c.State = nullStr(state)
	c.VillageNo = nullStr(villageNo)
	c.ResourcesRights = nullStr(resourcesRights)
	c.Status = constants.ClaimStatus(status)
	c.CreatedAt = createdAt.Time
	return &c, nil
}

func (r *claimRepository) GetVillage(ctx context.Context, claimID string) (*entity.VillageClaim, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+villageColumns+` FROM village_form WHERE claim_id = $1`, claimID)
	c, err := scanVillage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	return c, err
}

func (r *claimRepository) ListVillage(ctx context.Context) ([]*entity.VillageClaim, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+villageColumns+` FROM village_form ORDER BY claim_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.VillageClaim
	for rows.Next() {
		c, err := scanVillage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

const forestColumns = `claim_id, claimant_name, village, gram_panchayat, taluka, forest,
	district, state, forest_no, resource, status, created_at`

func scanForest(row interface{ Scan(...any) error }) (*entity.ForestClaim, error) {
	var (
		c         entity.ForestClaim
		status    string
		createdAt sql.NullTime
	)
	var village, gramPanchayat, taluka, forest, district, state, forestNo, resource sql.NullString
	if err := row.Scan(&c.ClaimID, &c.ClaimantName, &village, &gramPanchayat, &taluka, &forest,
		&district, &state, &forestNo, &resource, &status, &createdAt); err != nil {
		return nil, err
	}
	c.Village = nullStr(village)
	c.GramPanchayat = nullStr(gramPanchayat)
	c.Taluka = nullStr(taluka)
	c.Forest = nullStr(forest)
	c.District = nullStr(district)
	c.State = nullStr(state)
	c.ForestNo = nullStr(forestNo)
	c.Resource = nullStr(resource)
	c.Status = constants.ClaimStatus(status)
	c.CreatedAt = createdAt.Time
	return &c, nil
}

func (r *claimRepository) GetForest(ctx context.Context, claimID string) (*entity.ForestClaim, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+forestColumns+` FROM forest_form WHERE claim_id = $1`, claimID)
	c, err := scanForest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	return c, err
}

func (r *claimRepository) ListForest(ctx context.Context) ([]*entity.ForestClaim, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+forestColumns+` FROM forest_form ORDER BY claim_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.ForestClaim
	for rows.Next() {
		c, err := scanForest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func nullStr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}
