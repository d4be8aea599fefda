package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fra-atlas/claims-tracker/constants"
	"github.com/fra-atlas/claims-tracker/internal/common"
	"github.com/fra-atlas/claims-tracker/internal/fields"
	"github.com/fra-atlas/claims-tracker/internal/repository"
	"github.com/fra-atlas/claims-tracker/internal/schemes"
)

func newTestService(t *testing.T) (*Service, repository.ClaimRepository) {
	t.Helper()
	ctx := context.Background()

	db, err := repository.Open(ctx, common.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, repository.Migrate(ctx, db))

	repo := repository.NewClaimRepository(db, nil)
	return NewService(repo, schemes.NewEngine(), nil), repo
}

func TestExportClaimsXLSX(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := repo.InsertRecord(ctx, &fields.Record{
		Category:  constants.CategoryIndividual,
		FormTitle: "CLAIM FORM FOR RIGHTS TO FOREST LAND",
		Fields: map[string]any{
			fields.FieldClaimantName: "ram singh",
			fields.FieldVillage:      "KHAIRLANJI",
			fields.FieldArea:         2.5,
			fields.FieldIncome:       95000.0,
			fields.FieldStatus:       string(constants.StatusPending),
		},
	})
	require.NoError(t, err)

	_, err = repo.InsertRecord(ctx, &fields.Record{
		Category:  constants.CategoryForest,
		FormTitle: "TITLE TO COMMUNITY FOREST RIGHTS",
		Fields: map[string]any{
			fields.FieldClaimantName: "van samiti",
			fields.FieldStatus:       string(constants.StatusApproved),
		},
	})
	require.NoError(t, err)

	data, err := svc.ExportClaimsXLSX(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Claims", "Recommendations"}, f.GetSheetList())

	claims, err := f.GetRows("Claims")
	require.NoError(t, err)
	require.Len(t, claims, 3, "header plus two claims")
	assert.Equal(t, "Claim ID", claims[0][0])
	assert.Equal(t, "ram singh", claims[1][2])
	assert.Equal(t, string(constants.CategoryForest), claims[2][1])

	recs, err := f.GetRows("Recommendations")
	require.NoError(t, err)
	require.Len(t, recs, 3)
	// pending individual gets PM-KISAN, Jal Jeevan and MGNREGA
	assert.Contains(t, recs[1][4], string(constants.SchemePMKisan))
	assert.Contains(t, recs[1][4], string(constants.SchemeJalJeevan))
	// approved forest claim maps to DAJGUA
	assert.Equal(t, string(constants.SchemeDAJGUA), recs[2][5])
}

func TestExportEmptyDatabase(t *testing.T) {
	svc, _ := newTestService(t)

	data, err := svc.ExportClaimsXLSX(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	claims, err := f.GetRows("Claims")
	require.NoError(t, err)
	assert.Len(t, claims, 1, "header only")
}
