// Package export produces XLSX workbooks from stored claims and their
// scheme recommendations.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fra-atlas/claims-tracker/constants"
	"github.com/fra-atlas/claims-tracker/internal/entity"
	"github.com/fra-atlas/claims-tracker/internal/repository"
	"github.com/fra-atlas/claims-tracker/internal/schemes"
)

// Service reads claims back through the repository, evaluates them, and
// renders the XLSX workbook for exports.
type Service struct {
	repo   repository.ClaimRepository
	engine *schemes.Engine
	logger *slog.Logger
}

func NewService(repo repository.ClaimRepository, engine *schemes.Engine, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, engine: engine, logger: logger}
}

// ExportClaimsXLSX returns a workbook with a "Claims" sheet listing every
// stored claim and a "Recommendations" sheet with the engine's output per
// claim.
func (s *Service) ExportClaimsXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	individuals, err := s.repo.ListIndividual(ctx)
	if err != nil {
		return nil, fmt.Errorf("query individual claims: %w", err)
	}
	villages, err := s.repo.ListVillage(ctx)
	if err != nil {
		return nil, fmt.Errorf("query village claims: %w", err)
	}
	forests, err := s.repo.ListForest(ctx)
	if err != nil {
		return nil, fmt.Errorf("query forest claims: %w", err)
	}

	f := excelize.NewFile()

	if err := s.writeClaimsSheet(f, individuals, villages, forests); err != nil {
		return nil, err
	}
	if err := s.writeRecommendationsSheet(f, s.engine.Recommendations(individuals, villages, forests)); err != nil {
		return nil, err
	}

	// drop the default sheet left over from NewFile
	_ = f.DeleteSheet("Sheet1")
	if index, err := f.GetSheetIndex("Claims"); err == nil && index >= 0 {
		f.SetActiveSheet(index)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"claims", len(individuals)+len(villages)+len(forests),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (s *Service) writeClaimsSheet(f *excelize.File, individuals []*entity.IndividualClaim, villages []*entity.VillageClaim, forests []*entity.ForestClaim) error {
	const sheet = "Claims"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{
		"Claim ID", "Claim Type", "Claimant Name", "Village", "District",
		"State", "Status", "Area (acres)", "Income",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	writeRow := func(claimID, claimantName string, claimType constants.FormCategory, village, district, state *string, status constants.ClaimStatus, area, income *float64) {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, claimID)
		write(2, string(claimType))
		write(3, claimantName)
		write(4, deref(village))
		write(5, deref(district))
		write(6, deref(state))
		write(7, string(status))
		write(8, derefNum(area))
		write(9, derefNum(income))
		row++
	}

	for _, c := range individuals {
		writeRow(c.ClaimID, c.ClaimantName, constants.CategoryIndividual, c.Village, c.District, c.State, c.Status, c.Area, c.Income)
	}
	for _, c := range villages {
		writeRow(c.ClaimID, c.ClaimantName, constants.CategoryVillage, c.Village, c.District, c.State, c.Status, nil, nil)
	}
	for _, c := range forests {
		writeRow(c.ClaimID, c.ClaimantName, constants.CategoryForest, c.Village, c.District, c.State, c.Status, nil, nil)
	}

	_ = f.SetColWidth(sheet, "A", "A", 38)
	_ = f.SetColWidth(sheet, "B", "C", 20)
	_ = f.SetColWidth(sheet, "D", "F", 16)
	return nil
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func derefNum(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func (s *Service) writeRecommendationsSheet(f *excelize.File, recs []schemes.Recommendation) error {
	const sheet = "Recommendations"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{
		"Claim ID", "Claimant Name", "Claim Type", "Status",
		"Recommended Schemes", "Primary Scheme", "Eligibility Reasons",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, r := range recs {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		names := make([]string, len(r.Schemes))
		for j, sch := range r.Schemes {
			names[j] = string(sch)
		}
		write(1, r.ClaimID)
		write(2, r.ClaimantName)
		write(3, string(r.ClaimType))
		write(4, string(r.Status))
		write(5, strings.Join(names, ", "))
		write(6, string(r.Primary))
		write(7, strings.Join(r.Reasons, "; "))
	}

	_ = f.SetColWidth(sheet, "A", "A", 38)
	_ = f.SetColWidth(sheet, "B", "C", 20)
	_ = f.SetColWidth(sheet, "E", "E", 40)
	_ = f.SetColWidth(sheet, "G", "G", 72)
	return nil
}
