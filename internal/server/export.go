package server

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// handleExport streams all stored claims and their recommendations as one
// XLSX workbook.
func (s *Service) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := s.exporter.ExportClaimsXLSX(r.Context())
	if err != nil {
		s.logger.Warn("export failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal", "export failed")
		return
	}

	filename := fmt.Sprintf("fra-claims-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Warn("export write failed", zap.Error(err))
	}
}
