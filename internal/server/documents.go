package server

import (
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/fra-atlas/claims-tracker/internal/extract"
	"github.com/fra-atlas/claims-tracker/internal/metrics"
	"github.com/fra-atlas/claims-tracker/internal/pipeline"
)

// maxDocumentBytes caps uploads; Vision rejects larger payloads anyway.
const maxDocumentBytes = 20 << 20

type ingestResponse struct {
	ClaimID   string `json:"claim_id"`
	ClaimType string `json:"claim_type"`
	FormTitle string `json:"form_title"`
	Fields    any    `json:"fields"`
}

// handleIngestDocument accepts one scanned document (multipart field "file"
// or a raw body), runs the extraction pipeline, and persists the record.
func (s *Service) handleIngestDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := readDocument(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	if len(doc.Content) == 0 {
		s.respondError(w, http.StatusBadRequest, "bad_request", "empty document body")
		return
	}

	result, err := s.pipeline.Run(r.Context(), doc)
	if err != nil {
		s.respondPipelineError(w, err)
		return
	}

	claimID, err := s.repo.InsertRecord(r.Context(), result.Record)
	if err != nil {
		s.logger.Warn("insert claim failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal", "failed to store claim")
		return
	}
	metrics.ObserveDocument("ok")

	s.respondJSON(w, http.StatusCreated, ingestResponse{
		ClaimID:   claimID,
		ClaimType: string(result.Category),
		FormTitle: result.FormTitle,
		Fields:    result.Record.Fields,
	})
}

// respondPipelineError maps pipeline outcomes onto status codes: document
// problems are 422, upstream OCR transport failures are 502.
func (s *Service) respondPipelineError(w http.ResponseWriter, err error) {
	var unrecognized *pipeline.UnrecognizedFormError
	var extraction *pipeline.ExtractionError

	switch {
	case errors.Is(err, pipeline.ErrNoText):
		metrics.ObserveDocument("no_text")
		s.respondError(w, http.StatusUnprocessableEntity, "no_text", err.Error())
	case errors.As(err, &unrecognized):
		metrics.ObserveDocument("unrecognized_form")
		s.respondError(w, http.StatusUnprocessableEntity, "unrecognized_form", err.Error())
	case errors.As(err, &extraction):
		metrics.ObserveDocument("extraction_failed")
		s.logger.Warn("ocr upstream failed", zap.Error(err))
		s.respondError(w, http.StatusBadGateway, "extraction_failed", err.Error())
	default:
		metrics.ObserveDocument("extraction_failed")
		s.logger.Error("pipeline failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal", "document processing failed")
	}
}

func readDocument(r *http.Request) (extract.RawDocument, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxDocumentBytes)

	ct := r.Header.Get("Content-Type")
	if err := r.ParseMultipartForm(maxDocumentBytes); err == nil {
		file, header, err := r.FormFile("file")
		if err != nil {
			return extract.RawDocument{}, errors.New(`multipart form is missing the "file" field`)
		}
		defer file.Close()
		content, err := io.ReadAll(file)
		if err != nil {
			return extract.RawDocument{}, err
		}
		return extract.RawDocument{
			Content:   content,
			MediaType: header.Header.Get("Content-Type"),
		}, nil
	}

	content, err := io.ReadAll(r.Body)
	if err != nil {
		return extract.RawDocument{}, err
	}
	return extract.RawDocument{Content: content, MediaType: ct}, nil
}
