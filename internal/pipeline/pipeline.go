// Package pipeline sequences text extraction, translation, classification
// and field extraction for one document. It holds no state between runs and
// writes nothing to storage; persisting the record is the caller's job.
package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fra-atlas/claims-tracker/constants"
	"github.com/fra-atlas/claims-tracker/internal/classify"
	"github.com/fra-atlas/claims-tracker/internal/extract"
	"github.com/fra-atlas/claims-tracker/internal/fields"
)

// Result is a successful end-to-end run.
type Result struct {
	Category  constants.FormCategory
	FormTitle string
	Record    *fields.Record
	Text      string // translated text the record was extracted from
}

type Pipeline struct {
	Text       extract.TextExtractor
	Translator extract.Translator
	Classifier *classify.Classifier
	Fields     *fields.Extractor
	Log        *slog.Logger
}

func New(text extract.TextExtractor, translator extract.Translator, classifier *classify.Classifier, fx *fields.Extractor, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{
		Text:       text,
		Translator: translator,
		Classifier: classifier,
		Fields:     fx,
		Log:        log,
	}
}

// Run processes one document end-to-end. Failure outcomes:
//   - *ExtractionError: the OCR adapter's call failed
//   - ErrNoText: OCR returned empty/whitespace-only text
//   - *UnrecognizedFormError: no known template title in the text
//
// Translation failure is not a pipeline failure: the Translator contract
// falls back to the original text and classification proceeds with it.
func (p *Pipeline) Run(ctx context.Context, doc extract.RawDocument) (*Result, error) {
	text, err := p.Text.Extract(ctx, doc)
	if err != nil {
		p.Log.Error("pipeline.ocr.failed", "error", err)
		return nil, &ExtractionError{Cause: err}
	}
	if strings.TrimSpace(text) == "" {
		p.Log.Warn("pipeline.ocr.empty")
		return nil, ErrNoText
	}
	p.Log.Info("pipeline.ocr.ok", "text_len", len(text))

	translated := p.Translator.Translate(ctx, text)

	classified, ok := p.Classifier.Classify(translated)
	if !ok {
		p.Log.Warn("pipeline.classify.unrecognized", "text_len", len(translated))
		return nil, &UnrecognizedFormError{Text: translated}
	}
	p.Log.Info("pipeline.classify.ok",
		"category", classified.Category,
		"title", classified.Title,
	)

	rec := p.Fields.Extract(translated, classified.Category, classified.Title)
	p.Log.Info("pipeline.fields.ok",
		"category", classified.Category,
		"fields", len(rec.Fields),
	)

	return &Result{
		Category:  classified.Category,
		FormTitle: classified.Title,
		Record:    rec,
		Text:      translated,
	}, nil
}
