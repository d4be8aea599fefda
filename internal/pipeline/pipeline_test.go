package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fra-atlas/claims-tracker/constants"
	"github.com/fra-atlas/claims-tracker/internal/classify"
	"github.com/fra-atlas/claims-tracker/internal/extract"
	"github.com/fra-atlas/claims-tracker/internal/fields"
	"github.com/fra-atlas/claims-tracker/internal/patterns"
	"github.com/fra-atlas/claims-tracker/internal/templates"
)

// --- Mocks ---

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Extract(context.Context, extract.RawDocument) (string, error) {
	return s.text, s.err
}

// identityTranslator passes text through unchanged.
type identityTranslator struct{}

func (identityTranslator) Translate(_ context.Context, text string) string { return text }

// mappingTranslator simulates a translation service with fixed outputs.
type mappingTranslator struct {
	out string
}

func (m mappingTranslator) Translate(context.Context, string) string { return m.out }

func newPipeline(text extract.TextExtractor, tr extract.Translator) *Pipeline {
	registry := templates.DefaultRegistry()
	return New(
		text,
		tr,
		classify.NewClassifier(registry),
		fields.NewExtractor(patterns.DefaultLibrary(), registry, nil),
		nil,
	)
}

// --- Tests ---

const individualDoc = `CLAIM FORM FOR RIGHTS TO FOREST LAND
Claimant Name: Ram Singh
District: Balaghat
Area: 2.5
Income: 95000`

func TestRunSuccess(t *testing.T) {
	p := newPipeline(&stubExtractor{text: individualDoc}, identityTranslator{})

	res, err := p.Run(context.Background(), extract.RawDocument{Content: []byte("img")})
	require.NoError(t, err)

	assert.Equal(t, constants.CategoryIndividual, res.Category)
	assert.Equal(t, "CLAIM FORM FOR RIGHTS TO FOREST LAND", res.FormTitle)
	assert.Equal(t, individualDoc, res.Text)

	name, ok := res.Record.Str(fields.FieldClaimantName)
	require.True(t, ok)
	assert.Equal(t, "ram singh", name)
	assert.Equal(t, constants.StatusPending, res.Record.Status())
}

func TestRunOCRFailure(t *testing.T) {
	cause := errors.New("upstream 500")
	p := newPipeline(&stubExtractor{err: cause}, identityTranslator{})

	_, err := p.Run(context.Background(), extract.RawDocument{})
	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.ErrorIs(t, err, cause)
}

func TestRunEmptyText(t *testing.T) {
	for _, text := range []string{"", "   \n\t  "} {
		p := newPipeline(&stubExtractor{text: text}, identityTranslator{})
		_, err := p.Run(context.Background(), extract.RawDocument{})
		assert.ErrorIs(t, err, ErrNoText)
	}
}

func TestRunUnrecognizedForm(t *testing.T) {
	p := newPipeline(&stubExtractor{text: "RATION CARD\nName: Ram Singh"}, identityTranslator{})

	_, err := p.Run(context.Background(), extract.RawDocument{})
	var unrecognized *UnrecognizedFormError
	require.ErrorAs(t, err, &unrecognized)
	assert.Equal(t, "RATION CARD\nName: Ram Singh", unrecognized.Text)
}

// Classification and field extraction both run over the translated text, not
// the raw OCR output.
func TestRunClassifiesTranslatedText(t *testing.T) {
	p := newPipeline(
		&stubExtractor{text: "वन अधिकार दावा प्रपत्र"},
		mappingTranslator{out: individualDoc},
	)

	res, err := p.Run(context.Background(), extract.RawDocument{})
	require.NoError(t, err)
	assert.Equal(t, constants.CategoryIndividual, res.Category)
	assert.Equal(t, individualDoc, res.Text)
}

// The pipeline treats translator fallback (original text back) like any
// other text: if the original already contains a known title it still
// classifies.
func TestRunTranslationFallback(t *testing.T) {
	p := newPipeline(&stubExtractor{text: individualDoc}, identityTranslator{})

	res, err := p.Run(context.Background(), extract.RawDocument{})
	require.NoError(t, err)
	assert.Equal(t, constants.CategoryIndividual, res.Category)
}
