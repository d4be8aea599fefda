package pipeline

import (
	"errors"
	"fmt"
)

// ErrNoText is the terminal outcome when OCR produced empty or
// whitespace-only output. Rescanning the document is the corrective action.
var ErrNoText = errors.New("no text could be extracted from the document")

// UnrecognizedFormError is the terminal outcome when the classifier found no
// matching template. The raw text is preserved so a human can inspect it.
type UnrecognizedFormError struct {
	Text string
}

func (e *UnrecognizedFormError) Error() string {
	return "could not identify form type from the document"
}

// ExtractionError wraps a transport failure from the text extraction
// adapter. Retrying later is the corrective action; the pipeline itself
// never retries.
type ExtractionError struct {
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("text extraction failed: %v", e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
