package extract

import "context"

// RawDocument is an opaque scanned-document payload plus its declared media
// type. It lives only for the duration of one pipeline run.
type RawDocument struct {
	Content   []byte
	MediaType string
}

// TextExtractor is Stage 1: document bytes -> plain text. The text is the
// concatenation of all recognized blocks in reading order, newline-separated.
// Transport failures are returned to the caller.
type TextExtractor interface {
	Extract(ctx context.Context, doc RawDocument) (string, error)
}

// Translator is Stage 2: text -> text in the canonical language. It never
// fails outward; on any internal error the original text is returned
// unchanged. Modeling this as a throwing call the pipeline must remember to
// catch would reintroduce the bug class this contract exists to avoid.
type Translator interface {
	Translate(ctx context.Context, text string) string
}
