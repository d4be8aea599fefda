package fields

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/fra-atlas/claims-tracker/constants"
)

// BuildRecordSchema returns a JSON-Schema (draft 2020-12 subset) as a generic
// map for one category's record fields. Used locally to validate a record
// before it is handed to storage.
func BuildRecordSchema(category constants.FormCategory) map[string]any {
	props := map[string]any{
		FieldStatus: map[string]any{"type": "string", "minLength": 1},
	}
	for _, name := range FieldsFor(category) {
		if numericFields[name] {
			props[name] = map[string]any{"type": "number", "minimum": 0.0}
			continue
		}
		props[name] = map[string]any{"type": "string", "minLength": 1}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{FieldStatus},
	}
}

// ValidateRecord validates a record's fields against its category schema.
func ValidateRecord(rec *Record) error {
	schemaMap := BuildRecordSchema(rec.Category)

	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	data, err := json.Marshal(rec.Fields)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}
