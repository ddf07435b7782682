package reconcile

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildResultJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// provider completion payload, as a generic map. Structured fields are all
// optional; confidence.overall is the only hard requirement besides provider.
func BuildResultJSONSchema() map[string]any {
	fieldProps := map[string]any{
		"invoice_number": map[string]any{"type": "string"},
		"invoice_date":   map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"issuer_name":    map[string]any{"type": "string"},
		"payer_name":     map[string]any{"type": "string"},
		"amount":         decimalProp(),
		"tax_amount":     decimalProp(),
		"total_amount":   decimalProp(),
		"currency_code":  map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": true,
		"properties": map[string]any{
			"provider": map[string]any{"type": "string", "minLength": 1},
			"fields": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           fieldProps,
			},
			"confidence": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"overall": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
					"per_field": map[string]any{
						"type": "object",
						"additionalProperties": map[string]any{
							"type": "number", "minimum": 0.0, "maximum": 1.0,
						},
					},
				},
				"required": []string{"overall"},
			},
			"raw_text": map[string]any{"type": "string"},
			"pages":    map[string]any{"type": "integer", "minimum": 0},
		},
		"required": []string{"provider", "confidence"},
	}
}

func decimalProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^-?\d+(\.\d{1,2})?$`,
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
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
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
