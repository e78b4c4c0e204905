package analyst

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var requiredFields = []string{
	"management_tone",
	"confidence_level",
	"key_positives",
	"key_concerns",
	"forward_guidance",
	"capacity_utilization",
	"growth_initiatives",
}

// resultSchema is the JSON-Schema (draft 2020-12 subset) the parsed model
// reply must satisfy. Extra fields are permitted and ignored on decode.
func resultSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"management_tone":      map[string]any{"type": "string"},
			"confidence_level":     map[string]any{"type": "string"},
			"key_positives":        stringListProp(),
			"key_concerns":         stringListProp(),
			"forward_guidance":     map[string]any{"type": "string"},
			"capacity_utilization": map[string]any{"type": "string"},
			"growth_initiatives":   stringListProp(),
		},
		"required": requiredFields,
	}
}

func stringListProp() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
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

// missingFields reports which required fields are absent from the object.
func missingFields(obj map[string]json.RawMessage) []string {
	var missing []string
	for _, f := range requiredFields {
		if _, ok := obj[f]; !ok {
			missing = append(missing, f)
		}
	}
	return missing
}
