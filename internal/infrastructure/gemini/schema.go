package gemini

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	genai "google.golang.org/genai"
)

// extractionResponseSchema constrains the extraction call's output on the
// provider side: items[].name required, constraints all-optional, raw
// required.
func extractionResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"items": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":     {Type: genai.TypeString},
						"quantity": {Type: genai.TypeInteger, Nullable: genai.Ptr(true)},
						"notes":    {Type: genai.TypeString, Nullable: genai.Ptr(true)},
					},
					Required: []string{"name"},
				},
			},
			"constraints": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"budget":   {Type: genai.TypeString, Nullable: genai.Ptr(true)},
					"currency": {Type: genai.TypeString, Nullable: genai.Ptr(true)},
					"location": {Type: genai.TypeString, Nullable: genai.Ptr(true)},
				},
			},
			"raw": {Type: genai.TypeString},
		},
		Required: []string{"items", "constraints", "raw"},
	}
}

// extractionJSONSchema is the same contract as a JSON-Schema document, used
// to validate the response locally before unmarshalling. Provider-side
// schema enforcement is best effort; this catches the drift.
func extractionJSONSchema() map[string]any {
	nullableString := map[string]any{"type": []string{"string", "null"}}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":     map[string]any{"type": "string", "minLength": 1},
						"quantity": map[string]any{"type": []string{"integer", "null"}},
						"notes":    nullableString,
					},
					"required": []string{"name"},
				},
			},
			"constraints": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"budget":   nullableString,
					"currency": nullableString,
					"location": nullableString,
				},
			},
			"raw": map[string]any{"type": "string"},
		},
		"required": []string{"items", "constraints", "raw"},
	}
}

// validateAgainstSchema validates data against schemaMap (a JSON-Schema
// document expressed as a generic map).
func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
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
