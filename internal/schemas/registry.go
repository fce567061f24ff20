// Package schemas holds the fixed JSON Schema documents for the two model
// payload shapes (profession name lists and single profession details) and
// validation helpers around them.
package schemas

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/profession-catalog/internal/types"
)

// Schema pairs a payload name (used by the structured-output request) with
// its JSON Schema document.
type Schema struct {
	Name string
	raw  json.RawMessage
}

// Names is the Stage A payload: a list of profession names.
var Names = mustSchema("ProfessionNamesPayload", map[string]any{
	"type": "object",
	"properties": map[string]any{
		"names":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"sourceNote": map[string]any{"type": []string{"string", "null"}},
	},
	"required":             []string{"names"},
	"additionalProperties": false,
})

// Detail is the Stage B payload: one profession with full attributes.
var Detail = mustSchema("ProfessionDetail", detailDoc())

// List is the single-call payload: every profession with full attributes in
// one response. Kept for the alternative one-shot entry point.
var List = mustSchema("ProfessionsPayload", map[string]any{
	"type": "object",
	"properties": map[string]any{
		"professions": map[string]any{"type": "array", "items": detailDoc()},
	},
	"required":             []string{"professions"},
	"additionalProperties": false,
})

func detailDoc() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":        map[string]any{"type": "string"},
			"category":    map[string]any{"type": "string", "enum": types.CategoryValues()},
			"description": map[string]any{"type": []string{"string", "null"}},
			"startSalary": map[string]any{"type": []string{"number", "null"}, "minimum": 0},
			"endSalary":   map[string]any{"type": []string{"number", "null"}, "minimum": 0},
			"popularity":  map[string]any{"type": []string{"string", "null"}, "enum": append(PopularityEnum(), nil)},
			"skills": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    3,
				"uniqueItems": true,
			},
		},
		"required":             []string{"name", "category", "skills"},
		"additionalProperties": false,
	}
}

// PopularityEnum returns the popularity values as a schema enum slice.
func PopularityEnum() []any {
	vals := types.PopularityValues()
	out := make([]any, 0, len(vals))
	for _, v := range vals {
		out = append(out, v)
	}
	return out
}

func mustSchema(name string, doc map[string]any) *Schema {
	raw, err := json.Marshal(doc)
	if err != nil {
		panic(fmt.Sprintf("schemas: cannot marshal %s: %v", name, err))
	}
	// Compile once here so a malformed document fails at init, not per call.
	if _, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw)); err != nil {
		panic(fmt.Sprintf("schemas: cannot compile %s: %v", name, err))
	}
	return &Schema{Name: name, raw: raw}
}

// Raw returns the schema document as compact JSON, suitable for a
// structured-output request body.
func (s *Schema) Raw() json.RawMessage {
	return s.raw
}

// Text renders the schema document as compact JSON text for embedding into a
// prompt when the endpoint lacks native schema enforcement.
func (s *Schema) Text() string {
	return string(s.raw)
}

// Check validates a JSON document against the schema. It returns nil for a
// conforming document, a *ValidationError for a non-conforming one, and a
// *SchemaLoadError when the document itself cannot be loaded.
func (s *Schema) Check(document string) error {
	return ValidateJSONString(string(s.raw), document)
}
