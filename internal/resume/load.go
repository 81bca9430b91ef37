package resume

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON string

// SchemaWarning describes a single schema violation found in a resume
// document. Violations do not abort loading: engines accept partial data by
// contract, so callers surface warnings and proceed.
type SchemaWarning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ParseJSON decodes a resume document. The JSON must be syntactically valid;
// structural schema violations (unknown fields, wrong types on optional
// fields) are reported as warnings alongside the best-effort decoded value.
func ParseJSON(data []byte) (ResumeData, []SchemaWarning, error) {
	warnings := validateSchema(data)

	var r ResumeData
	if err := json.Unmarshal(data, &r); err != nil {
		return ResumeData{}, warnings, fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	return r, warnings, nil
}

// validateSchema runs the embedded JSON Schema over the document and
// collects violations. A schema-loader failure yields no warnings rather
// than an error; the schema is embedded and static, so it cannot fail
// outside of programmer error.
func validateSchema(data []byte) []SchemaWarning {
	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil
	}

	if result.Valid() {
		return nil
	}

	warnings := make([]SchemaWarning, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		warnings = append(warnings, SchemaWarning{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return warnings
}
