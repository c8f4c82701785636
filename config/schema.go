package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for widgets.yml. Unknown
// top-level keys are allowed because they carry extension sections such as
// logging; nested sections are closed.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	schema := r.Reflect(&Config{})
	schema.AdditionalProperties = jsonschema.TrueSchema
	schema.Title = "Widgets Configuration"
	schema.Description = "Schema for widgets.yml"

	return json.MarshalIndent(schema, "", "  ")
}
