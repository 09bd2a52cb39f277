package substmat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchema is the JSON Schema for the substitution-matrix file format
// (§6 of the external interface): required keys "index" and
// "substitution_matrix", extra keys ignored.
//
// Adapted from the teacher's schema.Validator (compile-from-bytes via
// jsonschema.Compiler.AddResource + Compile), trimmed to a single inline
// schema document instead of a registry of versioned schemas.
const documentSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["index", "substitution_matrix"],
	"properties": {
		"index": {
			"type": "object",
			"additionalProperties": {"type": "integer", "minimum": 0}
		},
		"substitution_matrix": {
			"type": "array",
			"items": {
				"type": "array",
				"items": {"type": "number"}
			}
		}
	}
}`

const schemaResourceName = "substmat-document.json"

// Validator validates raw substitution-matrix JSON documents against the
// format's schema before Matrix construction attempts to parse them.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the substitution-matrix document schema once; the
// resulting Validator is safe for concurrent use.
func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaResourceName, bytes.NewReader([]byte(documentSchema))); err != nil {
		return nil, fmt.Errorf("registering substitution matrix schema: %w", err)
	}
	schema, err := compiler.Compile(schemaResourceName)
	if err != nil {
		return nil, fmt.Errorf("compiling substitution matrix schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// ValidateJSON checks raw bytes against the schema before they are handed
// to parseDocument, surfacing schema violations (missing keys, wrong
// types) with the validator's own diagnostic path rather than a generic
// unmarshal error.
func (v *Validator) ValidateJSON(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("substitution matrix document is not valid JSON: %w", err)
	}
	if err := v.schema.Validate(doc); err != nil {
		return fmt.Errorf("substitution matrix document failed schema validation: %w", err)
	}
	return nil
}

// LoadJSONValidated is LoadJSON with an up-front schema validation pass,
// for callers loading matrices from untrusted or hand-authored files.
func LoadJSONValidated(path string, v *Validator) (*Matrix, error) {
	// #nosec G304 -- caller-specified path to a substitution-matrix file is an intentional part of the public API
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading substitution matrix %s: %w", path, err)
	}
	if err := v.ValidateJSON(data); err != nil {
		return nil, err
	}
	return parseDocument(data)
}
