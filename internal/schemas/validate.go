// Package schemas provides JSON Schema validation functionality for résumé profile documents.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume_profile.schema.json
var profileDefinitions []byte

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// compiled schemas are built once from the embedded definitions
var (
	compileOnce   sync.Once
	profileSchema *gojsonschema.Schema
	bundleSchema  *gojsonschema.Schema
	compileErr    error
)

func compile() error {
	compileOnce.Do(func() {
		var root map[string]any
		if err := json.Unmarshal(profileDefinitions, &root); err != nil {
			compileErr = &SchemaLoadError{Path: "resume_profile.schema.json", Message: "invalid JSON", Cause: err}
			return
		}
		defs := root["definitions"]

		profileSchema, compileErr = gojsonschema.NewSchema(gojsonschema.NewGoLoader(map[string]any{
			"definitions": defs,
			"$ref":        "#/definitions/profile",
		}))
		if compileErr != nil {
			compileErr = &SchemaLoadError{Path: "resume_profile.schema.json#profile", Message: "failed to compile", Cause: compileErr}
			return
		}

		bundleSchema, compileErr = gojsonschema.NewSchema(gojsonschema.NewGoLoader(map[string]any{
			"definitions":          defs,
			"type":                 "object",
			"minProperties":        1,
			"additionalProperties": map[string]any{"$ref": "#/definitions/profile"},
		}))
		if compileErr != nil {
			compileErr = &SchemaLoadError{Path: "resume_profile.schema.json#bundle", Message: "failed to compile", Cause: compileErr}
		}
	})
	return compileErr
}

// ValidateProfile validates a single ResumeProfile JSON document
func ValidateProfile(content []byte) error {
	if err := compile(); err != nil {
		return err
	}
	return validateWith(profileSchema, gojsonschema.NewBytesLoader(content))
}

// ValidateBundle validates a language -> ResumeProfile bundle JSON document
func ValidateBundle(content []byte) error {
	if err := compile(); err != nil {
		return err
	}
	return validateWith(bundleSchema, gojsonschema.NewBytesLoader(content))
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaContent))
	if err != nil {
		return &SchemaLoadError{
			Path:    "(string schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}
	return validateWith(schema, gojsonschema.NewStringLoader(jsonContent))
}

func validateWith(schema *gojsonschema.Schema, document gojsonschema.JSONLoader) error {
	result, err := schema.Validate(document)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	if result.Valid() {
		return nil
	}

	// Build structured error
	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
