package normalize

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const recordSchemaURL = "schema://quiz-record.json"

// recordSchema is the minimum shape every raw record must have. Extra keys
// are allowed so annotated sources still load.
const recordSchema = `{
  "type": "object",
  "required": ["question", "options", "answer"],
  "properties": {
    "question": {"type": "string"},
    "options": {"type": "array", "minItems": 1, "items": {"type": "string"}},
    "answer": {"type": "string", "minLength": 1}
  }
}`

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func getCompiledSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(recordSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse record schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(recordSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(recordSchemaURL)
	})
	return compiledSchema, compileErr
}

// validateShape checks a decoded record against the record schema and
// returns a one-line reason on failure.
func validateShape(record any) error {
	schema, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile record schema: %w", err)
	}
	if err := schema.Validate(record); err != nil {
		return fmt.Errorf("%s", flatten(err.Error()))
	}
	return nil
}

// flatten joins the validator's multi-line message into one line.
func flatten(msg string) string {
	lines := strings.Split(strings.TrimSpace(msg), "\n")
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(l), "-"))
		if l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, "; ")
}
