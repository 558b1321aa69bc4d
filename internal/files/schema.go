package files

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/kaptinlin/jsonschema"
	"github.com/pkg/errors"

	"github.com/Dakshbumb/Cygnusa-Guardian/internal/repository/models"
)

// Bundles come from outside the trust boundary (object storage, local
// files), so their shape is checked against a schema before decoding.
const bundleSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "required": ["input", "expected"],
    "properties": {
      "input": {},
      "expected": {}
    }
  }
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		schema, schemaErr = compiler.Compile([]byte(bundleSchema))
	})
	return schema, schemaErr
}

// DecodeBundle validates and decodes a test-case bundle.
func DecodeBundle(data []byte) ([]models.TestCase, error) {
	if !json.Valid(data) {
		return nil, errors.New("invalid test case bundle: not valid JSON")
	}
	s, err := compiledSchema()
	if err != nil {
		return nil, errors.Wrap(err, "compile bundle schema")
	}
	result := s.ValidateJSON(data)
	if !result.IsValid() {
		return nil, fmt.Errorf("invalid test case bundle: %v", result.Errors)
	}
	var cases []models.TestCase
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, errors.Wrap(err, "decode test case bundle")
	}
	return cases, nil
}
