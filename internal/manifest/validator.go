package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/catalogue.schema.json
var schemaBytes []byte

const schemaName = "catalogue.schema.json"

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaName, doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		if compiledSchema, err = c.Compile(schemaName); err != nil {
			compileErr = fmt.Errorf("compiling schema: %w", err)
		}
	})
	return compiledSchema, compileErr
}

// Validate reports every problem in a catalogue document. Shape errors come
// from the embedded JSON Schema; when the shape is right the catalogue rules
// run as well. The error return is for YAML that cannot be read at all.
func Validate(data []byte) ([]Issue, error) {
	_, issues, err := check(data)
	return issues, err
}

func check(data []byte) (*Catalogue, []Issue, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, nil, fmt.Errorf("loading schema: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("parsing YAML: %w", err)
	}
	jsonData, err := json.Marshal(jsonCompatible(raw))
	if err != nil {
		return nil, nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	if err := schema.Validate(inst); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return nil, nil, fmt.Errorf("validating catalogue: %w", err)
		}
		return nil, schemaIssues(ve), nil
	}

	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, nil, fmt.Errorf("decoding catalogue: %w", err)
	}
	return &c, ruleIssues(&c), nil
}

// schemaIssues reports the leaves of a schema failure, one issue per
// failed keyword. Inner nodes ($ref, items, properties) only group them.
func schemaIssues(ve *jsonschema.ValidationError) []Issue {
	var issues []Issue
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		for _, cause := range e.Causes {
			walk(cause)
		}
		if len(e.Causes) > 0 || e.ErrorKind == nil {
			return
		}
		issues = append(issues, Issue{
			Path:    pointer(e.InstanceLocation),
			Message: e.ErrorKind.LocalizedString(printer),
		})
	}
	walk(ve)

	if len(issues) == 0 {
		issues = append(issues, Issue{Message: ve.LocalizedError(printer)})
	}
	return issues
}

func pointer(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	return "/" + strings.Join(tokens, "/")
}

// jsonCompatible rekeys YAML mappings with non-string keys (e.g. `1: x`)
// so the document can be marshalled to JSON.
func jsonCompatible(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = jsonCompatible(item)
		}
		return val
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, item := range val {
			m[fmt.Sprint(k)] = jsonCompatible(item)
		}
		return m
	case []any:
		for i, item := range val {
			val[i] = jsonCompatible(item)
		}
		return val
	default:
		return val
	}
}
