// Package seed reads the initial todo list from a JSON file.
//
// Seed files are input only: the widget keeps its list in memory and never
// writes it back.
package seed

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/idilsaglam/todoview/internal/model"
)

//go:embed schema.json
var schemaJSON string

const schemaURL = "https://todoview.invalid/seed.schema.json"

var schema = jsonschema.MustCompileString(schemaURL, schemaJSON)

type entry struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// ValidationError describes the first schema violation in a seed file.
type ValidationError struct {
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return "invalid seed: " + e.Message
	}
	return fmt.Sprintf("invalid seed at %s: %s", e.Path, e.Message)
}

// Load reads and validates the seed file at path. Every todo gets a fresh ID
// and its text trimmed, as if it had been typed in.
func Load(path string) ([]model.Todo, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(b)
}

// Parse validates and decodes seed JSON.
func Parse(b []byte) ([]model.Todo, error) {
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, toValidationError(err)
	}

	var entries []entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	todos := make([]model.Todo, 0, len(entries))
	for _, e := range entries {
		t := model.New(strings.TrimSpace(e.Text))
		t.Completed = e.Completed
		todos = append(todos, t)
	}
	return todos, nil
}

func toValidationError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &ValidationError{Message: err.Error()}
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return &ValidationError{Path: ve.InstanceLocation, Message: ve.Message}
}
