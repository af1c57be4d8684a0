package seed

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestParse(t *testing.T) {
	todos, err := Parse([]byte(`[
		{"text": "Buy groceries"},
		{"text": "  Walk the dog ", "completed": true}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(todos) != 2 {
		t.Fatalf("len = %d", len(todos))
	}
	if todos[0].Text != "Buy groceries" || todos[0].Completed {
		t.Errorf("todo 0 = %+v", todos[0])
	}
	if todos[1].Text != "Walk the dog" || !todos[1].Completed {
		t.Errorf("todo 1 = %+v", todos[1])
	}
	if todos[0].ID == uuid.Nil || todos[0].ID == todos[1].ID {
		t.Error("ids not minted")
	}
}

func TestParse_Empty(t *testing.T) {
	todos, err := Parse([]byte(`[]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(todos) != 0 {
		t.Errorf("len = %d", len(todos))
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantPath string
	}{
		{"not an array", `{"text": "x"}`, ""},
		{"missing text", `[{"completed": true}]`, "/0"},
		{"blank text", `[{"text": "ok"}, {"text": "   "}]`, "/1/text"},
		{"wrong type", `[{"text": "ok", "completed": "yes"}]`, "/0/completed"},
		{"extra key", `[{"text": "ok", "id": 3}]`, "/0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v, want *ValidationError", err)
			}
			if ve.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q (%v)", ve.Path, tt.wantPath, err)
			}
		})
	}
}

func TestParse_BadJSON(t *testing.T) {
	_, err := Parse([]byte(`[{"text": `))
	if err == nil || !strings.Contains(err.Error(), "json unmarshal") {
		t.Errorf("err = %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "seed.json")
	if err := os.WriteFile(p, []byte(`[{"text": "Read a book"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	todos, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(todos) != 1 || todos[0].Text != "Read a book" {
		t.Errorf("todos = %+v", todos)
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want ErrNotExist", err)
	}
}
