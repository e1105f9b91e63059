package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testPayload struct {
	Name   string    `json:"name" yaml:"name"`
	Yields []float64 `json:"yields" yaml:"yields"`
}

func TestWriterSerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	payload := testPayload{Name: "SR_ttbar", Yields: []float64{1.5, 2.5}}
	if err := w.Serialize(context.Background(), payload); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	var got testPayload
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Name != payload.Name || len(got.Yields) != 2 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestWriterSerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	payload := testPayload{Name: "CR_single_top", Yields: []float64{3}}
	if err := w.Serialize(context.Background(), payload); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	var got testPayload
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if got.Name != payload.Name {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestWriterSerializeTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	payload := testPayload{Name: "SR", Yields: []float64{1, 2}}
	if err := w.Serialize(context.Background(), payload); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"FIELD", "Name", "SR", "Yields.[0]", "Yields.[1]"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestWriterUnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)

	if err := w.Serialize(context.Background(), map[string]string{"a": "b"}); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if !json.Valid(buf.Bytes()) {
		t.Errorf("expected JSON fallback, got: %s", buf.String())
	}
}

func TestNewFileWriterOrStdoutCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figures", "nested", "out.yaml")

	w := NewFileWriterOrStdout(FormatYAML, path)
	if err := w.Serialize(context.Background(), testPayload{Name: "SR"}); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected output file to exist: %v", err)
	}
}

func TestWriterCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	w := NewFileWriterOrStdout(FormatJSON, path)

	if err := w.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
