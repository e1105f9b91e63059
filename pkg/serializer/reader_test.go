package serializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{path: "hist.json", want: FormatJSON},
		{path: "hist.yaml", want: FormatYAML},
		{path: "hist.YML", want: FormatYAML},
		{path: "out.table", want: FormatTable},
		{path: "out.txt", want: FormatTable},
		{path: "hist.root", want: FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewReaderRejectsTableFormat(t *testing.T) {
	if _, err := NewReader(FormatTable, strings.NewReader("")); err == nil {
		t.Error("expected error for table format")
	}
	if _, err := NewReader(Format("xml"), strings.NewReader("")); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestReaderDeserializeJSON(t *testing.T) {
	reader, err := NewReader(FormatJSON, strings.NewReader(`{"name":"SR","yields":[1,2]}`))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	var got testPayload
	if err := reader.Deserialize(&got); err != nil {
		t.Fatalf("Deserialize() error = %v", err)
	}
	if got.Name != "SR" || len(got.Yields) != 2 {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.yaml")
	content := "name: SR_ttbar\nyields: [4.0, 5.5]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := FromFile[testPayload](path)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	if got.Name != "SR_ttbar" {
		t.Errorf("Name = %q, want SR_ttbar", got.Name)
	}
	if len(got.Yields) != 2 || got.Yields[1] != 5.5 {
		t.Errorf("Yields = %v", got.Yields)
	}
}

func TestFromFileMissing(t *testing.T) {
	if _, err := FromFile[testPayload](filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
