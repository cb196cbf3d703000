package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/username/textcal/internal/calendar"
	"go.uber.org/zap"
)

func TestFileName(t *testing.T) {
	if got := FileName(2026); got != "textcal-2026.txt" {
		t.Errorf("FileName(2026) = %q, want %q", got, "textcal-2026.txt")
	}
}

func TestRender(t *testing.T) {
	cal := &calendar.Year{
		Year: 2026,
		Months: []calendar.Month{
			{Name: "Januar", Lines: []string{"01 01 Don Neujahr", "   02 Fre Brückentag"}},
			{Name: "Februar", Lines: []string{"   01 Son"}},
		},
	}

	content := Render(cal)

	wantParts := []string{
		"Kalender 2026\n",
		"Januar 2026 {{{1\n",
		"01 01 Don Neujahr\n",
		"Februar 2026 {{{1\n",
		"}}}\n",
	}
	for _, part := range wantParts {
		if !strings.Contains(content, part) {
			t.Errorf("Render() missing %q", part)
		}
	}

	if !strings.HasSuffix(content, "vim: set fdm=marker:\n") {
		t.Errorf("Render() does not end with fold modeline, got tail %q",
			content[len(content)-40:])
	}

	// One fold open marker per month, each closed.
	if opens := strings.Count(content, "{{{1"); opens != 2 {
		t.Errorf("Render() has %d fold open markers, want 2", opens)
	}
	if closes := strings.Count(content, "}}}"); closes != 2 {
		t.Errorf("Render() has %d fold close markers, want 2", closes)
	}
}

func TestWriter_Write(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir, zap.NewNop())

	gen := calendar.NewGenerator(zap.NewNop())
	cal, err := gen.Generate(2026)
	if err != nil {
		t.Fatalf("Generate(2026) error = %v", err)
	}

	path, err := writer.Write(cal)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if want := filepath.Join(dir, "textcal-2026.txt"); path != want {
		t.Errorf("Write() path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "Dezember 2026 {{{1") {
		t.Errorf("written file missing December section")
	}
	if got := strings.Count(content, "{{{1"); got != 12 {
		t.Errorf("written file has %d month sections, want 12", got)
	}
}

func TestWriter_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	writer := NewWriter(dir, zap.NewNop())

	gen := calendar.NewGenerator(zap.NewNop())
	cal, err := gen.Generate(2024)
	if err != nil {
		t.Fatalf("Generate(2024) error = %v", err)
	}

	if _, err := writer.Write(cal); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "textcal-2024.txt")); err != nil {
		t.Errorf("expected output file to exist: %v", err)
	}
}
