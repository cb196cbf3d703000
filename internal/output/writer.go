// Package output renders calendar years as foldable plain text and
// writes them to disk.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/username/textcal/internal/calendar"
	"go.uber.org/zap"
)

// Writer writes rendered calendars into a target directory.
type Writer struct {
	dir    string
	logger *zap.Logger
}

// NewWriter creates a Writer that writes into dir.
func NewWriter(dir string, logger *zap.Logger) *Writer {
	return &Writer{dir: dir, logger: logger}
}

// FileName returns the output file name for a year.
func FileName(year int) string {
	return fmt.Sprintf("textcal-%d.txt", year)
}

// Render produces the full file content for a calendar year: a short
// header block, each month wrapped in vim fold markers, and a trailing
// fold modeline.
func Render(cal *calendar.Year) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Kalender %d\n", cal.Year)
	b.WriteString("Feiertage und Brückentage (Deutschland)\n\n")

	for _, month := range cal.Months {
		fmt.Fprintf(&b, "%s %d {{{1\n", month.Name, cal.Year)
		for _, line := range month.Lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteString("}}}\n\n")
	}

	b.WriteString("vim: set fdm=marker:\n")
	return b.String()
}

// Write renders cal into dir/textcal-<year>.txt and returns the
// written path. The directory is created if it does not exist.
func (w *Writer) Write(cal *calendar.Year) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(w.dir, FileName(cal.Year))
	if err := os.WriteFile(path, []byte(Render(cal)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write calendar file: %w", err)
	}

	w.logger.Info("Calendar written",
		zap.Int("year", cal.Year),
		zap.String("path", path))

	return path, nil
}
