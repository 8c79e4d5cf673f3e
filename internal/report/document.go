package report

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pegada/internal/calculator"
)

// ExportPrefix and ExportDateLayout build DefaultExportName.
const (
	ExportPrefix     = "pegada-carbono-"
	ExportDateLayout = "2006-01-02"
)

type constError string

func (e constError) Error() string { return string(e) }

// ErrUnsupportedExport is returned by Export for unknown file extensions.
const ErrUnsupportedExport = constError("unsupported export format")

// Document is the exported form of a report.
type Document struct {
	ID            string             `json:"id" yaml:"id"`
	Timestamp     string             `json:"timestamp" yaml:"timestamp"`
	Profile       string             `json:"profile" yaml:"profile"`
	Total         float64            `json:"total" yaml:"total"`
	Breakdown     map[string]float64 `json:"breakdown" yaml:"breakdown"`
	Categories    map[string]float64 `json:"categories" yaml:"categories"`
	FactorVersion string             `json:"factor_version" yaml:"factor_version"`
	Notes         []string           `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewDocument builds the export document for r. The ID is a ULID whose
// timestamp is now.
func NewDocument(r calculator.Report, profile calculator.Profile, now time.Time) Document {
	categories := make(map[string]float64, len(calculator.AllCategories()))
	for _, c := range calculator.AllCategories() {
		categories[string(c)] = r.Category(c)
	}

	return Document{
		ID:            ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		Timestamp:     now.UTC().Format(time.RFC3339),
		Profile:       profile.Label(),
		Total:         r.Total,
		Breakdown:     maps.Clone(r.Breakdown),
		Categories:    categories,
		FactorVersion: r.FactorVersion,
		Notes:         r.Notes,
	}
}

// WriteJSON writes doc as indented JSON.
func (d Document) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(d); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// WriteYAML writes doc as YAML.
func (d Document) WriteYAML(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(d); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return encoder.Close()
}

// DefaultExportName returns the export file name for the given day.
func DefaultExportName(now time.Time) string {
	return ExportPrefix + now.Format(ExportDateLayout) + ".json"
}

// Export writes doc to path, as YAML for .yaml/.yml and JSON for .json.
func Export(path string, doc Document) error {
	var write func(io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		write = doc.WriteJSON
	case ".yaml", ".yml":
		write = doc.WriteYAML
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedExport, filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	return nil
}
