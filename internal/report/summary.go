// Package report presents emissions reports: category summaries, export
// documents, charts and the table/JSON/NDJSON/YAML renderings used by the CLI.
package report

import "github.com/rshade/pegada/internal/calculator"

const percentBase = 100.0

// Row is one category line of a summary.
type Row struct {
	Category calculator.Category `json:"category" yaml:"category"`
	Label    string              `json:"label" yaml:"label"`
	Value    float64             `json:"value" yaml:"value"`
	Percent  float64             `json:"percent" yaml:"percent"`
}

// Summarize returns one row per totalled category with its share of the
// total. When the total is not positive every percentage is 0.
func Summarize(r calculator.Report) []Row {
	categories := calculator.TotalledCategories()
	rows := make([]Row, 0, len(categories))
	for _, c := range categories {
		row := Row{Category: c, Label: c.Label(), Value: r.Category(c)}
		if r.Total > 0 {
			row.Percent = row.Value / r.Total * percentBase
		}
		rows = append(rows, row)
	}
	return rows
}
