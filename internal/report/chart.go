package report

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rshade/pegada/internal/calculator"
)

// Chart dimensions.
const (
	chartWidth  = 6 * vg.Inch
	chartHeight = 4 * vg.Inch
	barWidth    = 0.6 * vg.Inch
)

// ErrUnsupportedChart is returned by RenderChart for unknown file extensions.
const ErrUnsupportedChart = constError("unsupported chart format")

//nolint:gochecknoglobals // Palette is read-only.
var categoryColors = map[calculator.Category]color.RGBA{
	calculator.CategoryTransport:     {R: 0xFF, G: 0x63, B: 0x84, A: 0xFF},
	calculator.CategoryResidential:   {R: 0x36, G: 0xA2, B: 0xEB, A: 0xFF},
	calculator.CategoryWaste:         {R: 0xFF, G: 0xCE, B: 0x56, A: 0xFF},
	calculator.CategoryDiet:          {R: 0x4B, G: 0xC0, B: 0xC0, A: 0xFF},
	calculator.CategoryGoodsServices: {R: 0x99, G: 0x66, B: 0xFF, A: 0xFF},
}

// RenderChart draws a bar chart of the category subtotals of r and saves it
// to path. The format follows the extension: .png, .svg or .pdf. A zero
// report still renders, with empty bars.
func RenderChart(r calculator.Report, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png", ".svg", ".pdf":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedChart, ext)
	}

	p := plot.New()
	p.Title.Text = "Carbon footprint by category"
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.Text = "tCO2e / year"
	p.Y.Min = 0

	categories := calculator.AllCategories()
	labels := make([]string, len(categories))
	for i, c := range categories {
		labels[i] = c.Label()

		values := make(plotter.Values, len(categories))
		values[i] = r.Category(c)
		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return fmt.Errorf("building %s bar: %w", c, err)
		}
		bars.Color = categoryColors[c]
		bars.LineStyle.Width = 0
		p.Add(bars)
	}
	p.NominalX(labels...)
	p.Add(plotter.NewGrid())

	if r.Total <= 0 {
		// Keep a visible axis when every bar is empty.
		p.Y.Max = 1
	}

	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("saving chart: %w", err)
	}
	return nil
}
