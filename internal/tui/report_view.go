package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/pegada/internal/greenops"
	"github.com/rshade/pegada/internal/report"
)

const (
	borderPadding = 2
	percentBase   = 100
)

// NewSummaryTable creates the category table of the summary step.
func NewSummaryTable(rows []report.Row, precision int) table.Model {
	columns := []table.Column{
		{Title: "Category", Width: 20},   //nolint:mnd // Column width.
		{Title: "tCO2e/year", Width: 12}, //nolint:mnd // Column width.
		{Title: "Share", Width: 8},       //nolint:mnd // Column width.
	}

	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = table.Row{
			r.Label,
			greenops.FormatFloat(r.Value, precision),
			greenops.FormatFloat(r.Percent, 1) + "%",
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(true),
		table.WithHeight(len(tableRows)+1),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)
	return t
}

// View renders the current view.
func (m *ReportModel) View() string {
	if m.state == ReportStateQuitting {
		return ""
	}

	res := m.Current()
	var content strings.Builder

	content.WriteString(m.renderHeader(res))
	content.WriteString("\n\n")

	switch m.Step() {
	case StepSummary:
		content.WriteString(m.table.View())
		content.WriteString("\n\n")
		content.WriteString(renderField("Total", greenops.FormatFloat(res.Report.Total, m.precision)+" tCO2e/year"))
		if len(res.Equivalencies) > 0 {
			content.WriteString("\n")
			content.WriteString(SubtleStyle.Render(greenops.FromTonnes(res.Report.Total).DisplayText))
		}
	case StepBreakdown:
		content.WriteString(m.renderBreakdown(res))
	case StepOffset:
		content.WriteString(m.renderOffset(res))
	}

	if m.status != "" {
		content.WriteString("\n\n")
		content.WriteString(WarningStyle.Render(m.status))
	}
	content.WriteString("\n\n")
	content.WriteString(SubtleStyle.Render("←/→ step • tab next file • e export • r restart • q quit"))

	width := max(m.width, borderPadding+1)
	return BoxStyle.Width(width - borderPadding).Render(content.String())
}

func (m *ReportModel) renderHeader(res report.Result) string {
	title := HeaderStyle.Render(fmt.Sprintf("Pegada de Carbono • %s", m.session.Profile().Label()))
	source := SubtleStyle.Render(fmt.Sprintf("%s (%d/%d)", res.Source, m.current+1, len(m.results)))
	step := fmt.Sprintf("Step %d/%d: %s", m.session.Step(), m.session.TotalSteps(), m.Step())
	bar := m.progress.ViewAs(m.session.Progress() / percentBase)
	return lipgloss.JoinVertical(lipgloss.Left, title, source, step+"  "+bar)
}

func (m *ReportModel) renderBreakdown(res report.Result) string {
	keys := make([]string, 0, len(res.Report.Breakdown))
	for k := range res.Report.Breakdown {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(renderField(k, greenops.FormatFloat(res.Report.Breakdown[k], m.precision)))
		b.WriteString("\n")
	}
	for _, note := range res.Report.Notes {
		b.WriteString(WarningStyle.Render("! " + note))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *ReportModel) renderOffset(res report.Result) string {
	var b strings.Builder
	b.WriteString(renderField("Offset cost", res.Offset.FormattedTotal))
	b.WriteString("\n")
	b.WriteString(renderField("Reforestation", greenops.FormatCurrency(res.Offset.Reforestation, res.Offset.Currency)))
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render(fmt.Sprintf("Based on %s per tonne CO2e",
		greenops.FormatCurrency(res.Offset.PricePerTonne, res.Offset.Currency))))
	if len(m.tips) > 0 {
		b.WriteString("\n\n")
		b.WriteString(HeaderStyle.Render("Reduction tips"))
		for _, tip := range m.tips {
			b.WriteString("\n• " + tip)
		}
	}
	return b.String()
}

func renderField(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(value)
}
