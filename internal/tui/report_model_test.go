package tui

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pegada/internal/calculator"
	"github.com/rshade/pegada/internal/greenops"
	"github.com/rshade/pegada/internal/report"
)

func testResults(t *testing.T) []report.Result {
	t.Helper()
	offset := report.OffsetSettings{PricePerTonne: 50, Currency: "BRL"}

	a, err := report.NewResult("a.yaml", calculator.Report{
		Transport: 1, Diet: 3, Total: 4,
		Breakdown: map[string]float64{calculator.ItemVehicle: 1, calculator.ItemDiet: 3},
		Notes:     []string{"diet type not set: using onivora"},
	}, offset)
	require.NoError(t, err)

	b, err := report.NewResult("b.yaml", calculator.Report{
		Diet: 1.5, Total: 1.5,
		Breakdown: map[string]float64{calculator.ItemDiet: 1.5},
	}, offset)
	require.NoError(t, err)

	return []report.Result{a, b}
}

func press(m *ReportModel, key tea.KeyType) {
	m.Update(tea.KeyMsg{Type: key})
}

func TestNewReportModel(t *testing.T) {
	m := NewReportModel(testResults(t), calculator.ProfileIndividual, greenops.ReductionTips(), 2)

	assert.Equal(t, StepSummary, m.Step())
	assert.Equal(t, ReportStateViewing, m.state)
	assert.Equal(t, "a.yaml", m.Current().Source)
	assert.Equal(t, calculator.ProfileIndividual, m.Session().Profile())

	last, ok := m.Session().LastReport()
	require.True(t, ok)
	assert.InDelta(t, 4.0, last.Total, 1e-12)
	assert.Nil(t, m.Init())
}

func TestReportModel_StepNavigation(t *testing.T) {
	m := NewReportModel(testResults(t), calculator.ProfileIndividual, nil, 2)

	press(m, tea.KeyLeft)
	assert.Equal(t, StepSummary, m.Step())

	press(m, tea.KeyRight)
	assert.Equal(t, StepBreakdown, m.Step())
	press(m, tea.KeyRight)
	press(m, tea.KeyRight)
	assert.Equal(t, StepOffset, m.Step())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Equal(t, StepSummary, m.Step())
	assert.Equal(t, calculator.ProfileIndividual, m.Session().Profile())
}

func TestReportModel_SourceNavigation(t *testing.T) {
	m := NewReportModel(testResults(t), calculator.ProfileIndividual, nil, 2)

	press(m, tea.KeyTab)
	assert.Equal(t, "b.yaml", m.Current().Source)
	last, _ := m.Session().LastReport()
	assert.InDelta(t, 1.5, last.Total, 1e-12)

	press(m, tea.KeyTab)
	assert.Equal(t, "a.yaml", m.Current().Source)

	press(m, tea.KeyShiftTab)
	assert.Equal(t, "b.yaml", m.Current().Source)
}

func TestReportModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	} {
		m := NewReportModel(testResults(t), calculator.ProfileIndividual, nil, 2)
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.Equal(t, ReportStateQuitting, m.state)
		assert.Empty(t, m.View())
	}
}

func exportedTotal(t *testing.T, dir string) float64 {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, report.ExportPrefix+"*.json"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	var doc report.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, calculator.ProfileIndividual.Label(), doc.Profile)
	return doc.Total
}

func TestReportModel_ExportLastReport(t *testing.T) {
	dir := t.TempDir()
	m := NewReportModel(testResults(t), calculator.ProfileIndividual, nil, 2).WithExportDir(dir)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	assert.Contains(t, m.Status(), "exported to "+dir)
	assert.InDelta(t, 4.0, exportedTotal(t, dir), 1e-12)
	assert.Contains(t, m.View(), "exported to")

	press(m, tea.KeyTab)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	assert.InDelta(t, 1.5, exportedTotal(t, dir), 1e-12, "export follows the selected source")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Empty(t, m.Status())
}

func TestReportModel_ExportWithoutReport(t *testing.T) {
	m := NewReportModel(testResults(t), calculator.ProfileIndividual, nil, 2).WithExportDir(t.TempDir())
	m.Session().Reset()

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	assert.Equal(t, "nothing to export", m.Status())
}

func TestReportModel_WindowSize(t *testing.T) {
	m := NewReportModel(testResults(t), calculator.ProfileIndividual, nil, 2)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
}

func TestReportModel_View(t *testing.T) {
	m := NewReportModel(testResults(t), calculator.ProfileIndividual, greenops.ReductionTips(), 2)

	summary := m.View()
	assert.Contains(t, summary, "Pessoa Física")
	assert.Contains(t, summary, "Step 1/3: Summary")
	assert.Contains(t, summary, "Transport")
	assert.Contains(t, summary, "4.00")

	press(m, tea.KeyRight)
	breakdown := m.View()
	assert.Contains(t, breakdown, "Step 2/3: Breakdown")
	assert.Contains(t, breakdown, "vehicle")
	assert.Contains(t, breakdown, "diet type not set")

	press(m, tea.KeyRight)
	offset := m.View()
	assert.Contains(t, offset, "Step 3/3: Offsetting")
	assert.Contains(t, offset, "BRL 200.00")
	assert.Contains(t, offset, "BRL 160.00")
	assert.Contains(t, offset, "Reduction tips")
}

func TestReportStepString(t *testing.T) {
	assert.Equal(t, "Summary", StepSummary.String())
	assert.Equal(t, "Breakdown", StepBreakdown.String())
	assert.Equal(t, "Offsetting", StepOffset.String())
	assert.Equal(t, "Unknown", ReportStep(0).String())
}
