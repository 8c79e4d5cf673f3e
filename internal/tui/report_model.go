package tui

import (
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/pegada/internal/calculator"
	"github.com/rshade/pegada/internal/report"
	"github.com/rshade/pegada/internal/session"
)

// ReportStep is one page of the report viewer.
type ReportStep int

// Viewer steps, in navigation order.
const (
	StepSummary ReportStep = iota + 1
	StepBreakdown
	StepOffset
)

// reportSteps is the number of viewer steps.
const reportSteps = 3

// String returns the step title.
func (s ReportStep) String() string {
	switch s {
	case StepSummary:
		return "Summary"
	case StepBreakdown:
		return "Breakdown"
	case StepOffset:
		return "Offsetting"
	default:
		return "Unknown"
	}
}

// ReportState is the lifecycle state of the viewer.
type ReportState int

const (
	// ReportStateViewing is the normal browsing state.
	ReportStateViewing ReportState = iota
	// ReportStateQuitting indicates the viewer is exiting.
	ReportStateQuitting
)

// Default dimensions for the report viewer.
const (
	reportDefaultWidth  = 80
	reportDefaultHeight = 20
	progressWidth       = 30
)

// ReportModel is the Bubble Tea model that pages through calculated
// reports. Navigation state lives in a session.Session.
type ReportModel struct {
	results []report.Result
	current int

	session  *session.Session
	table    table.Model
	progress progress.Model
	tips     []string

	precision int
	state     ReportState
	width     int
	height    int

	exportDir string
	status    string
}

// NewReportModel builds a viewer over results for profile. results must not
// be empty.
func NewReportModel(
	results []report.Result,
	profile calculator.Profile,
	tips []string,
	precision int,
) *ReportModel {
	s := session.New(reportSteps)
	s.Select(profile)

	m := &ReportModel{
		results:   results,
		session:   s,
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth)),
		tips:      tips,
		precision: precision,
		state:     ReportStateViewing,
		width:     reportDefaultWidth,
		height:    reportDefaultHeight,
		exportDir: ".",
	}
	m.selectResult(0)
	return m
}

// WithExportDir sets the directory the "e" key exports to.
func (m *ReportModel) WithExportDir(dir string) *ReportModel {
	m.exportDir = dir
	return m
}

// Status returns the last status message, e.g. the export result.
func (m *ReportModel) Status() string {
	return m.status
}

// Session exposes the navigation state.
func (m *ReportModel) Session() *session.Session {
	return m.session
}

// Step returns the current step.
func (m *ReportModel) Step() ReportStep {
	return ReportStep(m.session.Step())
}

// Current returns the result being shown.
func (m *ReportModel) Current() report.Result {
	return m.results[m.current]
}

func (m *ReportModel) selectResult(i int) {
	m.current = i
	res := m.results[i]
	m.session.Record(res.Report)
	m.table = NewSummaryTable(res.Summary, m.precision)
}

// Init initializes the model.
func (m *ReportModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

// handleKeyMsg processes keyboard input.
//
//nolint:exhaustive // Only handling relevant key types for report navigation.
func (m *ReportModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.state = ReportStateQuitting
		return m, tea.Quit

	case tea.KeyRight:
		m.session.Next()
	case tea.KeyLeft:
		m.session.Prev()

	case tea.KeyTab:
		m.selectResult((m.current + 1) % len(m.results))
	case tea.KeyShiftTab:
		m.selectResult((m.current + len(m.results) - 1) % len(m.results))

	case tea.KeyUp, tea.KeyDown:
		if m.Step() == StepSummary {
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			m.state = ReportStateQuitting
			return m, tea.Quit
		case "r":
			profile := m.session.Profile()
			m.session.Reset()
			m.session.Select(profile)
			m.selectResult(m.current)
			m.status = ""
		case "e":
			m.exportLast()
		}
	}
	return m, nil
}

// exportLast writes the session's last report to the export directory
// under the default export name.
func (m *ReportModel) exportLast() {
	r, ok := m.session.LastReport()
	if !ok {
		m.status = "nothing to export"
		return
	}
	now := time.Now()
	path := filepath.Join(m.exportDir, report.DefaultExportName(now))
	if err := report.Export(path, report.NewDocument(r, m.session.Profile(), now)); err != nil {
		m.status = "export failed: " + err.Error()
		return
	}
	m.status = "exported to " + path
}
