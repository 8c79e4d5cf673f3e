package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	colorLeaf    = lipgloss.Color("#2E8B57")
	colorSubtle  = lipgloss.Color("241")
	colorWarning = lipgloss.Color("214")
	colorValue   = lipgloss.Color("255")
	colorBorder  = lipgloss.Color("#8FBC8F")
)

const labelWidth = 22

// Shared styles.
//
//nolint:gochecknoglobals // lipgloss styles are immutable values shared across views.
var (
	HeaderStyle        = lipgloss.NewStyle().Bold(true).Foreground(colorLeaf)
	LabelStyle         = lipgloss.NewStyle().Foreground(colorSubtle).Width(labelWidth)
	ValueStyle         = lipgloss.NewStyle().Bold(true).Foreground(colorValue)
	SubtleStyle        = lipgloss.NewStyle().Foreground(colorSubtle)
	WarningStyle       = lipgloss.NewStyle().Foreground(colorWarning)
	BoxStyle           = newBoxStyle()
	TableHeaderStyle   = newTableHeaderStyle()
	TableSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorValue).Background(colorLeaf)
)

func newBoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)
}

func newTableHeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(colorLeaf).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(colorBorder)
}
