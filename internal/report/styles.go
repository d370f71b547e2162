package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/haesol/sajukit/internal/cli"
)

// Styles contains all styling definitions for chart report formatting.
type Styles struct {
	// Base styles from CLI package
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Subtle   lipgloss.Style
	Normal   lipgloss.Style

	// Report-specific styles
	Box           lipgloss.Style
	Score         lipgloss.Style
	PillarBox     lipgloss.Style
	StrengthBox   lipgloss.Style
	YongshinBox   lipgloss.Style
	Favorable     lipgloss.Style
	Unfavorable   lipgloss.Style
	Mixed         lipgloss.Style
	ProgressFill  lipgloss.Style
	ProgressEmpty lipgloss.Style
}

// NewStyles creates a new Styles instance with default styling.
func NewStyles() *Styles {
	s := &Styles{
		Title:    cli.TitleStyle,
		Subtitle: cli.SubtitleStyle,
		Success:  cli.SuccessStyle,
		Warning:  cli.WarningStyle,
		Error:    cli.ErrorStyle,
		Info:     cli.InfoStyle,
		Subtle:   cli.SubtleStyle,
		Normal:   lipgloss.NewStyle(),
	}

	s.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cli.SubtleColor).
		Padding(0, 1)

	s.Score = lipgloss.NewStyle().
		Bold(true).
		Foreground(cli.PrimaryColor)

	s.PillarBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cli.PrimaryColor).
		Padding(0, 1)

	s.StrengthBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cli.InfoColor).
		Padding(0, 1).
		MarginTop(1)

	s.YongshinBox = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(cli.SuccessColor).
		Padding(0, 1).
		MarginTop(1)

	s.Favorable = lipgloss.NewStyle().
		Bold(true).
		Foreground(cli.SuccessColor)

	s.Unfavorable = lipgloss.NewStyle().
		Bold(true).
		Foreground(cli.ErrorColor)

	s.Mixed = lipgloss.NewStyle().
		Foreground(cli.WarningColor)

	s.ProgressFill = lipgloss.NewStyle().
		Foreground(cli.SuccessColor)

	s.ProgressEmpty = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#333333"))

	return s
}
