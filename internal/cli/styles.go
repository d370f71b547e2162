// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color (cinnabar, the traditional seal red).
	PrimaryColor = lipgloss.Color("#E63946")
	// SuccessColor indicates favorable results.
	SuccessColor = lipgloss.Color("#4ECDC4") // Teal
	// WarningColor indicates caution messages.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3") // Light teal
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// Element colors follow the traditional five-phase palette.
	WoodColor  = lipgloss.Color("#57CC99") // Green
	FireColor  = lipgloss.Color("#FF6B6B") // Red
	EarthColor = lipgloss.Color("#E9C46A") // Ochre
	MetalColor = lipgloss.Color("#E0E0E0") // White
	WaterColor = lipgloss.Color("#48CAE4") // Blue

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SubtitleStyle is used for secondary headings.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			MarginBottom(1)

	// SuccessStyle formats favorable verdicts.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(lipgloss.Color("#333"))

	// TableCellStyle formats table cells with appropriate padding.
	TableCellStyle = lipgloss.NewStyle().
			PaddingRight(2)
)

// ElementStyle returns the foreground style for a five-phase element index
// (0 Wood through 4 Water). Out-of-range indices get the subtle style.
func ElementStyle(idx int) lipgloss.Style {
	colors := []lipgloss.Color{WoodColor, FireColor, EarthColor, MetalColor, WaterColor}
	if idx < 0 || idx >= len(colors) {
		return SubtleStyle
	}
	return lipgloss.NewStyle().Foreground(colors[idx])
}
