package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")
)

var (
	// styleHeading for section headings in command output.
	styleHeading = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleValue for computed values.
	styleValue = lipgloss.NewStyle().Foreground(colorCyan)

	// styleDim for secondary text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	// styleLabel for field labels.
	styleLabel = lipgloss.NewStyle().Foreground(colorGray)
)
