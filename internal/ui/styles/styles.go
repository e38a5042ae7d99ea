// Package styles provides shared lipgloss styles for jetson-hook output.
package styles

import (
	"charm.land/lipgloss/v2"
)

// Colours used throughout the UI.
var (
	Primary = lipgloss.Color("62")  // cyan/teal
	Success = lipgloss.Color("82")  // green
	Error   = lipgloss.Color("196") // red
	Warning = lipgloss.Color("214") // orange
	Muted   = lipgloss.Color("240") // dark gray
)

var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
)

// Status marks.
const (
	MarkOK   = "✓"
	MarkFail = "✗"
	MarkWarn = "⚠"
)

// OK renders a green check followed by msg.
func OK(msg string) string {
	return SuccessStyle.Render(MarkOK) + " " + msg
}

// Fail renders a red cross followed by msg.
func Fail(msg string) string {
	return ErrorStyle.Render(MarkFail) + " " + msg
}

// Warn renders an orange warning sign followed by msg.
func Warn(msg string) string {
	return WarningStyle.Render(MarkWarn) + " " + msg
}

// YesNo renders a boolean as a coloured mark.
func YesNo(ok bool) string {
	if ok {
		return SuccessStyle.Render(MarkOK)
	}
	return ErrorStyle.Render(MarkFail)
}
