// Package ui groups the terminal output components used by jetson-hook.
//
// Subpackages:
//
//   - styles: lipgloss colours and the ✓/✗/⚠ status marks
//   - static: non-interactive tables (layer listing, doctor report)
//   - progress: a Bubbletea spinner shown while sources are fetched
//
// All styled output is written to stderr through a colorprofile writer, so
// colours degrade cleanly when stderr is not a terminal or NO_COLOR is set.
package ui
