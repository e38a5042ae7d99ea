// Package static provides non-interactive terminal output components.
package static

import (
	"slices"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/hehos/jetson-hooks/internal/ui/styles"
)

var (
	headerStyle = styles.PrimaryStyle.Bold(true).PaddingRight(2)
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
)

// RenderTable renders rows as borderless, column-aligned text ending in a newline.
// The header row is omitted when every header is empty. No rows renders nothing.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	t := table.New().
		Rows(rows...).
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	if slices.ContainsFunc(headers, func(h string) bool { return h != "" }) {
		t = t.Headers(headers...)
	}

	return t.String() + "\n"
}
