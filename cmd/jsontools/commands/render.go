package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/erraggy/jsontools/internal/cliutil"
)

// RenderSummaryTable renders a table of results.
// In quiet mode, headers are omitted and rows are tab-separated for piping.
// In normal mode, a fixed-width table with headers is rendered.
func RenderSummaryTable(w io.Writer, headers []string, rows [][]string, quiet bool) {
	if len(rows) == 0 {
		return
	}

	if quiet {
		for _, row := range rows {
			cliutil.Writef(w, "%s\n", strings.Join(row, "\t"))
		}
		return
	}

	widths := columnWidths(headers, rows)
	cliutil.Writef(w, "%s\n", formatRow(headers, widths))
	for _, row := range rows {
		cliutil.Writef(w, "%s\n", formatRow(row, widths))
	}
}

// columnWidths returns the display width of each column: the widest cell,
// header included.
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

// formatRow pads each cell to its column width with two spaces between
// columns. Trailing padding is trimmed so output stays clean when piped.
func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	return strings.TrimRight(strings.Join(padded, "  "), " ")
}
