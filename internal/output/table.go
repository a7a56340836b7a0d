// =============================================================================
// internal/output/table.go - Table formatting utilities
// =============================================================================
package output

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Table represents a formatted table
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a new table with the given headers
func NewTable(headers []string) *Table {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = displayWidth(header)
	}

	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		widths:  widths,
	}
}

// AddRow adds a row to the table, padding or truncating it to the header count
func (t *Table) AddRow(row []string) {
	if len(row) != len(t.headers) {
		newRow := make([]string, len(t.headers))
		copy(newRow, row)
		row = newRow
	}

	for i, cell := range row {
		if w := displayWidth(cell); w > t.widths[i] {
			t.widths[i] = w
		}
	}

	t.rows = append(t.rows, row)
}

// Render renders the table to the writer
func (t *Table) Render(writer io.Writer) error {
	if len(t.headers) == 0 {
		return nil
	}

	totalWidth := 0
	for _, width := range t.widths {
		totalWidth += width + 3 // " x " plus separator
	}
	totalWidth--

	var b strings.Builder
	fmt.Fprintf(&b, "┌%s┐\n", strings.Repeat("─", totalWidth))
	t.renderRow(&b, t.headers)
	fmt.Fprintf(&b, "├%s┤\n", strings.Repeat("─", totalWidth))
	for _, row := range t.rows {
		t.renderRow(&b, row)
	}
	fmt.Fprintf(&b, "└%s┘\n", strings.Repeat("─", totalWidth))

	_, err := io.WriteString(writer, b.String())
	return err
}

func (t *Table) renderRow(b *strings.Builder, row []string) {
	b.WriteString("│")
	for i, cell := range row {
		b.WriteString(" ")
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", t.widths[i]-displayWidth(cell)))
		b.WriteString(" │")
	}
	b.WriteString("\n")
}

// displayWidth counts runes, ignoring color escape sequences
func displayWidth(s string) int {
	return utf8.RuneCountInString(ansiEscape.ReplaceAllString(s, ""))
}
