package cli

import (
	"strings"
)

// Table is a plain-text table with columns sized to their widest cell.
// ANSI escape sequences (colour swatches) do not count towards cell width.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2, // 2 spaces between columns
	}
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	if len(row) != len(t.headers) {
		newRow := make([]string, len(t.headers))
		copy(newRow, row)
		t.rows = append(t.rows, newRow)
		return
	}
	t.rows = append(t.rows, row)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = visibleLen(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := visibleLen(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	sep := strings.Repeat(" ", t.padding)
	var result strings.Builder

	writeLine := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = padRight(cell, colWidths[i])
		}
		result.WriteString(strings.TrimRight(strings.Join(parts, sep), " "))
		result.WriteString("\n")
	}

	writeLine(t.headers)

	dashes := make([]string, len(colWidths))
	for i, w := range colWidths {
		dashes[i] = strings.Repeat("-", w)
	}
	writeLine(dashes)

	for _, row := range t.rows {
		writeLine(row)
	}

	return result.String()
}

// padRight pads s with spaces to the desired visible width.
func padRight(s string, width int) string {
	n := visibleLen(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// visibleLen returns the printed width of s, skipping ANSI CSI sequences.
func visibleLen(s string) int {
	n := 0
	inEscape := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inEscape:
			if c >= 0x40 && c <= 0x7e && c != '[' {
				inEscape = false
			}
		case c == 0x1b:
			inEscape = true
		default:
			n++
		}
	}
	return n
}
