package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Align is a column alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Table is a plain-text table whose column widths follow the display width
// of its cells, so ANSI previews and wide (CJK) text stay aligned.
type Table struct {
	headers     []string
	rows        [][]string
	padding     int
	align       map[int]Align
	headerStyle *lipgloss.Style
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2,
		align:   make(map[int]Align),
	}
}

// SetAlign sets the alignment of a column.
func (t *Table) SetAlign(col int, a Align) {
	t.align[col] = a
}

// SetHeaderStyle styles the header row after padding.
func (t *Table) SetHeaderStyle(s lipgloss.Style) {
	t.headerStyle = &s
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(row ...string) {
	r := make([]string, len(t.headers))
	copy(r, row)
	t.rows = append(t.rows, r)
}

// Render formats the table.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var b strings.Builder

	parts := make([]string, len(t.headers))
	for i, h := range t.headers {
		parts[i] = t.pad(i, h, widths[i])
		if t.headerStyle != nil {
			parts[i] = t.headerStyle.Render(parts[i])
		}
	}
	writeLine(&b, parts, gap)

	for i, w := range widths {
		parts[i] = strings.Repeat("-", w)
	}
	writeLine(&b, parts, gap)

	for _, row := range t.rows {
		for i, cell := range row {
			parts[i] = t.pad(i, cell, widths[i])
		}
		writeLine(&b, parts, gap)
	}
	return b.String()
}

func (t *Table) pad(col int, s string, width int) string {
	if t.align[col] == AlignRight {
		return padLeft(s, width)
	}
	return padRight(s, width)
}

func writeLine(b *strings.Builder, parts []string, gap string) {
	b.WriteString(strings.TrimRight(strings.Join(parts, gap), " "))
	b.WriteString("\n")
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func padLeft(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}
