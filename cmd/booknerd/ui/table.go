package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column describes one table column. Numeric columns read better
// right-aligned.
type Column struct {
	Title string
	Align lipgloss.Position
}

// Table renders static rows under fixed headers, each column sized to its
// widest cell.
type Table struct {
	Title   string
	Columns []Column
	Rows    [][]string
}

// NewTable creates an empty table with the given title and columns.
func NewTable(title string, columns ...Column) *Table {
	return &Table{
		Title:   title,
		Columns: columns,
		Rows:    make([][]string, 0),
	}
}

// AddRow appends one row. Extra cells beyond the column count are dropped.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// View renders the table using the provided styles.
func (t *Table) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	// Column widths track the widest header or cell, plus cell padding.
	colWidths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		colWidths[i] = lipgloss.Width(c.Title)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				if w := lipgloss.Width(cell); w > colWidths[i] {
					colWidths[i] = w
				}
			}
		}
	}
	for i := range colWidths {
		colWidths[i] += 2
	}

	headerStyle := styles.Bold.Padding(0, 1)
	rowStyle := styles.Body.Padding(0, 1)
	sepStyle := styles.Muted

	for i, c := range t.Columns {
		sb.WriteString(headerStyle.Width(colWidths[i]).Align(c.Align).Render(c.Title))
		if i < len(t.Columns)-1 {
			sb.WriteString(sepStyle.Render("|"))
		}
	}
	sb.WriteString("\n")

	totalWidth := len(t.Columns) - 1
	for _, w := range colWidths {
		totalWidth += w
	}
	sb.WriteString(sepStyle.Render(strings.Repeat("-", totalWidth)) + "\n")

	for _, row := range t.Rows {
		for i, cell := range row {
			if i >= len(colWidths) {
				break
			}
			sb.WriteString(rowStyle.Width(colWidths[i]).Align(t.Columns[i].Align).Render(cell))
			if i < len(row)-1 && i < len(t.Columns)-1 {
				sb.WriteString(sepStyle.Render("|"))
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	return sb.String()
}
