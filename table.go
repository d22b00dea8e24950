package limitdoc

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// widthCond measures display width independently of the RUNEWIDTH_EASTASIAN
// and locale environment, so identical input renders identical tables.
var widthCond = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// Grid is a materialized table: a header and rows of cell text with the same
// shape. Column widths are derived from the content on demand.
type Grid struct {
	Header    []string   `json:"header" yaml:"header"`
	Rows      [][]string `json:"rows" yaml:"rows"`
	MinWidths []int      `json:"-" yaml:"-"`
}

// NewGrid extracts cells from rows with layout, sorting rows by name first.
// It fails if any row's cell count differs from the header.
func NewGrid(layout Layout, rows []LimitRow) (Grid, error) {
	if layout.Cells == nil {
		return Grid{}, fmt.Errorf("%w: layout has no cell extractor", ErrColumnMismatch)
	}
	sorted := sortedRows(rows)
	g := Grid{
		Header:    layout.Header,
		Rows:      make([][]string, len(sorted)),
		MinWidths: layout.MinWidths,
	}
	for i, r := range sorted {
		g.Rows[i] = layout.Cells(r)
		if len(g.Rows[i]) != len(g.Header) {
			return Grid{}, fmt.Errorf("%w: row %d (%q) has %d cells, header has %d", ErrColumnMismatch, i, r.Name, len(g.Rows[i]), len(g.Header))
		}
	}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// Validate reports whether every row has exactly one cell per header column.
func (g Grid) Validate() error {
	if len(g.MinWidths) > 0 && len(g.MinWidths) != len(g.Header) {
		return fmt.Errorf("%w: %d min widths for %d columns", ErrColumnMismatch, len(g.MinWidths), len(g.Header))
	}
	for i, row := range g.Rows {
		if len(row) != len(g.Header) {
			name := ""
			if len(row) > 0 {
				name = row[0]
			}
			return fmt.Errorf("%w: row %d (%q) has %d cells, header has %d", ErrColumnMismatch, i, name, len(row), len(g.Header))
		}
	}
	return nil
}

// Widths returns the display width of each column: the widest of its header
// label, its cells and its reserved minimum.
func (g Grid) Widths() []int {
	widths := make([]int, len(g.Header))
	for i, h := range g.Header {
		widths[i] = widthCond.StringWidth(h)
		if i < len(g.MinWidths) && g.MinWidths[i] > widths[i] {
			widths[i] = g.MinWidths[i]
		}
	}
	for _, row := range g.Rows {
		for i, cell := range row {
			if w := widthCond.StringWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// RenderTable renders rows as a reStructuredText simple table: a rule of "="
// per column, the header, a rule, one line per row sorted by name, a closing
// rule and a blank line.
func RenderTable(layout Layout, rows []LimitRow) (Text, error) {
	g, err := NewGrid(layout, rows)
	if err != nil {
		return nil, err
	}
	return renderRST(g), nil
}

func renderRST(g Grid) Text {
	widths := g.Widths()
	rule := make([]string, len(widths))
	for i, width := range widths {
		rule[i] = strings.Repeat("=", width)
	}
	sep := strings.Join(rule, " ")

	var b lineBuilder
	b.add(sep, rstRow(g.Header, widths), sep)
	for _, row := range g.Rows {
		b.add(rstRow(row, widths))
	}
	b.add(sep, "")
	return b.text()
}

func rstRow(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = alignCell(cells[i], width)
	}
	return strings.TrimRight(strings.Join(parts, " "), " ")
}

func alignCell(s string, width int) string {
	pad := width - widthCond.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
