package model

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// cellSeparator joins adjacent cells on a grid line.
const cellSeparator = "  "

// Cell is a single table cell. Its content is written to a private Canvas
// so that nothing inside the cell leaks into the surrounding document
// before the table is laid out.
type Cell struct {
	*Canvas

	Align  HorizontalAlignment
	Valign VerticalAlignment

	// Layout state, populated while the owning table renders.
	lines     []string // fully padded lines, ready for the grid
	lineLens  []int    // rune length of each content line before padding
	lineShift []int    // leading pad runes added by horizontal alignment
	absStarts []int    // table-text rune offset of each content line
	vertPad   int      // blank lines added above by vertical alignment
	width     int      // column display width assigned to this cell
}

// NewCell returns an empty cell with the given alignment, backed by a
// fresh private canvas.
func NewCell(align HorizontalAlignment, valign VerticalAlignment) *Cell {
	return &Cell{Canvas: NewCanvas(), Align: align, Valign: valign}
}

// normalize flushes the cell's canvas and splits its blocks into single
// lines. It returns the cell's natural height.
func (tc *Cell) normalize() int {
	tc.flushInline()
	tc.lines = nil
	for _, b := range tc.blocks {
		tc.lines = append(tc.lines, strings.Split(b, "\n")...)
	}
	// margins written by block elements inside the cell would otherwise
	// become blank grid rows
	for len(tc.lines) > 0 && strings.TrimSpace(tc.lines[len(tc.lines)-1]) == "" {
		tc.lines = tc.lines[:len(tc.lines)-1]
	}
	if len(tc.lines) == 0 {
		tc.lines = []string{""}
	}
	tc.lineLens = make([]int, len(tc.lines))
	for i, l := range tc.lines {
		tc.lineLens[i] = utf8.RuneCountInString(l)
	}
	tc.lineShift = make([]int, len(tc.lines))
	tc.absStarts = make([]int, len(tc.lines))
	tc.vertPad = 0
	return len(tc.lines)
}

// contentWidth returns the display width of the cell's widest line.
func (tc *Cell) contentWidth() int {
	w := 0
	for _, l := range tc.lines {
		if dw := displayWidth(l); dw > w {
			w = dw
		}
	}
	return w
}

// setWidth pads every line to the column width per the cell's horizontal
// alignment, recording the shift introduced before each content line.
func (tc *Cell) setWidth(w int) {
	tc.width = w
	for i, l := range tc.lines {
		pad := w - displayWidth(l)
		if pad < 0 {
			pad = 0
		}
		left := 0
		switch tc.Align {
		case AlignRight:
			left = pad
		case AlignCenter:
			left = pad / 2
		}
		tc.lineShift[i] = left
		tc.lines[i] = strings.Repeat(" ", left) + l + strings.Repeat(" ", pad-left)
	}
}

// setHeight pads the cell to the row height per its vertical alignment.
func (tc *Cell) setHeight(h int) {
	rows := len(tc.lines)
	if rows >= h {
		return
	}
	pad := h - rows
	blank := strings.Repeat(" ", tc.width)
	switch tc.Valign {
	case VAlignBottom:
		tc.vertPad = pad
	case VAlignMiddle:
		tc.vertPad = pad / 2
	}
	padded := make([]string, 0, h)
	for i := 0; i < tc.vertPad; i++ {
		padded = append(padded, blank)
	}
	padded = append(padded, tc.lines...)
	for len(padded) < h {
		padded = append(padded, blank)
	}
	tc.lines = padded
}

// translate maps an annotation over the cell's private text into the
// coordinate space of the rendered table. It reports false for spans that
// collapse to nothing after clamping.
func (tc *Cell) translate(a Annotation) (Annotation, bool) {
	start, ok := tc.mapOffset(a.Start)
	if !ok {
		return Annotation{}, false
	}
	end, ok := tc.mapOffset(a.End)
	if !ok || end <= start {
		return Annotation{}, false
	}
	return Annotation{Start: start, End: end, Label: a.Label}, true
}

// mapOffset converts a rune offset into the cell's own text (content
// lines joined by newlines) to a rune offset into the rendered table
// text. Offsets that fall into trailing margin bookkeeping are clamped to
// the end of the last content line.
func (tc *Cell) mapOffset(off int) (int, bool) {
	lineStart := 0
	for i, l := range tc.lineLens {
		lineEnd := lineStart + l
		if off <= lineEnd || i == len(tc.lineLens)-1 {
			if off < lineStart {
				off = lineStart
			}
			if off > lineEnd {
				off = lineEnd
			}
			return tc.absStarts[i] + (off - lineStart), true
		}
		lineStart = lineEnd + 1
	}
	return 0, false
}

// Row is an ordered run of cells sharing one vertical extent.
type Row struct {
	Cells []*Cell
}

// Table buffers the rows and cells of one HTML table until the closing
// tag is seen, then lays them out into a grid: each column as wide as its
// widest cell, cells padded per their alignment, rows joined by line
// breaks. Tables nest by stacking; each level keeps its own grid.
type Table struct {
	Rows []*Row

	// CellOpen tracks whether a cell is currently accepting writes. At
	// most one cell per table may be open; opening a new row or cell
	// implicitly closes it, which tolerates malformed markup.
	CellOpen bool
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// AddRow appends a new, empty row.
func (t *Table) AddRow() {
	t.Rows = append(t.Rows, &Row{})
}

// AddCell appends a cell to the current row, creating a row first if a
// stray cell appears before any row was opened.
func (t *Table) AddCell(c *Cell) {
	if len(t.Rows) == 0 {
		t.AddRow()
	}
	row := t.Rows[len(t.Rows)-1]
	row.Cells = append(row.Cells, c)
}

// Text lays the table out and returns it as a single block of verbatim
// text. The layout is computed in two passes: first the natural size of
// every cell, then column widths and row heights, padding each cell per
// its alignment. Cell line offsets are recorded so Annotations can
// translate cell-relative spans afterwards.
func (t *Table) Text() string {
	heights := make([]int, len(t.Rows))
	cols := 0
	for i, row := range t.Rows {
		h := 1
		for _, c := range row.Cells {
			if n := c.normalize(); n > h {
				h = n
			}
		}
		heights[i] = h
		if len(row.Cells) > cols {
			cols = len(row.Cells)
		}
	}

	for col := 0; col < cols; col++ {
		w := 0
		for _, row := range t.Rows {
			if col < len(row.Cells) {
				if cw := row.Cells[col].contentWidth(); cw > w {
					w = cw
				}
			}
		}
		for _, row := range t.Rows {
			if col < len(row.Cells) {
				row.Cells[col].setWidth(w)
			}
		}
	}
	for i, row := range t.Rows {
		for _, c := range row.Cells {
			c.setHeight(heights[i])
		}
	}

	var lines []string
	offset := 0 // rune offset of the next line within the table text
	for i, row := range t.Rows {
		for li := 0; li < heights[i]; li++ {
			parts := make([]string, len(row.Cells))
			colOff := offset
			for ci, c := range row.Cells {
				parts[ci] = c.lines[li]
				if content := li - c.vertPad; content >= 0 && content < len(c.absStarts) {
					c.absStarts[content] = colOff + c.lineShift[content]
				}
				// Advance by the actual rune count: display width and
				// rune count differ for East Asian wide content.
				colOff += utf8.RuneCountInString(c.lines[li]) + utf8.RuneCountInString(cellSeparator)
			}
			line := strings.Join(parts, cellSeparator)
			lines = append(lines, line)
			offset += utf8.RuneCountInString(line) + 1
		}
	}
	return strings.Join(lines, "\n")
}

// Annotations returns every annotation recorded inside the table's cells,
// translated into the coordinate space of the canvas the rendered table
// was written to. startIdx is the rune index at which the table text was
// inserted. Text must be called first.
func (t *Table) Annotations(startIdx int) []Annotation {
	var out []Annotation
	for _, row := range t.Rows {
		for _, c := range row.Cells {
			for _, a := range c.Canvas.Annotations {
				if ta, ok := c.translate(a); ok {
					ta.Start += startIdx
					ta.End += startIdx
					out = append(out, ta)
				}
			}
		}
	}
	return out
}

// displayWidth returns the number of terminal columns the string occupies,
// counting East Asian wide and fullwidth runes as two.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}
