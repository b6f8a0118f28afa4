package codespace

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aheui/avis-sub000/space/utils"
	"github.com/rivo/uniseg"
)

// Row is one line of the code space. Rows are ragged: each one has its own
// length.
type Row struct {
	cells []*Cell
}

// NewRow builds a row from text, one cell per grapheme cluster.
func NewRow(text string) (*Row, error) {
	if err := checkRowText(text); err != nil {
		return nil, err
	}
	return &Row{cells: cellsOf(text)}, nil
}

func checkRowText(text string) error {
	if strings.ContainsAny(text, "\r\n") {
		return fmt.Errorf("%w: row text %q contains a line break",
			ErrInvalidInput, text)
	}
	return nil
}

// cellsOf splits text into cells, one per user-perceived character.
func cellsOf(text string) []*Cell {
	cells := make([]*Cell, 0, len(text))
	state := -1
	for len(text) > 0 {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		cells = append(cells, NewCell(cluster))
	}
	return cells
}

func fillCells(n int, fill string) []*Cell {
	cells := make([]*Cell, max(n, 0))
	for i := range cells {
		cells[i] = NewCell(fill)
	}
	return cells
}

func (r *Row) Len() int {
	return len(r.cells)
}

// Cell returns the cell at index, or nil when index is out of the row.
func (r *Row) Cell(index int) *Cell {
	if index < 0 || index >= len(r.cells) {
		return nil
	}
	return r.cells[index]
}

// EnsureLength appends fill cells until the row is at least n long.
func (r *Row) EnsureLength(n int, fill string) {
	if len(r.cells) >= n {
		return
	}
	r.cells = append(r.cells, fillCells(n-len(r.cells), fill)...)
}

// Insert puts text at index, padding the row with fill up to index first.
// With overwrite the new cells replace as many existing ones, otherwise they
// push the rest of the row to the right.
func (r *Row) Insert(index int, text, fill string, overwrite bool) error {
	if err := checkRowText(text); err != nil {
		return err
	}
	r.insertCells(max(index, 0), cellsOf(text), fill, overwrite)
	return nil
}

func (r *Row) insertCells(index int, cells []*Cell, fill string, overwrite bool) {
	r.EnsureLength(index, fill)
	deleteCount := 0
	if overwrite {
		deleteCount = len(cells)
	}
	r.cells = utils.Splice(r.cells, index, deleteCount, cells...)
}

// span clamps [index, index+length) to the row.
func (r *Row) span(index, length int) (start, end int, ok bool) {
	if index < 0 {
		length += index
		index = 0
	}
	if length < 1 || index >= len(r.cells) {
		return 0, 0, false
	}
	return index, min(index+length, len(r.cells)), true
}

// Paint replaces the cells in [index, index+length) with fresh fill cells.
// The row never grows.
func (r *Row) Paint(index, length int, fill string) {
	start, end, ok := r.span(index, length)
	if !ok {
		return
	}
	for i := start; i < end; i++ {
		r.cells[i] = NewCell(fill)
	}
}

// Divide truncates the row at index and returns the removed tail.
func (r *Row) Divide(index int) *Row {
	index = utils.Clamp(index, 0, len(r.cells))
	tail := &Row{cells: slices.Clone(r.cells[index:])}
	r.cells = slices.Delete(r.cells, index, len(r.cells))
	return tail
}

// Shrink removes the cells in [index, index+length).
func (r *Row) Shrink(index, length int) {
	start, end, ok := r.span(index, length)
	if !ok {
		return
	}
	r.cells = slices.Delete(r.cells, start, end)
}

// Append moves the cells of other to the end of r.
func (r *Row) Append(other *Row) {
	r.cells = append(r.cells, other.cells...)
}

// InvertH mirrors [index, index+length) left to right. With glyphs every
// cell also gets its horizontal glyph rewrite.
func (r *Row) InvertH(index, length int, glyphs bool) {
	start, end, ok := r.span(index, length)
	if !ok {
		return
	}
	if glyphs {
		for _, c := range r.cells[start:end] {
			c.InvertH()
		}
	}
	utils.Reverse(r.cells[start:end])
}

// InvertV applies the vertical glyph rewrite. Rows are swapped by the space.
func (r *Row) InvertV(index, length int) {
	r.each(index, length, (*Cell).InvertV)
}

func (r *Row) RotateCW(index, length int) {
	r.each(index, length, (*Cell).RotateCW)
}

func (r *Row) RotateCCW(index, length int) {
	r.each(index, length, (*Cell).RotateCCW)
}

func (r *Row) each(index, length int, fn func(*Cell)) {
	start, end, ok := r.span(index, length)
	if !ok {
		return
	}
	for _, c := range r.cells[start:end] {
		fn(c)
	}
}

// swapCells exchanges [index, index+length) between r and other. Both rows
// must already be long enough.
func (r *Row) swapCells(other *Row, index, length int) {
	for i := index; i < index+length; i++ {
		r.cells[i], other.cells[i] = other.cells[i], r.cells[i]
	}
}

// IsBlankFrom reports whether every cell from col onward is blank.
func (r *Row) IsBlankFrom(col int, fill string) bool {
	for i := max(col, 0); i < len(r.cells); i++ {
		if !r.cells[i].IsBlank(fill) {
			return false
		}
	}
	return true
}

// blankRun counts the blank cells starting at col, up to limit. Space past
// the end of the row is free, so reaching it yields limit.
func (r *Row) blankRun(col, limit int, fill string) int {
	for d := 0; d < limit; d++ {
		if col+d >= len(r.cells) {
			return limit
		}
		if !r.cells[col+d].IsBlank(fill) {
			return d
		}
	}
	return limit
}

// DisplayWidth is the number of terminal columns the row occupies.
func (r *Row) DisplayWidth() int {
	width := 0
	for _, c := range r.cells {
		width += c.Width()
	}
	return width
}

func (r *Row) Chars() []string {
	chars := make([]string, len(r.cells))
	for i, c := range r.cells {
		chars[i] = c.char
	}
	return chars
}

func (r *Row) String() string {
	var sb strings.Builder
	for _, c := range r.cells {
		sb.WriteString(c.char)
	}
	return sb.String()
}

// Slice renders the cells in [left, right], clamped to the row.
func (r *Row) Slice(left, right int) string {
	left = max(left, 0)
	right = min(right, len(r.cells)-1)
	var sb strings.Builder
	for i := left; i <= right; i++ {
		sb.WriteString(r.cells[i].char)
	}
	return sb.String()
}
