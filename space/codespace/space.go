package codespace

import (
	"reflect"
	"slices"
	"strings"

	"github.com/aheui/avis-sub000/logger"
	"github.com/aheui/avis-sub000/space/state"
	"github.com/aheui/avis-sub000/space/utils"
	"github.com/mitchellh/hashstructure/v2"
)

type Options struct {
	// Parent is the bus the space's own ChangeBus reports to. May be nil.
	Parent *state.ChangeBus

	Logger logger.Logger
}

// Rect is a normalized rectangle, as exposed by a selection.
type Rect interface {
	X() int
	Y() int
	Width() int
	Height() int
}

// Space is the code space: an ordered list of rows plus the cached length
// of the longest one.
type Space struct {
	state.Transactional

	rows []*Row

	// Length of the longest row. Grown incrementally by inserts, recomputed
	// after anything that removes cells or rows.
	width int

	logger logger.Logger
}

// New builds a space from source text. Rows are split on line breaks;
// empty source yields a single empty row.
func New(source string, opts Options) *Space {
	s := &Space{
		Transactional: state.NewTransactional(state.NewChangeBus(opts.Parent)),
		logger:        logger.OrDefault(opts.Logger),
	}
	s.load(source)
	return s
}

func (s *Space) load(source string) {
	lines := splitLines(source)
	s.rows = make([]*Row, len(lines))
	for i, line := range lines {
		s.rows[i] = &Row{cells: cellsOf(line)}
	}
	s.recomputeWidth()
}

// splitLines splits text on \r\n, \r or \n.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// mutate runs fn as a transaction that cannot fail.
func (s *Space) mutate(fn func()) {
	_ = s.Mutate(func() error {
		fn()
		return nil
	})
}

func (s *Space) Width() int  { return s.width }
func (s *Space) Height() int { return len(s.rows) }

// Get returns the cell at (x, y), or nil when there is none.
func (s *Space) Get(x, y int) *Cell {
	if y < 0 || y >= len(s.rows) {
		return nil
	}
	return s.rows[y].Cell(x)
}

// LineWidth returns the length of row y, 0 when the row does not exist.
func (s *Space) LineWidth(y int) int {
	if y < 0 || y >= len(s.rows) {
		return 0
	}
	return s.rows[y].Len()
}

// Line renders row y.
func (s *Space) Line(y int) string {
	if y < 0 || y >= len(s.rows) {
		return ""
	}
	return s.rows[y].String()
}

// Index converts (x, y) to an offset in the serialized text, counting one
// unit per row separator.
func (s *Space) Index(x, y int) int {
	y = utils.Clamp(y, 0, len(s.rows))
	index := 0
	for _, row := range s.rows[:y] {
		index += row.Len() + 1
	}
	return index + x
}

// CodeLength is the number of cells plus one per row separator.
func (s *Space) CodeLength() int {
	total := len(s.rows) - 1
	for _, row := range s.rows {
		total += row.Len()
	}
	return total
}

func (s *Space) String() string {
	lines := make([]string, len(s.rows))
	for i, row := range s.rows {
		lines[i] = row.String()
	}
	return strings.Join(lines, "\n")
}

// Text renders the part of the space inside rect, or the whole space when
// rect is nil. A typed nil such as a nil *selection.Selection counts as nil.
// Cells missing from ragged rows are simply absent.
func (s *Space) Text(rect Rect) string {
	if isNilRect(rect) {
		return s.String()
	}
	return s.TextAt(rect.X(), rect.Y(), rect.Width(), rect.Height())
}

func isNilRect(rect Rect) bool {
	if rect == nil {
		return true
	}
	v := reflect.ValueOf(rect)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// TextAt renders the w×h rectangle at (x, y).
func (s *Space) TextAt(x, y, w, h int) string {
	top := max(y, 0)
	bottom := min(y+h, len(s.rows))
	lines := make([]string, 0, max(bottom-top, 0))
	for row := top; row < bottom; row++ {
		lines = append(lines, s.rows[row].Slice(x, x+w-1))
	}
	return strings.Join(lines, "\n")
}

type fingerprint struct {
	Lines []string
}

// Fingerprint hashes the text of the space. Two spaces with the same text
// have the same fingerprint.
func (s *Space) Fingerprint() uint64 {
	fp := fingerprint{Lines: make([]string, len(s.rows))}
	for i, row := range s.rows {
		fp.Lines[i] = row.String()
	}
	hashed, err := hashstructure.Hash(fp, hashstructure.FormatV2, nil)
	utils.Assertf(err == nil, "failed to hash space: %v", err)
	return hashed
}

// Reset replaces the whole content of the space.
func (s *Space) Reset(source string) {
	s.mutate(func() { s.load(source) })
}

func (s *Space) recomputeWidth() {
	s.width = 0
	for _, row := range s.rows {
		s.width = max(s.width, row.Len())
	}
}

func (s *Space) grow(y int) {
	s.width = max(s.width, s.rows[y].Len())
}

func (s *Space) assertIntegrity() {
	utils.Assert(len(s.rows) > 0, "code space must keep at least one row")
}

// EnsureHeight appends empty rows until the space is h rows high.
func (s *Space) EnsureHeight(h int) {
	if h <= len(s.rows) {
		return
	}
	s.mutate(func() { s.ensureHeight(h) })
}

func (s *Space) ensureHeight(h int) {
	for len(s.rows) < h {
		s.rows = append(s.rows, &Row{})
	}
}

// EnsureLineWidth pads row y with fill up to w cells, growing the space
// downward first when needed.
func (s *Space) EnsureLineWidth(y, w int, fill string) {
	if y < 0 || (y < len(s.rows) && s.rows[y].Len() >= w) {
		return
	}
	s.mutate(func() { s.ensureLineWidth(y, w, fill) })
}

func (s *Space) ensureLineWidth(y, w int, fill string) {
	s.ensureHeight(y + 1)
	s.rows[y].EnsureLength(w, fill)
	s.grow(y)
}

// Insert writes text at (col, row). Each line of text goes to its own row,
// starting at col, so a multi-line text lands as a block.
func (s *Space) Insert(row, col int, text, fill string, overwrite bool) error {
	if row < 0 || col < 0 {
		s.logger.Debug("insert outside the space, skipped", "row", row, "col", col)
		return nil
	}
	return s.Mutate(func() error {
		return s.insert(row, col, splitLines(text), fill, overwrite)
	})
}

func (s *Space) insert(row, col int, lines []string, fill string, overwrite bool) error {
	s.ensureHeight(row + len(lines))
	for i, line := range lines {
		if err := s.rows[row+i].Insert(col, line, fill, overwrite); err != nil {
			return err
		}
		s.grow(row + i)
	}
	return nil
}

// clampRect moves a negative origin back into the space, shrinking the
// rectangle accordingly, and reports whether anything is left to operate on.
func (s *Space) clampRect(op string, row, col, w, h int) (int, int, int, int, bool) {
	if row < 0 {
		h += row
		row = 0
	}
	if col < 0 {
		w += col
		col = 0
	}
	if w < 1 || h < 1 || row >= len(s.rows) || col >= s.width {
		s.logger.Debug("degenerate rectangle, skipped",
			"op", op, "row", row, "col", col, "w", w, "h", h)
		return row, col, w, h, false
	}
	return row, col, w, h, true
}

// Paint overwrites the w×h rectangle at (col, row) with fill cells. Rows
// are not extended.
func (s *Space) Paint(row, col, w, h int, fill string) {
	row, col, w, h, ok := s.clampRect("paint", row, col, w, h)
	if !ok {
		return
	}
	s.mutate(func() {
		for y := row; y < min(row+h, len(s.rows)); y++ {
			s.rows[y].Paint(col, w, fill)
		}
	})
}

// Shrink deletes the w×h rectangle at (col, row), pulling the rest of each
// row to the left. When col is 0, a row that would keep fewer than w cells
// is removed entirely.
func (s *Space) Shrink(row, col, w, h int) {
	row, col, w, h, ok := s.clampRect("shrink", row, col, w, h)
	if !ok {
		return
	}
	s.mutate(func() {
		var remove []int
		for y := row; y < min(row+h, len(s.rows)); y++ {
			if col == 0 && max(s.rows[y].Len()-w, 0) < w {
				remove = append(remove, y)
				continue
			}
			s.rows[y].Shrink(col, w)
		}
		s.removeRows(remove)
	})
}

func (s *Space) removeRows(indexes []int) {
	s.rows = utils.RemoveIndexes(s.rows, indexes)
	if len(s.rows) == 0 {
		s.rows = append(s.rows, &Row{})
	}
	s.assertIntegrity()
	s.recomputeWidth()
}

// JoinRows appends the next height-1 rows to row and removes them.
func (s *Space) JoinRows(row, height int) {
	if row < 0 || row >= len(s.rows) || height < 2 {
		return
	}
	n := min(height, len(s.rows)-row)
	s.mutate(func() {
		first := s.rows[row]
		for _, next := range s.rows[row+1 : row+n] {
			first.Append(next)
		}
		s.rows = slices.Delete(s.rows, row+1, row+n)
		s.recomputeWidth()
	})
}

// DeleteRows removes height rows starting at row.
func (s *Space) DeleteRows(row, height int) {
	if row < 0 || row >= len(s.rows) || height < 1 {
		return
	}
	n := min(height, len(s.rows)-row)
	s.mutate(func() {
		s.rows = slices.Delete(s.rows, row, row+n)
		if len(s.rows) == 0 {
			s.rows = append(s.rows, &Row{})
		}
		s.assertIntegrity()
		s.recomputeWidth()
	})
}

// DeleteRow removes a single row.
func (s *Space) DeleteRow(row int) {
	s.DeleteRows(row, 1)
}

// DivideAndCarryLines splits height rows at col. The heads stay in place
// and the tails are inserted, in order, right below the block.
func (s *Space) DivideAndCarryLines(row, col, height int) {
	if row < 0 || row >= len(s.rows) || height < 1 {
		return
	}
	n := min(height, len(s.rows)-row)
	s.mutate(func() {
		tails := make([]*Row, n)
		for i := 0; i < n; i++ {
			tails[i] = s.rows[row+i].Divide(col)
		}
		s.rows = utils.Splice(s.rows, row+n, 0, tails...)
		s.recomputeWidth()
	})
}

// ToggleBreakPoint flips the break point flag of the cell at (x, y).
func (s *Space) ToggleBreakPoint(x, y int) {
	cell := s.Get(x, y)
	if cell == nil {
		return
	}
	s.mutate(cell.ToggleBreakPoint)
}
