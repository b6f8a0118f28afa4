package codespace

import (
	"github.com/aheui/avis-sub000/space/utils"
	"github.com/rivo/uniseg"
)

// InsertChunk pastes a block of text at (col, row) without destroying what
// is already there. With overwrite it is plain Insert. Otherwise existing
// content is pushed out of the way:
//
//   - pushDown: if the first row is blank from col onward it is written in
//     place; every other line of the block becomes a new row inserted below
//     it (or at row, pushing it down, when it was not blank).
//   - otherwise: blank cells at the paste point are overwritten as far as
//     every row of the block allows, and the rest of the block is inserted,
//     shifting the remaining content of all those rows right by the same
//     amount so it stays aligned. Lines past the end of the space become
//     new rows.
func (s *Space) InsertChunk(row, col int, text, fill string, pushDown, overwrite bool) error {
	if overwrite {
		return s.Insert(row, col, text, fill, true)
	}
	if row < 0 || col < 0 {
		s.logger.Debug("chunk outside the space, skipped", "row", row, "col", col)
		return nil
	}
	lines := splitLines(text)
	return s.Mutate(func() error {
		s.ensureHeight(row)
		if pushDown {
			return s.insertChunkDown(row, col, lines, fill)
		}
		return s.insertChunkRight(row, col, lines, fill)
	})
}

// InsertChunkSmart picks the paste direction for InsertChunk. The rows the
// block would cover are scanned from the top: if the first one with content
// at or after col is the top row, the block pushes right; otherwise, or if
// all of them are blank, it pushes down.
func (s *Space) InsertChunkSmart(row, col int, text, fill string, overwrite bool) error {
	height := len(splitLines(text))
	pushDown := true
	for i := 0; i < height && row+i < len(s.rows); i++ {
		if row+i < 0 {
			continue
		}
		if !s.rows[row+i].IsBlankFrom(col, fill) {
			pushDown = i != 0
			break
		}
	}
	s.logger.Debug("smart paste", "row", row, "col", col, "pushDown", pushDown)
	return s.InsertChunk(row, col, text, fill, pushDown, overwrite)
}

func chunkWidth(lines []string) int {
	width := 0
	for _, line := range lines {
		width = max(width, uniseg.GraphemeClusterCount(line))
	}
	return width
}

func (s *Space) insertChunkDown(row, col int, lines []string, fill string) error {
	affected := 0
	if row < len(s.rows) && s.rows[row].IsBlankFrom(col, fill) {
		s.rows[row].EnsureLength(col, fill)
		affected = 1
	}
	if affected == 1 {
		if err := s.rows[row].Insert(col, lines[0], fill, true); err != nil {
			return err
		}
		s.grow(row)
	}
	return s.insertNewRows(row+affected, col, lines[affected:], fill)
}

func (s *Space) insertChunkRight(row, col int, lines []string, fill string) error {
	width := chunkWidth(lines)
	affected := max(0, min(len(lines), len(s.rows)-row))

	// Every affected row can take this many pasted cells in place.
	safe := width
	for i := 0; i < affected; i++ {
		safe = min(safe, s.rows[row+i].blankRun(col, width, fill))
	}
	shift := width - safe

	for i := 0; i < affected; i++ {
		r := s.rows[row+i]
		cells := cellsOf(lines[i])
		head := cells[:min(safe, len(cells))]
		rest := cells[len(head):]
		if len(head) > 0 {
			r.insertCells(col, head, fill, true)
		}
		if shift > 0 && (len(rest) > 0 || r.Len() > col+safe) {
			rest = append(rest, fillCells(shift-len(rest), fill)...)
			r.insertCells(col+safe, rest, fill, false)
		}
		s.grow(row + i)
	}
	return s.insertNewRows(row+affected, col, lines[affected:], fill)
}

// insertNewRows inserts one new row per line at index at, each holding its
// line starting at col.
func (s *Space) insertNewRows(at, col int, lines []string, fill string) error {
	if len(lines) == 0 {
		return nil
	}
	rows := make([]*Row, len(lines))
	for i, line := range lines {
		r := &Row{}
		if err := r.Insert(col, line, fill, false); err != nil {
			return err
		}
		rows[i] = r
		s.width = max(s.width, r.Len())
	}
	s.rows = utils.Splice(s.rows, at, 0, rows...)
	return nil
}
