package codespace

// back pads every row of the rectangle with fill so each position of it is
// a real cell.
func (s *Space) back(row, col, w, h int, fill string) {
	for y := row; y < row+h; y++ {
		s.ensureLineWidth(y, col+w, fill)
	}
}

// InvertH mirrors the rectangle left to right, rewriting glyph directions.
func (s *Space) InvertH(row, col, w, h int, fill string) {
	row, col, w, h, ok := s.clampRect("invertH", row, col, w, h)
	if !ok {
		return
	}
	s.mutate(func() {
		s.back(row, col, w, h, fill)
		for y := row; y < row+h; y++ {
			s.rows[y].InvertH(col, w, true)
		}
	})
}

// InvertV mirrors the rectangle top to bottom, rewriting glyph directions.
func (s *Space) InvertV(row, col, w, h int, fill string) {
	row, col, w, h, ok := s.clampRect("invertV", row, col, w, h)
	if !ok {
		return
	}
	s.mutate(func() {
		s.back(row, col, w, h, fill)
		for y := row; y < row+h; y++ {
			s.rows[y].InvertV(col, w)
		}
		for i := 0; i < h/2; i++ {
			s.rows[row+i].swapCells(s.rows[row+h-1-i], col, w)
		}
	})
}

// RotateCW turns a square rectangle a quarter turn clockwise. Rectangles
// that are not square are left alone.
func (s *Space) RotateCW(row, col, w, h int, fill string) {
	if w != h {
		s.logger.Debug("rotation needs a square", "w", w, "h", h)
		return
	}
	row, col, w, h, ok := s.clampRect("rotateCW", row, col, w, h)
	if !ok || w != h {
		return
	}
	s.mutate(func() {
		s.back(row, col, w, h, fill)
		for y := row; y < row+h; y++ {
			s.rows[y].RotateCW(col, w)
		}
		s.transpose(row, col, w)
		for y := row; y < row+h; y++ {
			s.rows[y].InvertH(col, w, false)
		}
	})
}

// RotateCCW turns a square rectangle a quarter turn counterclockwise.
func (s *Space) RotateCCW(row, col, w, h int, fill string) {
	if w != h {
		s.logger.Debug("rotation needs a square", "w", w, "h", h)
		return
	}
	row, col, w, h, ok := s.clampRect("rotateCCW", row, col, w, h)
	if !ok || w != h {
		return
	}
	s.mutate(func() {
		s.back(row, col, w, h, fill)
		for y := row; y < row+h; y++ {
			s.rows[y].RotateCCW(col, w)
			s.rows[y].InvertH(col, w, false)
		}
		s.transpose(row, col, w)
	})
}

// transpose mirrors the n×n square at (col, row) across its main diagonal.
func (s *Space) transpose(row, col, n int) {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := s.rows[row+i], s.rows[row+j]
			a.cells[col+j], b.cells[col+i] = b.cells[col+i], a.cells[col+j]
		}
	}
}
