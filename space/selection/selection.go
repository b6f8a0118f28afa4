// Package selection implements the rectangular selection of the code space:
// an anchor where the selection started and a focus that follows the cursor.
package selection

import (
	"github.com/aheui/avis-sub000/space/coordinate"
	"github.com/aheui/avis-sub000/space/state"
	"github.com/aheui/avis-sub000/space/utils"
)

type Point = coordinate.Point[int]

// Selection is a rectangle spanned by two corners. Both corners are kept
// non-negative.
type Selection struct {
	state.Transactional

	anchor Point
	focus  Point
}

// New returns a caret at the origin whose changes are dispatched on a child
// of parent.
func New(parent *state.ChangeBus) *Selection {
	return &Selection{
		Transactional: state.NewTransactional(state.NewChangeBus(parent)),
	}
}

func (s *Selection) set(fn func()) {
	_ = s.Mutate(func() error {
		fn()
		s.anchor = s.anchor.AtLeast(0)
		s.focus = s.focus.AtLeast(0)
		return nil
	})
}

func (s *Selection) Anchor() Point { return s.anchor }
func (s *Selection) Focus() Point  { return s.focus }

func (s *Selection) SetAnchor(x, y int) {
	s.set(func() { s.anchor = coordinate.NewPoint(x, y) })
}

func (s *Selection) SetFocus(x, y int) {
	s.set(func() { s.focus = coordinate.NewPoint(x, y) })
}

// Set moves both corners at once.
func (s *Selection) Set(anchor, focus Point) {
	s.set(func() {
		s.anchor = anchor
		s.focus = focus
	})
}

// Caret collapses the selection onto (x, y).
func (s *Selection) Caret(x, y int) {
	s.Set(coordinate.NewPoint(x, y), coordinate.NewPoint(x, y))
}

func (s *Selection) X() int { return min(s.anchor.X, s.focus.X) }
func (s *Selection) Y() int { return min(s.anchor.Y, s.focus.Y) }

func (s *Selection) Width() int {
	return utils.Abs(s.anchor.X-s.focus.X) + 1
}

func (s *Selection) Height() int {
	return utils.Abs(s.anchor.Y-s.focus.Y) + 1
}

// Box returns the normalized rectangle as (x, y, width, height).
func (s *Selection) Box() (x, y, w, h int) {
	return s.X(), s.Y(), s.Width(), s.Height()
}

func (s *Selection) IsCaret() bool {
	return s.Width() == 1 && s.Height() == 1
}

func (s *Selection) IsSquare() bool {
	return s.Width() == s.Height()
}

// Translate shifts both corners by (dx, dy).
func (s *Selection) Translate(dx, dy int) {
	s.set(func() {
		s.anchor = s.anchor.Translate(dx, dy)
		s.focus = s.focus.Translate(dx, dy)
	})
}

// Square extends the focus along the shorter axis so the selection becomes
// square. The focus keeps its direction from the anchor on both axes.
func (s *Selection) Square() {
	dx := s.focus.X - s.anchor.X
	dy := s.focus.Y - s.anchor.Y
	size := max(utils.Abs(dx), utils.Abs(dy))
	s.set(func() {
		s.focus = coordinate.NewPoint(
			s.anchor.X+utils.Sign(dx)*size,
			s.anchor.Y+utils.Sign(dy)*size,
		)
	})
}
