package codespace

import (
	"strings"
	"testing"

	"github.com/aheui/avis-sub000/logger"
	"github.com/aheui/avis-sub000/space/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSpace(source string) *Space {
	return New(source, Options{Logger: logger.Discard})
}

func lines(s *Space) []string {
	return strings.Split(s.String(), "\n")
}

type rect struct{ x, y, w, h int }

func (r rect) X() int      { return r.x }
func (r rect) Y() int      { return r.y }
func (r rect) Width() int  { return r.w }
func (r rect) Height() int { return r.h }

func TestSpace_New(t *testing.T) {
	s := newSpace("")
	assert.Equal(t, 1, s.Height())
	assert.Equal(t, 0, s.Width())
	assert.Equal(t, "", s.String())

	s = newSpace("ab\r\ncde\rf\n")
	assert.Equal(t, []string{"ab", "cde", "f", ""}, lines(s))
	assert.Equal(t, 4, s.Height())
	assert.Equal(t, 3, s.Width())
	assert.Equal(t, 3, s.LineWidth(1))
	assert.Equal(t, 0, s.LineWidth(9))
	assert.Equal(t, "cde", s.Line(1))
	assert.Equal(t, "", s.Line(-1))
}

func TestSpace_EnsureHeight(t *testing.T) {
	s := newSpace("")
	s.EnsureHeight(3)
	assert.Equal(t, 3, s.Height())
	assert.Equal(t, 0, s.Width())
	assert.Equal(t, 0, s.LineWidth(1))
	assert.Equal(t, 0, s.LineWidth(2))
	assert.Equal(t, uint64(1), s.StateID())

	s.EnsureHeight(2)
	assert.Equal(t, 3, s.Height())
}

func TestSpace_EnsureLineWidth(t *testing.T) {
	s := newSpace("ab")
	s.EnsureLineWidth(2, 3, ".")
	assert.Equal(t, []string{"ab", "", "..."}, lines(s))
	assert.Equal(t, 3, s.Width())
	assert.Equal(t, uint64(1), s.StateID())

	notified := 0
	s.Changes().AddListener(func() { notified++ })
	s.EnsureLineWidth(0, 2, ".")
	s.EnsureLineWidth(2, 1, ".")
	assert.Equal(t, []string{"ab", "", "..."}, lines(s))
	assert.Equal(t, uint64(1), s.StateID())
	assert.Equal(t, 0, notified)

	s.EnsureLineWidth(0, 3, ".")
	assert.Equal(t, "ab.", s.Line(0))
	assert.Equal(t, uint64(2), s.StateID())
	assert.Equal(t, 1, notified)
}

func TestSpace_GetAndIndex(t *testing.T) {
	s := newSpace("ab\ncde")
	assert.Equal(t, "d", s.Get(1, 1).Char())
	assert.Nil(t, s.Get(2, 0))
	assert.Nil(t, s.Get(0, 2))
	assert.Nil(t, s.Get(-1, 0))

	assert.Equal(t, 0, s.Index(0, 0))
	assert.Equal(t, 4, s.Index(1, 1))
	assert.Equal(t, 6, s.CodeLength())
}

func TestSpace_InsertRoundTrip(t *testing.T) {
	s := newSpace("hello\nworld")
	require.NoError(t, s.Insert(1, 2, "XYZ", "_", true))
	assert.Equal(t, []string{"hello", "woXYZ"}, lines(s))
	var got strings.Builder
	for x := 2; x < 5; x++ {
		got.WriteString(s.Get(x, 1).Char())
	}
	assert.Equal(t, "XYZ", got.String())
	assert.Equal(t, 5, s.Width())
}

func TestSpace_InsertBlock(t *testing.T) {
	s := newSpace("ab")
	require.NoError(t, s.Insert(0, 1, "X\nY", "_", false))
	assert.Equal(t, []string{"aXb", "_Y"}, lines(s))
	assert.Equal(t, 3, s.Width())

	s = newSpace("a")
	require.NoError(t, s.Insert(2, 1, "Z", "_", false))
	assert.Equal(t, []string{"a", "", "_Z"}, lines(s))

	s = newSpace("a")
	require.NoError(t, s.Insert(-1, 0, "Z", "_", false))
	assert.Equal(t, "a", s.String())
}

func TestSpace_ShrinkThenPaint(t *testing.T) {
	s := newSpace("abcdef\nghijkl\nmnopqr")
	s.Shrink(0, 1, 2, 2)
	assert.Equal(t, []string{"adef", "gjkl", "mnopqr"}, lines(s))
	assert.Equal(t, 6, s.Width())

	s.Paint(0, 1, 2, 2, "_")
	assert.Equal(t, []string{"a__f", "g__l", "mnopqr"}, lines(s))
	for y := 0; y < 2; y++ {
		for x := 1; x < 3; x++ {
			assert.Equal(t, "_", s.Get(x, y).Char())
		}
	}
}

func TestSpace_ShrinkRemovesShortRows(t *testing.T) {
	s := newSpace("ab\nabcdef\nxy")
	s.Shrink(0, 0, 3, 3)
	assert.Equal(t, []string{"def"}, lines(s))
	assert.Equal(t, 3, s.Width())

	s = newSpace("abc\nxyz")
	s.Shrink(0, 0, 3, 1)
	assert.Equal(t, []string{"xyz"}, lines(s))

	// a row keeping at least w cells is only shrunk
	s = newSpace("abcdef\nabcde")
	s.Shrink(0, 0, 3, 2)
	assert.Equal(t, []string{"def"}, lines(s))
	assert.Equal(t, 3, s.Width())

	s = newSpace("a")
	s.Shrink(0, 0, 5, 1)
	assert.Equal(t, 1, s.Height())
	assert.Equal(t, 0, s.Width())

	// rows not starting at column 0 are only shrunk
	s = newSpace("ab\nabcdef")
	s.Shrink(0, 1, 3, 2)
	assert.Equal(t, []string{"a", "aef"}, lines(s))
	assert.Equal(t, 3, s.Width())
}

func TestSpace_DegenerateRectangles(t *testing.T) {
	s := newSpace("abc\ndef")
	s.Paint(5, 0, 1, 1, "_")
	s.Paint(0, 3, 1, 1, "_")
	s.Paint(0, 0, 0, 1, "_")
	s.Paint(0, 0, 1, -1, "_")
	s.Shrink(2, 0, 1, 1)
	s.InvertH(0, 0, 0, 0, "_")
	s.InvertV(0, 9, 1, 1, "_")
	s.RotateCW(0, 0, 2, 1, "_")
	s.RotateCCW(0, 0, 1, 2, "_")
	s.JoinRows(0, 1)
	s.JoinRows(5, 2)
	s.DeleteRows(0, 0)
	s.DivideAndCarryLines(3, 0, 1)
	s.ToggleBreakPoint(9, 9)
	assert.Equal(t, []string{"abc", "def"}, lines(s))
	assert.Equal(t, uint64(0), s.StateID())

	empty := newSpace("")
	empty.Paint(0, 0, 1, 1, "_")
	empty.InvertH(0, 0, 2, 2, "_")
	assert.Equal(t, "", empty.String())
}

func TestSpace_NegativeOriginIsClamped(t *testing.T) {
	s := newSpace("abc\ndef")
	s.Paint(-1, -1, 2, 2, "_")
	assert.Equal(t, []string{"_bc", "def"}, lines(s))
}

func TestSpace_JoinAndDivide(t *testing.T) {
	s := newSpace("ab\ncd\nef")
	first := s.LineWidth(0)
	s.JoinRows(0, 2)
	assert.Equal(t, []string{"abcd", "ef"}, lines(s))
	assert.Equal(t, 4, s.Width())

	s.DivideAndCarryLines(0, first, 1)
	assert.Equal(t, []string{"ab", "cd", "ef"}, lines(s))
	assert.Equal(t, 2, s.Width())

	s.JoinRows(1, 10)
	assert.Equal(t, []string{"ab", "cdef"}, lines(s))
}

func TestSpace_DivideAndCarryLines(t *testing.T) {
	s := newSpace("abc\ndef\nxyz")
	s.DivideAndCarryLines(0, 1, 2)
	assert.Equal(t, []string{"a", "d", "bc", "ef", "xyz"}, lines(s))
	assert.Equal(t, 3, s.Width())

	s = newSpace("abc\nd")
	s.DivideAndCarryLines(0, 2, 5)
	assert.Equal(t, []string{"ab", "d", "c", ""}, lines(s))
	assert.Equal(t, 2, s.Width())
}

func TestSpace_DeleteRows(t *testing.T) {
	s := newSpace("a\nbcd\ne")
	s.DeleteRow(1)
	assert.Equal(t, []string{"a", "e"}, lines(s))
	assert.Equal(t, 1, s.Width())

	s.DeleteRows(0, 5)
	assert.Equal(t, 1, s.Height())
	assert.Equal(t, "", s.String())
}

func TestSpace_ToggleBreakPoint(t *testing.T) {
	s := newSpace("아희")
	s.ToggleBreakPoint(1, 0)
	assert.True(t, s.Get(1, 0).BreakPoint())
	assert.False(t, s.Get(0, 0).BreakPoint())
	assert.Equal(t, uint64(1), s.StateID())
}

func TestSpace_Text(t *testing.T) {
	s := newSpace("abcd\nef\nghij")
	assert.Equal(t, "bc\nf\nhi", s.Text(rect{x: 1, y: 0, w: 2, h: 3}))
	assert.Equal(t, "ij", s.Text(rect{x: 2, y: 2, w: 5, h: 5}))
	assert.Equal(t, s.String(), s.Text(nil))

	var missing *rect
	assert.Equal(t, s.String(), s.Text(missing))
	assert.Equal(t, "bc\nf\nhi", s.TextAt(1, 0, 2, 3))
}

func TestSpace_FingerprintAndReset(t *testing.T) {
	a := newSpace("아희\n밯망희")
	b := newSpace("아희\n밯망희")
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	b.Paint(0, 0, 1, 1, "_")
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	b.Reset("아희\n밯망희")
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Equal(t, 3, b.Width())
}

func TestSpace_CompositeMutationIsOneTransition(t *testing.T) {
	parent := state.NewChangeBus(nil)
	s := New("abc\ndef", Options{Parent: parent, Logger: logger.Discard})
	own, up := 0, 0
	s.Changes().AddListener(func() { own++ })
	parent.AddListener(func() { up++ })

	err := s.Mutate(func() error {
		if err := s.Insert(0, 0, "XY", "_", false); err != nil {
			return err
		}
		s.Paint(1, 0, 1, 1, "_")
		return s.Mutate(func() error {
			s.Shrink(0, 1, 1, 1)
			s.RotateCW(0, 0, 2, 2, "_")
			s.JoinRows(0, 2)
			return nil
		})
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), s.StateID())
	assert.Equal(t, 1, own)
	assert.Equal(t, 1, up)

	s.Paint(0, 0, 1, 1, ".")
	assert.Equal(t, uint64(2), s.StateID())
	assert.Equal(t, 2, own)
	assert.Equal(t, 2, up)
}
