package selection

import (
	"testing"

	"github.com/aheui/avis-sub000/space/coordinate"
	"github.com/aheui/avis-sub000/space/state"
	"github.com/stretchr/testify/assert"
)

func TestSelection_Box(t *testing.T) {
	s := New(nil)
	assert.True(t, s.IsCaret())

	s.SetAnchor(5, 1)
	s.SetFocus(2, 4)
	x, y, w, h := s.Box()
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)
	assert.Equal(t, 4, w)
	assert.Equal(t, 4, h)
	assert.True(t, s.IsSquare())
	assert.False(t, s.IsCaret())
}

func TestSelection_ClampsOnWrite(t *testing.T) {
	s := New(nil)
	s.SetAnchor(-3, 2)
	s.SetFocus(1, -1)
	assert.Equal(t, coordinate.NewPoint(0, 2), s.Anchor())
	assert.Equal(t, coordinate.NewPoint(1, 0), s.Focus())

	s.Translate(-5, 1)
	assert.Equal(t, coordinate.NewPoint(0, 3), s.Anchor())
	assert.Equal(t, coordinate.NewPoint(0, 1), s.Focus())
}

func TestSelection_Translate(t *testing.T) {
	s := New(nil)
	s.Set(coordinate.NewPoint(1, 1), coordinate.NewPoint(3, 2))
	s.Translate(2, 3)
	assert.Equal(t, coordinate.NewPoint(3, 4), s.Anchor())
	assert.Equal(t, coordinate.NewPoint(5, 5), s.Focus())
	assert.Equal(t, 3, s.Width())
	assert.Equal(t, 2, s.Height())
}

func TestSelection_Square(t *testing.T) {
	cases := []struct {
		name          string
		anchor, focus Point
		want          Point
	}{
		{"extend down", coordinate.NewPoint(2, 2), coordinate.NewPoint(5, 2), coordinate.NewPoint(5, 5)},
		{"extend right", coordinate.NewPoint(2, 2), coordinate.NewPoint(2, 4), coordinate.NewPoint(4, 4)},
		{"keep left and up", coordinate.NewPoint(5, 5), coordinate.NewPoint(2, 4), coordinate.NewPoint(2, 2)},
		{"up and right", coordinate.NewPoint(3, 6), coordinate.NewPoint(4, 2), coordinate.NewPoint(7, 2)},
		{"caret", coordinate.NewPoint(1, 1), coordinate.NewPoint(1, 1), coordinate.NewPoint(1, 1)},
		{"clamped", coordinate.NewPoint(1, 1), coordinate.NewPoint(0, 4), coordinate.NewPoint(0, 4)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(nil)
			s.Set(tc.anchor, tc.focus)
			s.Square()
			assert.Equal(t, tc.anchor, s.Anchor())
			assert.Equal(t, tc.want, s.Focus())
		})
	}
}

func TestSelection_NotifiesParent(t *testing.T) {
	root := state.NewChangeBus(nil)
	s := New(root)
	notified := 0
	root.AddListener(func() { notified++ })

	s.SetAnchor(1, 1)
	s.Square()
	assert.Equal(t, 2, notified)
	assert.Equal(t, uint64(2), s.StateID())

	_ = s.Mutate(func() error {
		s.SetAnchor(0, 0)
		s.SetFocus(2, 2)
		return nil
	})
	assert.Equal(t, 3, notified)
}
