package coordinate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint(t *testing.T) {
	p := NewPoint(2, 3)
	assert.Equal(t, Point[int]{X: 5, Y: 1}, p.Translate(3, -2))
	assert.Equal(t, Point[int]{X: 0, Y: 3}, NewPoint(-4, 3).AtLeast(0))
	// value receiver, p is unchanged
	assert.Equal(t, Point[int]{X: 2, Y: 3}, p)
}
