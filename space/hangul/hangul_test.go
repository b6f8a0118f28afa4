package hangul

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecompose(t *testing.T) {
	cases := []struct {
		ch              string
		cho, jung, jong int
		ok              bool
	}{
		{"가", 0, JungA, 0, true},
		{"아", 11, JungA, 0, true},
		{"밯", 7, JungA, 27, true},
		{"희", 18, JungUI, 0, true},
		{"힣", 18, JungI, 27, true},
		{"a", None, None, None, false},
		{"", None, None, None, false},
		{"가나", None, None, None, false},
		{"ㅏ", None, None, None, false},
	}
	for _, c := range cases {
		cho, jung, jong, ok := Decompose(c.ch)
		assert.Equal(t, c.ok, ok, c.ch)
		assert.Equal(t, c.cho, cho, c.ch)
		assert.Equal(t, c.jung, jung, c.ch)
		assert.Equal(t, c.jong, jong, c.ch)
	}
}

func TestCompose(t *testing.T) {
	ch, ok := Compose(11, JungU, 0)
	assert.True(t, ok)
	assert.Equal(t, "우", ch)

	ch, ok = Compose(7, JungA, 27)
	assert.True(t, ok)
	assert.Equal(t, "밯", ch)

	_, ok = Compose(19, 0, 0)
	assert.False(t, ok)
	_, ok = Compose(0, -1, 0)
	assert.False(t, ok)
	_, ok = Compose(0, 0, 28)
	assert.False(t, ok)
}

func TestComposeDecomposeRoundTrip(t *testing.T) {
	for r := rune(syllableFirst); r <= syllableLast; r += 97 {
		cho, jung, jong, ok := Decompose(string(r))
		assert.True(t, ok)
		ch, ok := Compose(cho, jung, jong)
		assert.True(t, ok)
		assert.Equal(t, string(r), ch)
	}
}

func TestIsSignificant(t *testing.T) {
	assert.True(t, IsSignificant(0, 0))
	assert.True(t, IsSignificant(None, JungI))
	assert.False(t, IsSignificant(None, None))
}

func TestGlyphMaps_Inverses(t *testing.T) {
	for k, v := range RotateCW {
		back, ok := RotateCCW.Lookup(v)
		assert.True(t, ok, "missing ccw image for %d", v)
		assert.Equal(t, k, back)
	}
	assert.Len(t, RotateCCW, len(RotateCW))

	for _, m := range []GlyphMap{InvertH, InvertV} {
		for k, v := range m {
			assert.Equal(t, k, m[v], "mirror maps are involutions")
		}
	}
}

func TestGlyphMaps_FourQuarterTurns(t *testing.T) {
	for jung := 0; jung < JungCount; jung++ {
		cur := jung
		for i := 0; i < 4; i++ {
			if next, ok := RotateCW.Lookup(cur); ok {
				cur = next
			}
		}
		assert.Equal(t, jung, cur, "jung %d", jung)
	}
}
