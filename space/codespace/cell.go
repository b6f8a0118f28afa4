package codespace

import (
	"github.com/aheui/avis-sub000/space/hangul"
	dw "github.com/mattn/go-runewidth"
)

// Cell is one character position of the code space. The jamo indices are
// always derived from the character and vice versa.
type Cell struct {
	char string

	// Initial, medial and final jamo indices, hangul.None for characters
	// that are not syllables.
	cho, jung, jong int

	// A comment cell has no significant index. Every valid initial or medial
	// index is significant, so comment cells are exactly the characters that
	// are not precomposed syllables. Glyph rewrites skip them.
	comment bool

	breakPoint bool
}

func NewCell(ch string) *Cell {
	c := &Cell{}
	c.SetChar(ch)
	return c
}

func (c *Cell) Char() string {
	return c.char
}

// SetChar replaces the character and recomputes the derived indices.
func (c *Cell) SetChar(ch string) {
	c.char = ch
	c.cho, c.jung, c.jong, _ = hangul.Decompose(ch)
	c.comment = !hangul.IsSignificant(c.cho, c.jung)
}

func (c *Cell) Cho() int  { return c.cho }
func (c *Cell) Jung() int { return c.jung }
func (c *Cell) Jong() int { return c.jong }

// SetJung replaces the medial index and recomposes the character. Comment
// cells are left untouched.
func (c *Cell) SetJung(jung int) {
	if c.comment {
		return
	}
	ch, ok := hangul.Compose(c.cho, jung, c.jong)
	if !ok {
		return
	}
	c.char = ch
	c.jung = jung
}

func (c *Cell) IsComment() bool {
	return c.comment
}

func (c *Cell) BreakPoint() bool {
	return c.breakPoint
}

func (c *Cell) SetBreakPoint(on bool) {
	c.breakPoint = on
}

func (c *Cell) ToggleBreakPoint() {
	c.breakPoint = !c.breakPoint
}

// IsBlank reports whether the cell holds the fill character or a space.
func (c *Cell) IsBlank(fill string) bool {
	return c.char == fill || c.char == " "
}

// Width is the number of terminal columns the character occupies.
func (c *Cell) Width() int {
	return dw.StringWidth(c.char)
}

func (c *Cell) InvertH()   { c.remap(hangul.InvertH) }
func (c *Cell) InvertV()   { c.remap(hangul.InvertV) }
func (c *Cell) RotateCW()  { c.remap(hangul.RotateCW) }
func (c *Cell) RotateCCW() { c.remap(hangul.RotateCCW) }

func (c *Cell) remap(m hangul.GlyphMap) {
	if c.comment {
		return
	}
	if jung, ok := m.Lookup(c.jung); ok {
		c.SetJung(jung)
	}
}
