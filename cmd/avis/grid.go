package main

import (
	"io"
	"strings"

	"github.com/aheui/avis-sub000/space/codespace"
	dw "github.com/mattn/go-runewidth"
)

// writeGrid prints the space with every cell padded to the same number of
// columns, so narrow and wide characters line up.
func writeGrid(w io.Writer, space *codespace.Space) error {
	cellWidth := 1
	for y := 0; y < space.Height(); y++ {
		for x := 0; x < space.LineWidth(y); x++ {
			cellWidth = max(cellWidth, space.Get(x, y).Width())
		}
	}

	var sb strings.Builder
	for y := 0; y < space.Height(); y++ {
		for x := 0; x < space.LineWidth(y); x++ {
			cell := space.Get(x, y)
			char := cell.Char()
			if cell.BreakPoint() {
				char = "*"
			}
			sb.WriteString(dw.FillRight(char, cellWidth))
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
