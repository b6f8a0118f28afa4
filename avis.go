// Package avis ties the code space, the selection and the change bus
// together into the model an editor front end drives.
package avis

import (
	"fmt"
	"io"

	"github.com/aheui/avis-sub000/logger"
	"github.com/aheui/avis-sub000/space/codespace"
	"github.com/aheui/avis-sub000/space/selection"
	"github.com/aheui/avis-sub000/space/state"
)

// DefaultFill pads space created by geometric operations.
const DefaultFill = " "

// PasteMode selects how Paste makes room for the pasted block.
type PasteMode int

const (
	// Pick PasteDown or PasteRight from the content around the paste point.
	PasteSmart PasteMode = iota
	PasteDown
	PasteRight
	// Write over whatever is there.
	PasteOverwrite
)

func (m PasteMode) String() string {
	switch m {
	case PasteSmart:
		return "smart"
	case PasteDown:
		return "down"
	case PasteRight:
		return "right"
	case PasteOverwrite:
		return "overwrite"
	default:
		return fmt.Sprintf("PasteMode(%d)", int(m))
	}
}

// ParsePasteMode is the inverse of PasteMode.String.
func ParsePasteMode(name string) (PasteMode, error) {
	for _, m := range []PasteMode{PasteSmart, PasteDown, PasteRight, PasteOverwrite} {
		if m.String() == name {
			return m, nil
		}
	}
	return PasteSmart, fmt.Errorf("avis: unknown paste mode %q", name)
}

type Options struct {
	// Initial source of the code space.
	Source string
	// Character used to pad new space. Defaults to DefaultFill.
	Fill   string
	Logger logger.Logger
}

// Editor owns a code space and a selection. Both report to the editor's
// root ChangeBus, so one subscription sees every change.
type Editor struct {
	changes *state.ChangeBus

	Space     *codespace.Space
	Selection *selection.Selection

	fill string

	// Fingerprint of the space when it was last saved or loaded.
	saved uint64

	logger logger.Logger
}

func New(opts Options) *Editor {
	if opts.Fill == "" {
		opts.Fill = DefaultFill
	}
	l := logger.OrDefault(opts.Logger)
	root := state.NewChangeBus(nil)
	e := &Editor{
		changes: root,
		Space: codespace.New(opts.Source, codespace.Options{
			Parent: root,
			Logger: l,
		}),
		Selection: selection.New(root),
		fill:      opts.Fill,
		logger:    l,
	}
	e.saved = e.Space.Fingerprint()
	return e
}

// Subscribe registers fn to run after every change of the space or the
// selection.
func (e *Editor) Subscribe(fn func()) state.ListenerID {
	return e.changes.AddListener(fn)
}

func (e *Editor) Unsubscribe(id state.ListenerID) bool {
	return e.changes.RemoveListener(id)
}

func (e *Editor) Fill() string {
	return e.fill
}

// Select sets the selection to the rectangle between the two corners.
func (e *Editor) Select(anchorX, anchorY, focusX, focusY int) {
	e.Selection.Set(
		selection.Point{X: anchorX, Y: anchorY},
		selection.Point{X: focusX, Y: focusY},
	)
}

// Copy returns the text inside the selection.
func (e *Editor) Copy() string {
	return e.Space.Text(e.Selection)
}

// Cut copies the selection and deletes it from the space.
func (e *Editor) Cut() string {
	var text string
	_ = e.Space.Mutate(func() error {
		text = e.Copy()
		x, y, w, h := e.Selection.Box()
		e.Space.Shrink(y, x, w, h)
		return nil
	})
	e.logger.Debug("cut", "bytes", len(text))
	return text
}

// Erase paints the selection with the fill character.
func (e *Editor) Erase() {
	x, y, w, h := e.Selection.Box()
	e.Space.Paint(y, x, w, h, e.fill)
}

// Paste inserts text at the top-left corner of the selection.
func (e *Editor) Paste(text string, mode PasteMode) error {
	x, y := e.Selection.X(), e.Selection.Y()
	var err error
	switch mode {
	case PasteSmart:
		err = e.Space.InsertChunkSmart(y, x, text, e.fill, false)
	case PasteDown:
		err = e.Space.InsertChunk(y, x, text, e.fill, true, false)
	case PasteRight:
		err = e.Space.InsertChunk(y, x, text, e.fill, false, false)
	case PasteOverwrite:
		err = e.Space.Insert(y, x, text, e.fill, true)
	default:
		return fmt.Errorf("avis: unknown paste mode %v", mode)
	}
	if err != nil {
		return fmt.Errorf("avis: paste at (%d, %d): %w", x, y, err)
	}
	return nil
}

func (e *Editor) InvertH() {
	x, y, w, h := e.Selection.Box()
	e.Space.InvertH(y, x, w, h, e.fill)
}

func (e *Editor) InvertV() {
	x, y, w, h := e.Selection.Box()
	e.Space.InvertV(y, x, w, h, e.fill)
}

// RotateCW turns the selection clockwise. It reports false, leaving the
// space alone, when the selection is not square.
func (e *Editor) RotateCW() bool {
	if !e.Selection.IsSquare() {
		e.logger.Info("rotation needs a square selection",
			"width", e.Selection.Width(), "height", e.Selection.Height())
		return false
	}
	x, y, w, h := e.Selection.Box()
	e.Space.RotateCW(y, x, w, h, e.fill)
	return true
}

func (e *Editor) RotateCCW() bool {
	if !e.Selection.IsSquare() {
		e.logger.Info("rotation needs a square selection",
			"width", e.Selection.Width(), "height", e.Selection.Height())
		return false
	}
	x, y, w, h := e.Selection.Box()
	e.Space.RotateCCW(y, x, w, h, e.fill)
	return true
}

// JoinRows joins the selected rows into the top one.
func (e *Editor) JoinRows() {
	e.Space.JoinRows(e.Selection.Y(), e.Selection.Height())
}

// DivideRows splits the selected rows at the selection's left edge and
// carries the tails below them.
func (e *Editor) DivideRows() {
	e.Space.DivideAndCarryLines(e.Selection.Y(), e.Selection.X(), e.Selection.Height())
}

func (e *Editor) DeleteRows() {
	e.Space.DeleteRows(e.Selection.Y(), e.Selection.Height())
}

// ToggleBreakPoint flips the break point under the focus.
func (e *Editor) ToggleBreakPoint() {
	focus := e.Selection.Focus()
	e.Space.ToggleBreakPoint(focus.X, focus.Y)
}

// Export renders the whole code space.
func (e *Editor) Export() string {
	return e.Space.String()
}

// WriteTo writes the code space to w.
func (e *Editor) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, e.Export())
	return int64(n), err
}

// Load replaces the code space and marks it saved.
func (e *Editor) Load(source string) {
	e.Space.Reset(source)
	e.Selection.Caret(0, 0)
	e.MarkSaved()
}

func (e *Editor) MarkSaved() {
	e.saved = e.Space.Fingerprint()
}

// IsDirty reports whether the text differs from the last saved one.
func (e *Editor) IsDirty() bool {
	return e.Space.Fingerprint() != e.saved
}
