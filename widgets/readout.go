package widgets

import (
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/unit"
)

// TextSurface is the element a display writes its text into.
type TextSurface interface {
	SetText(string)
}

// Readout is a small text panel anchored to a corner of its constraints.
// Only its text changes between frames; style fields are read on Layout.
type Readout struct {
	Prefix    string
	TextSize  unit.Sp
	Direction layout.Direction
	Box       Box

	text string
}

func NewReadout(prefix string, size unit.Sp, direction layout.Direction, pad unit.Dp) *Readout {
	r := &Readout{
		Prefix:    prefix,
		TextSize:  size,
		Direction: direction,
		Box:       NewBox(),
		text:      "-",
	}
	r.Box.Padding = pad
	r.Box.Background = true
	return r
}

func (r *Readout) SetText(txt string) {
	r.text = txt
}

func (r *Readout) Text() string {
	return r.text
}

func (r *Readout) Layout(gtx layout.Context) layout.Dimensions {
	return r.Direction.Layout(gtx, r.Panel)
}

// Panel lays out the boxed text without anchoring it.
func (r *Readout) Panel(gtx layout.Context) layout.Dimensions {
	return r.Box.Layout(gtx, Label(r.TextSize, r.Prefix+r.text).Weight(font.Bold).Layout)
}
