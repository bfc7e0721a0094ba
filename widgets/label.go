package widgets

import (
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

type LabelStyle struct {
	material.LabelStyle
}

func (l LabelStyle) Weight(w font.Weight) LabelStyle {
	l.LabelStyle.Font.Weight = w
	return l
}

func (l LabelStyle) Layout(gtx layout.Context) layout.Dimensions {
	return l.LabelStyle.Layout(gtx)
}

// Label is a single line label using Theme.
func Label(size unit.Sp, txt string) LabelStyle {
	l := LabelStyle{LabelStyle: material.Label(Theme, size, txt)}
	l.MaxLines = 1
	return l
}
