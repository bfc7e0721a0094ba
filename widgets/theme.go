package widgets

import (
	"image/color"

	"gioui.org/widget/material"
)

var Theme = NewTheme(color.NRGBA{0xA6, 0x62, 0x61, 0xFF}, color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF})

// NewTheme returns a material theme drawing fg on bg.
func NewTheme(fg, bg color.NRGBA) *material.Theme {
	th := material.NewTheme()
	th.Fg = fg
	th.Bg = bg
	th.ContrastFg = bg
	th.ContrastBg = fg
	return th
}
