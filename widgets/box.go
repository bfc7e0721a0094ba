package widgets

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

// Box draws an optional border and background behind a widget sized to fit it.
type Box struct {
	Radius    int
	Thickness float32
	Padding   unit.Dp

	BorderColor, BackgroundColor color.NRGBA
	Border, Background           bool
}

func NewBox() Box {
	return Box{
		Thickness:       2,
		BorderColor:     Theme.ContrastBg,
		BackgroundColor: Theme.Bg,
		Border:          true,
	}
}

func (b Box) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	b.Thickness = max(b.Thickness, 1)

	// measure the content first, the frame follows its size
	macro := op.Record(gtx.Ops)
	inner := gtx
	inner.Constraints.Min = image.Point{}
	dims := layout.UniformInset(b.Padding).Layout(inner, w)
	call := macro.Stop()

	rr := clip.RRect{
		SE: b.Radius, SW: b.Radius,
		NW: b.Radius, NE: b.Radius,
		Rect: image.Rectangle{Max: dims.Size},
	}
	if b.Background {
		paint.FillShape(gtx.Ops, b.BackgroundColor, rr.Op(gtx.Ops))
	}
	if b.Border {
		outline := clip.Stroke{Path: rr.Path(gtx.Ops), Width: b.Thickness}
		paint.FillShape(gtx.Ops, b.BorderColor, outline.Op())
	}
	call.Add(gtx.Ops)
	return dims
}
