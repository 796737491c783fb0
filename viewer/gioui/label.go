package gioui

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
)

type (
	LabelStyle struct {
		TextSize   unit.Sp
		Color      HexColor
		ShadeColor HexColor
	}

	LabelWidget struct {
		Text  string
		Style *LabelStyle
		Theme *Theme
	}
)

func Label(th *Theme, style *LabelStyle, txt string) LabelWidget {
	return LabelWidget{Text: txt, Style: style, Theme: th}
}

func (l LabelWidget) Layout(gtx C) D {
	gtx.Constraints.Min = image.Point{}
	if l.Style.ShadeColor.A > 0 {
		paint.ColorOp{Color: color.NRGBA(l.Style.ShadeColor)}.Add(gtx.Ops)
		offs := op.Offset(image.Pt(2, 2)).Push(gtx.Ops)
		widget.Label{MaxLines: 1}.Layout(gtx, l.Theme.Material.Shaper, font.Font{}, l.Style.TextSize, l.Text, op.CallOp{})
		offs.Pop()
	}
	paint.ColorOp{Color: color.NRGBA(l.Style.Color)}.Add(gtx.Ops)
	return widget.Label{MaxLines: 1}.Layout(gtx, l.Theme.Material.Shaper, font.Font{}, l.Style.TextSize, l.Text, op.CallOp{})
}
