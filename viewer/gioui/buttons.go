package gioui

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"

	"github.com/chordscope/chordscope/viewer"
)

type (
	// ActionClickable ties a button to a viewer.Action: clicks fire the
	// action and the button grays out while the action is disabled.
	ActionClickable struct {
		Action    viewer.Action
		Clickable widget.Clickable
		tipArea   component.TipArea
	}

	// BoolClickable toggles a viewer.Bool, showing a different icon for
	// each state.
	BoolClickable struct {
		Bool      viewer.Bool
		Clickable widget.Clickable
		tipArea   component.TipArea
	}

	TipIconButtonStyle struct {
		TipArea         *component.TipArea
		IconButtonStyle material.IconButtonStyle
		Tooltip         component.Tooltip
	}
)

func NewActionClickable(a viewer.Action) *ActionClickable {
	return &ActionClickable{Action: a}
}

func NewBoolClickable(b viewer.Bool) *BoolClickable {
	return &BoolClickable{Bool: b}
}

func ActionIcon(gtx C, th *Theme, w *ActionClickable, icon []byte, tip string) TipIconButtonStyle {
	for w.Clickable.Clicked(gtx) {
		w.Action.Do()
	}
	ret := TipIcon(th, &w.Clickable, &w.tipArea, icon, tip)
	if !w.Action.Enabled() {
		ret.IconButtonStyle.Color = color.NRGBA(th.Button.Disabled)
	}
	return ret
}

func ToggleIcon(gtx C, th *Theme, w *BoolClickable, offIcon, onIcon []byte, offTip, onTip string) TipIconButtonStyle {
	for w.Clickable.Clicked(gtx) {
		w.Bool.Toggle()
	}
	icon := offIcon
	tip := offTip
	if w.Bool.Value() {
		icon = onIcon
		tip = onTip
	}
	ret := TipIcon(th, &w.Clickable, &w.tipArea, icon, tip)
	if !w.Bool.Enabled() {
		ret.IconButtonStyle.Color = color.NRGBA(th.Button.Disabled)
	}
	return ret
}

func TipIcon(th *Theme, c *widget.Clickable, tipArea *component.TipArea, icon []byte, tip string) TipIconButtonStyle {
	iconButtonStyle := material.IconButton(&th.Material, c, widgetForIcon(icon), "")
	iconButtonStyle.Color = color.NRGBA(th.Button.Primary)
	iconButtonStyle.Background = color.NRGBA{}
	iconButtonStyle.Inset = layout.UniformInset(unit.Dp(6))
	return TipIconButtonStyle{
		TipArea:         tipArea,
		IconButtonStyle: iconButtonStyle,
		Tooltip:         Tooltip(th, tip),
	}
}

func (t TipIconButtonStyle) Layout(gtx C) D {
	return t.TipArea.Layout(gtx, t.Tooltip, t.IconButtonStyle.Layout)
}

func ActionButton(gtx C, th *Theme, w *ActionClickable, text string) material.ButtonStyle {
	for w.Clickable.Clicked(gtx) {
		w.Action.Do()
	}
	ret := LowEmphasisButton(th, &w.Clickable, text)
	if !w.Action.Enabled() {
		ret.Color = color.NRGBA(th.Button.Disabled)
	}
	return ret
}

func LowEmphasisButton(th *Theme, w *widget.Clickable, text string) material.ButtonStyle {
	ret := material.Button(&th.Material, w, text)
	ret.Color = color.NRGBA(th.Button.Primary)
	ret.Background = color.NRGBA{}
	ret.Inset = layout.UniformInset(unit.Dp(4))
	return ret
}

func HighEmphasisButton(th *Theme, w *widget.Clickable, text string) material.ButtonStyle {
	ret := material.Button(&th.Material, w, text)
	ret.Color = th.Material.Palette.ContrastFg
	ret.Background = color.NRGBA(th.Button.Primary)
	ret.Inset = layout.UniformInset(unit.Dp(4))
	return ret
}
