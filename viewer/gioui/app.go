package gioui

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/chordscope/chordscope/version"
	"github.com/chordscope/chordscope/viewer"
)

type (
	Viewer struct {
		Theme *Theme

		NoteField     *Editor
		FOVInput      *NumberInput
		DistanceInput *NumberInput

		UndoBtn        *ActionClickable
		RedoBtn        *ActionClickable
		ClearBtn       *ActionClickable
		TransposeUp    *ActionClickable
		TransposeDown  *ActionClickable
		OctaveUp       *ActionClickable
		OctaveDown     *ActionClickable
		ResetCameraBtn *ActionClickable
		AutoRotateBtn  *BoolClickable

		PresetList layout.List
		PresetBtns []*ActionClickable

		Viewport   *Viewport
		PopupAlert *PopupAlert

		preferences Preferences

		*viewer.Model
	}

	C = layout.Context
	D = layout.Dimensions
)

func NewViewer(model *viewer.Model) *Viewer {
	v := &Viewer{
		NoteField:     NewEditor(true, true, text.Start),
		FOVInput:      NewNumberInput(model.CameraFOV().Int()),
		DistanceInput: NewNumberInput(model.CameraDistance().Int()),

		UndoBtn:        NewActionClickable(model.Undo()),
		RedoBtn:        NewActionClickable(model.Redo()),
		ClearBtn:       NewActionClickable(model.ClearNotes()),
		TransposeUp:    NewActionClickable(model.Transpose(1)),
		TransposeDown:  NewActionClickable(model.Transpose(-1)),
		OctaveUp:       NewActionClickable(model.Transpose(12)),
		OctaveDown:     NewActionClickable(model.Transpose(-12)),
		ResetCameraBtn: NewActionClickable(model.ResetCamera()),
		AutoRotateBtn:  NewBoolClickable(model.AutoRotate()),

		PresetList: layout.List{Axis: layout.Horizontal},

		Viewport:   NewViewport(),
		PopupAlert: NewPopupAlert(model.Alerts()),

		preferences: loadPreferences(),

		Model: model,
	}
	for i := 0; i < model.PresetCount(); i++ {
		v.PresetBtns = append(v.PresetBtns, NewActionClickable(model.LoadPreset(i)))
	}
	var warn error
	if v.Theme, warn = NewTheme(); warn != nil {
		model.Alerts().Add(warn.Error(), viewer.Warning)
	}
	v.Theme.Material.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	return v
}

func (v *Viewer) Main() {
	var ops op.Ops
	for !v.Quitted() {
		w := v.newWindow()
		w.Option(app.Title(windowTitle()))
		acks := make(chan struct{})
		events := make(chan event.Event)
		go func() {
			for {
				ev := w.Event()
				events <- ev
				<-acks
				if _, ok := ev.(app.DestroyEvent); ok {
					return
				}
			}
		}()
	F:
		for {
			switch e := (<-events).(type) {
			case app.DestroyEvent:
				v.Quit().Do()
				acks <- struct{}{}
				break F // this window is done, we need to create a new one
			case app.FrameEvent:
				gtx := app.NewContext(&ops, e)
				v.Layout(gtx, w)
				e.Frame(gtx.Ops)
				if v.Quitted() {
					w.Perform(system.ActionClose)
				}
				acks <- struct{}{}
			default:
				acks <- struct{}{}
			}
		}
	}
}

func windowTitle() string {
	if version.VersionOrHash == "" {
		return "Chordscope"
	}
	return fmt.Sprintf("Chordscope %s", version.VersionOrHash)
}

func (v *Viewer) newWindow() *app.Window {
	w := new(app.Window)
	w.Option(app.Size(v.preferences.WindowSize()))
	if v.preferences.Window.Maximized {
		w.Option(app.Maximized.Option())
	}
	return w
}

func (v *Viewer) Layout(gtx C, w *app.Window) {
	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, v.Theme.Material.Bg)
	layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(v.layoutControlBar),
		layout.Rigid(v.layoutPresetRow),
		layout.Flexed(1, func(gtx C) D {
			gtx.Constraints.Min = gtx.Constraints.Max
			return v.Viewport.Layout(gtx, v.Model, v.Theme)
		}),
		layout.Rigid(v.layoutStatusBar),
	)
	v.PopupAlert.Layout(gtx, v.Theme)
	// the top level handler for the global key events; we need to tell gio
	// that we handle tabs too, otherwise it will steal them for focus
	// switching
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: "", Optional: key.ModAlt | key.ModCommand | key.ModShift | key.ModShortcut | key.ModSuper},
			key.Filter{Name: key.NameTab, Optional: key.ModShift | key.ModShortcut},
		)
		if !ok {
			break
		}
		if e, ok := ev.(key.Event); ok {
			v.KeyEvent(e, gtx)
		}
	}
}

func (v *Viewer) KeyEvent(e key.Event, gtx C) {
	if e.State != key.Press {
		return
	}
	action, ok := keyBindingMap[e]
	if !ok {
		return
	}
	switch action {
	case "Undo":
		v.Undo().Do()
	case "Redo":
		v.Redo().Do()
	case "ClearNotes":
		v.ClearNotes().Do()
	case "TransposeUp":
		v.Transpose(1).Do()
	case "TransposeDown":
		v.Transpose(-1).Do()
	case "TransposeOctaveUp":
		v.Transpose(12).Do()
	case "TransposeOctaveDown":
		v.Transpose(-12).Do()
	case "CameraFOVAdd":
		v.CameraFOV().Int().Add(5)
	case "CameraFOVSubtract":
		v.CameraFOV().Int().Add(-5)
	case "CameraDistanceAdd":
		v.CameraDistance().Int().Add(5)
	case "CameraDistanceSubtract":
		v.CameraDistance().Int().Add(-5)
	case "ResetCamera":
		v.ResetCamera().Do()
		v.Viewport.ResetOrbit()
	case "AutoRotateToggle":
		v.AutoRotate().Toggle()
	case "FocusNotes":
		v.NoteField.Focus()
	case "Quit":
		v.Quit().Do()
	}
}

func (v *Viewer) layoutControlBar(gtx C) D {
	for {
		ev := v.NoteField.Update(gtx, v.NoteText())
		if ev == EditorEventNone {
			break
		}
		gtx.Execute(key.FocusCmd{}) // defocus the field on submit and escape
	}
	editorStyle := EditorStyle{
		Color:     v.Theme.Label.Title.Color,
		HintColor: v.Theme.Label.Caption.Color,
		TextSize:  v.Theme.Label.Title.TextSize,
	}
	return v.panelBg(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(Label(v.Theme, &v.Theme.Label.Caption, "Notes ").Layout),
			layout.Flexed(1, func(gtx C) D {
				return v.NoteField.Layout(gtx, v.NoteText(), v.Theme, &editorStyle, "C4 E4 G4")
			}),
			layout.Rigid(func(gtx C) D {
				return ActionIcon(gtx, v.Theme, v.UndoBtn, icons.ContentUndo, makeHint("Undo", " (%s)", "Undo")).Layout(gtx)
			}),
			layout.Rigid(func(gtx C) D {
				return ActionIcon(gtx, v.Theme, v.RedoBtn, icons.ContentRedo, makeHint("Redo", " (%s)", "Redo")).Layout(gtx)
			}),
			layout.Rigid(func(gtx C) D {
				return ActionIcon(gtx, v.Theme, v.ClearBtn, icons.ContentClear, makeHint("Clear notes", " (%s)", "ClearNotes")).Layout(gtx)
			}),
			layout.Rigid(func(gtx C) D {
				return ActionIcon(gtx, v.Theme, v.TransposeUp, icons.HardwareKeyboardArrowUp, makeHint("Transpose up", " (%s)", "TransposeUp")).Layout(gtx)
			}),
			layout.Rigid(func(gtx C) D {
				return ActionIcon(gtx, v.Theme, v.TransposeDown, icons.HardwareKeyboardArrowDown, makeHint("Transpose down", " (%s)", "TransposeDown")).Layout(gtx)
			}),
			layout.Rigid(func(gtx C) D {
				return ActionIcon(gtx, v.Theme, v.OctaveUp, icons.NavigationArrowUpward, makeHint("Octave up", " (%s)", "TransposeOctaveUp")).Layout(gtx)
			}),
			layout.Rigid(func(gtx C) D {
				return ActionIcon(gtx, v.Theme, v.OctaveDown, icons.NavigationArrowDownward, makeHint("Octave down", " (%s)", "TransposeOctaveDown")).Layout(gtx)
			}),
			layout.Rigid(func(gtx C) D {
				return ToggleIcon(gtx, v.Theme, v.AutoRotateBtn, icons.AVPlayArrow, icons.AVPause,
					makeHint("Start rotation", " (%s)", "AutoRotateToggle"), makeHint("Stop rotation", " (%s)", "AutoRotateToggle")).Layout(gtx)
			}),
			layout.Rigid(func(gtx C) D {
				return ActionIcon(gtx, v.Theme, v.ResetCameraBtn, icons.DeviceGPSFixed, makeHint("Reset camera", " (%s)", "ResetCamera")).Layout(gtx)
			}),
			layout.Rigid(Label(v.Theme, &v.Theme.Label.Caption, " FOV ").Layout),
			layout.Rigid(NumUpDown(v.Theme, v.FOVInput, "Field of view, degrees").Layout),
			layout.Rigid(Label(v.Theme, &v.Theme.Label.Caption, " Distance ").Layout),
			layout.Rigid(NumUpDown(v.Theme, v.DistanceInput, "Camera distance, tenths of a scene unit").Layout),
		)
	})
}

func (v *Viewer) layoutPresetRow(gtx C) D {
	return v.panelBg(gtx, func(gtx C) D {
		return v.PresetList.Layout(gtx, len(v.PresetBtns), func(gtx C, i int) D {
			return ActionButton(gtx, v.Theme, v.PresetBtns[i], v.PresetName(i)).Layout(gtx)
		})
	})
}

// panelBg fills the background of the control rows before laying out their
// contents
func (v *Viewer) panelBg(gtx C, widget layout.Widget) D {
	return layout.Background{}.Layout(gtx,
		func(gtx C) D {
			defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Min}).Push(gtx.Ops).Pop()
			paint.Fill(gtx.Ops, color.NRGBA(v.Theme.Panel.Bg))
			return D{Size: gtx.Constraints.Min}
		},
		func(gtx C) D {
			return layout.UniformInset(unit.Dp(4)).Layout(gtx, widget)
		},
	)
}

func (v *Viewer) layoutStatusBar(gtx C) D {
	status := fmt.Sprintf("%s   %d notes   %d points   complexity %.2f",
		v.Mode(), len(v.Notes()), v.SampleCount(), v.Complexity())
	return layout.UniformInset(unit.Dp(4)).Layout(gtx,
		Label(v.Theme, &v.Theme.Label.Caption, status).Layout)
}
