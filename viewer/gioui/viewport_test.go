package gioui

import (
	"testing"
	"time"

	"github.com/chordscope/chordscope"
	"github.com/chordscope/chordscope/viewer"
)

// backdate makes the next advance see a nonzero frame delta without sleeping
func backdate(v *Viewport) {
	v.lastFrame = time.Now().Add(-50 * time.Millisecond)
}

func TestSpinOnlyInSpatialMode(t *testing.T) {
	model := viewer.NewModel() // three notes, so spatial, with auto-rotate on
	v := NewViewport()
	backdate(v)
	v.advance(model)
	if v.spin <= 0 || v.spinPitch <= 0 {
		t.Fatalf("spatial auto-rotate advanced spin %v, pitch %v, expected both axes to move", v.spin, v.spinPitch)
	}
	model.NoteText().SetValue("C4 G4")
	if model.Mode() != chordscope.Planar {
		t.Fatalf("mode = %v, expected planar", model.Mode())
	}
	spin, pitch := v.spin, v.spinPitch
	backdate(v)
	v.advance(model)
	if v.spin != spin || v.spinPitch != pitch {
		t.Errorf("flat curves should stay face on, but spin moved %v -> %v, pitch %v -> %v", spin, v.spin, pitch, v.spinPitch)
	}
}

func TestAutoRotateOffFreezesSpin(t *testing.T) {
	model := viewer.NewModel()
	v := NewViewport()
	backdate(v)
	v.advance(model)
	model.AutoRotate().SetValue(false)
	spin, pitch, pulse := v.spin, v.spinPitch, v.pulsePhase
	backdate(v)
	v.advance(model)
	if v.spin != spin || v.spinPitch != pitch {
		t.Errorf("the tumble advanced while auto-rotate is off")
	}
	if v.pulsePhase <= pulse {
		t.Errorf("the shading pulse should keep running regardless of auto-rotate")
	}
}

func TestAnimationClocksSurviveNoteEdits(t *testing.T) {
	model := viewer.NewModel()
	v := NewViewport()
	backdate(v)
	v.advance(model)
	spin, pitch, pulse, light := v.spin, v.spinPitch, v.pulsePhase, v.lightAngle
	_, before := model.CurvePoints()
	model.NoteText().SetValue("C4 E4 G4 B4")
	if _, after := model.CurvePoints(); after == before {
		t.Fatalf("the note edit should have bumped the curve generation")
	}
	if v.spin != spin || v.spinPitch != pitch || v.pulsePhase != pulse || v.lightAngle != light {
		t.Errorf("a note edit reset the animation clocks")
	}
}
