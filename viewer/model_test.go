package viewer_test

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"testing"

	"github.com/chordscope/chordscope"
	"github.com/chordscope/chordscope/viewer"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func assertNotes(t *testing.T, model *viewer.Model, want []chordscope.Note) {
	t.Helper()
	if diff := cmp.Diff(want, model.Notes(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("unexpected notes:\n%s", diff)
	}
}

func TestDefaultModel(t *testing.T) {
	model := viewer.NewModel()
	assertNotes(t, model, []chordscope.Note{60, 64, 67})
	if model.Mode() != chordscope.Spatial {
		t.Errorf("mode = %v, expected spatial", model.Mode())
	}
	if got := model.NoteText().Value(); got != "C4 E4 G4" {
		t.Errorf("note text = %q, expected \"C4 E4 G4\"", got)
	}
	want := []float64{1, 1.2599210498948732, 1.4983070768766815}
	ratios := model.Ratios()
	if len(ratios) != len(want) {
		t.Fatalf("got %d ratios, expected %d", len(ratios), len(want))
	}
	for i := range ratios {
		if math.Abs(ratios[i]-want[i]) > 1e-9 {
			t.Errorf("ratio %d = %v, expected %v", i, ratios[i], want[i])
		}
	}
}

func TestNoteTextDrivesCurve(t *testing.T) {
	model := viewer.NewModel()
	model.NoteText().SetValue("C4 G4")
	assertNotes(t, model, []chordscope.Note{60, 67})
	if model.Mode() != chordscope.Planar {
		t.Errorf("mode = %v, expected planar", model.Mode())
	}
	if r := model.Ratios(); math.Abs(r[1]-1.4983070768766815) > 1e-9 {
		t.Errorf("fifth ratio = %v", r[1])
	}
	model.NoteText().SetValue("60")
	if model.Mode() != chordscope.Circle {
		t.Errorf("mode = %v, expected circle", model.Mode())
	}
	points, _ := model.CurvePoints()
	if len(points) != chordscope.BaseSamples {
		t.Errorf("single note sampled %d points, expected %d", len(points), chordscope.BaseSamples)
	}
}

func TestInvalidNotesAreDroppedWithAlert(t *testing.T) {
	model := viewer.NewModel()
	model.NoteText().SetValue("C4 zzz 67 300 H2")
	assertNotes(t, model, []chordscope.Note{60, 67})
	found := false
	for _, a := range model.Alerts().Iterate {
		if a.Priority == viewer.Warning {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a warning alert for the invalid tokens")
	}
}

func TestClearNotesRecomputesDerived(t *testing.T) {
	model := viewer.NewModel()
	model.ClearNotes().Do()
	if model.Mode() != chordscope.Circle {
		t.Errorf("mode = %v after clearing, expected circle", model.Mode())
	}
	if r := model.Ratios(); len(r) != 1 || r[0] != 1 {
		t.Errorf("ratios = %v after clearing, expected the degenerate [1]", r)
	}
	if points, _ := model.CurvePoints(); len(points) != chordscope.BaseSamples {
		t.Errorf("cleared curve has %d points, expected %d", len(points), chordscope.BaseSamples)
	}
}

func TestUndoRedo(t *testing.T) {
	model := viewer.NewModel()
	orig := append([]chordscope.Note{}, model.Notes()...)
	model.ClearNotes().Do()
	assertNotes(t, model, []chordscope.Note{})
	if !model.Undo().Enabled() {
		t.Fatalf("undo should be enabled after a change")
	}
	model.Undo().Do()
	assertNotes(t, model, orig)
	model.Redo().Do()
	assertNotes(t, model, []chordscope.Note{})
}

func TestTypingMergesIntoOneUndoStep(t *testing.T) {
	model := viewer.NewModel()
	model.NoteText().SetValue("D4")
	model.NoteText().SetValue("D4 F4")
	model.NoteText().SetValue("D4 F4 A4")
	model.Undo().Do()
	if got := model.NoteText().Value(); got != "C4 E4 G4" {
		t.Errorf("undo after typing gave %q, expected the original text back", got)
	}
	if model.Undo().Enabled() {
		t.Errorf("sequential edits of the note text should merge into a single undo step")
	}
}

func TestCurveGenerationTracksNotesOnly(t *testing.T) {
	model := viewer.NewModel()
	_, gen := model.CurvePoints()
	model.CameraFOV().Int().Set(60)
	model.CameraDistance().Int().Add(10)
	model.AutoRotate().Toggle()
	if _, got := model.CurvePoints(); got != gen {
		t.Errorf("camera changes bumped the curve generation from %d to %d", gen, got)
	}
	model.NoteText().SetValue("C4")
	if _, got := model.CurvePoints(); got == gen {
		t.Errorf("note change did not bump the curve generation")
	}
}

func TestTranspose(t *testing.T) {
	model := viewer.NewModel()
	model.Transpose(12).Do()
	assertNotes(t, model, []chordscope.Note{72, 76, 79})
	if got := model.NoteText().Value(); got != "C5 E5 G5" {
		t.Errorf("note text = %q, expected \"C5 E5 G5\"", got)
	}
	model.Transpose(-1).Do()
	assertNotes(t, model, []chordscope.Note{71, 75, 78})
	model.NoteText().SetValue("G9") // 127, the highest note there is
	if model.Transpose(1).Enabled() {
		t.Errorf("transposing past the top of the note range should be disabled")
	}
	model.Transpose(1).Do()
	assertNotes(t, model, []chordscope.Note{127})
}

func TestLoadPreset(t *testing.T) {
	model := viewer.NewModel()
	index := -1
	for i := 0; i < model.PresetCount(); i++ {
		if model.PresetName(i) == "major triad" {
			index = i
		}
	}
	if index < 0 {
		t.Fatalf("no major triad among the built-in presets")
	}
	model.LoadPreset(index).Do()
	assertNotes(t, model, []chordscope.Note{60, 64, 67})
	if got := model.NoteText().Value(); got != "C4 E4 G4" {
		t.Errorf("note text = %q after loading a preset", got)
	}
}

func TestCameraParameterRanges(t *testing.T) {
	model := viewer.NewModel()
	model.CameraFOV().Int().Set(500)
	if got, max := model.CameraFOV().Value(), model.CameraFOV().Range().Max; got != max {
		t.Errorf("fov = %d, expected the %d clamp", got, max)
	}
	if model.CameraFOV().Int().Add(1) {
		t.Errorf("adding past the fov range should report not ok")
	}
	model.CameraDistance().Int().Set(0)
	if got, min := model.CameraDistance().Value(), model.CameraDistance().Range().Min; got != min {
		t.Errorf("distance = %d, expected the %d clamp", got, min)
	}
	model.ResetCamera().Do()
	if model.ResetCamera().Enabled() {
		t.Errorf("reset camera should be disabled once the camera is at defaults")
	}
}

type modelFuzzState struct {
	model *viewer.Model
}

func (s *modelFuzzState) Iterate(yield func(string, func(p string, t *testing.T)) bool, seed int) {
	// Ints
	s.IterateInt("CameraFOV", s.model.CameraFOV().Int(), yield, seed)
	s.IterateInt("CameraDistance", s.model.CameraDistance().Int(), yield, seed)
	// Bools
	s.IterateBool("AutoRotate", s.model.AutoRotate(), yield, seed)
	// Strings
	s.IterateString("NoteText", s.model.NoteText(), yield, seed)
	// Actions
	s.IterateAction("ClearNotes", s.model.ClearNotes(), yield, seed)
	s.IterateAction("TransposeUp", s.model.Transpose(1), yield, seed)
	s.IterateAction("TransposeDown", s.model.Transpose(-1), yield, seed)
	s.IterateAction("TransposeOctaveUp", s.model.Transpose(12), yield, seed)
	s.IterateAction("TransposeOctaveDown", s.model.Transpose(-12), yield, seed)
	s.IterateAction("ResetCamera", s.model.ResetCamera(), yield, seed)
	s.IterateAction("Undo", s.model.Undo(), yield, seed)
	s.IterateAction("Redo", s.model.Redo(), yield, seed)
	if c := s.model.PresetCount(); c > 0 {
		s.IterateAction("LoadPreset", s.model.LoadPreset(seed%c), yield, seed)
	}
}

func (s *modelFuzzState) IterateInt(name string, i viewer.Int, yield func(string, func(p string, t *testing.T)) bool, seed int) {
	r := i.Range()
	yield(name+".Set", func(p string, t *testing.T) {
		i.Set(seed%(r.Max-r.Min+10) - 5 + r.Min)
	})
	yield(name+".Value", func(p string, t *testing.T) {
		if v := i.Value(); v < r.Min || v > r.Max {
			t.Errorf("Path: %s %s value out of range [%d,%d]: %d", p, name, r.Min, r.Max, v)
		}
	})
}

func (s *modelFuzzState) IterateBool(name string, b viewer.Bool, yield func(string, func(p string, t *testing.T)) bool, seed int) {
	yield(name+".Set", func(p string, t *testing.T) {
		b.SetValue(seed%2 == 0)
	})
	yield(name+".Toggle", func(p string, t *testing.T) {
		b.Toggle()
	})
}

func (s *modelFuzzState) IterateString(name string, str viewer.String, yield func(string, func(p string, t *testing.T)) bool, seed int) {
	yield(name+".Set", func(p string, t *testing.T) {
		str.SetValue(fmt.Sprintf("%d", seed))
	})
}

func (s *modelFuzzState) IterateAction(name string, a viewer.Action, yield func(string, func(p string, t *testing.T)) bool, seed int) {
	yield(name+".Do", func(p string, t *testing.T) {
		a.Do()
	})
}

func FuzzModel(f *testing.F) {
	seed := make([]byte, 1)
	for i := range seed {
		seed[i] = byte(i)
	}
	f.Add(seed)
	f.Fuzz(func(t *testing.T, slice []byte) {
		reader := bytes.NewReader(slice)
		model := viewer.NewModel()
		state := modelFuzzState{model: model}
		count := 0
		state.Iterate(func(n string, f func(p string, t *testing.T)) bool {
			count++
			return true
		}, 0)
		totalPath := ""
		for m, err := binary.ReadVarint(reader); err == nil; m, err = binary.ReadVarint(reader) {
			seed := int(m)
			index := seed % count
			state.Iterate(func(n string, f func(p string, t *testing.T)) bool {
				if index == 0 {
					totalPath += n + ". "
					f(totalPath, t)
				}
				index--
				return index > 0
			}, seed)
			ratios := model.Ratios()
			if len(ratios) == 0 || ratios[0] != 1 {
				t.Errorf("Path: %s first ratio is not 1: %v", totalPath, ratios)
			}
			if len(model.Notes()) > 0 && len(ratios) != len(model.Notes()) {
				t.Errorf("Path: %s %d ratios for %d notes", totalPath, len(ratios), len(model.Notes()))
			}
			if points, _ := model.CurvePoints(); len(points) < chordscope.BaseSamples || len(points) > 10*chordscope.BaseSamples {
				t.Errorf("Path: %s curve has %d points", totalPath, len(points))
			}
		}
	})
}
