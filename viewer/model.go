// Package viewer implements the mutable state of the chordscope application:
// the note list and camera parameters, the values derived from them, and the
// typed access wrappers (Action/Bool/Int/String) the UI uses to manipulate
// them. The views in viewer/gioui never touch the data directly; all
// mutations go through the wrappers so undo and derived data stay consistent.
package viewer

import (
	"github.com/chordscope/chordscope"
)

type (
	// modelData is the part of the model that is saved to the undo stack and
	// restored by undo/redo.
	modelData struct {
		Notes    []chordscope.Note
		NoteText string

		FOV        int // perspective field of view, in degrees
		Distance   int // camera distance from the origin, in tenths of a scene unit
		AutoRotate bool
	}

	// Model is the root of the application state. It is used only from the
	// window event loop goroutine, so it needs no locking.
	Model struct {
		d       modelData
		derived derivedModelData

		undoStack    []modelData
		redoStack    []modelData
		undoData     modelData
		prevUndoKind string

		changeLevel    int
		changeKind     string
		changeType     ChangeType
		changeSeverity ChangeSeverity

		alerts  []Alert
		presets Presets

		quitted bool
	}

	// ChangeType is a bitmask of what parts of the model data a change
	// touched, so only the necessary derived data gets recomputed.
	ChangeType int

	ChangeSeverity int
)

const (
	NoChange    ChangeType = 0
	NotesChange ChangeType = 1 << iota
	CameraChange
)

const (
	MinorChange ChangeSeverity = iota
	MajorChange
)

const (
	maxUndo = 256

	defaultFOV      = 30
	defaultDistance = 50 // 5.0 scene units
)

func NewModel() *Model {
	m := &Model{}
	m.d = modelData{
		Notes:      []chordscope.Note{60, 64, 67},
		NoteText:   "C4 E4 G4",
		FOV:        defaultFOV,
		Distance:   defaultDistance,
		AutoRotate: true,
	}
	m.presets.load()
	m.initDerivedData()
	return m
}

func (d modelData) Copy() modelData {
	ret := d
	ret.Notes = make([]chordscope.Note, len(d.Notes))
	copy(ret.Notes, d.Notes)
	return ret
}

func (m *Model) Notes() []chordscope.Note { return m.d.Notes }
func (m *Model) Quitted() bool            { return m.quitted }

// change starts a mutation of the model data. The returned function must be
// deferred; when the outermost change completes, the previous data is pushed
// to the undo stack (unless merged into the previous change of the same
// kind) and the derived data is recomputed. Changes can nest; only the
// outermost one saves undo state.
func (m *Model) change(kind string, t ChangeType, severity ChangeSeverity) func() {
	if m.changeLevel == 0 {
		m.changeKind = kind
		m.changeType = t
		m.changeSeverity = severity
		m.undoData = m.d.Copy()
	} else {
		m.changeType |= t
		if severity > m.changeSeverity {
			m.changeSeverity = severity
		}
	}
	m.changeLevel++
	return func() {
		m.changeLevel--
		if m.changeLevel > 0 {
			return
		}
		if m.changeLevel < 0 {
			panic("change() completion called more times than change() itself")
		}
		// sequential minor changes of the same kind merge into one undo step,
		// so e.g. typing in the note field does not save every keystroke
		if m.changeSeverity == MajorChange || m.changeKind != m.prevUndoKind {
			m.undoStack = append(m.undoStack, m.undoData)
			if len(m.undoStack) >= maxUndo {
				copy(m.undoStack, m.undoStack[len(m.undoStack)-maxUndo:])
				m.undoStack = m.undoStack[:maxUndo]
			}
			m.redoStack = m.redoStack[:0]
		}
		m.prevUndoKind = m.changeKind
		m.updateDeriveData(m.changeType)
	}
}
