package viewer

import "github.com/chordscope/chordscope"

type (
	// Action describes a user action that can be performed on the model,
	// initiated by calling the Do() method, usually from a button press or a
	// key binding. Action advertises whether it is enabled, so the UI can
	// gray out buttons when the underlying action is not allowed. The
	// underlying Doer can optionally implement the Enabler interface to
	// decide if the action is enabled; if it does not, the action is always
	// allowed.
	Action struct {
		doer Doer
	}

	// Doer is an interface that defines a single Do() method, which is
	// called when an action is performed.
	Doer interface {
		Do()
	}

	// Enabler is an interface that defines a single Enabled() method, which
	// is used by the UI to check if an Action/Bool/Int etc. is enabled or
	// not.
	Enabler interface {
		Enabled() bool
	}
)

// Action methods

func MakeAction(doer Doer) Action {
	return Action{doer: doer}
}

func (a Action) Do() {
	e, ok := a.doer.(Enabler)
	if ok && !e.Enabled() {
		return
	}
	if a.doer != nil {
		a.doer.Do()
	}
}

func (a Action) Enabled() bool {
	if a.doer == nil {
		return false // no doer, not allowed
	}
	e, ok := a.doer.(Enabler)
	if !ok {
		return true // not enabler, always allowed
	}
	return e.Enabled()
}

// clearNotes
type clearNotes Model

func (m *Model) ClearNotes() Action { return MakeAction((*clearNotes)(m)) }
func (m *clearNotes) Enabled() bool { return len(m.d.Notes) > 0 || m.d.NoteText != "" }
func (m *clearNotes) Do() {
	defer (*Model)(m).change("ClearNotes", NotesChange, MajorChange)()
	m.d.Notes = nil
	m.d.NoteText = ""
}

// transpose
type transpose struct {
	Semitones int
	*Model
}

// Transpose returns an Action shifting every note by the given number of
// semitones; it is disabled when any note would leave the 0..127 range.
func (m *Model) Transpose(semitones int) Action {
	return MakeAction(transpose{Semitones: semitones, Model: m})
}
func (a transpose) Enabled() bool {
	if len(a.Model.d.Notes) == 0 {
		return false
	}
	for _, n := range a.Model.d.Notes {
		if t := int(n) + a.Semitones; t < 0 || t > 127 {
			return false
		}
	}
	return true
}
func (a transpose) Do() {
	m := a.Model
	defer m.change("Transpose", NotesChange, MajorChange)()
	for i, n := range m.d.Notes {
		m.d.Notes[i] = n + chordscope.Note(a.Semitones)
	}
	m.d.NoteText = notesAsString(m.d.Notes)
}

// resetCamera
type resetCamera Model

func (m *Model) ResetCamera() Action { return MakeAction((*resetCamera)(m)) }
func (m *resetCamera) Enabled() bool {
	return m.d.FOV != defaultFOV || m.d.Distance != defaultDistance
}
func (m *resetCamera) Do() {
	defer (*Model)(m).change("ResetCamera", CameraChange, MajorChange)()
	m.d.FOV = defaultFOV
	m.d.Distance = defaultDistance
}

// undo
type undo Model

func (m *Model) Undo() Action { return MakeAction((*undo)(m)) }
func (m *undo) Enabled() bool { return len((*Model)(m).undoStack) > 0 }
func (m *undo) Do() {
	m.redoStack = append(m.redoStack, m.d.Copy())
	if len(m.redoStack) >= maxUndo {
		copy(m.redoStack, m.redoStack[len(m.redoStack)-maxUndo:])
		m.redoStack = m.redoStack[:maxUndo]
	}
	m.d = m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]
	m.prevUndoKind = ""
	(*Model)(m).updateDeriveData(NotesChange | CameraChange)
}

// redo
type redo Model

func (m *Model) Redo() Action { return MakeAction((*redo)(m)) }
func (m *redo) Enabled() bool { return len((*Model)(m).redoStack) > 0 }
func (m *redo) Do() {
	m.undoStack = append(m.undoStack, m.d.Copy())
	if len(m.undoStack) >= maxUndo {
		copy(m.undoStack, m.undoStack[len(m.undoStack)-maxUndo:])
		m.undoStack = m.undoStack[:maxUndo]
	}
	m.d = m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]
	m.prevUndoKind = ""
	(*Model)(m).updateDeriveData(NotesChange | CameraChange)
}

// quit
type quit Model

func (m *Model) Quit() Action { return MakeAction((*quit)(m)) }
func (m *quit) Do()           { m.quitted = true }
