package viewer

import (
	"fmt"
	"strings"
)

type (
	String struct {
		value StringValue
	}

	StringValue interface {
		Value() string
		SetValue(string) bool
	}
)

func MakeString(value StringValue) String {
	return String{value: value}
}

func (v String) SetValue(value string) bool {
	if v.value == nil || v.value.Value() == value {
		return false
	}
	return v.value.SetValue(value)
}

func (v String) Value() string {
	if v.value == nil {
		return ""
	}
	return v.value.Value()
}

// NoteTextString is the verbatim contents of the note input field. Setting it
// reparses the note list; tokens that are not valid notes are dropped with a
// warning alert, so the curve always reflects only the valid notes.
type noteText Model

func (m *Model) NoteText() String { return MakeString((*noteText)(m)) }
func (v *noteText) Value() string { return v.d.NoteText }
func (v *noteText) SetValue(value string) bool {
	defer (*Model)(v).change("NoteTextString", NotesChange, MinorChange)()
	v.d.NoteText = value
	notes, bad := parseNotes(value)
	v.d.Notes = notes
	if len(bad) > 0 {
		msg := fmt.Sprintf("Ignoring invalid notes: %s", strings.Join(bad, " "))
		(*Model)(v).Alerts().AddNamed("InvalidNotes", msg, Warning)
	}
	return true
}
