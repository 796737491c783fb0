package viewer

import (
	"testing"

	"github.com/chordscope/chordscope"
)

func TestParseNote(t *testing.T) {
	tests := []struct {
		token string
		want  chordscope.Note
		ok    bool
	}{
		{"60", 60, true},
		{"0", 0, true},
		{"127", 127, true},
		{"C4", 60, true},
		{"c4", 60, true},
		{"C#4", 61, true},
		{"Db4", 61, true},
		{"eb5", 75, true},
		{"A4", 69, true},
		{"Bb3", 58, true},
		{"C-1", 0, true},
		{"G9", 127, true},
		{"128", 0, false},
		{"-1", 0, false},
		{"H2", 0, false},
		{"C", 0, false},
		{"C#", 0, false},
		{"Cb-1", 0, false},
		{"G#9", 0, false},
		{"foo", 0, false},
		{"", 0, false},
	}
	for _, test := range tests {
		got, ok := parseNote(test.token)
		if ok != test.ok || (ok && got != test.want) {
			t.Errorf("parseNote(%q) = %v, %v, expected %v, %v", test.token, got, ok, test.want, test.ok)
		}
	}
}

func TestNoteAsStringRoundTrip(t *testing.T) {
	for n := chordscope.Note(0); n <= 127; n++ {
		got, ok := parseNote(noteAsString(n))
		if !ok || got != n {
			t.Fatalf("parseNote(noteAsString(%d)) = %v, %v", n, got, ok)
		}
	}
}

func TestParseNotesSeparators(t *testing.T) {
	notes, bad := parseNotes("C4, E4,G4\t72  c5")
	if len(bad) != 0 {
		t.Fatalf("unexpected bad tokens: %v", bad)
	}
	want := []chordscope.Note{60, 64, 67, 72, 72}
	if len(notes) != len(want) {
		t.Fatalf("got %d notes, expected %d", len(notes), len(want))
	}
	for i := range notes {
		if notes[i] != want[i] {
			t.Errorf("note %d = %v, expected %v", i, notes[i], want[i])
		}
	}
}
