package viewer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chordscope/chordscope"
)

var noteNames = []string{
	"C",
	"C#",
	"D",
	"D#",
	"E",
	"F",
	"F#",
	"G",
	"G#",
	"A",
	"A#",
	"B",
}

var noteClasses = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// noteAsString returns the textual representation of a note, e.g. 60 is "C4".
func noteAsString(n chordscope.Note) string {
	class := mod(int(n), 12)
	octave := (int(n)-class)/12 - 1
	return fmt.Sprintf("%s%d", noteNames[class], octave)
}

func notesAsString(notes []chordscope.Note) string {
	var sb strings.Builder
	for i, n := range notes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(noteAsString(n))
	}
	return sb.String()
}

// parseNotes splits text on whitespace and commas and parses each token as a
// note. Tokens that do not parse, or parse outside 0..127, are returned in
// bad instead.
func parseNotes(text string) (notes []chordscope.Note, bad []string) {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	for _, token := range tokens {
		if n, ok := parseNote(token); ok {
			notes = append(notes, n)
		} else {
			bad = append(bad, token)
		}
	}
	return notes, bad
}

// parseNote accepts either a plain note number ("60") or a note name with an
// optional accidental and an octave ("C4", "A#3", "eb5", "B-1").
func parseNote(token string) (chordscope.Note, bool) {
	if value, err := strconv.Atoi(token); err == nil {
		if value < 0 || value > 127 {
			return 0, false
		}
		return chordscope.Note(value), true
	}
	if len(token) < 2 {
		return 0, false
	}
	class, ok := noteClasses[token[0]&^0x20] // upper case the letter
	if !ok {
		return 0, false
	}
	rest := token[1:]
	switch rest[0] {
	case '#':
		class++
		rest = rest[1:]
	case 'b', 'B':
		class--
		rest = rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	value := (octave+1)*12 + class
	if value < 0 || value > 127 {
		return 0, false
	}
	return chordscope.Note(value), true
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
