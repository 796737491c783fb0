// Package chordscope contains the core math of the chord visualizer: turning
// an ordered list of musical notes into frequency ratios and sampling the
// Lissajous curve those ratios define. Everything here is pure computation;
// the viewer and viewer/gioui packages own all mutable state and drawing.
package chordscope

import "math"

// Note is a musical note in the standard 0..127 pitch encoding, where
// A4 = 69 = 440 Hz. The note-text parser upstream never produces values
// outside that range.
type Note int

const (
	NoteA4 Note = 69

	freqA4 = 440.0
)

// Frequency returns the equal tempered frequency of the note, in Hz.
func (n Note) Frequency() float64 {
	return freqA4 * math.Exp2(float64(n-NoteA4)/12)
}

// Ratios returns, for each note, its frequency divided by the frequency of
// the first note, so the first element is always exactly 1. The ratios are
// absolute frequency quotients: an octave above the root is 2, an octave and
// a fifth is very nearly 3. Nothing is folded back into a single octave. An
// empty note list yields the degenerate single-element list [1].
func Ratios(notes []Note) []float64 {
	if len(notes) == 0 {
		return []float64{1}
	}
	root := notes[0].Frequency()
	ret := make([]float64, len(notes))
	for i, n := range notes {
		ret[i] = n.Frequency() / root
	}
	ret[0] = 1
	return ret
}
