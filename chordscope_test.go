package chordscope

import (
	"math"
	"testing"
)

func assertClose(t *testing.T, got, want, epsilon float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Fatalf("got %v, expected %v", got, want)
	}
}

func TestFrequency(t *testing.T) {
	const epsilon = 1e-9
	assertClose(t, Note(69).Frequency(), 440, epsilon)
	assertClose(t, Note(81).Frequency(), 880, epsilon)
	assertClose(t, Note(57).Frequency(), 220, epsilon)
	assertClose(t, Note(60).Frequency(), 261.6255653005986, epsilon)
	assertClose(t, Note(0).Frequency(), 8.175798915643707, epsilon)
}

func TestRatios(t *testing.T) {
	const epsilon = 1e-9
	tests := []struct {
		name  string
		notes []Note
		want  []float64
	}{
		{"empty", nil, []float64{1}},
		{"single", []Note{60}, []float64{1}},
		{"fifth", []Note{60, 67}, []float64{1, 1.4983070768766815}},
		{"major triad", []Note{60, 64, 67}, []float64{1, 1.2599210498948732, 1.4983070768766815}},
		{"octave", []Note{60, 72}, []float64{1, 2}},
		{"descending", []Note{67, 60}, []float64{1, 1 / 1.4983070768766815}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Ratios(test.notes)
			if len(got) != len(test.want) {
				t.Fatalf("got %d ratios, expected %d", len(got), len(test.want))
			}
			for i := range got {
				assertClose(t, got[i], test.want[i], epsilon)
			}
			if got[0] != 1 {
				t.Fatalf("first ratio is %v, expected exactly 1", got[0])
			}
		})
	}
}

// Ratios are quotients of absolute frequencies, not interval classes: an
// octave and a fifth above the root must come out near 3, not folded back to
// the in-octave fifth.
func TestRatiosNotFoldedIntoOctave(t *testing.T) {
	const epsilon = 1e-9
	got := Ratios([]Note{60, 79})
	assertClose(t, got[1], 2*1.4983070768766815, epsilon)
}
