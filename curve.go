package chordscope

import (
	"math"

	"github.com/viterin/vek/vek32"
)

// Mode is the dimensionality of the curve, chosen purely from how many notes
// it was built from.
type Mode int

const (
	Circle  Mode = iota // 0 or 1 notes: the unit circle
	Planar              // 2 notes: a flat Lissajous figure
	Spatial             // 3 or more notes: a 3D Lissajous figure
)

const (
	// Cycles is how many full 2π turns of the parameter the sampled curve
	// spans. With a fixed cycle count the curve does not close into a
	// seamless loop for non-integer ratios; the seam is accepted.
	Cycles = 5

	// BaseSamples is the sample count of the simplest possible curve; denser
	// curves get up to ten times as many points.
	BaseSamples = 256

	maxSampleFactor = 10
)

func (m Mode) String() string {
	switch m {
	case Planar:
		return "planar"
	case Spatial:
		return "spatial"
	}
	return "circle"
}

// ModeFor returns the dimensionality mode for a chord of numNotes notes.
func ModeFor(numNotes int) Mode {
	switch {
	case numNotes >= 3:
		return Spatial
	case numNotes == 2:
		return Planar
	}
	return Circle
}

// Complexity scores how far a ratio set is from the trivial unison chord, as
// the sum of |ratio-1| over all ratios.
func Complexity(ratios []float64) float64 {
	var c float64
	for _, r := range ratios {
		c += math.Abs(r - 1)
	}
	return c
}

// SampleCount returns base scaled by 1+complexity, rounded and clamped to
// [base, 10*base], so denser ratio sets get denser sampling.
func SampleCount(base int, complexity float64) int {
	n := int(math.Round(float64(base) * (1 + complexity)))
	if n < base {
		n = base
	}
	if max := base * maxSampleFactor; n > max {
		n = max
	}
	return n
}

// Sample evaluates the curve at numSamples evenly spaced parameter values
// over Cycles full turns. Only the first three ratios ever affect the
// geometry; Planar needs at least two ratios and Spatial at least three.
// Fewer than two samples yield nil.
func Sample(mode Mode, ratios []float64, numSamples int) []Vec3 {
	if numSamples < 2 {
		return nil
	}
	ts := make([]float32, numSamples)
	step := Cycles * 2 * math.Pi / float64(numSamples-1)
	for i := range ts {
		ts[i] = float32(float64(i) * step)
	}
	axis := func(r float64) []float32 {
		s := vek32.MulNumber(ts, float32(r))
		vek32.Sin_Inplace(s)
		return s
	}
	var x, y, z []float32
	switch mode {
	case Planar:
		x, y = axis(ratios[0]), axis(ratios[1])
	case Spatial:
		x, y, z = axis(ratios[0]), axis(ratios[1]), axis(ratios[2])
	default:
		x, y = vek32.Cos(ts), vek32.Sin(ts)
	}
	ret := make([]Vec3, numSamples)
	for i := range ret {
		ret[i].X = x[i]
		ret[i].Y = y[i]
		if z != nil {
			ret[i].Z = z[i]
		}
	}
	return ret
}
