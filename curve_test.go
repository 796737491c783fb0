package chordscope

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestModeFor(t *testing.T) {
	tests := []struct {
		numNotes int
		want     Mode
	}{
		{0, Circle}, {1, Circle}, {2, Planar}, {3, Spatial}, {7, Spatial},
	}
	for _, test := range tests {
		if got := ModeFor(test.numNotes); got != test.want {
			t.Errorf("ModeFor(%d) = %v, expected %v", test.numNotes, got, test.want)
		}
	}
}

func TestComplexity(t *testing.T) {
	const epsilon = 1e-9
	assertClose(t, Complexity([]float64{1}), 0, epsilon)
	assertClose(t, Complexity([]float64{1, 1.5}), 0.5, epsilon)
	assertClose(t, Complexity([]float64{1, 0.5, 3}), 2.5, epsilon)
}

func TestSampleCount(t *testing.T) {
	if got := SampleCount(BaseSamples, 0); got != BaseSamples {
		t.Errorf("complexity 0 gave %d samples, expected exactly %d", got, BaseSamples)
	}
	if got := SampleCount(BaseSamples, 1e6); got != 10*BaseSamples {
		t.Errorf("huge complexity gave %d samples, expected the %d clamp", got, 10*BaseSamples)
	}
	prev := 0
	for c := 0.0; c < 12; c += 0.25 {
		got := SampleCount(BaseSamples, c)
		if got < prev {
			t.Fatalf("SampleCount(%d, %v) = %d, less than %d for lower complexity", BaseSamples, c, got, prev)
		}
		if got < BaseSamples || got > 10*BaseSamples {
			t.Fatalf("SampleCount(%d, %v) = %d, outside [%d, %d]", BaseSamples, c, got, BaseSamples, 10*BaseSamples)
		}
		prev = got
	}
}

func TestSampleCircle(t *testing.T) {
	points := Sample(Circle, []float64{1}, 256)
	if len(points) != 256 {
		t.Fatalf("got %d points, expected 256", len(points))
	}
	for i, p := range points {
		if r := math.Hypot(float64(p.X), float64(p.Y)); math.Abs(r-1) > 1e-3 {
			t.Fatalf("point %d has radius %v, expected 1", i, r)
		}
		if p.Z != 0 {
			t.Fatalf("point %d has z = %v, expected 0", i, p.Z)
		}
	}
	if math.Abs(float64(points[0].X-1)) > 1e-3 || math.Abs(float64(points[0].Y)) > 1e-3 {
		t.Fatalf("curve starts at (%v, %v), expected (1, 0)", points[0].X, points[0].Y)
	}
}

func TestSamplePlanar(t *testing.T) {
	ratios := []float64{1, 1.4983070768766815}
	points := Sample(Planar, ratios, 512)
	for i, p := range points {
		if p.Z != 0 {
			t.Fatalf("point %d has z = %v, expected 0", i, p.Z)
		}
		param := float64(i) * Cycles * 2 * math.Pi / 511
		if math.Abs(float64(p.X)-math.Sin(param)) > 1e-3 {
			t.Fatalf("point %d has x = %v, expected sin(%v)", i, p.X, param)
		}
	}
}

// Geometry may only depend on the first three ratios, no matter how many
// notes the chord has.
func TestSampleIgnoresRatiosPastThird(t *testing.T) {
	long := []float64{1, 1.26, 1.5, 2, 2.38, 3}
	short := long[:3]
	if diff := cmp.Diff(Sample(Spatial, short, 512), Sample(Spatial, long, 512)); diff != "" {
		t.Fatalf("extra ratios changed the geometry:\n%s", diff)
	}
}

func TestSampleDegenerate(t *testing.T) {
	if got := Sample(Circle, []float64{1}, 0); got != nil {
		t.Errorf("0 samples gave %d points, expected none", len(got))
	}
	if got := Sample(Circle, []float64{1}, 1); got != nil {
		t.Errorf("1 sample gave %d points, expected none", len(got))
	}
}
