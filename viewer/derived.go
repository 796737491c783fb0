package viewer

import "github.com/chordscope/chordscope"

/*
	everything the UI needs that can be computed from modelData is cached
	here, recomputed synchronously whenever the model changes, and only then.
	the generation counter changes exactly when the cached curve does, so
	redraws that only moved the camera never cause a resample.
*/

type derivedModelData struct {
	ratios      []float64
	mode        chordscope.Mode
	complexity  float64
	sampleCount int
	points      []chordscope.Vec3
	generation  uint
}

// public access functions

func (m *Model) Ratios() []float64 { return m.derived.ratios }

func (m *Model) Mode() chordscope.Mode { return m.derived.mode }

func (m *Model) Complexity() float64 { return m.derived.complexity }

func (m *Model) SampleCount() int { return m.derived.sampleCount }

// CurvePoints returns the sampled curve and the generation it was computed
// at. The generation changes if and only if the points may have changed.
func (m *Model) CurvePoints() ([]chordscope.Vec3, uint) {
	return m.derived.points, m.derived.generation
}

// init / update methods

func (m *Model) initDerivedData() {
	m.updateDerivedCurveData()
}

func (m *Model) updateDeriveData(t ChangeType) {
	if t&NotesChange != 0 {
		m.updateDerivedCurveData()
	}
}

func (m *Model) updateDerivedCurveData() {
	d := &m.derived
	d.ratios = chordscope.Ratios(m.d.Notes)
	d.mode = chordscope.ModeFor(len(m.d.Notes))
	d.complexity = chordscope.Complexity(d.ratios)
	d.sampleCount = chordscope.SampleCount(chordscope.BaseSamples, d.complexity)
	d.points = chordscope.Sample(d.mode, d.ratios, d.sampleCount)
	d.generation++
}
