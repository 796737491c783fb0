package viewer

type (
	Int struct {
		IntData
	}

	IntData interface {
		Value() int
		Range() intRange

		setValue(int)
		change(kind string) func()
	}

	intRange struct {
		Min, Max int
	}

	CameraFOV      Model
	CameraDistance Model
)

func (v Int) Add(delta int) (ok bool) {
	r := v.Range()
	value := r.Clamp(v.Value() + delta)
	if value == v.Value() || value < r.Min || value > r.Max {
		return false
	}
	defer v.change("Add")()
	v.setValue(value)
	return true
}

func (v Int) Set(value int) (ok bool) {
	r := v.Range()
	value = r.Clamp(value)
	if value == v.Value() || value < r.Min || value > r.Max {
		return false
	}
	defer v.change("Set")()
	v.setValue(value)
	return true
}

func (r intRange) Clamp(value int) int {
	return max(min(value, r.Max), r.Min)
}

// Model methods

func (m *Model) CameraFOV() *CameraFOV           { return (*CameraFOV)(m) }
func (m *Model) CameraDistance() *CameraDistance { return (*CameraDistance)(m) }

// CameraFOVInt

func (v *CameraFOV) Int() Int           { return Int{v} }
func (v *CameraFOV) Value() int         { return v.d.FOV }
func (v *CameraFOV) setValue(value int) { v.d.FOV = value }
func (v *CameraFOV) Range() intRange    { return intRange{10, 120} }
func (v *CameraFOV) change(kind string) func() {
	return (*Model)(v).change("CameraFOVInt."+kind, CameraChange, MinorChange)
}

// CameraDistanceInt, in tenths of a scene unit

func (v *CameraDistance) Int() Int           { return Int{v} }
func (v *CameraDistance) Value() int         { return v.d.Distance }
func (v *CameraDistance) setValue(value int) { v.d.Distance = value }
func (v *CameraDistance) Range() intRange    { return intRange{15, 300} }
func (v *CameraDistance) change(kind string) func() {
	return (*Model)(v).change("CameraDistanceInt."+kind, CameraChange, MinorChange)
}
