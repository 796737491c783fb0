package viewer

type (
	Bool struct {
		value BoolValue
	}

	BoolValue interface {
		Value() bool
		SetValue(bool)
	}

	AutoRotate Model
)

func MakeBool(value BoolValue) Bool {
	return Bool{value: value}
}

func (v Bool) Toggle() {
	v.SetValue(!v.Value())
}

func (v Bool) SetValue(value bool) {
	if v.value == nil || !v.Enabled() || v.value.Value() == value {
		return
	}
	v.value.SetValue(value)
}

func (v Bool) Value() bool {
	if v.value == nil {
		return false
	}
	return v.value.Value()
}

func (v Bool) Enabled() bool {
	if v.value == nil {
		return false
	}
	if e, ok := v.value.(Enabler); ok {
		return e.Enabled()
	}
	return true
}

// AutoRotate methods

func (m *Model) AutoRotate() Bool { return MakeBool((*AutoRotate)(m)) }
func (v *AutoRotate) Value() bool { return v.d.AutoRotate }
func (v *AutoRotate) SetValue(val bool) {
	defer (*Model)(v).change("AutoRotateBool", CameraChange, MinorChange)()
	v.d.AutoRotate = val
}
