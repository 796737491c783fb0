package viewer

import "time"

type (
	// Alerts is a list of messages the UI should show to the user,
	// superimposed on the normal view, sliding in and out.
	Alerts Model

	Alert struct {
		Name      string
		Priority  AlertPriority
		Message   string
		FadeLevel float64

		remaining time.Duration
	}

	AlertPriority int
)

const (
	None AlertPriority = iota
	Info
	Warning
	Error
)

const (
	alertFadeSpeed = 150 * time.Millisecond
	alertDuration  = 3 * time.Second
)

func (m *Model) Alerts() *Alerts { return (*Alerts)(m) }

func (m *Alerts) Add(message string, priority AlertPriority) {
	m.AddNamed("", message, priority)
}

// AddNamed adds an alert with a name; if an alert with the same name is
// already showing, it is updated in place instead of stacking a new one, so
// e.g. retyping in the note field does not pile up parse warnings.
func (m *Alerts) AddNamed(name, message string, priority AlertPriority) {
	if name != "" {
		for i := range m.alerts {
			if m.alerts[i].Name == name {
				m.alerts[i].Message = message
				m.alerts[i].Priority = priority
				m.alerts[i].remaining = alertDuration
				return
			}
		}
	}
	m.alerts = append(m.alerts, Alert{
		Name:      name,
		Message:   message,
		Priority:  priority,
		remaining: alertDuration,
	})
}

// Update advances the fade animations by d, removing alerts that have faded
// out, and returns true if any alert is still animating and thus another
// frame should be scheduled.
func (m *Alerts) Update(d time.Duration) (animating bool) {
	delta := float64(d) / float64(alertFadeSpeed)
	for i := len(m.alerts) - 1; i >= 0; i-- {
		a := &m.alerts[i]
		a.remaining -= d
		var target float64
		if a.remaining > 0 {
			target = 1
		}
		switch {
		case a.FadeLevel < target:
			a.FadeLevel += delta
			animating = true
			if a.FadeLevel > target {
				a.FadeLevel = target
			}
		case a.FadeLevel > target:
			a.FadeLevel -= delta
			animating = true
			if a.FadeLevel <= 0 {
				m.alerts = append(m.alerts[:i], m.alerts[i+1:]...)
			}
		}
	}
	return animating
}

func (m *Alerts) Iterate(yield func(index int, alert Alert) bool) {
	for i, a := range m.alerts {
		if !yield(i, a) {
			return
		}
	}
}
