package gioui

import (
	"image"
	"image/color"
	"sort"
	"time"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/chewxy/math32"
	"honnef.co/go/curve"

	"github.com/chordscope/chordscope"
	"github.com/chordscope/chordscope/viewer"
)

type (
	// Viewport draws the curve of the current chord as a shaded tube, with
	// an orbiting light and a slow breathing pulse. Spatial curves tumble
	// about two axes while auto-rotate is on; circle and planar curves stay
	// face on. Dragging with the primary button orbits the camera (only in
	// spatial mode), the secondary button resets the orbit, and scrolling
	// dollies the camera.
	Viewport struct {
		yaw            float32
		pitch          float32
		dragging       bool
		dragId         pointer.ID
		dragStartPoint f32.Point
		dragStartYaw   float32
		dragStartPitch float32

		lastFrame  time.Time
		spin       float32
		spinPitch  float32
		lightAngle float32
		pulsePhase float32

		viewPts   []chordscope.Vec3
		screenPts []screenPoint
		order     []int
	}

	ViewportStyle struct {
		Bg    HexColor
		Curve HexColor
		Halo  HexColor
	}

	screenPoint struct {
		x, y float32
		ok   bool
	}
)

const (
	tubeRadius     = 0.025 // scene units
	orbitSpeed     = 0.01  // radians per pixel dragged
	maxPitch       = 1.5   // radians, stop short of gimbal flip
	spinSpeed      = 0.5   // radians per second when auto-rotating
	spinPitchSpeed = 0.3   // different rate so the tumble does not repeat quickly
	lightSpeed     = 0.8   // radians per second
	pulseSpeed     = 1.5   // radians per second
)

func NewViewport() *Viewport {
	return &Viewport{lastFrame: time.Now()}
}

func (v *Viewport) ResetOrbit() {
	v.yaw, v.pitch = 0, 0
}

func (v *Viewport) update(gtx C, m *viewer.Model) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  v,
			Kinds:   pointer.Scroll | pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
			ScrollY: pointer.ScrollRange{Min: -1e6, Max: 1e6},
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Scroll:
			m.CameraDistance().Int().Add(int(e.Scroll.Y))
		case pointer.Press:
			if e.Buttons&pointer.ButtonSecondary != 0 {
				v.ResetOrbit()
			}
			if e.Buttons&pointer.ButtonPrimary != 0 {
				v.dragging = true
				v.dragId = e.PointerID
				v.dragStartPoint = e.Position
				v.dragStartYaw = v.yaw
				v.dragStartPitch = v.pitch
			}
		case pointer.Drag:
			if v.dragging && e.PointerID == v.dragId && m.Mode() == chordscope.Spatial {
				delta := e.Position.Sub(v.dragStartPoint)
				v.yaw = v.dragStartYaw + delta.X*orbitSpeed
				v.pitch = clamp32(v.dragStartPitch+delta.Y*orbitSpeed, -maxPitch, maxPitch)
			}
		case pointer.Release, pointer.Cancel:
			v.dragging = false
		}
	}
}

// advance moves the wall-clock driven animations forward and returns true
// when another frame should be scheduled
func (v *Viewport) advance(m *viewer.Model) bool {
	now := time.Now()
	dt := float32(now.Sub(v.lastFrame).Seconds())
	v.lastFrame = now
	if dt > 0.1 {
		dt = 0.1
	}
	if m.AutoRotate().Value() && m.Mode() == chordscope.Spatial {
		v.spin = wrapAngle(v.spin + dt*spinSpeed)
		v.spinPitch = wrapAngle(v.spinPitch + dt*spinPitchSpeed)
	}
	v.lightAngle = wrapAngle(v.lightAngle + dt*lightSpeed)
	v.pulsePhase = wrapAngle(v.pulsePhase + dt*pulseSpeed)
	return true
}

func (v *Viewport) Layout(gtx C, m *viewer.Model, th *Theme) D {
	s := gtx.Constraints.Min
	if s.X <= 1 || s.Y <= 1 {
		return D{Size: s}
	}
	defer clip.Rect(image.Rectangle{Max: s}).Push(gtx.Ops).Pop()
	v.update(gtx, m)
	event.Op(gtx.Ops, v)
	paint.FillShape(gtx.Ops, color.NRGBA(th.Viewport.Bg), clip.Rect(image.Rectangle{Max: s}).Op())
	if v.advance(m) {
		gtx.Execute(op.InvalidateCmd{})
	}
	points, _ := m.CurvePoints()
	if len(points) < 2 || s.X < 16 || s.Y < 16 {
		return D{Size: s}
	}

	distance := float32(m.CameraDistance().Value()) / 10
	if m.Mode() != chordscope.Spatial {
		distance *= 0.8 // flat curves sit a little closer
	}
	cam := camera{
		yaw:      v.yaw + v.spin,
		pitch:    v.pitch + v.spinPitch,
		distance: distance,
		fovDeg:   float32(m.CameraFOV().Value()),
	}
	cx, cy := float32(s.X)/2, float32(s.Y)/2
	focal := cam.focal(float32(s.Y))

	v.viewPts = v.viewPts[:0]
	v.screenPts = v.screenPts[:0]
	for _, p := range points {
		w := cam.view(p)
		x, y, ok := cam.screen(w, cx, cy, focal)
		v.viewPts = append(v.viewPts, w)
		v.screenPts = append(v.screenPts, screenPoint{x: x, y: y, ok: ok})
	}

	v.drawHalo(gtx, color.NRGBA(th.Viewport.Halo), tubeRadius*3*focal/cam.distance)

	// depth sort the segments so the tube occludes itself correctly
	v.order = v.order[:0]
	for i := 0; i+1 < len(v.viewPts); i++ {
		if v.screenPts[i].ok && v.screenPts[i+1].ok {
			v.order = append(v.order, i)
		}
	}
	sort.Slice(v.order, func(a, b int) bool {
		da := cam.depth(v.viewPts[v.order[a]]) + cam.depth(v.viewPts[v.order[a]+1])
		db := cam.depth(v.viewPts[v.order[b]]) + cam.depth(v.viewPts[v.order[b]+1])
		return da > db
	})

	light := lightDirection(v.lightAngle)
	pulse := 0.9 + 0.1*math32.Sin(v.pulsePhase)
	base := color.NRGBA(th.Viewport.Curve)
	for _, i := range v.order {
		a, b := v.screenPts[i], v.screenPts[i+1]
		dx, dy := b.x-a.x, b.y-a.y
		l := math32.Hypot(dx, dy)
		if l < 1e-3 {
			continue
		}
		nx, ny := -dy/l, dx/l
		wa := tubeRadius * focal / cam.depth(v.viewPts[i])
		wb := tubeRadius * focal / cam.depth(v.viewPts[i+1])
		tangent := v.viewPts[i+1].Sub(v.viewPts[i]).Normalized()
		col := scaleColor(base, shade(tangent, light)*pulse)
		var p clip.Path
		p.Begin(gtx.Ops)
		p.MoveTo(f32.Pt(a.x+nx*wa, a.y+ny*wa))
		p.LineTo(f32.Pt(b.x+nx*wb, b.y+ny*wb))
		p.LineTo(f32.Pt(b.x-nx*wb, b.y-ny*wb))
		p.LineTo(f32.Pt(a.x-nx*wa, a.y-ny*wa))
		p.Close()
		paint.FillShape(gtx.Ops, col, clip.Outline{Path: p.End()}.Op())
	}
	return D{Size: s}
}

// drawHalo strokes the projected polyline wide and fills it translucent
// behind the tube
func (v *Viewport) drawHalo(gtx C, col color.NRGBA, width float32) {
	if col.A == 0 || width <= 0 {
		return
	}
	var bez curve.BezPath
	pen := false
	for _, sp := range v.screenPts {
		if !sp.ok {
			pen = false
			continue
		}
		pt := curve.Pt(float64(sp.x), float64(sp.y))
		if pen {
			bez.LineTo(pt)
		} else {
			bez.MoveTo(pt)
			pen = true
		}
	}
	if !bez.HasSegments() {
		return
	}
	stroked := curve.StrokePath(bez.Elements(), curve.DefaultStroke.WithWidth(float64(width)), curve.StrokeOpts{}, 0.25)
	var p clip.Path
	p.Begin(gtx.Ops)
	for el := range curve.Flatten(stroked, 0.25) {
		switch el.Kind {
		case curve.MoveToKind:
			p.MoveTo(f32.Pt(float32(el.P0.X), float32(el.P0.Y)))
		case curve.LineToKind:
			p.LineTo(f32.Pt(float32(el.P0.X), float32(el.P0.Y)))
		case curve.ClosePathKind:
			p.Close()
		}
	}
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: p.End()}.Op())
}

func clamp32(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func wrapAngle(a float32) float32 {
	const twoPi = 2 * math32.Pi
	for a > twoPi {
		a -= twoPi
	}
	return a
}
