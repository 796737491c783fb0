package gioui

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/chordscope/chordscope"
)

// Projection and shading math for the viewport, kept free of widget state so
// it can be tested headlessly.

type camera struct {
	yaw      float32 // orbit around the vertical axis, radians
	pitch    float32 // orbit around the horizontal axis, radians
	distance float32 // scene units between the camera and the origin
	fovDeg   float32 // vertical field of view
}

const nearClip = 0.1

// view transforms a world point into camera space. The camera sits on the
// positive z axis at c.distance, looking at the origin.
func (c camera) view(p chordscope.Vec3) chordscope.Vec3 {
	return p.RotateY(c.yaw).RotateX(c.pitch)
}

// focal is the perspective scale factor for a viewport of the given height
// in pixels
func (c camera) focal(heightPx float32) float32 {
	return heightPx / (2 * math32.Tan(c.fovDeg*math32.Pi/360))
}

// depth is the distance of a camera-space point from the camera along the
// view axis
func (c camera) depth(v chordscope.Vec3) float32 {
	return c.distance - v.Z
}

// screen maps a camera-space point to viewport pixels around the center
// (cx, cy); ok is false when the point is behind the near plane and should
// not be drawn
func (c camera) screen(v chordscope.Vec3, cx, cy, focal float32) (x, y float32, ok bool) {
	d := c.depth(v)
	if d <= nearClip {
		return 0, 0, false
	}
	s := focal / d
	return cx + v.X*s, cy - v.Y*s, true
}

// lightDirection is the unit direction of the light orbiting the scene,
// given the orbit angle in radians
func lightDirection(angle float32) chordscope.Vec3 {
	s, c := math32.Sincos(angle)
	return chordscope.Vec3{X: c, Y: 0.5, Z: s}.Normalized()
}

// shade is the brightness of a tube segment with the given unit tangent. A
// tube reflects the most light when the light hits it broadside, so the
// brightness follows the cross product instead of the usual dot.
func shade(tangent, light chordscope.Vec3) float32 {
	d := tangent.Cross(light).Length()
	if d > 1 {
		d = 1
	}
	return 0.25 + 0.75*d
}

func scaleColor(col color.NRGBA, s float32) color.NRGBA {
	if s < 0 {
		s = 0
	}
	if s > 1 {
		s = 1
	}
	col.R = uint8(float32(col.R) * s)
	col.G = uint8(float32(col.G) * s)
	col.B = uint8(float32(col.B) * s)
	return col
}
