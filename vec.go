package chordscope

import "github.com/chewxy/math32"

// Vec3 is a point or direction in the curve's model space.
type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(w Vec3) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalized returns the unit vector in the direction of v. The zero vector
// is returned unchanged.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// RotateX rotates v about the x axis by angle radians.
func (v Vec3) RotateX(angle float32) Vec3 {
	sin, cos := math32.Sincos(angle)
	return Vec3{v.X, v.Y*cos - v.Z*sin, v.Y*sin + v.Z*cos}
}

// RotateY rotates v about the y axis by angle radians.
func (v Vec3) RotateY(angle float32) Vec3 {
	sin, cos := math32.Sincos(angle)
	return Vec3{v.X*cos + v.Z*sin, v.Y, -v.X*sin + v.Z*cos}
}
