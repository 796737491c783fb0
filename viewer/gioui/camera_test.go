package gioui

import (
	"image/color"
	"testing"

	"github.com/chewxy/math32"
	"github.com/chordscope/chordscope"
)

func TestScreenProjection(t *testing.T) {
	cam := camera{distance: 5, fovDeg: 30}
	focal := cam.focal(600)
	x, y, ok := cam.screen(chordscope.Vec3{}, 320, 300, focal)
	if !ok || x != 320 || y != 300 {
		t.Fatalf("origin projected to (%v, %v), expected the viewport center", x, y)
	}
	x2, _, ok := cam.screen(chordscope.Vec3{X: 1}, 320, 300, focal)
	if !ok || x2 <= x {
		t.Errorf("positive x projected to %v, expected right of the center", x2)
	}
	_, y2, ok := cam.screen(chordscope.Vec3{Y: 1}, 320, 300, focal)
	if !ok || y2 >= y {
		t.Errorf("positive y projected to %v, expected above the center", y2)
	}
}

func TestScreenNearPointsLookBigger(t *testing.T) {
	cam := camera{distance: 5, fovDeg: 45}
	focal := cam.focal(600)
	xNear, _, ok1 := cam.screen(chordscope.Vec3{X: 1, Z: 1}, 0, 0, focal)
	xFar, _, ok2 := cam.screen(chordscope.Vec3{X: 1, Z: -1}, 0, 0, focal)
	if !ok1 || !ok2 || xNear <= xFar {
		t.Errorf("near offset %v should exceed far offset %v", xNear, xFar)
	}
}

func TestScreenBehindCamera(t *testing.T) {
	cam := camera{distance: 1, fovDeg: 60}
	if _, _, ok := cam.screen(chordscope.Vec3{Z: 2}, 0, 0, cam.focal(100)); ok {
		t.Errorf("a point behind the near plane should not project")
	}
}

func TestYawQuarterTurn(t *testing.T) {
	cam := camera{yaw: math32.Pi / 2, distance: 5, fovDeg: 45}
	v := cam.view(chordscope.Vec3{X: 1})
	if math32.Abs(v.X) > 1e-6 || math32.Abs(v.Z+1) > 1e-6 {
		t.Errorf("quarter yaw moved (1,0,0) to %+v, expected (0,0,-1)", v)
	}
}

func TestWiderFOVShortensFocal(t *testing.T) {
	narrow := camera{fovDeg: 30}.focal(600)
	wide := camera{fovDeg: 90}.focal(600)
	if wide >= narrow {
		t.Errorf("focal %v at 90 degrees should be shorter than %v at 30", wide, narrow)
	}
}

func TestShade(t *testing.T) {
	light := chordscope.Vec3{X: 1}
	if got := shade(chordscope.Vec3{X: 1}, light); math32.Abs(got-0.25) > 1e-6 {
		t.Errorf("tangent parallel to the light shaded %v, expected the 0.25 floor", got)
	}
	if got := shade(chordscope.Vec3{Y: 1}, light); math32.Abs(got-1) > 1e-6 {
		t.Errorf("tangent perpendicular to the light shaded %v, expected full brightness", got)
	}
}

func TestLightDirectionIsUnit(t *testing.T) {
	for a := float32(0); a < 7; a += 0.5 {
		if l := lightDirection(a).Length(); math32.Abs(l-1) > 1e-6 {
			t.Errorf("light at angle %v has length %v", a, l)
		}
	}
}

func TestScaleColor(t *testing.T) {
	col := color.NRGBA{R: 100, G: 200, B: 50, A: 255}
	if got := scaleColor(col, 0); got.R != 0 || got.G != 0 || got.B != 0 || got.A != 255 {
		t.Errorf("scaling to zero gave %+v, expected black with alpha kept", got)
	}
	if got := scaleColor(col, 2); got != col {
		t.Errorf("scales above one should clamp, got %+v", got)
	}
}
