package pcview

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSplatTransform_KnownRange(t *testing.T) {
	cam := CameraUniform{
		Position: mgl32.Vec4{0, 0, 0, 1},
		ViewProj: mgl32.Ident4(),
	}
	v := PointVertex{
		Position: [4]float32{3, 4, 0, 1},
		Color:    [4]float32{0.5, 0.25, 0.125, 1},
		Size:     2,
	}

	out := SplatTransform(v, cam)

	// Range is 5 (3-4-5 triangle, w components equal), so (2/5)^2 = 0.16.
	if math.Abs(float64(out.Size)-0.16) > 1e-6 {
		t.Errorf("Expected size 0.16, got %v", out.Size)
	}
}

func TestSplatTransform_InverseSquareFalloff(t *testing.T) {
	cam := CameraUniform{
		Position: mgl32.Vec4{0, 0, 0, 1},
		ViewProj: mgl32.Ident4(),
	}
	near := PointVertex{Position: [4]float32{0, 0, 2, 1}, Size: 3}
	far := PointVertex{Position: [4]float32{0, 0, 4, 1}, Size: 3}

	nearOut := SplatTransform(near, cam)
	farOut := SplatTransform(far, cam)

	// Doubling the range must quarter the screen diameter, not halve it.
	ratio := nearOut.Size / farOut.Size
	if math.Abs(float64(ratio)-4.0) > 1e-4 {
		t.Errorf("Expected 4x size ratio at 2x range, got %v", ratio)
	}
}

func TestSplatTransform_SizeMonotonicallyDecreases(t *testing.T) {
	cam := CameraUniform{
		Position: mgl32.Vec4{0, 0, 0, 1},
		ViewProj: mgl32.Ident4(),
	}

	prev := float32(math.Inf(1))
	for d := float32(1); d <= 64; d *= 2 {
		out := SplatTransform(PointVertex{Position: [4]float32{d, 0, 0, 1}, Size: 5}, cam)
		if out.Size >= prev {
			t.Errorf("Size did not decrease with range: %v at distance %v (prev %v)", out.Size, d, prev)
		}
		prev = out.Size
	}
}

func TestSplatTransform_PointAtEye(t *testing.T) {
	cam := CameraUniform{
		Position: mgl32.Vec4{1, 2, 3, 1},
		ViewProj: mgl32.Ident4(),
	}
	v := PointVertex{Position: [4]float32{1, 2, 3, 1}, Size: 1}

	out := SplatTransform(v, cam)

	// Zero range is clamped, not divided through.
	if math.IsNaN(float64(out.Size)) || math.IsInf(float64(out.Size), 0) {
		t.Errorf("Expected finite size for a point at the eye, got %v", out.Size)
	}
}

func TestSplatTransform_ClipPosition(t *testing.T) {
	cam := CameraUniform{
		Position: mgl32.Vec4{0, 0, 0, 1},
		ViewProj: mgl32.Translate3D(1, 2, 3),
	}
	v := PointVertex{Position: [4]float32{1, 1, 1, 1}, Size: 1}

	out := SplatTransform(v, cam)

	expected := mgl32.Vec4{2, 3, 4, 1}
	if !out.ClipPos.ApproxEqual(expected) {
		t.Errorf("Expected clip position %v, got %v", expected, out.ClipPos)
	}
}

func TestSplatTransform_ColorPassThrough(t *testing.T) {
	cam := CameraUniform{
		Position: mgl32.Vec4{0, 0, 0, 1},
		ViewProj: mgl32.Ident4(),
	}
	color := [4]float32{0.123456, 0.654321, 0.999999, 0.5}
	v := PointVertex{Position: [4]float32{0, 0, 7, 1}, Color: color, Size: 1}

	out := SplatTransform(v, cam)

	for i := 0; i < 4; i++ {
		if out.Color[i] != color[i] {
			t.Errorf("Color component %d changed: %v != %v", i, out.Color[i], color[i])
		}
	}
}

func TestShadeSplat_InsideCircle(t *testing.T) {
	color := mgl32.Vec4{0.25, 0.5, 0.75, 1}

	out := ShadeSplat(color, mgl32.Vec2{0.5, 0.5}, 0.42)

	if out.Color != color {
		t.Errorf("Expected pass-through color %v, got %v", color, out.Color)
	}
	if out.Depth != 0.42 {
		t.Errorf("Expected rasterized depth 0.42, got %v", out.Depth)
	}
}

func TestShadeSplat_Corner(t *testing.T) {
	out := ShadeSplat(mgl32.Vec4{1, 0, 0, 1}, mgl32.Vec2{0, 0}, 0.1)

	black := mgl32.Vec4{0, 0, 0, 1}
	if out.Color != black {
		t.Errorf("Expected opaque black at the corner, got %v", out.Color)
	}
	if out.Depth != 1.0 {
		t.Errorf("Expected depth pushed to 1.0 at the corner, got %v", out.Depth)
	}
}

func TestShadeSplat_RimIsOutside(t *testing.T) {
	// radius == 0.5 exactly; the comparison is strict, so the rim pixel is out.
	out := ShadeSplat(mgl32.Vec4{1, 1, 1, 1}, mgl32.Vec2{1.0, 0.5}, 0.1)

	if out.Depth != 1.0 {
		t.Errorf("Expected the rim pixel outside the circle, got depth %v", out.Depth)
	}
}

func TestShadeSplat_JustInsideRim(t *testing.T) {
	color := mgl32.Vec4{0, 1, 0, 1}

	out := ShadeSplat(color, mgl32.Vec2{0.999, 0.5}, 0.3)

	if out.Color != color {
		t.Errorf("Expected pass-through just inside the rim, got %v", out.Color)
	}
}
