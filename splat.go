package pcview

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CameraUniform is the per-frame camera state consumed by the splat pipeline,
// bound at group 0, binding 0. Position is the homogeneous world-space eye
// position (w = 1); ViewProj is the combined view × projection transform.
type CameraUniform struct {
	Position mgl32.Vec4
	ViewProj mgl32.Mat4
}

// PointVertex is one point of a cloud as uploaded to the GPU. Position is
// homogeneous world space (w = 1), Color is normalized RGBA, Size is the
// world-space splat diameter hint.
type PointVertex struct {
	Position [4]float32 `pcview:"layout" location:"0" format:"float4"`
	Color    [4]float32 `pcview:"layout" location:"1" format:"float4"`
	Size     float32    `pcview:"layout" location:"2" format:"float"`
}

// SplatPoint is the per-point output of the vertex stage.
type SplatPoint struct {
	ClipPos mgl32.Vec4
	Size    float32 // screen-space splat diameter, pixels
	Color   mgl32.Vec4
}

// FragmentOutput is the per-pixel output of the fragment stage.
type FragmentOutput struct {
	Color mgl32.Vec4
	Depth float32
}

// rangeEpsilon floors the camera-to-point distance. A point coinciding with
// the eye would otherwise divide by zero and produce a NaN-sized splat.
// Mirrored by RANGE_EPSILON in shaders/splat.wgsl.
const rangeEpsilon = 1e-6

// SplatTransform is the per-point stage of the splat pipeline: clip-space
// position, screen-space splat size and pass-through color.
//
// The splat diameter is (size/range)^2, an inverse-square falloff: distant
// points shrink quadratically rather than linearly, so near points don't
// dominate the view as aggressively as a plain perspective size would.
// The square is load-bearing; don't "fix" it to size/range.
func SplatTransform(v PointVertex, cam CameraUniform) SplatPoint {
	pos := mgl32.Vec4{v.Position[0], v.Position[1], v.Position[2], v.Position[3]}

	// Distance is taken over all four components; callers keep w consistent
	// (1 for both eye and point) so it measures world-space separation.
	rng := pos.Sub(cam.Position).Len()
	if rng < rangeEpsilon {
		rng = rangeEpsilon
	}
	s := v.Size / rng

	return SplatPoint{
		ClipPos: cam.ViewProj.Mul4x1(pos),
		Size:    s * s,
		Color:   mgl32.Vec4{v.Color[0], v.Color[1], v.Color[2], v.Color[3]},
	}
}

// splatCenter is the point-coordinate of the bounding square's center.
var splatCenter = mgl32.Vec2{0.5, 0.5}

// ShadeSplat is the per-pixel stage: pointCoord is the pixel's normalized
// [0,1]² offset within the splat's bounding square, fragDepth the rasterized
// depth. Pixels inside the inscribed circle (strictly; the rim at radius 0.5
// is out) keep their color and depth. Pixels in the square's corners are not
// discarded: they output opaque black pushed to the far plane, so they never
// occlude geometry behind the splat. The depth pipeline must therefore
// tolerate fragment depth that moved toward 1.0 (see createSplatPipeline).
func ShadeSplat(color mgl32.Vec4, pointCoord mgl32.Vec2, fragDepth float32) FragmentOutput {
	radius := splatCenter.Sub(pointCoord).Len()
	if radius < 0.5 {
		return FragmentOutput{Color: color, Depth: fragDepth}
	}
	return FragmentOutput{
		Color: mgl32.Vec4{0, 0, 0, 1},
		Depth: 1.0,
	}
}
