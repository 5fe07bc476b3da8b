package pcview

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraComponent is an orbiting camera: the eye circles a target point at
// the given range, parameterized by azimuth/elevation (radians, Z-up).
type CameraComponent struct {
	Target    mgl32.Vec3
	Range     float32
	Azimuth   float32
	Elevation float32

	Fov    float32 // vertical field of view, radians
	Aspect float32
	Near   float32
	Far    float32
}

// OrbitControlComponent accumulates one frame of camera input.
type OrbitControlComponent struct {
	OrbitGain float32
	PanGain   float32

	Orbit mgl32.Vec2
	Pan   mgl32.Vec2
	Zoom  float32
}

// OrbitCameraModule spawns the camera entity and installs the mouse-driven
// orbit/pan/zoom controls: drag orbits, shift-drag pans the focus point on
// the azimuth-aligned ground plane, scrolling zooms exponentially.
type OrbitCameraModule struct {
	Target    mgl32.Vec3
	Range     float32
	Azimuth   float32 // degrees
	Elevation float32 // degrees
	Fov       float32 // degrees
}

func (m OrbitCameraModule) Install(app *App, cmd *Commands) {
	rng := m.Range
	if rng <= 0 {
		rng = 10.0
	}
	fov := m.Fov
	if fov <= 0 {
		fov = 45.0
	}

	cmd.AddEntity(
		&CameraComponent{
			Target:    m.Target,
			Range:     rng,
			Azimuth:   mgl32.DegToRad(m.Azimuth),
			Elevation: mgl32.DegToRad(m.Elevation),
			Fov:       mgl32.DegToRad(fov),
			Aspect:    1.0,
			Near:      0.1,
			Far:       100.0,
		},
		&OrbitControlComponent{},
	)

	app.UseSystem(
		System(orbitCameraInputSystem).
			InStage(Update),
	)
	app.UseSystem(
		System(orbitCameraControlSystem).
			InStage(Update),
	)
}

func orbitCameraInputSystem(input *Input, cmd *Commands) {
	MakeQuery1[OrbitControlComponent](cmd).Map(func(eid EntityId, ctl *OrbitControlComponent) bool {
		ctl.Orbit = mgl32.Vec2{}
		ctl.Pan = mgl32.Vec2{}
		ctl.Zoom = 0

		delta := mgl32.Vec2{float32(input.MouseDeltaX), float32(input.MouseDeltaY)}
		if input.Pressed[MouseButtonLeft] && !input.JustPressed[MouseButtonLeft] {
			if input.Pressed[KeyShift] {
				ctl.Pan = delta
			} else {
				ctl.Orbit = delta
			}
		}

		// Wheel: vertical zooms, horizontal pans the focus sideways.
		ctl.Zoom = float32(input.ScrollY)
		ctl.Pan[0] -= float32(input.ScrollX)

		return true
	})
}

func orbitCameraControlSystem(cmd *Commands, input *Input, logger *DefaultLogger) {
	MakeQuery2[CameraComponent, OrbitControlComponent](cmd).Map(func(eid EntityId, cam *CameraComponent, ctl *OrbitControlComponent) bool {
		if ctl.OrbitGain == 0 {
			ctl.OrbitGain = 0.01
		}
		if ctl.PanGain == 0 {
			ctl.PanGain = 0.1
		}

		// Orbit
		cam.Azimuth -= ctl.Orbit[0] * ctl.OrbitGain
		cam.Elevation += ctl.Orbit[1] * ctl.OrbitGain

		// Clamp elevation, wrap azimuth
		if cam.Elevation > mgl32.DegToRad(90) {
			cam.Elevation = mgl32.DegToRad(90)
		}
		if cam.Elevation < mgl32.DegToRad(-270) {
			cam.Elevation = mgl32.DegToRad(-270)
		}
		cam.Azimuth = float32(math.Mod(float64(cam.Azimuth), 2*math.Pi))

		// Exponential zoom: each wheel notch scales the range by 0.75.
		if ctl.Zoom != 0 {
			cam.Range = cam.Range * float32(math.Pow(0.75, float64(ctl.Zoom)))
		}

		// Pan the focus point on the ground plane, aligned to the current azimuth.
		if ctl.Pan.Len() > 0 {
			sinAz := float32(math.Sin(float64(cam.Azimuth)))
			cosAz := float32(math.Cos(float64(cam.Azimuth)))
			worldDelta := mgl32.Vec3{
				-sinAz*ctl.Pan[0] + cosAz*ctl.Pan[1],
				cosAz*ctl.Pan[0] + sinAz*ctl.Pan[1],
				0,
			}.Mul(ctl.PanGain)
			cam.Target = cam.Target.Sub(worldDelta)
		}

		// Track window aspect
		if input.WindowHeight > 0 {
			cam.Aspect = float32(input.WindowWidth) / float32(input.WindowHeight)
		}

		if input.JustPressed[KeyC] {
			logger.Infof("camera: target=%v range=%.3f azimuth=%.3f elevation=%.3f",
				cam.Target, cam.Range, cam.Azimuth, cam.Elevation)
		}

		return true
	})
}

// cartesianFromPolar converts range/azimuth/elevation to a Z-up offset vector.
func cartesianFromPolar(rng, azimuth, elevation float32) mgl32.Vec3 {
	rCosEl := rng * float32(math.Cos(float64(elevation)))
	x := rCosEl * float32(math.Cos(float64(azimuth)))
	y := rCosEl * float32(math.Sin(float64(azimuth)))
	z := rng * float32(math.Sin(float64(elevation)))
	return mgl32.Vec3{x, y, z}
}

// Eye returns the camera's world-space position.
func (c *CameraComponent) Eye() mgl32.Vec3 {
	return c.Target.Add(cartesianFromPolar(c.Range, c.Azimuth, c.Elevation))
}

// glToWgpu remaps OpenGL clip space (z in [-1,1]) to wgpu clip space
// (z in [0,1]); the x/y flip keeps the orbit handedness consistent.
var glToWgpu = mgl32.Mat4{
	-1, 0, 0, 0,
	0, -1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// BuildCameraUniform derives the per-frame CameraUniform from the orbit state.
// The up vector is taken from a slightly raised elevation so it stays valid
// when looking straight down.
func BuildCameraUniform(c *CameraComponent) CameraUniform {
	const upDelta = 0.01

	eye := c.Eye()
	up := c.Target.Add(cartesianFromPolar(c.Range, c.Azimuth, c.Elevation+upDelta)).Sub(eye)

	view := mgl32.LookAtV(eye, c.Target, up)
	projection := mgl32.Perspective(c.Fov, c.Aspect, c.Near, c.Far)

	return CameraUniform{
		Position: mgl32.Vec4{eye.X(), eye.Y(), eye.Z(), 1.0},
		ViewProj: glToWgpu.Mul4(projection).Mul4(view),
	}
}
