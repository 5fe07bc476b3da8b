package pcview

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// PointCloud is a named, immutable batch of points. The ID ties GPU-side
// buffers to their source cloud across frames.
type PointCloud struct {
	ID       uuid.UUID
	Name     string
	Vertices []PointVertex
}

func NewPointCloud(name string, vertices []PointVertex) PointCloud {
	return PointCloud{
		ID:       uuid.New(),
		Name:     name,
		Vertices: vertices,
	}
}

func (c *PointCloud) Len() int { return len(c.Vertices) }

// Bounds returns the axis-aligned bounding box of the cloud's points.
// Empty clouds report zero bounds.
func (c *PointCloud) Bounds() (min, max mgl32.Vec3) {
	if len(c.Vertices) == 0 {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}
	p := c.Vertices[0].Position
	min = mgl32.Vec3{p[0], p[1], p[2]}
	max = min
	for _, v := range c.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v.Position[i] < min[i] {
				min[i] = v.Position[i]
			}
			if v.Position[i] > max[i] {
				max[i] = v.Position[i]
			}
		}
	}
	return min, max
}

// CloudComponent attaches a PointCloud to an entity so the renderer picks
// it up.
type CloudComponent struct {
	Cloud PointCloud
}
