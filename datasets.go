package pcview

import (
	"math"
	"math/rand"
)

// Built-in demo datasets shown before the user drops a file. Counts are
// parameters so tests can use small clouds.

// RandomWalkCloud generates n points walking along +X with a uniformly
// random Y step in [-2.5, 2.5) per point. Deterministic for a given seed.
func RandomWalkCloud(name string, r, g, b float32, n int, seed int64) PointCloud {
	rng := rand.New(rand.NewSource(seed))
	vertices := make([]PointVertex, 0, n)

	y := float32(0)
	for x := 0; x < n; x++ {
		vertices = append(vertices, PointVertex{
			Position: [4]float32{float32(x) / 1000.0, y, 0, 1},
			Color:    [4]float32{r, g, b, 1},
			Size:     1.0,
		})
		y += rng.Float32()*5.0 - 2.5
	}

	return NewPointCloud(name, vertices)
}

// SincSurfaceCloud samples z = 10·sin(d)/d over a [-gridHalf/10, gridHalf/10)²
// grid at 0.1 spacing. Color encodes the polar angle in red/green and the
// height in blue.
func SincSurfaceCloud(name string, gridHalf int) PointCloud {
	vertices := make([]PointVertex, 0, 4*gridHalf*gridHalf)

	for xIdx := -gridHalf; xIdx < gridHalf; xIdx++ {
		for yIdx := -gridHalf; yIdx < gridHalf; yIdx++ {
			x := float32(xIdx) / 10.0
			y := float32(yIdx) / 10.0
			d := float32(math.Sqrt(float64(x*x + y*y)))
			z := float32(10.0)
			if d != 0 {
				z = float32(math.Sin(float64(d))) / d * 10.0
			}
			angle := float32(math.Atan2(float64(y), float64(x)))
			vertices = append(vertices, PointVertex{
				Position: [4]float32{x, y, z, 1},
				Color: [4]float32{
					angle/(2*math.Pi) + 0.5,
					-angle/(2*math.Pi) + 0.5,
					z / 10.0,
					1,
				},
				Size: 1.0,
			})
		}
	}

	return NewPointCloud(name, vertices)
}

// AxesCloud marks the origin with a large white splat and each axis with
// nine colored ticks (X red, Y green, Z blue).
func AxesCloud() PointCloud {
	vertices := make([]PointVertex, 0, 1+9*3)

	vertices = append(vertices, PointVertex{
		Position: [4]float32{0, 0, 0, 1},
		Color:    [4]float32{1, 1, 1, 1},
		Size:     40.0,
	})
	for i := 1; i < 10; i++ {
		f := float32(i)
		vertices = append(vertices,
			PointVertex{Position: [4]float32{f, 0, 0, 1}, Color: [4]float32{1, 0, 0, 1}, Size: 20.0},
			PointVertex{Position: [4]float32{0, f, 0, 1}, Color: [4]float32{0, 1, 0, 1}, Size: 20.0},
			PointVertex{Position: [4]float32{0, 0, f, 1}, Color: [4]float32{0, 0, 1, 1}, Size: 20.0},
		)
	}

	return NewPointCloud("axes", vertices)
}
