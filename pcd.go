package pcview

import (
	"os"

	"github.com/seqsense/pcgol/pc"
)

// PCD files carry positions only as far as the viewer is concerned; points
// get a neutral color and unit size.
var pcdPointDefaults = PointVertex{
	Color: [4]float32{0.8, 0.8, 0.8, 1},
	Size:  1.0,
}

// LoadPCDFile reads a point cloud from a PCD file (ascii or binary).
func LoadPCDFile(path string) (PointCloud, error) {
	f, err := os.Open(path)
	if err != nil {
		return PointCloud{}, err
	}
	defer f.Close()

	pp, err := pc.Unmarshal(f)
	if err != nil {
		return PointCloud{}, err
	}

	it, err := pp.Vec3Iterator()
	if err != nil {
		return PointCloud{}, err
	}

	n := it.Len()
	vertices := make([]PointVertex, 0, n)
	for i := 0; i < n; i++ {
		v := it.Vec3()
		pt := pcdPointDefaults
		pt.Position = [4]float32{v[0], v[1], v[2], 1}
		vertices = append(vertices, pt)
		it.Incr()
	}

	return NewPointCloud(path, vertices), nil
}
