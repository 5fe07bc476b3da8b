package pcview

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBinaryPCD(t *testing.T, points [][3]float32) string {
	t.Helper()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "VERSION 0.7\n")
	fmt.Fprintf(&buf, "FIELDS x y z\n")
	fmt.Fprintf(&buf, "SIZE 4 4 4\n")
	fmt.Fprintf(&buf, "TYPE F F F\n")
	fmt.Fprintf(&buf, "COUNT 1 1 1\n")
	fmt.Fprintf(&buf, "WIDTH %d\n", len(points))
	fmt.Fprintf(&buf, "HEIGHT 1\n")
	fmt.Fprintf(&buf, "VIEWPOINT 0 0 0 1 0 0 0\n")
	fmt.Fprintf(&buf, "POINTS %d\n", len(points))
	fmt.Fprintf(&buf, "DATA binary\n")
	for _, p := range points {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, p[:]))
	}

	path := filepath.Join(t.TempDir(), "cloud.pcd")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestLoadPCDFile(t *testing.T) {
	path := writeBinaryPCD(t, [][3]float32{
		{1, 2, 3},
		{-4.5, 0, 6},
		{0, 7, -8},
	})

	cloud, err := LoadPCDFile(path)
	require.NoError(t, err)
	require.Equal(t, 3, cloud.Len())

	expected := [][4]float32{
		{1, 2, 3, 1},
		{-4.5, 0, 6, 1},
		{0, 7, -8, 1},
	}
	for i, v := range cloud.Vertices {
		assert.Equal(t, expected[i], v.Position, "point %d", i)
		// PCD carries no color or size; the neutral defaults apply.
		assert.Equal(t, [4]float32{0.8, 0.8, 0.8, 1}, v.Color, "point %d", i)
		assert.Equal(t, float32(1), v.Size, "point %d", i)
	}
}

func TestLoadPCDFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pcd")
	require.NoError(t, os.WriteFile(path, []byte("garbage\n"), 0o644))

	_, err := LoadPCDFile(path)
	assert.Error(t, err)
}

func TestLoadPCDFile_Missing(t *testing.T) {
	_, err := LoadPCDFile(filepath.Join(t.TempDir(), "nope.pcd"))
	assert.Error(t, err)
}

func TestLoadCloudFile_DispatchesPCD(t *testing.T) {
	path := writeBinaryPCD(t, [][3]float32{{9, 9, 9}})

	cloud, err := loadCloudFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, cloud.Len())
	assert.Equal(t, [4]float32{9, 9, 9, 1}, cloud.Vertices[0].Position)
}
