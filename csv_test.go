package pcview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	data := "1,2,3,0.1,0.2,0.3,4\n-1.5,0,2.25,1,1,1,0.5\n"

	cloud, err := ParseCSV(strings.NewReader(data), "test.csv")
	require.NoError(t, err)
	require.Equal(t, 2, cloud.Len())

	v := cloud.Vertices[0]
	assert.Equal(t, [4]float32{1, 2, 3, 1}, v.Position)
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1}, v.Color)
	assert.Equal(t, float32(4), v.Size)

	v = cloud.Vertices[1]
	assert.Equal(t, [4]float32{-1.5, 0, 2.25, 1}, v.Position)
	assert.Equal(t, float32(0.5), v.Size)
}

func TestParseCSV_WrongColumnCount(t *testing.T) {
	data := "1,2,3,0.1,0.2,0.3,4\n1,2,3\n"

	_, err := ParseCSV(strings.NewReader(data), "test.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "7 cols")
}

func TestParseCSV_NonNumericField(t *testing.T) {
	data := "1,2,three,0.1,0.2,0.3,4\n"

	_, err := ParseCSV(strings.NewReader(data), "test.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestParseCSV_Empty(t *testing.T) {
	cloud, err := ParseCSV(strings.NewReader(""), "empty.csv")
	require.NoError(t, err)
	assert.Equal(t, 0, cloud.Len())
}

func TestLoadCloudFile_UnsupportedExtension(t *testing.T) {
	_, err := loadCloudFile("scene.obj")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}
