package pcview

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// LoadCSVFile reads a point cloud from a CSV file with exactly seven columns
// per row: X, Y, Z, R, G, B, Size. No header row.
func LoadCSVFile(path string) (PointCloud, error) {
	f, err := os.Open(path)
	if err != nil {
		return PointCloud{}, err
	}
	defer f.Close()

	return ParseCSV(f, path)
}

// ParseCSV parses seven-column point rows from r. Any row with the wrong
// column count or a non-numeric field fails the whole load.
func ParseCSV(r io.Reader, name string) (PointCloud, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 7
	reader.TrimLeadingSpace = true

	var vertices []PointVertex
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return PointCloud{}, fmt.Errorf("%s: input needs 7 cols: X, Y, Z, R, G, B, Size: %w", name, err)
		}

		fields := make([]float32, 7)
		for i, raw := range record {
			v, err := strconv.ParseFloat(raw, 32)
			if err != nil {
				return PointCloud{}, fmt.Errorf("%s line %d col %d: %w", name, line, i+1, err)
			}
			fields[i] = float32(v)
		}

		vertices = append(vertices, PointVertex{
			Position: [4]float32{fields[0], fields[1], fields[2], 1},
			Color:    [4]float32{fields[3], fields[4], fields[5], 1},
			Size:     fields[6],
		})
	}

	return NewPointCloud(name, vertices), nil
}
