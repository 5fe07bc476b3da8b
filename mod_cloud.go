package pcview

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// CloudModule spawns the built-in demo clouds and replaces them with the
// contents of any file dropped onto the window.
type CloudModule struct {
	// SkipDefaults leaves the scene empty until a file is dropped.
	SkipDefaults bool
	// WalkPoints overrides the random-walk length (default 100000).
	WalkPoints int
	// SincGridHalf overrides the sinc surface half-resolution (default 300,
	// i.e. a 600x600 grid).
	SincGridHalf int
}

func (m CloudModule) Install(app *App, cmd *Commands) {
	if !m.SkipDefaults {
		walkPoints := m.WalkPoints
		if walkPoints <= 0 {
			walkPoints = 100000
		}
		gridHalf := m.SincGridHalf
		if gridHalf <= 0 {
			gridHalf = 300
		}

		spawnCloud(cmd, RandomWalkCloud("walk-r", 1, 0, 0, walkPoints, 1))
		spawnCloud(cmd, RandomWalkCloud("walk-g", 0, 1, 0, walkPoints, 2))
		spawnCloud(cmd, RandomWalkCloud("walk-b", 0, 0, 1, walkPoints, 3))
		spawnCloud(cmd, SincSurfaceCloud("sinc", gridHalf))
		spawnCloud(cmd, AxesCloud())
	}

	app.UseSystem(
		System(droppedFileSystem).
			InStage(Update),
	)
}

func spawnCloud(cmd *Commands, cloud PointCloud) EntityId {
	return cmd.AddEntity(&CloudComponent{Cloud: cloud})
}

// loadCloudFile dispatches on the file extension.
func loadCloudFile(path string) (PointCloud, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSVFile(path)
	case ".pcd":
		return LoadPCDFile(path)
	default:
		return PointCloud{}, fmt.Errorf("unsupported file type: %s", path)
	}
}

// droppedFileSystem replaces the loaded clouds with the dropped files'
// contents. All files must load; on any error the current scene is kept.
func droppedFileSystem(input *Input, logger *DefaultLogger, cmd *Commands) {
	if len(input.DroppedFiles) == 0 {
		return
	}

	clouds := make([]PointCloud, 0, len(input.DroppedFiles))
	for _, path := range input.DroppedFiles {
		cloud, err := loadCloudFile(path)
		if err != nil {
			logger.Errorf("load %s: %v", path, err)
			return
		}
		clouds = append(clouds, cloud)
	}

	MakeQuery1[CloudComponent](cmd).Map(func(eid EntityId, c *CloudComponent) bool {
		cmd.RemoveEntity(eid)
		return true
	})
	for _, cloud := range clouds {
		logger.Infof("loaded %s: %d points", cloud.Name, cloud.Len())
		spawnCloud(cmd, cloud)
	}
	frameCamera(cmd, clouds)
}

// frameCamera points the orbit camera at the freshly loaded scene: target at
// the center of the combined bounds, range fitted to the bounding sphere.
func frameCamera(cmd *Commands, clouds []PointCloud) {
	first := true
	var min, max mgl32.Vec3
	for i := range clouds {
		if clouds[i].Len() == 0 {
			continue
		}
		cMin, cMax := clouds[i].Bounds()
		if first {
			min, max = cMin, cMax
			first = false
			continue
		}
		for j := 0; j < 3; j++ {
			if cMin[j] < min[j] {
				min[j] = cMin[j]
			}
			if cMax[j] > max[j] {
				max[j] = cMax[j]
			}
		}
	}
	if first {
		return
	}

	center := min.Add(max).Mul(0.5)
	radius := max.Sub(min).Len() / 2

	MakeQuery1[CameraComponent](cmd).Map(func(eid EntityId, cam *CameraComponent) bool {
		cam.Target = center
		if radius > 0 {
			cam.Range = radius * 2
		}
		return true
	})
}
