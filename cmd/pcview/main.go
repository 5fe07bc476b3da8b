package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pcview3d/pcview"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := pcview.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	background, err := cfg.BackgroundColor()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app := pcview.NewAppBuilder().
		UseModule(
			pcview.LoggingModule{Prefix: "pcview", Debug: *debug},
			pcview.TimeModule{},
			pcview.PlatformWindowModule{
				Width:  cfg.Window.Width,
				Height: cfg.Window.Height,
				Title:  cfg.Window.Title,
			},
			pcview.InputModule{},
			pcview.OrbitCameraModule{
				Target:    mgl32.Vec3(cfg.Camera.Target),
				Range:     cfg.Camera.Range,
				Azimuth:   cfg.Camera.Azimuth,
				Elevation: cfg.Camera.Elevation,
				Fov:       cfg.Camera.Fov,
			},
			pcview.CloudModule{},
			pcview.SplatRendererModule{Background: background},
		).
		Build()

	app.Run()
}
