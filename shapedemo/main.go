package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gekko3d/phonglight"
	"github.com/gekko3d/phonglight/rt/config"
	"github.com/gekko3d/phonglight/rt/geometry"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	shape := flag.String("shape", config.DefaultShape, "Shape to render (cube, sphere, cylinder, torus)")
	animate := flag.Bool("animate", true, "Spin the shape with a fixed camera instead of the orbit camera")
	debug := flag.Bool("debug", false, "Enable debug logging (camera moves, frame stats)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	// Flags given on the command line win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "shape":
			cfg.Shape = *shape
		case "animate":
			cfg.Animate = *animate
		case "debug":
			cfg.Debug = *debug
		}
	})

	mesh, err := geometry.ByName(cfg.Shape)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	err = phonglight.CreateShapeWithLight(mesh, cfg.Light, cfg.Animate, phonglight.Options{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		Debug:  cfg.Debug,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
