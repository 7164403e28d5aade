// Command tracepath renders a scene document with the Monte Carlo path
// tracer in pkg/camera. Flags follow the teacher's root main.go style
// (flag.StringVar/IntVar, a -help flag printing flag.PrintDefaults plus a
// usage banner).
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/quietarc/tracepath/pkg/accel"
	"github.com/quietarc/tracepath/pkg/camera"
	"github.com/quietarc/tracepath/pkg/core"
	"github.com/quietarc/tracepath/pkg/estimator"
	"github.com/quietarc/tracepath/pkg/present"
	"github.com/quietarc/tracepath/pkg/scenedoc"
)

// config holds the command's flags.
type config struct {
	ScenePath  string
	CameraName string
	Iterations int
	Workers    int
	Output     string
	Help       bool
}

func main() {
	cfg := parseFlags()
	if cfg.Help {
		showHelp()
		return
	}

	logger := newSessionLogger()

	if err := run(cfg, logger); err != nil {
		logger.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.ScenePath, "scene", "", "path to a scene document (YAML, see pkg/scenedoc)")
	flag.StringVar(&cfg.CameraName, "camera", "main", "name of the camera record to render")
	flag.IntVar(&cfg.Iterations, "iterations", 10, "number of render iterations to run (negative = run forever)")
	flag.IntVar(&cfg.Workers, "workers", 0, "max concurrent row workers (0 = auto-detect CPU count)")
	flag.StringVar(&cfg.Output, "out", "render.png", "output PNG path, written after every iteration when running forever, otherwise once after the last")
	flag.BoolVar(&cfg.Help, "help", false, "show help information")
	flag.Parse()
	return cfg
}

func showHelp() {
	fmt.Println("tracepath: a Monte Carlo path tracer")
	fmt.Println("Usage: tracepath --scene=scene.yaml [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  tracepath --scene=scenes/cornell.yaml --iterations=64 --out=out.png")
	fmt.Println("  tracepath --scene=scenes/cornell.yaml --iterations=-1 --workers=8")
}

func run(cfg config, logger core.Logger) error {
	if cfg.ScenePath == "" {
		return fmt.Errorf("--scene is required")
	}

	data, err := os.ReadFile(cfg.ScenePath)
	if err != nil {
		return fmt.Errorf("reading scene document: %w", err)
	}

	doc, err := scenedoc.Load(data)
	if err != nil {
		return fmt.Errorf("loading scene document: %w", err)
	}

	resolved, ok := doc.Cameras[cfg.CameraName]
	if !ok {
		return fmt.Errorf("camera %q not found in scene document", cfg.CameraName)
	}

	camCfg := resolved.Config
	camCfg.MaxThreads = cfg.Workers

	a := accel.New(resolved.Objects)
	cam := camera.New(camCfg, a, resolved.Objects, estimator.DefaultConfig(), logger)

	buffer := present.New(camCfg.Width, camCfg.Height)

	if cfg.Iterations < 0 {
		logger.Printf("Rendering infinitely, press Ctrl-c to terminate program\n")
		for {
			cam.RenderOnce(buffer)
			if err := writePNG(cfg.Output, buffer); err != nil {
				return err
			}
		}
	}

	logger.Printf("Rendering %d iterations\n", cfg.Iterations)
	for i := 0; i < cfg.Iterations; i++ {
		cam.RenderOnce(buffer)
	}

	if err := writePNG(cfg.Output, buffer); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", cfg.Output)
	return nil
}

func writePNG(path string, buffer *present.PresentBuffer) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	buffer.Acquire()
	raw := buffer.RawPixels()
	img := *raw
	buffer.Release()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, &img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

// sessionLogger implements core.Logger by writing to stdout with a
// per-invocation UUID prefix, so concurrent renders in combined output
// (e.g. parallel test runs) can be told apart.
type sessionLogger struct {
	prefix string
}

func newSessionLogger() core.Logger {
	return &sessionLogger{prefix: uuid.NewString()[:8]}
}

func (l *sessionLogger) Printf(format string, args ...interface{}) {
	fmt.Printf("[%s] ", l.prefix)
	fmt.Printf(format, args...)
}
