package main

import (
	"os"
	"path/filepath"
	"testing"
)

const testScene = `
materials:
  ground_mat:
    type: lambertian
    albedo: [0.7, 0.7, 0.7]

lights:
  sun:
    type: diffuse
    radiance: [4, 4, 4]

geometry:
  ground:
    type: sphere
    center: [0, -1000, 0]
    radius: 1000
    material: ground_mat
  light_sphere:
    type: sphere
    center: [0, 5, 0]
    radius: 1
    material: ground_mat
    light: sun

cameras:
  main:
    type: persp
    translate: [0, 2, 8]
    objects: [ground, light_sphere]
    width: 8
    height: 6
    fov: 0.9
    focalLength: 1.0
    fStop: 1000
    samplesPerPixel: 1
    filterWidth: 1.5
    masterSeed: 7
`

type discardLogger struct{}

func (discardLogger) Printf(format string, args ...interface{}) {}

func writeTestScene(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte(testScene), 0644); err != nil {
		t.Fatalf("writing test scene: %v", err)
	}
	return path
}

func TestRunRendersAndWritesPNG(t *testing.T) {
	scenePath := writeTestScene(t)
	outPath := filepath.Join(t.TempDir(), "out.png")

	cfg := config{
		ScenePath:  scenePath,
		CameraName: "main",
		Iterations: 1,
		Workers:    1,
		Output:     outPath,
	}

	if err := run(cfg, discardLogger{}); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("expected output file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected non-empty PNG output")
	}
}

func TestRunRequiresSceneFlag(t *testing.T) {
	cfg := config{Iterations: 1}
	if err := run(cfg, discardLogger{}); err == nil {
		t.Fatal("expected error when --scene is empty")
	}
}

func TestRunRejectsUnknownCamera(t *testing.T) {
	scenePath := writeTestScene(t)
	cfg := config{
		ScenePath:  scenePath,
		CameraName: "nonexistent",
		Iterations: 1,
		Output:     filepath.Join(t.TempDir(), "out.png"),
	}
	if err := run(cfg, discardLogger{}); err == nil {
		t.Fatal("expected error for unknown camera name")
	}
}

func TestRunRejectsMissingSceneFile(t *testing.T) {
	cfg := config{
		ScenePath:  filepath.Join(t.TempDir(), "nonexistent.yaml"),
		Iterations: 1,
		Output:     filepath.Join(t.TempDir(), "out.png"),
	}
	if err := run(cfg, discardLogger{}); err == nil {
		t.Fatal("expected error for missing scene file")
	}
}
