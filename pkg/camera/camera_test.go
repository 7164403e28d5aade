package camera_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietarc/tracepath/pkg/accel"
	"github.com/quietarc/tracepath/pkg/arealight"
	"github.com/quietarc/tracepath/pkg/camera"
	"github.com/quietarc/tracepath/pkg/core"
	"github.com/quietarc/tracepath/pkg/estimator"
	"github.com/quietarc/tracepath/pkg/geom"
	"github.com/quietarc/tracepath/pkg/material"
	"github.com/quietarc/tracepath/pkg/present"
)

func buildTestScene() []core.Geom {
	lambert := material.NewLambertian(core.NewVec(0.7, 0.7, 0.7))
	floor := geom.NewSphere(core.NewVec(0, -1000, 0), 1000, lambert, nil)

	emissive := material.NewLambertian(core.NewVec(0, 0, 0))
	lightSphere := geom.NewSphere(core.NewVec(0, 5, 0), 1, emissive, nil)
	lightSphere.Light = arealight.NewDiffuseAreaLight(lightSphere, core.NewVec(8, 8, 8))

	return []core.Geom{floor, lightSphere}
}

func testConfig() camera.Config {
	return camera.Config{
		Width:           8,
		Height:          6,
		FOV:             0.9,
		FocalLength:     1.0,
		FStop:           1000.0, // effectively pinhole
		SamplesPerPixel: 2,
		FilterWidth:     1.5,
		MasterSeed:      12345,
		MaxThreads:      2,
	}
}

func TestRenderOncePresentsFullWidthImage(t *testing.T) {
	objs := buildTestScene()
	a := accel.New(objs)
	cam := camera.New(testConfig(), a, objs, estimator.DefaultConfig(), nil)

	buf := present.New(testConfig().Width, testConfig().Height)
	require.NotPanics(t, func() { cam.RenderOnce(buf) })

	buf.Acquire()
	raw := buf.RawPixels()
	buf.Release()
	assert.Equal(t, testConfig().Width, raw.Bounds().Dx())
}

func TestRenderMultiplePresentsEveryIteration(t *testing.T) {
	objs := buildTestScene()
	a := accel.New(objs)
	cam := camera.New(testConfig(), a, objs, estimator.DefaultConfig(), nil)

	buf := present.New(testConfig().Width, testConfig().Height)
	cam.RenderMultiple(buf, 3)

	_, counter := buf.ScreenPixels()
	assert.GreaterOrEqual(t, counter, int64(3))
}

func TestIdenticalMasterSeedIsDeterministic(t *testing.T) {
	objs1 := buildTestScene()
	objs2 := buildTestScene()
	cfg := testConfig()

	cam1 := camera.New(cfg, accel.New(objs1), objs1, estimator.DefaultConfig(), nil)
	cam2 := camera.New(cfg, accel.New(objs2), objs2, estimator.DefaultConfig(), nil)

	buf1 := present.New(cfg.Width, cfg.Height)
	buf2 := present.New(cfg.Width, cfg.Height)
	cam1.RenderOnce(buf1)
	cam2.RenderOnce(buf2)

	buf1.Acquire()
	buf2.Acquire()
	px1 := buf1.RawPixels()
	px2 := buf2.RawPixels()
	buf1.Release()
	buf2.Release()

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			assert.Equal(t, px1.RGBAAt(x, y), px2.RGBAAt(x, y))
		}
	}
}
