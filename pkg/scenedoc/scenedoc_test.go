package scenedoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietarc/tracepath/pkg/scenedoc"
)

const validDoc = `
materials:
  ground_mat:
    type: lambertian
    albedo: [0.7, 0.7, 0.7]
  mirror_mat:
    type: mirror
    tint: [1.0, 1.0, 1.0]

lights:
  sun:
    type: diffuse
    radiance: [8, 8, 8]

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
  mirror_ball:
    type: sphere
    center: [2, 1, 0]
    radius: 1
    material: mirror_mat

cameras:
  main:
    type: persp
    translate: [0, 2, 8]
    rotateAngle: 0
    rotateAxis: [0, 1, 0]
    objects: [ground, light_sphere, mirror_ball]
    width: 64
    height: 48
    fov: 0.9
    focalLength: 1.0
    fStop: 8.0
    samplesPerPixel: 4
    filterWidth: 1.5
    masterSeed: 42
`

func TestLoadValidDocument(t *testing.T) {
	scene, err := scenedoc.Load([]byte(validDoc))
	require.NoError(t, err)
	require.Len(t, scene.Geometry, 3)
	require.Contains(t, scene.Cameras, "main")

	cam := scene.Cameras["main"]
	assert.Equal(t, 64, cam.Config.Width)
	assert.Equal(t, 48, cam.Config.Height)
	assert.Len(t, cam.Objects, 3)

	lightSphere := scene.Geometry["light_sphere"]
	require.NotNil(t, lightSphere.AreaLight())
}

func TestLoadRejectsUnknownMaterialType(t *testing.T) {
	doc := `
materials:
  bad:
    type: glass
geometry: {}
cameras: {}
`
	_, err := scenedoc.Load([]byte(doc))
	require.Error(t, err)
	var cfgErr *scenedoc.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoadRejectsUnknownGeometryReference(t *testing.T) {
	doc := `
geometry:
  ball:
    type: sphere
    center: [0, 0, 0]
    radius: 1
cameras:
  main:
    width: 10
    height: 10
    objects: [nonexistent]
`
	_, err := scenedoc.Load([]byte(doc))
	require.Error(t, err)
}

func TestLoadRejectsMissingWidthHeight(t *testing.T) {
	doc := `
cameras:
  main:
    width: 0
    height: 10
`
	_, err := scenedoc.Load([]byte(doc))
	require.Error(t, err)
}

func TestLoadDefaultsFocalLengthAndFStop(t *testing.T) {
	doc := `
geometry:
  ball:
    type: sphere
    center: [0, 0, 0]
    radius: 1
cameras:
  main:
    width: 10
    height: 10
    objects: [ball]
`
	scene, err := scenedoc.Load([]byte(doc))
	require.NoError(t, err)
	cam := scene.Cameras["main"]
	assert.Equal(t, 1.0, cam.Config.FocalLength)
	assert.Greater(t, cam.Config.FStop, 0.0)
	assert.Equal(t, 1, cam.Config.SamplesPerPixel)
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := scenedoc.Load([]byte("not: [valid yaml"))
	require.Error(t, err)
}
