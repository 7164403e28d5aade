package arealight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietarc/tracepath/pkg/accel"
	"github.com/quietarc/tracepath/pkg/arealight"
	"github.com/quietarc/tracepath/pkg/core"
	"github.com/quietarc/tracepath/pkg/geom"
	"github.com/quietarc/tracepath/pkg/material"
	"github.com/quietarc/tracepath/pkg/rng"
)

func TestEmitFrontFaceOnly(t *testing.T) {
	sphere := geom.NewSphere(core.Vec{}, 1, nil, nil)
	light := arealight.NewDiffuseAreaLight(sphere, core.NewVec(1, 1, 1))

	isect := core.Intersection{Position: core.NewVec(0, 0, 1), Normal: core.NewVec(0, 0, 1)}
	front := core.NewLightRay(core.NewVec(0, 0, 5), core.NewVec(0, 0, -1), core.NewVec(1, 1, 1))
	back := core.NewLightRay(core.NewVec(0, 0, -5), core.NewVec(0, 0, 1), core.NewVec(1, 1, 1))

	assert.Equal(t, core.NewVec(1, 1, 1), light.Emit(front, isect))
	assert.Equal(t, core.Vec{}, light.Emit(back, isect))
}

func TestDirectIlluminateUnoccludedIsPositive(t *testing.T) {
	emitterShape := geom.NewSphere(core.NewVec(0, 5, 0), 1, nil, nil)
	light := arealight.NewDiffuseAreaLight(emitterShape, core.NewVec(10, 10, 10))
	emitterGeom := geom.NewSphere(core.NewVec(0, 5, 0), 1, nil, light)

	a := accel.New([]core.Geom{emitterGeom})
	mat := material.NewLambertian(core.NewVec(0.8, 0.8, 0.8))
	isect := core.Intersection{Position: core.Vec{}, Normal: core.NewVec(0, 1, 0)}
	incoming := core.NewLightRay(core.NewVec(0, -1, 0), core.NewVec(0, 1, 0), core.NewVec(1, 1, 1))

	// Points are drawn over the whole emitter sphere, so samples on its far
	// side contribute nothing; the total over many samples must be positive.
	r := rng.New(11)
	var total core.Vec
	for i := 0; i < 64; i++ {
		total = total.Add(light.DirectIlluminate(r, incoming, isect, mat, emitterGeom, a))
	}
	assert.Greater(t, total.X, 0.0)
}

func TestDirectIlluminateOccludedIsZero(t *testing.T) {
	emitterShape := geom.NewSphere(core.NewVec(0, 5, 0), 1, nil, nil)
	light := arealight.NewDiffuseAreaLight(emitterShape, core.NewVec(10, 10, 10))
	emitterGeom := geom.NewSphere(core.NewVec(0, 5, 0), 1, nil, light)
	blocker := geom.NewSphere(core.NewVec(0, 2, 0), 1, material.NewLambertian(core.Vec{}), nil)

	a := accel.New([]core.Geom{emitterGeom, blocker})
	mat := material.NewLambertian(core.NewVec(0.8, 0.8, 0.8))
	isect := core.Intersection{Position: core.Vec{}, Normal: core.NewVec(0, 1, 0)}
	incoming := core.NewLightRay(core.NewVec(0, -1, 0), core.NewVec(0, 1, 0), core.NewVec(1, 1, 1))

	r := rng.New(11)
	contribution := light.DirectIlluminate(r, incoming, isect, mat, emitterGeom, a)
	assert.Equal(t, core.Vec{}, contribution)
}

func TestDirectIlluminateBehindSurfaceIsZero(t *testing.T) {
	emitterShape := geom.NewSphere(core.NewVec(0, -5, 0), 1, nil, nil)
	light := arealight.NewDiffuseAreaLight(emitterShape, core.NewVec(10, 10, 10))
	emitterGeom := geom.NewSphere(core.NewVec(0, -5, 0), 1, nil, light)

	a := accel.New([]core.Geom{emitterGeom})
	mat := material.NewLambertian(core.NewVec(0.8, 0.8, 0.8))
	isect := core.Intersection{Position: core.Vec{}, Normal: core.NewVec(0, 1, 0)}
	incoming := core.NewLightRay(core.NewVec(0, -1, 0), core.NewVec(0, 1, 0), core.NewVec(1, 1, 1))

	r := rng.New(11)
	contribution := light.DirectIlluminate(r, incoming, isect, mat, emitterGeom, a)
	require.Equal(t, core.Vec{}, contribution)
}
