package xform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quietarc/tracepath/pkg/core"
	"github.com/quietarc/tracepath/pkg/xform"
)

func TestIdentityLeavesPointsUnchanged(t *testing.T) {
	id := xform.Identity()
	p := core.NewVec(1, 2, 3)
	assert.InDelta(t, p.X, id.Point(p).X, 1e-9)
	assert.InDelta(t, p.Y, id.Point(p).Y, 1e-9)
	assert.InDelta(t, p.Z, id.Point(p).Z, 1e-9)
}

func TestTranslationMovesPointsNotDirections(t *testing.T) {
	c := xform.New(core.NewVec(5, 0, 0), core.Vec{}, 0)
	p := c.Point(core.NewVec(1, 1, 1))
	assert.InDelta(t, 6, p.X, 1e-9)

	d := c.Direction(core.NewVec(1, 1, 1))
	assert.InDelta(t, 1, d.X, 1e-9)
}

func TestRotationAboutZQuarterTurn(t *testing.T) {
	c := xform.New(core.Vec{}, core.NewVec(0, 0, 1), math.Pi/2)
	d := c.Direction(core.NewVec(1, 0, 0))
	assert.InDelta(t, 0, d.X, 1e-9)
	assert.InDelta(t, 1, d.Y, 1e-9)
}

func TestZeroAxisDegeneratesToIdentityRotation(t *testing.T) {
	c := xform.New(core.Vec{}, core.Vec{}, 1.2345)
	d := c.Direction(core.NewVec(1, 0, 0))
	assert.InDelta(t, 1, d.X, 1e-9)
	assert.InDelta(t, 0, d.Y, 1e-9)
}
