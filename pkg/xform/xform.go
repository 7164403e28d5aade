// Package xform builds the camera-to-world transform the thin-lens camera
// uses to map its locally-defined focal plane and lens disk into world
// space. It is the one place in the engine that reaches for a real matrix
// library instead of plain core.Vec arithmetic, since composing an
// axis-angle rotation with a translation by hand invites sign errors that a
// maintained library has already gotten right.
package xform

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/quietarc/tracepath/pkg/core"
)

// CameraToWorld is the rigid transform from camera space to world space: a
// rotation about an arbitrary axis followed by a translation, matching the
// scene-document camera record's rotateAngle/rotateAxis/translate fields.
type CameraToWorld struct {
	matrix mgl64.Mat4
}

// New builds a CameraToWorld from a translation, a rotation axis, and a
// rotation angle in radians. A zero-length axis degenerates to no rotation.
func New(translate core.Vec, rotateAxis core.Vec, rotateAngle float64) CameraToWorld {
	axis := mgl64.Vec3{rotateAxis.X, rotateAxis.Y, rotateAxis.Z}
	var rotation mgl64.Mat4
	if axis.Len() == 0 {
		rotation = mgl64.Ident4()
	} else {
		rotation = mgl64.HomogRotate3D(rotateAngle, axis.Normalize())
	}
	translation := mgl64.Translate3D(translate.X, translate.Y, translate.Z)
	return CameraToWorld{matrix: translation.Mul4(rotation)}
}

// Identity returns the transform that leaves camera space unchanged.
func Identity() CameraToWorld {
	return CameraToWorld{matrix: mgl64.Ident4()}
}

// Point transforms a position, applying both rotation and translation.
func (c CameraToWorld) Point(p core.Vec) core.Vec {
	v := c.matrix.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return core.NewVec(v[0], v[1], v[2])
}

// Direction transforms a direction, applying rotation only.
func (c CameraToWorld) Direction(d core.Vec) core.Vec {
	v := c.matrix.Mul4x1(mgl64.Vec4{d.X, d.Y, d.Z, 0})
	return core.NewVec(v[0], v[1], v[2])
}
