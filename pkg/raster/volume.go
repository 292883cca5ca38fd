package raster

import (
	"github.com/philipparndt/gopoi/pkg/geometry"
)

// VolumePadding grows the mesh bounds on every side so that surface hits
// never land on a zero texture coordinate.
const VolumePadding = 0.01

// Volume is the reference volume that maps normalized texture space
// [0,1]^3 onto a world-space box.
type Volume struct {
	Bounds         geometry.BoundingBox
	TextureToWorld geometry.Mat4
	WorldToTexture geometry.Mat4
}

// NewVolume builds the reference volume around a mesh bounding box
func NewVolume(bounds geometry.BoundingBox) *Volume {
	box := bounds.Padded(VolumePadding)
	size := box.Size()
	inv := geometry.NewVector3(1/size.X, 1/size.Y, 1/size.Z)

	return &Volume{
		Bounds:         box,
		TextureToWorld: geometry.Translation(box.Min).Mul(geometry.Scaling(size)),
		WorldToTexture: geometry.Scaling(inv).Mul(geometry.Translation(box.Min.Mul(-1))),
	}
}

// ToWorld maps a texture-space hit position into world space
func (v *Volume) ToWorld(p geometry.Vector3) geometry.Vector3 {
	return v.TextureToWorld.MulPoint(p)
}

// ToTexture maps a world position into texture space
func (v *Volume) ToTexture(p geometry.Vector3) geometry.Vector3 {
	return v.WorldToTexture.MulPoint(p)
}
