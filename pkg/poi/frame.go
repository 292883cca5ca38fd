// Package poi implements interactive point-of-interest tools on top of a
// first-hit-point buffer: a Picker that turns clicks into an undo-able list
// of surface points, and an Integrator that measures the surface distance
// along a dragged screen line.
//
// Both tools are single-threaded state machines. Every event receives the
// current Frame explicitly; the tools keep no reference to it between
// calls.
package poi

import (
	"errors"

	"github.com/philipparndt/gopoi/pkg/geometry"
	"github.com/philipparndt/gopoi/pkg/hitbuffer"
)

var (
	// ErrNoReferenceVolume reports an event that arrived while no volume
	// (and therefore no texture-to-world transform) was bound.
	ErrNoReferenceVolume = errors.New("no reference volume")

	// ErrNoHitPoints reports an event without a hit-point buffer
	ErrNoHitPoints = errors.New("no hit-point buffer")
)

// HitPoints is read access to a first-hit-point buffer. At returns the zero
// vector where the ray missed the surface.
type HitPoints interface {
	Size() (width, height int)
	At(x, y int) geometry.Vector3
}

// SpaceTransform maps hit-point (texture) space into world space
type SpaceTransform interface {
	ToWorld(p geometry.Vector3) geometry.Vector3
}

// Frame is the per-event snapshot of the external rendering state. It is
// only valid for the duration of one event.
type Frame struct {
	HitPoints HitPoints
	// Volume is the bound reference volume; nil means none is bound.
	Volume SpaceTransform
	// ViewportHeight is used to flip host input Y. Zero means the buffer
	// height.
	ViewportHeight int
}

func (f Frame) check() error {
	if f.Volume == nil {
		return ErrNoReferenceVolume
	}
	if f.HitPoints == nil {
		return ErrNoHitPoints
	}
	return nil
}

// screenToBuffer flips a host input position and clamps it into the buffer
func (f Frame) screenToBuffer(x, y int) hitbuffer.Coord {
	width, height := f.HitPoints.Size()
	viewport := f.ViewportHeight
	if viewport == 0 {
		viewport = height
	}
	return hitbuffer.Clamp(hitbuffer.FlipY(x, y, viewport), width, height)
}

// sample clamps c, reads the buffer and transforms a hit into world space.
// ok is false for a miss.
func (f Frame) sample(c hitbuffer.Coord) (geometry.Vector3, bool) {
	width, height := f.HitPoints.Size()
	c = hitbuffer.Clamp(c, width, height)

	raw := f.HitPoints.At(c.X, c.Y)
	if hitbuffer.IsMiss(raw) {
		return geometry.Vector3{}, false
	}
	return f.Volume.ToWorld(raw), true
}
