package geometry

import "math"

// BoundingBox is an axis-aligned box in world space
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox returns an empty box that any Extend call will replace
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Vector3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// Extend grows the box to contain point
func (b *BoundingBox) Extend(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// IsEmpty reports whether no point was ever added
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Size returns the extent along each axis
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box
func (b BoundingBox) Center() Vector3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Diagonal returns the length of the box diagonal
func (b BoundingBox) Diagonal() float64 {
	return b.Size().Length()
}

// Padded grows every side by fraction of the largest extent. A flat or
// single-point box still gets a non-zero thickness on every axis.
func (b BoundingBox) Padded(fraction float64) BoundingBox {
	size := b.Size()
	pad := math.Max(size.X, math.Max(size.Y, size.Z)) * fraction
	if pad <= 0 {
		pad = fraction
	}
	offset := NewVector3(pad, pad, pad)
	return BoundingBox{Min: b.Min.Sub(offset), Max: b.Max.Add(offset)}
}
