package raster

import (
	"math"

	"github.com/philipparndt/gopoi/pkg/geometry"
)

const (
	nearPlane   = 1e-3
	maxRotation = math.Pi/2 - 0.1
)

// Camera is an orbit camera looking at Target from Distance along the
// direction given by two rotation angles.
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // vertical field of view in radians
	Distance  float64
	RotationX float64 // elevation
	RotationY float64 // azimuth
}

// NewCamera frames bbox from the front (+Z)
func NewCamera(bbox geometry.BoundingBox) *Camera {
	distance := bbox.Diagonal() * 1.5
	if distance <= 0 {
		distance = 1
	}

	c := &Camera{
		Target:   bbox.Center(),
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      math.Pi / 4,
		Distance: distance,
	}
	c.UpdatePosition()
	return c
}

// UpdatePosition recomputes Position from the orbit parameters
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate orbits by the given angles. Elevation stops short of the poles.
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX = math.Max(-maxRotation, math.Min(maxRotation, c.RotationX+deltaX))
	c.RotationY += deltaY
	c.UpdatePosition()
}

// Zoom scales the orbit distance by (1 + delta)
func (c *Camera) Zoom(delta float64) {
	c.Distance *= 1.0 + delta
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
	c.UpdatePosition()
}

// Forward returns the unit viewing direction
func (c *Camera) Forward() geometry.Vector3 {
	return c.Target.Sub(c.Position).Normalize()
}

func (c *Camera) basis() (right, up, forward geometry.Vector3) {
	forward = c.Forward()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return right, up, forward
}

// Project maps a world point to image coordinates (origin top-left) and
// its view depth. ok is false for points behind the near plane.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (x, y, depth float64, ok bool) {
	right, up, forward := c.basis()

	rel := point.Sub(c.Position)
	cx := rel.Dot(right)
	cy := rel.Dot(up)
	depth = rel.Dot(forward)
	if depth <= nearPlane {
		return 0, 0, depth, false
	}

	aspect := width / height
	scale := math.Tan(c.FOV / 2)

	x = (cx/(depth*scale*aspect))*(width/2) + width/2
	y = (-cy/(depth*scale))*(height/2) + height/2
	return x, y, depth, true
}
