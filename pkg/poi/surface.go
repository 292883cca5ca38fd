package poi

import (
	"fmt"
	"math"
	"strings"

	"github.com/philipparndt/gopoi/pkg/geometry"
	"github.com/philipparndt/gopoi/pkg/hitbuffer"
)

// Axis is the screen axis a surface integration steps along
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// AxisPolicy decides which of the two per-axis integrations is reported
type AxisPolicy int

const (
	// AxisLargerDistance reports the axis with the larger integrated
	// length. Ties go to X.
	AxisLargerDistance AxisPolicy = iota
	// AxisLargerSpan reports the axis with the larger pixel span, which
	// is the one with more samples. Ties go to X.
	AxisLargerSpan
)

func (p AxisPolicy) String() string {
	if p == AxisLargerSpan {
		return "span"
	}
	return "distance"
}

// ParseAxisPolicy accepts "distance" or "span"
func ParseAxisPolicy(s string) (AxisPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "distance":
		return AxisLargerDistance, nil
	case "span":
		return AxisLargerSpan, nil
	default:
		return AxisLargerDistance, fmt.Errorf("unknown axis policy %q (expected distance or span)", s)
	}
}

// Measurement is the result of one surface integration between two buffer
// coordinates.
type Measurement struct {
	Start, End hitbuffer.Coord
	Distance   float64
	Axis       Axis
	DistX      float64
	DistY      float64
	PathX      []geometry.Vector3
	PathY      []geometry.Vector3
}

// Path returns the sampled world points of the reported axis
func (m Measurement) Path() []geometry.Vector3 {
	if m.Axis == AxisY {
		return m.PathY
	}
	return m.PathX
}

func (m Measurement) clone() Measurement {
	out := m
	out.PathX = append([]geometry.Vector3(nil), m.PathX...)
	out.PathY = append([]geometry.Vector3(nil), m.PathY...)
	return out
}

// MeasureSurface estimates the surface arc length between buffer
// coordinates a and b. The screen line is walked once along X and once
// along Y; at every step the hit-point buffer is sampled, transformed into
// world space, and the displacement to the previous sample is summed.
//
// Samples that miss the surface are skipped: the last valid sample stays
// the anchor for the next valid one. An axis with a pixel span below two
// contributes zero.
func MeasureSurface(f Frame, a, b hitbuffer.Coord, policy AxisPolicy) (Measurement, error) {
	if err := f.check(); err != nil {
		return Measurement{}, err
	}

	width, height := f.HitPoints.Size()
	a = hitbuffer.Clamp(a, width, height)
	b = hitbuffer.Clamp(b, width, height)

	m := Measurement{Start: a, End: b}
	m.DistX, m.PathX = integrateAxis(f, a, b, AxisX)
	m.DistY, m.PathY = integrateAxis(f, a, b, AxisY)

	switch policy {
	case AxisLargerSpan:
		if abs(b.X-a.X) >= abs(b.Y-a.Y) {
			m.Axis = AxisX
		} else {
			m.Axis = AxisY
		}
	default:
		if m.DistX >= m.DistY {
			m.Axis = AxisX
		} else {
			m.Axis = AxisY
		}
	}

	if m.Axis == AxisX {
		m.Distance = m.DistX
	} else {
		m.Distance = m.DistY
	}

	return m, nil
}

// integrateAxis walks the line from a to b with axis as the stepping
// (major) coordinate. The minor coordinate follows y = m*x + c rounded to
// the nearest pixel. The first pixel column is never sampled; every sample
// except the final one is recorded in the path.
func integrateAxis(f Frame, a, b hitbuffer.Coord, axis Axis) (float64, []geometry.Vector3) {
	major, minor := a.X, a.Y
	endMajor, endMinor := b.X, b.Y
	if axis == AxisY {
		major, minor = a.Y, a.X
		endMajor, endMinor = b.Y, b.X
	}
	if major > endMajor {
		major, endMajor = endMajor, major
		minor, endMinor = endMinor, minor
	}

	span := endMajor - major
	if span < 2 {
		return 0, nil
	}

	slope := float64(endMinor-minor) / float64(span)
	intercept := float64(minor) - slope*float64(major)

	var (
		dist      float64
		path      = make([]geometry.Vector3, 0, span)
		anchor    geometry.Vector3
		hasAnchor bool
	)

	for i := major + 1; i <= endMajor; i++ {
		j := int(math.Round(slope*float64(i) + intercept))

		c := hitbuffer.Coord{X: i, Y: j}
		if axis == AxisY {
			c = hitbuffer.Coord{X: j, Y: i}
		}

		point, ok := f.sample(c)
		if !ok {
			continue
		}

		if hasAnchor {
			dist += point.Distance(anchor)
		}
		anchor, hasAnchor = point, true

		if i < endMajor {
			path = append(path, point)
		}
	}

	return dist, path
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
