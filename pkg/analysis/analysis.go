// Package analysis computes summary figures for meshes, picked points and
// measured paths.
package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/gopoi/pkg/geometry"
	"github.com/philipparndt/gopoi/pkg/mesh"
)

// Summary describes a mesh
type Summary struct {
	Name          string
	TriangleCount int
	SurfaceArea   float64
	Bounds        geometry.BoundingBox
	Dimensions    geometry.Vector3
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// Summarize collects the figures shown by the info command
func Summarize(m *mesh.Mesh) Summary {
	s := Summary{
		Name:          m.Name,
		TriangleCount: m.TriangleCount(),
		SurfaceArea:   m.SurfaceArea(),
		Bounds:        m.Bounds(),
	}
	if m.IsEmpty() {
		return s
	}
	s.Dimensions = s.Bounds.Size()

	minLength := math.MaxFloat64
	maxLength := 0.0
	total := 0.0
	for _, t := range m.Triangles {
		for _, length := range [3]float64{t.V1.Distance(t.V2), t.V2.Distance(t.V3), t.V3.Distance(t.V1)} {
			total += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		}
	}

	s.MinEdgeLength = minLength
	s.MaxEdgeLength = maxLength
	s.AvgEdgeLength = total / float64(3*len(m.Triangles))
	return s
}

// PathLength returns the length of the polyline through points
func PathLength(points []geometry.Vector3) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i].Distance(points[i-1])
	}
	return total
}

// Segments returns the distance from each point to its predecessor. The
// first entry is always 0.
func Segments(points []geometry.Vector3) []float64 {
	out := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		out[i] = points[i].Distance(points[i-1])
	}
	return out
}

// NearestVertex finds the mesh vertex closest to point
func NearestVertex(m *mesh.Mesh, point geometry.Vector3) (geometry.Vector3, float64, bool) {
	var nearest geometry.Vector3
	best := math.MaxFloat64

	for _, t := range m.Triangles {
		for _, v := range [3]geometry.Vector3{t.V1, t.V2, t.V3} {
			if d := point.Distance(v); d < best {
				best = d
				nearest = v
			}
		}
	}

	return nearest, best, !m.IsEmpty()
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
