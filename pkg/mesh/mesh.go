// Package mesh loads triangle meshes from STL, glTF/GLB and OpenSCAD
// sources into a single in-memory representation.
package mesh

import (
	"github.com/philipparndt/gopoi/pkg/geometry"
)

// Mesh is a triangle soup in world units
type Mesh struct {
	Name      string
	Triangles []geometry.Triangle
}

// New creates an empty mesh
func New(name string) *Mesh {
	return &Mesh{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// Add appends a triangle. A zero normal is recomputed from the winding.
func (m *Mesh) Add(t geometry.Triangle) {
	if t.Normal.IsZero() {
		t.Normal = t.CalculateNormal()
	}
	m.Triangles = append(m.Triangles, t)
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// IsEmpty reports whether the mesh has no triangles
func (m *Mesh) IsEmpty() bool {
	return len(m.Triangles) == 0
}

// Bounds returns the world-space bounding box of all vertices
func (m *Mesh) Bounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, t := range m.Triangles {
		bbox.Extend(t.V1)
		bbox.Extend(t.V2)
		bbox.Extend(t.V3)
	}
	return bbox
}

// SurfaceArea returns the summed area of all triangles
func (m *Mesh) SurfaceArea() float64 {
	total := 0.0
	for _, t := range m.Triangles {
		total += t.Area()
	}
	return total
}
