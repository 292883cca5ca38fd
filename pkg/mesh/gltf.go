package mesh

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/philipparndt/gopoi/pkg/geometry"
)

// LoadGLTF reads the triangle primitives of every mesh in a glTF or GLB
// file. Node transforms are not applied.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open gltf: %w", err)
	}
	return fromDocument(doc, filepath.Base(path))
}

func fromDocument(doc *gltf.Document, name string) (*Mesh, error) {
	m := New(name)
	for _, gm := range doc.Meshes {
		if err := addPrimitives(doc, gm, m); err != nil {
			return nil, fmt.Errorf("failed to read mesh %q: %w", gm.Name, err)
		}
	}
	return m, nil
}

func addPrimitives(doc *gltf.Document, gm *gltf.Mesh, m *Mesh) error {
	for _, prim := range gm.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return fmt.Errorf("failed to read positions: %w", err)
		}

		var indices []uint32
		if prim.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return fmt.Errorf("failed to read indices: %w", err)
			}
		} else {
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		for i := 0; i+2 < len(indices); i += 3 {
			a, b, c := int(indices[i]), int(indices[i+1]), int(indices[i+2])
			if a >= len(positions) || b >= len(positions) || c >= len(positions) {
				return fmt.Errorf("index out of range in triangle %d", i/3)
			}
			m.Add(geometry.NewTriangle(geometry.Vector3{},
				toVector(positions[a]), toVector(positions[b]), toVector(positions[c])))
		}
	}
	return nil
}

func toVector(p [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(p[0]), float64(p[1]), float64(p[2]))
}
