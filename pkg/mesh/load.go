package mesh

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gopoi/pkg/openscad"
)

// ErrUnsupportedFormat is returned for files whose extension Load does not
// know.
var ErrUnsupportedFormat = errors.New("unsupported model format")

// Load reads a model by extension: .stl, .gltf, .glb, or .scad (rendered
// to STL through the openscad executable first).
func Load(ctx context.Context, path string) (*Mesh, error) {
	var (
		m   *Mesh
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		m, err = LoadSTL(path)
	case ".gltf", ".glb":
		m, err = LoadGLTF(path)
	case ".scad":
		m, err = loadSCAD(ctx, path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, err
	}

	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

// Sources returns the files a model depends on: the file itself, and for
// OpenSCAD its use/include tree.
func Sources(path string) ([]string, error) {
	if strings.ToLower(filepath.Ext(path)) != ".scad" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
		}
		return []string{abs}, nil
	}
	return openscad.NewRenderer(filepath.Dir(path)).ResolveDependencies(path)
}

func loadSCAD(ctx context.Context, path string) (*Mesh, error) {
	tmp, err := os.CreateTemp("", "gopoi-*.stl")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	renderer := openscad.NewRenderer(filepath.Dir(abs))
	if err := renderer.RenderToSTL(ctx, abs, tmpPath); err != nil {
		return nil, err
	}
	return LoadSTL(tmpPath)
}
