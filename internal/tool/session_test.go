package tool

import (
	"image"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/gopoi/pkg/geometry"
	"github.com/philipparndt/gopoi/pkg/mesh"
)

// plane returns a 2x2 square in the z=0 plane facing the default camera
func plane() *mesh.Mesh {
	m := mesh.New("plane")
	a := geometry.NewVector3(-1, -1, 0)
	b := geometry.NewVector3(1, -1, 0)
	c := geometry.NewVector3(1, 1, 0)
	d := geometry.NewVector3(-1, 1, 0)
	m.Add(geometry.NewTriangle(geometry.Vector3{}, a, b, c))
	m.Add(geometry.NewTriangle(geometry.Vector3{}, a, c, d))
	return m
}

func newSession() *Session {
	return NewSession(plane(), Config{Width: 100, Height: 100})
}

func TestSessionPick(t *testing.T) {
	s := newSession()

	if !s.Press(50, 50) {
		t.Fatal("Press failed: expected a point at the centre")
	}
	if s.Press(0, 0) {
		t.Error("Press failed: expected the corner to miss")
	}

	out := s.Process()
	if len(out.Points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(out.Points))
	}
	if p := out.Points[0]; math.Abs(p.Z) > 1e-6 || math.Abs(p.X) > 0.1 || math.Abs(p.Y) > 0.1 {
		t.Errorf("expected a point near the origin, got %v", p)
	}

	if !s.Undo() || len(s.Points()) != 0 {
		t.Error("Undo failed: expected an empty list")
	}
}

func TestSessionMeasure(t *testing.T) {
	s := newSession()

	ok, err := s.Drag([]image.Point{{X: 30, Y: 50}, {X: 50, Y: 50}, {X: 70, Y: 50}})
	if err != nil || !ok {
		t.Fatalf("Drag failed: ok=%v err=%v", ok, err)
	}

	m, ok := s.Measurement()
	if !ok {
		t.Fatal("expected a measurement")
	}
	if m.Axis.String() != "x" {
		t.Errorf("expected the x axis, got %v", m.Axis)
	}

	// 39 steps of about 0.035 world units
	if m.Distance < 1.2 || m.Distance > 1.5 {
		t.Errorf("expected a distance near 1.37, got %v", m.Distance)
	}
	if s.DistanceText() == "" {
		t.Error("expected distance text")
	}

	scene := s.Scene(s.Process())
	if len(scene.Path) == 0 || len(scene.Gesture) != 2 {
		t.Errorf("expected a path and a gesture, got %d and %d", len(scene.Path), len(scene.Gesture))
	}
	if scene.Gesture[0] != (image.Point{X: 30, Y: 50}) {
		t.Errorf("expected the gesture to start at (30, 50), got %v", scene.Gesture[0])
	}

	s.Undo()
	if _, ok := s.Measurement(); ok {
		t.Error("Undo failed: expected no measurement")
	}
}

func TestSessionMeasureStartOnBackground(t *testing.T) {
	s := newSession()

	ok, err := s.Drag([]image.Point{{X: 1, Y: 1}, {X: 50, Y: 50}})
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected no measurement when the gesture starts on background")
	}
}

func TestSessionViewChangeDropsMeasurement(t *testing.T) {
	s := newSession()
	s.Drag([]image.Point{{X: 30, Y: 50}, {X: 70, Y: 50}})

	s.Rotate(0.2, 0.2)
	if _, ok := s.Measurement(); ok {
		t.Error("expected the measurement to be dropped after rotating")
	}

	s.Press(50, 50)
	if len(s.Points()) != 0 {
		t.Error("expected presses in measure mode not to pick points")
	}
}

func TestSessionToggleMode(t *testing.T) {
	s := newSession()
	if s.Mode() != ModeFitting {
		t.Fatalf("expected fitting mode, got %v", s.Mode())
	}
	if s.ToggleMode() != ModeMeasure {
		t.Errorf("expected measure mode, got %v", s.Mode())
	}
	if s.ToggleMode() != ModeFitting {
		t.Errorf("expected fitting mode, got %v", s.Mode())
	}
}

func TestSessionLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.txt")
	if err := os.WriteFile(path, []byte("first\nsecond\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewSession(plane(), Config{Width: 100, Height: 100, LabelPath: path})
	s.Press(50, 50)

	out := s.Process()
	if !out.HasLabel || out.NextLabel != "second" {
		t.Errorf("expected next label second, got %q", out.NextLabel)
	}

	scene := s.Scene(out)
	if scene.Label != "second" {
		t.Errorf("expected the overlay label second, got %q", scene.Label)
	}

	s.SetMesh(plane())
	if len(s.Points()) != 0 {
		t.Error("SetMesh failed: expected the points to be cleared")
	}
	if out := s.Process(); out.NextLabel != "first" {
		t.Errorf("expected next label first after SetMesh, got %q", out.NextLabel)
	}
}

func TestSessionRender(t *testing.T) {
	s := newSession()
	s.Press(50, 50)

	img, out, err := s.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 100 {
		t.Errorf("expected a 100x100 image, got %v", img.Bounds())
	}
	if len(out.Points) != 1 {
		t.Errorf("expected 1 point, got %d", len(out.Points))
	}
}

func TestSessionResize(t *testing.T) {
	s := newSession()
	s.Resize(200, 120)

	w, h := s.Size()
	if w != 200 || h != 120 {
		t.Errorf("Resize failed: expected 200x120, got %dx%d", w, h)
	}
	if fw, fh := s.Frame().HitPoints.Size(); fw != 200 || fh != 120 {
		t.Errorf("expected a re-rendered frame, got %dx%d", fw, fh)
	}
}
