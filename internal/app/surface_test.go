package app

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"github.com/philipparndt/gopoi/internal/tool"
	"github.com/philipparndt/gopoi/pkg/geometry"
	"github.com/philipparndt/gopoi/pkg/mesh"
	"github.com/philipparndt/gopoi/pkg/poi"
)

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

func newView(t *testing.T) (*SurfaceView, *tool.Session, *poi.PickOutput) {
	t.Helper()
	test.NewTempApp(t)

	s := tool.NewSession(plane(), tool.Config{Width: 100, Height: 100})
	last := &poi.PickOutput{}
	v := NewSurfaceView(s, func(out poi.PickOutput) { *last = out }, func(err error) { t.Errorf("unexpected error: %v", err) })
	v.Resize(fyne.NewSize(100, 100))
	return v, s, last
}

func TestSurfaceViewTapPicks(t *testing.T) {
	v, _, last := newView(t)

	v.Tapped(&fyne.PointEvent{Position: fyne.NewPos(50, 50)})
	if len(last.Points) != 1 {
		t.Fatalf("Tapped failed: expected 1 point, got %d", len(last.Points))
	}

	v.TappedSecondary(&fyne.PointEvent{})
	if len(last.Points) != 0 {
		t.Errorf("TappedSecondary failed: expected 0 points, got %d", len(last.Points))
	}
}

func TestSurfaceViewMeasureGesture(t *testing.T) {
	v, s, _ := newView(t)
	s.SetMode(tool.ModeMeasure)

	v.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(30, 50)},
		Button:     desktop.MouseButtonPrimary,
	})
	v.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(70, 50)}})
	v.DragEnd()

	if _, ok := s.Measurement(); !ok {
		t.Fatal("expected a measurement after the drag")
	}
	if s.DistanceText() == "" {
		t.Error("expected distance text")
	}

	// A tap in measure mode does not pick
	v.Tapped(&fyne.PointEvent{Position: fyne.NewPos(50, 50)})
	if len(s.Points()) != 0 {
		t.Error("expected no picked points in measure mode")
	}
}

func TestSurfaceViewDragRotates(t *testing.T) {
	v, s, _ := newView(t)
	before := s.Camera().RotationY

	v.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(-20, 0)})
	v.DragEnd()

	if s.Camera().RotationY == before {
		t.Error("expected a drag in fitting mode to orbit the camera")
	}
}

func TestSurfaceViewScrollZooms(t *testing.T) {
	v, s, _ := newView(t)
	before := s.Camera().Distance

	v.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, 100)})
	if s.Camera().Distance >= before {
		t.Errorf("expected scrolling up to zoom in, distance %v -> %v", before, s.Camera().Distance)
	}
}

func TestSurfaceViewResize(t *testing.T) {
	v, s, _ := newView(t)
	v.Resize(fyne.NewSize(160, 90))

	w, h := s.Size()
	if w != 160 || h != 90 {
		t.Errorf("expected 160x90, got %dx%d", w, h)
	}
	if img := v.image.Image; img == nil || img.Bounds().Dx() != 160 {
		t.Errorf("expected the displayed image to follow the size")
	}
}
