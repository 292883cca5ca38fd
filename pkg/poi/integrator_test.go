package poi

import (
	"math"
	"testing"

	"github.com/philipparndt/gopoi/pkg/hitbuffer"
)

func TestIntegratorGesture(t *testing.T) {
	frame := gridFrame(100, 100)
	g := NewIntegrator(AxisLargerDistance)

	if !g.Begin(frame, 10, 10) {
		t.Fatal("Begin failed: expected the gesture to start")
	}
	if !g.Drag(frame, 90, 10) {
		t.Fatal("Drag failed: expected the end to move")
	}

	dist, ok := g.End(frame)
	if !ok {
		t.Fatal("End failed: expected a result")
	}
	if math.Abs(dist-0.79) > 1e-9 {
		t.Errorf("End failed: expected 0.79, got %v", dist)
	}
	if !g.Active() {
		t.Error("expected the gesture to stay active after End")
	}
	if g.DistanceText() != "0.79" {
		t.Errorf("DistanceText failed: expected 0.79, got %s", g.DistanceText())
	}
	if len(g.Path()) != 79 {
		t.Errorf("expected 79 path points, got %d", len(g.Path()))
	}
}

func TestIntegratorClickWithoutDrag(t *testing.T) {
	frame := gridFrame(50, 50)
	g := NewIntegrator(AxisLargerDistance)

	g.Begin(frame, 20, 20)
	dist, ok := g.End(frame)
	if !ok || dist != 0 {
		t.Errorf("expected 0 for a click, got %v (%v)", dist, ok)
	}
}

func TestIntegratorBeginOnMiss(t *testing.T) {
	frame := Frame{HitPoints: hitbuffer.New(10, 10), Volume: identityVolume{}}
	g := NewIntegrator(AxisLargerDistance)

	if g.Begin(frame, 5, 5) {
		t.Error("Begin failed: expected a miss to be rejected")
	}
	if g.Active() {
		t.Error("expected the integrator to stay idle")
	}
	if _, ok := g.End(frame); ok {
		t.Error("End failed: expected no result while idle")
	}
}

func TestIntegratorDragKeepsEndOnMiss(t *testing.T) {
	buf := gridBuffer(20, 20)
	buf.Set(15, 10, buf.At(15, 10).Mul(0))
	frame := Frame{HitPoints: buf, Volume: identityVolume{}}
	g := NewIntegrator(AxisLargerDistance)

	g.Begin(frame, 2, 10)
	g.Drag(frame, 12, 10)
	if g.Drag(frame, 15, 10) {
		t.Error("Drag failed: expected a miss to be rejected")
	}
	expected := hitbuffer.Coord{X: 12, Y: 10}
	if g.Current() != expected {
		t.Errorf("Drag failed: expected %v, got %v", expected, g.Current())
	}
}

func TestIntegratorDeterministic(t *testing.T) {
	frame := gridFrame(64, 64)
	g := NewIntegrator(AxisLargerDistance)

	g.Begin(frame, 3, 60)
	g.Drag(frame, 50, 7)
	first, _ := g.End(frame)
	second, _ := g.End(frame)

	if first != second {
		t.Errorf("expected identical results, got %v and %v", first, second)
	}
}

func TestIntegratorUndo(t *testing.T) {
	frame := gridFrame(20, 20)
	g := NewIntegrator(AxisLargerDistance)

	g.Begin(frame, 2, 2)
	g.Drag(frame, 18, 2)
	g.End(frame)
	g.Undo()

	if g.Active() || g.Distance() != 0 {
		t.Errorf("Undo failed: expected idle state, got active=%v distance=%v", g.Active(), g.Distance())
	}
	if g.Start() != (hitbuffer.Coord{}) || g.Current() != (hitbuffer.Coord{}) {
		t.Error("Undo failed: expected zeroed coordinates")
	}
	if len(g.Path()) != 0 {
		t.Error("Undo failed: expected an empty path")
	}

	// Undo while idle is a no-op
	g.Undo()
}

func TestIntegratorWithoutVolume(t *testing.T) {
	logs := captureLogs(t)
	g := NewIntegrator(AxisLargerDistance)

	if g.Begin(Frame{HitPoints: gridBuffer(4, 4)}, 1, 1) {
		t.Error("Begin failed: expected rejection without a reference volume")
	}
	assertLogged(t, logs, "cannot start measurement")
}

func TestIntegratorDebugLog(t *testing.T) {
	logs := captureLogs(t)
	frame := gridFrame(20, 20)
	g := NewIntegrator(AxisLargerSpan)

	g.Begin(frame, 1, 1)
	g.Drag(frame, 10, 1)
	g.End(frame)

	assertLogged(t, logs, "measured surface distance")
	assertLogged(t, logs, "axis=x")
}
