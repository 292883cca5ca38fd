package poi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/gopoi/pkg/geometry"
	"github.com/philipparndt/gopoi/pkg/hitbuffer"
	"github.com/philipparndt/gopoi/pkg/labels"
)

func TestPickerAccept(t *testing.T) {
	picker := NewPicker()
	frame := gridFrame(100, 100)

	if !picker.Accept(frame, 10, 20) {
		t.Fatal("Accept failed: expected a point on a fully covered buffer")
	}

	// Host y=20 flips to buffer row 80
	expected := geometry.NewVector3(10.5/100, 80.5/100, 0.5)
	got := picker.Points()[0]
	if got.Distance(expected) > 1e-12 {
		t.Errorf("Accept failed: expected %v, got %v", expected, got)
	}
}

func TestPickerAcceptClampsOutsideViewport(t *testing.T) {
	picker := NewPicker()
	frame := gridFrame(10, 10)

	// y=0 flips to 10 which is clamped to the top row 9
	if !picker.Accept(frame, 25, 0) {
		t.Fatal("Accept failed: expected clamped coordinate to hit")
	}
	expected := geometry.NewVector3(9.5/10, 9.5/10, 0.5)
	if got := picker.Points()[0]; got.Distance(expected) > 1e-12 {
		t.Errorf("Accept failed: expected %v, got %v", expected, got)
	}
}

func TestPickerAcceptMiss(t *testing.T) {
	picker := NewPicker()
	frame := Frame{HitPoints: hitbuffer.New(10, 10), Volume: identityVolume{}}

	if picker.Accept(frame, 5, 5) {
		t.Error("Accept failed: expected a miss to be rejected")
	}
	if picker.Len() != 0 {
		t.Errorf("Accept failed: expected 0 points, got %d", picker.Len())
	}
}

func TestPickerAcceptPartialZeroIsMiss(t *testing.T) {
	buf := hitbuffer.New(4, 4)
	buf.Set(1, 2, geometry.NewVector3(0.3, 0, 0.7))
	picker := NewPicker()
	frame := Frame{HitPoints: buf, Volume: identityVolume{}}

	if picker.Accept(frame, 1, 2) {
		t.Error("Accept failed: a sample with one zero channel must be rejected")
	}
}

func TestPickerAcceptWithoutVolume(t *testing.T) {
	logs := captureLogs(t)
	picker := NewPicker()
	frame := Frame{HitPoints: gridBuffer(10, 10)}

	if picker.Accept(frame, 5, 5) {
		t.Error("Accept failed: expected rejection without a reference volume")
	}
	if picker.Len() != 0 {
		t.Errorf("expected 0 points, got %d", picker.Len())
	}
	assertLogged(t, logs, ErrNoReferenceVolume.Error())
}

func TestPickerAppliesTransform(t *testing.T) {
	picker := NewPicker()
	frame := Frame{HitPoints: gridBuffer(10, 10), Volume: scaledVolume{scale: 100}}

	picker.Accept(frame, 0, 10)
	expected := geometry.NewVector3(5, 5, 50)
	if got := picker.Points()[0]; got.Distance(expected) > 1e-9 {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestPickerUndo(t *testing.T) {
	picker := NewPicker()
	frame := gridFrame(10, 10)

	picker.Accept(frame, 1, 1)
	picker.Accept(frame, 2, 2)
	first := picker.Points()[0]

	if !picker.Undo() {
		t.Fatal("Undo failed: expected a point to be removed")
	}
	if picker.Len() != 1 {
		t.Fatalf("Undo failed: expected 1 point, got %d", picker.Len())
	}
	if picker.Points()[0] != first {
		t.Errorf("Undo failed: expected the first point to remain")
	}
}

func TestPickerUndoEmpty(t *testing.T) {
	logs := captureLogs(t)
	picker := NewPicker()

	if picker.Undo() {
		t.Error("Undo failed: expected false on an empty list")
	}
	if picker.Len() != 0 {
		t.Errorf("expected 0 points, got %d", picker.Len())
	}
	assertLogged(t, logs, "list of points is empty")
}

func TestPickerReloadClearsPoints(t *testing.T) {
	picker := NewPicker()
	frame := gridFrame(10, 10)
	picker.Accept(frame, 1, 1)
	picker.Accept(frame, 2, 2)

	picker.Reload("")
	if picker.Len() != 0 {
		t.Errorf("Reload failed: expected 0 points, got %d", picker.Len())
	}

	out := picker.Process()
	if len(out.Labels) != 0 || out.HasLabel {
		t.Errorf("Process failed: expected no labels for an empty path, got %v", out.Labels)
	}
}

func TestPickerNextLabel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.txt")
	if err := os.WriteFile(path, []byte("nasion\nsella\n\nporion\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	picker := NewPicker()
	picker.Reload(path)
	frame := gridFrame(10, 10)
	picker.Accept(frame, 1, 1)
	picker.Accept(frame, 2, 2)

	out := picker.Process()
	if len(out.Labels) != 3 {
		t.Fatalf("Process failed: expected 3 labels, got %d", len(out.Labels))
	}
	if !out.HasLabel || out.NextLabel != "porion" {
		t.Errorf("Process failed: expected next label porion, got %q (%v)", out.NextLabel, out.HasLabel)
	}
	if len(out.Points) != 2 {
		t.Errorf("Process failed: expected 2 points, got %d", len(out.Points))
	}

	picker.Accept(frame, 3, 3)
	out = picker.Process()
	if out.HasLabel {
		t.Errorf("expected no label once the list is exhausted, got %q", out.NextLabel)
	}
}

func TestPickerParsesLabelsOnce(t *testing.T) {
	calls := 0
	picker := NewPicker()
	picker.load = func(string) ([]string, error) {
		calls++
		return []string{"a"}, nil
	}

	picker.Reload("labels.txt")
	picker.Process()
	picker.Process()
	if calls != 1 {
		t.Errorf("expected 1 parse, got %d", calls)
	}

	picker.Reload("labels.txt")
	picker.Process()
	if calls != 2 {
		t.Errorf("expected a second parse after Reload, got %d", calls)
	}
}

func TestPickerReloadReplacesLabels(t *testing.T) {
	lists := [][]string{{"a", "b"}, {"c"}}
	picker := NewPicker()
	picker.load = func(string) ([]string, error) {
		list := lists[0]
		lists = lists[1:]
		return list, nil
	}

	picker.Reload("first.txt")
	picker.Process()
	picker.Reload("second.txt")
	out := picker.Process()

	if len(out.Labels) != 1 || out.Labels[0] != "c" {
		t.Errorf("expected labels [c], got %v", out.Labels)
	}
}

func TestPickerMissingLabelFile(t *testing.T) {
	logs := captureLogs(t)
	picker := NewPicker()
	picker.load = func(path string) ([]string, error) {
		if path == "good.txt" {
			return []string{"a", "b"}, nil
		}
		return nil, labels.ErrFileNotFound
	}

	picker.Reload("good.txt")
	picker.Process()
	picker.Reload("missing.txt")
	out := picker.Process()

	if len(out.Labels) != 2 {
		t.Errorf("expected the previous labels to survive, got %v", out.Labels)
	}
	assertLogged(t, logs, "cannot read label list")
}

func TestPickerOutputIsCopy(t *testing.T) {
	picker := NewPicker()
	picker.Accept(gridFrame(10, 10), 1, 1)

	out := picker.Process()
	out.Points[0] = geometry.Vector3{}
	if picker.Points()[0].IsZero() {
		t.Error("expected Process output to be a copy")
	}
}
