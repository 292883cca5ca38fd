package tool

import (
	"image"
	"testing"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in       string
		expected image.Point
		wantErr  bool
	}{
		{"10,20", image.Point{X: 10, Y: 20}, false},
		{" 3 , 4 ", image.Point{X: 3, Y: 4}, false},
		{"10", image.Point{}, true},
		{"a,2", image.Point{}, true},
		{"1,b", image.Point{}, true},
	}

	for _, tt := range tests {
		got, err := ParsePoint(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePoint(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParsePoint(%q) failed: expected %v, got %v", tt.in, tt.expected, got)
		}
	}
}

func TestParseEvents(t *testing.T) {
	events, err := ParseEvents([]string{"1,2", "UNDO", "3,4"})
	if err != nil {
		t.Fatalf("ParseEvents failed: %v", err)
	}
	if len(events) != 3 || events[1].Kind != EventUndo || events[2].At != (image.Point{X: 3, Y: 4}) {
		t.Errorf("ParseEvents failed: got %+v", events)
	}

	if _, err := ParseEvents([]string{"bogus"}); err == nil {
		t.Error("expected an error for a bad token")
	}
}

func TestReplay(t *testing.T) {
	s := newSession()
	events, _ := ParseEvents([]string{"50,50", "0,0", "40,40", "undo", "undo", "undo"})

	changed := s.Replay(events)
	// two hits, two successful undos; the miss and the last undo change nothing
	if changed != 4 {
		t.Errorf("Replay failed: expected 4 changes, got %d", changed)
	}
	if len(s.Points()) != 0 {
		t.Errorf("expected an empty list, got %d points", len(s.Points()))
	}
}

func TestDragNeedsPoints(t *testing.T) {
	if _, err := newSession().Drag(nil); err == nil {
		t.Error("expected an error for an empty gesture")
	}
}
