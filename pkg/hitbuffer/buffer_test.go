package hitbuffer

import (
	"testing"

	"github.com/philipparndt/gopoi/pkg/geometry"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		in       Coord
		w, h     int
		expected Coord
	}{
		{"inside", Coord{5, 7}, 10, 10, Coord{5, 7}},
		{"negative", Coord{-3, -100}, 10, 10, Coord{0, 0}},
		{"too large", Coord{10, 99999}, 10, 20, Coord{9, 19}},
		{"on edge", Coord{9, 0}, 10, 10, Coord{9, 0}},
		{"mixed", Coord{-1, 12}, 4, 8, Coord{0, 7}},
		{"empty buffer", Coord{3, 3}, 0, 0, Coord{0, 0}},
	}

	for _, tt := range tests {
		if got := Clamp(tt.in, tt.w, tt.h); got != tt.expected {
			t.Errorf("%s: Clamp(%v, %d, %d) expected %v, got %v", tt.name, tt.in, tt.w, tt.h, tt.expected, got)
		}
	}
}

func TestClampIdempotent(t *testing.T) {
	bounds := [][2]int{{1, 1}, {10, 10}, {640, 480}, {3, 1000}}
	for _, b := range bounds {
		for x := -50; x <= 1100; x += 37 {
			for y := -50; y <= 1100; y += 41 {
				once := Clamp(Coord{x, y}, b[0], b[1])
				twice := Clamp(once, b[0], b[1])
				if once != twice {
					t.Fatalf("Clamp not idempotent for %v in %v: %v then %v", Coord{x, y}, b, once, twice)
				}
				if once.X < 0 || once.X >= b[0] || once.Y < 0 || once.Y >= b[1] {
					t.Fatalf("Clamp(%v) = %v is outside %v", Coord{x, y}, once, b)
				}
			}
		}
	}
}

func TestFlipY(t *testing.T) {
	if got, expected := FlipY(4, 30, 100), (Coord{4, 70}); got != expected {
		t.Errorf("FlipY failed: expected %v, got %v", expected, got)
	}
	if got := Clamp(FlipY(0, 0, 100), 100, 100); got.Y != 99 {
		t.Errorf("FlipY of top edge should clamp to the last row, got %v", got)
	}
}

func TestBufferAtAndSet(t *testing.T) {
	b := New(4, 3)
	p := geometry.NewVector3(0.1, 0.2, 0.3)
	b.Set(2, 1, p)

	if got := b.At(2, 1); got != p {
		t.Errorf("At failed: expected %v, got %v", p, got)
	}
	if got := b.At(-1, 0); !got.IsZero() {
		t.Errorf("out of range read should be a miss, got %v", got)
	}
	b.Set(10, 10, p)
	if b.Coverage() != 1 {
		t.Errorf("Coverage failed: expected 1, got %d", b.Coverage())
	}

	b.Clear()
	if b.Coverage() != 0 {
		t.Errorf("Clear failed: coverage %d", b.Coverage())
	}
}

func TestIsMiss(t *testing.T) {
	tests := []struct {
		p        geometry.Vector3
		expected bool
	}{
		{geometry.Vector3{}, true},
		{geometry.NewVector3(0.5, 0, 0.5), true},
		{geometry.NewVector3(0.5, 0.5, 0.5), false},
		{geometry.NewVector3(-0.1, 0.2, 0.3), false},
	}

	for _, tt := range tests {
		if got := IsMiss(tt.p); got != tt.expected {
			t.Errorf("IsMiss(%v) expected %v, got %v", tt.p, tt.expected, got)
		}
	}
}

func TestBufferImageFlipsRows(t *testing.T) {
	b := New(2, 2)
	b.Set(0, 0, geometry.NewVector3(1, 1, 1))

	img := b.Image()
	if c := img.RGBAAt(0, 1); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("bottom buffer row should be the last image row, got %v", c)
	}
	if c := img.RGBAAt(0, 0); c.R != 0 || c.A != 255 {
		t.Errorf("miss pixel should be opaque black, got %v", c)
	}
}
