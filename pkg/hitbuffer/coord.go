package hitbuffer

import "fmt"

// Coord is a pixel position in buffer space with the origin at the
// bottom-left corner, the convention of GPU render targets.
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// FlipY converts a host input position (origin top-left) into buffer space.
// The result is not clamped; a position on the top edge maps to
// viewportHeight and is pulled back in by Clamp.
func FlipY(x, y, viewportHeight int) Coord {
	return Coord{X: x, Y: viewportHeight - y}
}

// Clamp pulls c into [0, width-1] x [0, height-1]. Each axis is clamped
// independently. A non-positive extent clamps that axis to 0.
func Clamp(c Coord, width, height int) Coord {
	return Coord{X: clampAxis(c.X, width), Y: clampAxis(c.Y, height)}
}

func clampAxis(v, extent int) int {
	if v < 0 || extent <= 0 {
		return 0
	}
	if v > extent-1 {
		return extent - 1
	}
	return v
}
