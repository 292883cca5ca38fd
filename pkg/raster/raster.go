// Package raster renders a mesh into a shaded image and a first-hit-point
// buffer. It stands in for the GPU pass that produces both for the
// picking tools.
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/philipparndt/gopoi/pkg/geometry"
	"github.com/philipparndt/gopoi/pkg/hitbuffer"
	"github.com/philipparndt/gopoi/pkg/mesh"
	"github.com/philipparndt/gopoi/pkg/poi"
)

var (
	background = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	surface    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
)

// Frame is one rendered view
type Frame struct {
	Image     *image.RGBA
	HitPoints *hitbuffer.Buffer
	// Volume is nil when the mesh is empty.
	Volume *Volume
}

// Tools returns the per-event view of the frame used by the picking and
// measuring tools.
func (f *Frame) Tools() poi.Frame {
	out := poi.Frame{HitPoints: f.HitPoints, ViewportHeight: f.HitPoints.Height}
	if f.Volume != nil {
		out.Volume = f.Volume
	}
	return out
}

type projected struct {
	x, y, depth float64
	world       geometry.Vector3
}

// Render rasterizes m as seen by cam. Each covered pixel gets a Lambert
// shade in the image and the texture-space position of the nearest surface
// point in the hit-point buffer. Buffer row 0 is the image's bottom row.
func Render(m *mesh.Mesh, cam *Camera, width, height int) *Frame {
	frame := &Frame{
		Image:     image.NewRGBA(image.Rect(0, 0, width, height)),
		HitPoints: hitbuffer.New(width, height),
	}
	fill(frame.Image, background)

	if m == nil || m.IsEmpty() || width <= 0 || height <= 0 {
		return frame
	}
	frame.Volume = NewVolume(m.Bounds())

	zbuffer := make([]float64, width*height)
	for i := range zbuffer {
		zbuffer[i] = math.Inf(1)
	}

	forward := cam.Forward()
	w, h := float64(width), float64(height)

	for _, t := range m.Triangles {
		var verts [3]projected
		visible := true
		for i, v := range [3]geometry.Vector3{t.V1, t.V2, t.V3} {
			x, y, depth, ok := cam.Project(v, w, h)
			if !ok {
				visible = false
				break
			}
			verts[i] = projected{x: x, y: y, depth: depth, world: v}
		}
		if !visible {
			continue
		}

		normal := t.Normal
		if normal.IsZero() {
			normal = t.CalculateNormal()
		}
		col := shade(math.Abs(normal.Dot(forward)))

		fillTriangle(frame, zbuffer, verts, col)
	}

	return frame
}

// fillTriangle scans the triangle's screen bounding box and tests pixel
// centres against its edge functions. Depth and world position are
// interpolated perspective-correctly.
func fillTriangle(frame *Frame, zbuffer []float64, v [3]projected, col color.RGBA) {
	width, height := frame.HitPoints.Width, frame.HitPoints.Height

	area := edge(v[0], v[1], v[2].x, v[2].y)
	if area == 0 {
		return
	}

	minX := clampInt(int(math.Floor(math.Min(v[0].x, math.Min(v[1].x, v[2].x)))), 0, width-1)
	maxX := clampInt(int(math.Ceil(math.Max(v[0].x, math.Max(v[1].x, v[2].x)))), 0, width-1)
	minY := clampInt(int(math.Floor(math.Min(v[0].y, math.Min(v[1].y, v[2].y)))), 0, height-1)
	maxY := clampInt(int(math.Ceil(math.Max(v[0].y, math.Max(v[1].y, v[2].y)))), 0, height-1)

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5

			w0 := edge(v[1], v[2], px, py) / area
			w1 := edge(v[2], v[0], px, py) / area
			w2 := edge(v[0], v[1], px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			invDepth := w0/v[0].depth + w1/v[1].depth + w2/v[2].depth
			depth := 1 / invDepth

			idx := y*width + x
			if depth >= zbuffer[idx] {
				continue
			}
			zbuffer[idx] = depth

			world := v[0].world.Mul(w0 / v[0].depth).
				Add(v[1].world.Mul(w1 / v[1].depth)).
				Add(v[2].world.Mul(w2 / v[2].depth)).
				Mul(depth)

			frame.Image.SetRGBA(x, y, col)
			frame.HitPoints.Set(x, height-1-y, frame.Volume.ToTexture(world))
		}
	}
}

func edge(a, b projected, x, y float64) float64 {
	return (b.x-a.x)*(y-a.y) - (b.y-a.y)*(x-a.x)
}

func shade(intensity float64) color.RGBA {
	k := 0.25 + 0.75*intensity
	return color.RGBA{
		R: uint8(float64(surface.R) * k),
		G: uint8(float64(surface.G) * k),
		B: uint8(float64(surface.B) * k),
		A: 255,
	}
}

func fill(img *image.RGBA, col color.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = col.R
		img.Pix[i+1] = col.G
		img.Pix[i+2] = col.B
		img.Pix[i+3] = col.A
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
