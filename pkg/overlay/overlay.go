// Package overlay draws picked points, measured paths and status text on
// top of a rendered view.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/philipparndt/gopoi/pkg/geometry"
	"github.com/philipparndt/gopoi/pkg/raster"
)

const (
	pointRadius = 4
	pathWidth   = 2
	textMargin  = 6
)

var (
	textColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	shadowColor = color.RGBA{R: 255, A: 255}
)

// Scene is everything drawn over one frame
type Scene struct {
	Points []geometry.Vector3
	Path   []geometry.Vector3
	// Gesture is the screen-space line of a measurement in progress
	// (origin top-left); it is drawn only with two entries.
	Gesture  []image.Point
	Label    string
	Distance string
}

// Draw returns a copy of img with s drawn on top. World positions are
// projected with cam.
func Draw(img *image.RGBA, cam *raster.Camera, s Scene) (*image.RGBA, error) {
	ctx := gg.NewContextForImage(img)
	defer ctx.Close()

	width, height := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

	if len(s.Gesture) == 2 {
		ctx.SetRGBA(1, 1, 1, 0.6)
		ctx.SetLineWidth(1)
		ctx.MoveTo(float64(s.Gesture[0].X), float64(s.Gesture[0].Y))
		ctx.LineTo(float64(s.Gesture[1].X), float64(s.Gesture[1].Y))
		if err := ctx.Stroke(); err != nil {
			return nil, fmt.Errorf("failed to draw gesture: %w", err)
		}
	}

	if len(s.Path) > 1 {
		ctx.SetRGB(1, 0.85, 0)
		ctx.SetLineWidth(pathWidth)
		started := false
		for _, p := range s.Path {
			x, y, _, ok := cam.Project(p, width, height)
			if !ok {
				started = false
				continue
			}
			if started {
				ctx.LineTo(x, y)
			} else {
				ctx.MoveTo(x, y)
				started = true
			}
		}
		if err := ctx.Stroke(); err != nil {
			return nil, fmt.Errorf("failed to draw path: %w", err)
		}
	}

	if len(s.Points) > 0 {
		ctx.SetRGB(0.9, 0.1, 0.1)
		for _, p := range s.Points {
			x, y, _, ok := cam.Project(p, width, height)
			if !ok {
				continue
			}
			ctx.DrawCircle(x, y, pointRadius)
			if err := ctx.Fill(); err != nil {
				return nil, fmt.Errorf("failed to draw point: %w", err)
			}
		}
	}

	out := toRGBA(ctx.Image())

	if s.Label != "" {
		drawShadowedText(out, s.Label, textMargin, out.Bounds().Dy()-textMargin)
	}
	if s.Distance != "" {
		drawShadowedText(out, s.Distance, textMargin, textMargin+basicfont.Face7x13.Ascent)
	}

	return out, nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}

// drawShadowedText writes text with its baseline at y, with a red copy one
// pixel down and to the right underneath.
func drawShadowedText(img *image.RGBA, text string, x, y int) {
	drawText(img, text, x+1, y+1, shadowColor)
	drawText(img, text, x, y, textColor)
}

func drawText(img *image.RGBA, text string, x, y int, col color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

// SavePNG writes img to path as PNG
func SavePNG(img image.Image, path string) error {
	ctx := gg.NewContextForImage(img)
	defer ctx.Close()

	if err := ctx.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
