// Command gopoi-raylib is a raylib viewer for the point fitting and
// surface measuring tools. Hold Alt and use the left button to pick or
// measure, Alt with the right button to undo, and Tab to switch tools.
package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"time"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gopoi/internal/tool"
	"github.com/philipparndt/gopoi/pkg/mesh"
	"github.com/philipparndt/gopoi/pkg/poi"
	"github.com/philipparndt/gopoi/pkg/watcher"
)

type App struct {
	session  *tool.Session
	texture  rl.Texture2D
	loaded   bool
	output   poi.PickOutput
	dirty    bool
	gesture  bool
	reloads  chan struct{}
	lastDraw time.Duration
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: gopoi-raylib <model> [labels]")
		fmt.Println("Supported formats: .stl, .glb, .gltf, .scad")
		os.Exit(1)
	}

	poi.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	m, err := mesh.Load(context.Background(), os.Args[1])
	if err != nil {
		fmt.Printf("Error loading file: %v\n", err)
		os.Exit(1)
	}

	cfg := tool.Config{Width: 1200, Height: 800}
	if len(os.Args) > 2 {
		cfg.LabelPath = os.Args[2]
	}

	app := &App{
		session: tool.NewSession(m, cfg),
		dirty:   true,
		reloads: make(chan struct{}, 1),
	}

	if cfg.LabelPath != "" {
		fw, err := watcher.NewFileWatcher(300*time.Millisecond, poi.Logger())
		if err != nil {
			fmt.Printf("Warning: label list will not reload: %v\n", err)
		} else {
			defer fw.Close()
			fw.Start()
			if err := fw.Watch([]string{cfg.LabelPath}, app.labelsChanged); err != nil {
				fmt.Printf("Warning: label list will not reload: %v\n", err)
			}
		}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "gopoi")
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		app.poll()
		app.handleInput()

		if app.dirty {
			app.redraw()
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		if app.loaded {
			rl.DrawTexture(app.texture, 0, 0, rl.White)
		}
		app.drawStatus()
		rl.EndDrawing()
	}

	if app.loaded {
		rl.UnloadTexture(app.texture)
	}
	rl.CloseWindow()
}

// labelsChanged runs on the watcher goroutine; the main loop picks it up
func (a *App) labelsChanged(string) {
	select {
	case a.reloads <- struct{}{}:
	default:
	}
}

func (a *App) poll() {
	select {
	case <-a.reloads:
		a.session.ReloadLabels()
		a.dirty = true
	default:
	}

	if rl.IsWindowResized() {
		a.session.Resize(int(rl.GetScreenWidth()), int(rl.GetScreenHeight()))
		a.dirty = true
	}
}

func (a *App) redraw() {
	start := time.Now()
	img, out, err := a.session.Render()
	if err != nil {
		poi.Logger().Error("cannot render view", "err", err)
		return
	}
	a.output = out
	a.upload(img)
	a.dirty = false
	a.lastDraw = time.Since(start)
}

func (a *App) upload(img *image.RGBA) {
	if a.loaded {
		rl.UnloadTexture(a.texture)
	}
	a.texture = rl.LoadTextureFromImage(&rl.Image{
		Data:    unsafe.Pointer(&img.Pix[0]),
		Width:   int32(img.Bounds().Dx()),
		Height:  int32(img.Bounds().Dy()),
		Mipmaps: 1,
		Format:  rl.UncompressedR8g8b8a8,
	})
	a.loaded = true
}

func (a *App) drawStatus() {
	_, height := a.session.Size()
	y := int32(height) - 24

	status := fmt.Sprintf("[Tab] %s  points: %d", a.session.Mode(), len(a.output.Points))
	if a.output.HasLabel {
		status += "  next: " + a.output.NextLabel
	}
	if text := a.session.DistanceText(); text != "" {
		status += "  distance: " + text
	}
	rl.DrawText(status, 10, y, 18, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("%d ms", a.lastDraw.Milliseconds()), 10, 10, 14, rl.Gray)
}
