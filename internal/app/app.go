// Package app is the fyne desktop host for the point fitting and surface
// measuring tools.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/philipparndt/gopoi/internal/tool"
	"github.com/philipparndt/gopoi/pkg/mesh"
	"github.com/philipparndt/gopoi/pkg/poi"
	"github.com/philipparndt/gopoi/pkg/watcher"
)

const watchDebounce = 300 * time.Millisecond

// App is one viewer window
type App struct {
	ctx        context.Context
	window     fyne.Window
	sourceFile string
	session    *tool.Session
	view       *SurfaceView
	controls   *Controls
	watcher    *watcher.FileWatcher
	labelFile  string
}

// Run opens a window for the model at path and blocks until it is closed
func Run(ctx context.Context, path string, cfg tool.Config) error {
	m, err := mesh.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to load model: %w", err)
	}

	fw, err := watcher.NewFileWatcher(watchDebounce, poi.Logger())
	if err != nil {
		return err
	}
	defer fw.Close()
	fw.Start()

	w := fyneapp.New().NewWindow("gopoi - " + filepath.Base(path))

	a := &App{
		ctx:        ctx,
		window:     w,
		sourceFile: path,
		session:    tool.NewSession(m, cfg),
		watcher:    fw,
	}
	a.controls = newControls(a)
	a.view = NewSurfaceView(a.session, a.controls.update, a.showError)

	w.SetContent(a.layout())
	w.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)+controlsHeight))

	a.watchModel()
	if cfg.LabelPath != "" {
		a.setLabelFile(cfg.LabelPath)
	}

	w.ShowAndRun()
	return nil
}
