package app

import (
	"fyne.io/fyne/v2"

	"github.com/philipparndt/gopoi/pkg/mesh"
	"github.com/philipparndt/gopoi/pkg/poi"
)

// setLabelFile switches the label list and follows its changes on disk
func (a *App) setLabelFile(path string) {
	if a.labelFile != "" {
		if err := a.watcher.Unwatch(a.labelFile); err != nil {
			poi.Logger().Error("cannot stop watching label list", "path", a.labelFile, "err", err)
		}
	}

	a.labelFile = path
	a.session.Reload(path)
	a.view.Redraw()

	err := a.watcher.Watch([]string{path}, func(string) {
		fyne.Do(func() {
			a.session.ReloadLabels()
			a.view.Redraw()
		})
	})
	if err != nil {
		poi.Logger().Error("cannot watch label list", "path", path, "err", err)
	}
}

// watchModel reloads the model whenever one of its sources changes
func (a *App) watchModel() {
	sources, err := mesh.Sources(a.sourceFile)
	if err != nil {
		poi.Logger().Error("cannot resolve model sources", "path", a.sourceFile, "err", err)
		return
	}

	err = a.watcher.Watch(sources, func(string) {
		m, err := mesh.Load(a.ctx, a.sourceFile)
		fyne.Do(func() {
			if err != nil {
				a.showError(err)
				return
			}
			poi.Logger().Info("reloaded model", "path", a.sourceFile, "triangles", m.TriangleCount())
			a.session.SetMesh(m)
			a.view.Redraw()
		})
	})
	if err != nil {
		poi.Logger().Error("cannot watch model", "path", a.sourceFile, "err", err)
	}
}
