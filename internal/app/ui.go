package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/gopoi/internal/tool"
	"github.com/philipparndt/gopoi/pkg/poi"
)

const controlsHeight = 80

// Controls is the tool bar above and the status line below the view
type Controls struct {
	app *App

	mode      *widget.RadioGroup
	policy    *widget.Select
	nextLabel *widget.Label
	distance  *widget.Label
	points    *widget.Label
	labelFile *widget.Label
}

func newControls(a *App) *Controls {
	c := &Controls{
		app:       a,
		nextLabel: widget.NewLabel("Next: -"),
		distance:  widget.NewLabel("Distance: -"),
		points:    widget.NewLabel("Points: 0"),
		labelFile: widget.NewLabel("No label list"),
	}
	c.distance.TextStyle = fyne.TextStyle{Bold: true}

	c.mode = widget.NewRadioGroup([]string{tool.ModeFitting.String(), tool.ModeMeasure.String()}, func(selected string) {
		if selected == tool.ModeMeasure.String() {
			a.session.SetMode(tool.ModeMeasure)
		} else {
			a.session.SetMode(tool.ModeFitting)
		}
		if a.view != nil {
			a.view.Redraw()
		}
	})
	c.mode.Horizontal = true
	c.mode.Required = true
	c.mode.SetSelected(a.session.Mode().String())

	c.policy = widget.NewSelect([]string{poi.AxisLargerDistance.String(), poi.AxisLargerSpan.String()}, func(selected string) {
		policy, err := poi.ParseAxisPolicy(selected)
		if err != nil {
			a.showError(err)
			return
		}
		a.session.SetAxisPolicy(policy)
	})
	c.policy.SetSelected(poi.AxisLargerDistance.String())

	return c
}

func (a *App) layout() fyne.CanvasObject {
	c := a.controls

	open := widget.NewButton("Labels…", func() {
		dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil {
				a.showError(err)
				return
			}
			if reader == nil {
				return
			}
			defer reader.Close()
			a.setLabelFile(reader.URI().Path())
		}, a.window)
	})
	undo := widget.NewButton("Undo", func() {
		if a.session.Undo() {
			a.view.Redraw()
		}
	})

	toolbar := container.NewHBox(
		widget.NewLabel("Tool:"), c.mode,
		widget.NewSeparator(),
		widget.NewLabel("Axis:"), c.policy,
		widget.NewSeparator(),
		open, undo,
	)
	status := container.NewHBox(c.nextLabel, widget.NewSeparator(), c.points, widget.NewSeparator(), c.distance, widget.NewSeparator(), c.labelFile)

	return container.NewBorder(toolbar, status, nil, nil, a.view)
}

// update shows the output of the latest redraw
func (c *Controls) update(out poi.PickOutput) {
	if out.HasLabel {
		c.nextLabel.SetText("Next: " + out.NextLabel)
	} else {
		c.nextLabel.SetText("Next: -")
	}
	c.points.SetText(fmt.Sprintf("Points: %d", len(out.Points)))

	if text := c.app.session.DistanceText(); text != "" {
		c.distance.SetText("Distance: " + text)
	} else {
		c.distance.SetText("Distance: -")
	}

	if path := c.app.session.LabelPath(); path != "" {
		c.labelFile.SetText(fmt.Sprintf("%s (%d labels)", path, len(out.Labels)))
	}
}

func (a *App) showError(err error) {
	poi.Logger().Error("viewer error", "err", err)
	if a.window != nil {
		dialog.ShowError(err, a.window)
	}
}
