package app

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/gopoi/internal/tool"
	"github.com/philipparndt/gopoi/pkg/poi"
)

const (
	rotateSpeed = 0.01
	zoomSpeed   = 0.002
)

// SurfaceView shows the rendered model and turns pointer input into tool
// events. Taps pick points, drags measure or orbit, secondary taps undo.
type SurfaceView struct {
	widget.BaseWidget

	session  *tool.Session
	image    *canvas.Image
	onChange func(poi.PickOutput)
	onError  func(error)

	pressed bool
}

// NewSurfaceView creates a view over session. onChange receives the output
// of every redraw.
func NewSurfaceView(session *tool.Session, onChange func(poi.PickOutput), onError func(error)) *SurfaceView {
	img := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScalePixels

	v := &SurfaceView{
		session:  session,
		image:    img,
		onChange: onChange,
		onError:  onError,
	}
	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer creates the renderer for the widget
func (v *SurfaceView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.image)
}

// MinSize keeps the view usable inside a border layout
func (v *SurfaceView) MinSize() fyne.Size {
	return fyne.NewSize(200, 150)
}

// Resize renders the model at the new size
func (v *SurfaceView) Resize(size fyne.Size) {
	v.BaseWidget.Resize(size)
	v.session.Resize(int(size.Width), int(size.Height))
	v.Redraw()
}

// Redraw renders the session and reports its output
func (v *SurfaceView) Redraw() {
	img, out, err := v.session.Render()
	if err != nil {
		if v.onError != nil {
			v.onError(err)
		}
		return
	}

	v.image.Image = img
	v.image.Refresh()
	if v.onChange != nil {
		v.onChange(out)
	}
}

func position(p fyne.Position) (int, int) {
	return int(p.X), int(p.Y)
}

// Tapped picks a point in fitting mode
func (v *SurfaceView) Tapped(e *fyne.PointEvent) {
	if v.session.Mode() != tool.ModeFitting {
		return
	}
	if v.session.Press(position(e.Position)) {
		v.Redraw()
	}
}

// TappedSecondary undoes the last point or measurement
func (v *SurfaceView) TappedSecondary(*fyne.PointEvent) {
	if v.session.Undo() {
		v.Redraw()
	}
}

// MouseDown starts a measurement in measure mode
func (v *SurfaceView) MouseDown(e *desktop.MouseEvent) {
	if v.session.Mode() != tool.ModeMeasure || e.Button != desktop.MouseButtonPrimary {
		return
	}
	v.pressed = v.session.Press(position(e.Position))
	if v.pressed {
		v.Redraw()
	}
}

// MouseUp completes a measurement
func (v *SurfaceView) MouseUp(*desktop.MouseEvent) {
	v.release()
}

// Dragged extends a measurement, or orbits the camera when no measurement
// is in progress.
func (v *SurfaceView) Dragged(e *fyne.DragEvent) {
	if v.pressed {
		if v.session.Move(position(e.Position)) {
			v.Redraw()
		}
		return
	}

	v.session.Rotate(float64(-e.Dragged.DY)*rotateSpeed, float64(-e.Dragged.DX)*rotateSpeed)
	v.Redraw()
}

// DragEnd completes a measurement
func (v *SurfaceView) DragEnd() {
	v.release()
}

func (v *SurfaceView) release() {
	if !v.pressed {
		return
	}
	v.pressed = false
	v.session.Release()
	v.Redraw()
}

// Scrolled zooms the camera
func (v *SurfaceView) Scrolled(e *fyne.ScrollEvent) {
	v.session.Zoom(float64(-e.Scrolled.DY) * zoomSpeed)
	v.Redraw()
}

var (
	_ fyne.Tappable          = (*SurfaceView)(nil)
	_ fyne.SecondaryTappable = (*SurfaceView)(nil)
	_ fyne.Draggable         = (*SurfaceView)(nil)
	_ fyne.Scrollable        = (*SurfaceView)(nil)
	_ desktop.Mouseable      = (*SurfaceView)(nil)
)
