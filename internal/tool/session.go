// Package tool ties a mesh, an orbit camera and the picking and measuring
// tools into one session that GUI and CLI hosts drive with input events.
package tool

import (
	"fmt"
	"image"

	"github.com/philipparndt/gopoi/pkg/geometry"
	"github.com/philipparndt/gopoi/pkg/mesh"
	"github.com/philipparndt/gopoi/pkg/overlay"
	"github.com/philipparndt/gopoi/pkg/poi"
	"github.com/philipparndt/gopoi/pkg/raster"
)

// Mode selects which tool receives pointer events
type Mode int

const (
	ModeFitting Mode = iota
	ModeMeasure
)

func (m Mode) String() string {
	if m == ModeMeasure {
		return "measure"
	}
	return "fitting"
}

// Config is the initial view of a session
type Config struct {
	Width      int
	Height     int
	RotX       float64 // elevation in radians
	RotY       float64 // azimuth in radians
	Zoom       float64 // relative distance change, 0 keeps the framing
	AxisPolicy poi.AxisPolicy
	LabelPath  string
}

// DefaultConfig returns an 800x600 front view
func DefaultConfig() Config {
	return Config{Width: 800, Height: 600}
}

// Session holds the state shared by all hosts. It is not safe for
// concurrent use; hosts call it from their UI goroutine only.
type Session struct {
	mesh       *mesh.Mesh
	camera     *raster.Camera
	width      int
	height     int
	frame      *raster.Frame
	mode       Mode
	picker     *poi.Picker
	integrator *poi.Integrator
	measured   bool
}

// NewSession frames m with the view described by cfg
func NewSession(m *mesh.Mesh, cfg Config) *Session {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		def := DefaultConfig()
		cfg.Width, cfg.Height = def.Width, def.Height
	}

	cam := raster.NewCamera(m.Bounds())
	cam.Rotate(cfg.RotX, cfg.RotY)
	if cfg.Zoom != 0 {
		cam.Zoom(cfg.Zoom)
	}

	s := &Session{
		mesh:       m,
		camera:     cam,
		width:      cfg.Width,
		height:     cfg.Height,
		picker:     poi.NewPicker(),
		integrator: poi.NewIntegrator(cfg.AxisPolicy),
	}
	if cfg.LabelPath != "" {
		s.picker.Reload(cfg.LabelPath)
	}
	return s
}

// Mesh returns the mesh being viewed
func (s *Session) Mesh() *mesh.Mesh {
	return s.mesh
}

// Camera returns the session camera
func (s *Session) Camera() *raster.Camera {
	return s.camera
}

// Size returns the viewport size in pixels
func (s *Session) Size() (int, int) {
	return s.width, s.height
}

// Mode returns the active tool
func (s *Session) Mode() Mode {
	return s.mode
}

// SetMode switches the active tool. A measurement in progress is dropped.
func (s *Session) SetMode(mode Mode) {
	if mode == s.mode {
		return
	}
	s.mode = mode
	s.resetMeasurement()
}

// ToggleMode switches between fitting and measuring
func (s *Session) ToggleMode() Mode {
	if s.mode == ModeFitting {
		s.SetMode(ModeMeasure)
	} else {
		s.SetMode(ModeFitting)
	}
	return s.mode
}

// SetAxisPolicy changes how the measuring tool picks its axis
func (s *Session) SetAxisPolicy(policy poi.AxisPolicy) {
	s.integrator.SetPolicy(policy)
}

// Frame returns the current rendering, rendering it first if the view
// changed.
func (s *Session) Frame() *raster.Frame {
	if s.frame == nil {
		s.frame = raster.Render(s.mesh, s.camera, s.width, s.height)
	}
	return s.frame
}

func (s *Session) invalidate() {
	s.frame = nil
	s.resetMeasurement()
}

func (s *Session) resetMeasurement() {
	s.integrator.Undo()
	s.measured = false
}

// Press handles a primary button press at (x, y), origin top-left. It
// returns true when the view must be redrawn.
func (s *Session) Press(x, y int) bool {
	f := s.Frame().Tools()
	if s.mode == ModeFitting {
		return s.picker.Accept(f, x, y)
	}
	s.measured = false
	return s.integrator.Begin(f, x, y)
}

// Move handles pointer motion with the primary button held
func (s *Session) Move(x, y int) bool {
	if s.mode != ModeMeasure {
		return false
	}
	return s.integrator.Drag(s.Frame().Tools(), x, y)
}

// Release handles the primary button release
func (s *Session) Release() bool {
	if s.mode != ModeMeasure {
		return false
	}
	_, ok := s.integrator.End(s.Frame().Tools())
	s.measured = s.measured || ok
	return ok
}

// Undo removes the last picked point or clears the measurement
func (s *Session) Undo() bool {
	if s.mode == ModeFitting {
		return s.picker.Undo()
	}
	active := s.integrator.Active()
	s.resetMeasurement()
	return active
}

// Reload switches the label list; the picked points are cleared
func (s *Session) Reload(path string) {
	s.picker.Reload(path)
}

// ReloadLabels re-reads the current label list
func (s *Session) ReloadLabels() {
	s.picker.Reload(s.picker.LabelPath())
}

// LabelPath returns the current label list path
func (s *Session) LabelPath() string {
	return s.picker.LabelPath()
}

// SetMesh replaces the model, for example after its source changed on
// disk. Picked points belong to the old model and are cleared.
func (s *Session) SetMesh(m *mesh.Mesh) {
	s.mesh = m
	s.picker.Reload(s.picker.LabelPath())
	s.invalidate()
}

// Resize changes the viewport size
func (s *Session) Resize(width, height int) {
	if width <= 0 || height <= 0 || (width == s.width && height == s.height) {
		return
	}
	s.width, s.height = width, height
	s.invalidate()
}

// Rotate orbits the camera
func (s *Session) Rotate(deltaX, deltaY float64) {
	s.camera.Rotate(deltaX, deltaY)
	s.invalidate()
}

// Zoom changes the camera distance
func (s *Session) Zoom(delta float64) {
	s.camera.Zoom(delta)
	s.invalidate()
}

// Process runs one output cycle of the picker
func (s *Session) Process() poi.PickOutput {
	return s.picker.Process()
}

// Measurement returns the last completed measurement and whether there is
// one.
func (s *Session) Measurement() (poi.Measurement, bool) {
	if !s.measured {
		return poi.Measurement{}, false
	}
	return s.integrator.Measurement(), true
}

// DistanceText returns the formatted distance of the last measurement
func (s *Session) DistanceText() string {
	if !s.measured {
		return ""
	}
	return s.integrator.DistanceText()
}

// Scene collects what the overlay draws for out
func (s *Session) Scene(out poi.PickOutput) overlay.Scene {
	scene := overlay.Scene{Points: out.Points}
	if out.HasLabel {
		scene.Label = out.NextLabel
	}

	if s.integrator.Active() {
		start, current := s.integrator.Start(), s.integrator.Current()
		scene.Gesture = []image.Point{
			{X: start.X, Y: s.height - start.Y},
			{X: current.X, Y: s.height - current.Y},
		}
	}
	if s.measured {
		scene.Path = s.integrator.Path()
		scene.Distance = s.integrator.DistanceText()
	}
	return scene
}

// Render runs one output cycle and returns the annotated view
func (s *Session) Render() (*image.RGBA, poi.PickOutput, error) {
	out := s.Process()
	img, err := overlay.Draw(s.Frame().Image, s.camera, s.Scene(out))
	if err != nil {
		return nil, out, fmt.Errorf("failed to draw overlay: %w", err)
	}
	return img, out, nil
}

// Points returns the picked points
func (s *Session) Points() []geometry.Vector3 {
	return s.picker.Points()
}
