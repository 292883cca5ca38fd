package poi

import (
	"strconv"

	"github.com/philipparndt/gopoi/pkg/geometry"
	"github.com/philipparndt/gopoi/pkg/hitbuffer"
)

// Integrator measures surface distances with a press-drag-release gesture.
type Integrator struct {
	policy       AxisPolicy
	start        hitbuffer.Coord
	current      hitbuffer.Coord
	active       bool
	lastDistance float64
	last         Measurement
}

// NewIntegrator returns an idle integrator using policy to pick the
// reported axis.
func NewIntegrator(policy AxisPolicy) *Integrator {
	return &Integrator{policy: policy}
}

// SetPolicy changes the axis policy for the next End
func (g *Integrator) SetPolicy(policy AxisPolicy) {
	g.policy = policy
}

// Policy returns the axis policy in use
func (g *Integrator) Policy() AxisPolicy {
	return g.policy
}

// Begin starts a gesture at the host position (x, y). The gesture only
// starts on a surface hit. It returns true when the gesture started.
func (g *Integrator) Begin(f Frame, x, y int) bool {
	if err := f.check(); err != nil {
		Logger().Error("cannot start measurement", "err", err)
		return false
	}

	coord := f.screenToBuffer(x, y)
	if _, ok := f.sample(coord); !ok {
		return false
	}

	g.start = coord
	g.current = coord
	g.active = true
	g.lastDistance = 0
	g.last = Measurement{}
	return true
}

// Drag moves the end of an active gesture. A position over background is
// rejected and the previous end is kept. It returns true when the end
// moved and the host should redraw the measuring line.
func (g *Integrator) Drag(f Frame, x, y int) bool {
	if !g.active {
		return false
	}
	if err := f.check(); err != nil {
		Logger().Error("cannot update measurement", "err", err)
		return false
	}

	coord := f.screenToBuffer(x, y)
	if _, ok := f.sample(coord); !ok {
		return false
	}

	g.current = coord
	return true
}

// End computes the surface distance between the gesture start and its
// current end. The gesture stays active so the result remains on display;
// Undo resets it.
func (g *Integrator) End(f Frame) (float64, bool) {
	if !g.active {
		return 0, false
	}

	m, err := MeasureSurface(f, g.start, g.current, g.policy)
	if err != nil {
		Logger().Error("cannot measure surface distance", "err", err)
		return 0, false
	}

	g.last = m
	g.lastDistance = m.Distance
	Logger().Debug("measured surface distance",
		"start", g.start.String(), "end", g.current.String(),
		"distX", m.DistX, "distY", m.DistY,
		"axis", m.Axis.String(), "samples", len(m.Path()))
	return m.Distance, true
}

// Undo clears the gesture and its result. It is a no-op when idle.
func (g *Integrator) Undo() {
	g.active = false
	g.start = hitbuffer.Coord{}
	g.current = hitbuffer.Coord{}
	g.lastDistance = 0
	g.last = Measurement{}
}

// Active reports whether a gesture is in progress or being displayed
func (g *Integrator) Active() bool {
	return g.active
}

// Start returns the buffer coordinate where the gesture began
func (g *Integrator) Start() hitbuffer.Coord {
	return g.start
}

// Current returns the buffer coordinate of the gesture end
func (g *Integrator) Current() hitbuffer.Coord {
	return g.current
}

// Distance returns the result of the last End
func (g *Integrator) Distance() float64 {
	return g.lastDistance
}

// DistanceText formats the last distance with six significant digits
func (g *Integrator) DistanceText() string {
	return strconv.FormatFloat(g.lastDistance, 'g', 6, 64)
}

// Measurement returns a copy of the last full result
func (g *Integrator) Measurement() Measurement {
	return g.last.clone()
}

// Path returns a copy of the sampled world points of the reported axis
func (g *Integrator) Path() []geometry.Vector3 {
	return append([]geometry.Vector3(nil), g.last.Path()...)
}
