package poi

import (
	"github.com/philipparndt/gopoi/pkg/geometry"
	"github.com/philipparndt/gopoi/pkg/labels"
)

// PickOutput is the per-cycle result of a Picker. Slices are copies.
type PickOutput struct {
	Points    []geometry.Vector3
	Labels    []string
	NextLabel string
	HasLabel  bool
}

// Picker fits points of interest onto the surface. Accepted points form
// an ordered list that can be undone from the tail; an optional label list
// names the point expected next.
type Picker struct {
	points    []geometry.Vector3
	labels    []string
	labelPath string
	dirty     bool
	load      func(path string) ([]string, error)
}

// NewPicker returns an empty picker with no label list
func NewPicker() *Picker {
	return &Picker{
		points: make([]geometry.Vector3, 0),
		labels: make([]string, 0),
		dirty:  true,
		load:   labels.Load,
	}
}

// Accept resolves a host click at (x, y) (origin top-left) to a surface
// point and appends it. It returns true when a point was added and the host
// should redraw. A click on background is silently ignored.
func (p *Picker) Accept(f Frame, x, y int) bool {
	if err := f.check(); err != nil {
		Logger().Error("cannot pick point", "err", err)
		return false
	}

	coord := f.screenToBuffer(x, y)
	point, ok := f.sample(coord)
	if !ok {
		return false
	}

	p.points = append(p.points, point)
	Logger().Info("picked point",
		"index", len(p.points)-1,
		"x", point.X, "y", point.Y, "z", point.Z,
		"pixel", coord.String())
	return true
}

// Undo removes the most recently accepted point. Undo on an empty list is
// logged and otherwise ignored.
func (p *Picker) Undo() bool {
	if len(p.points) == 0 {
		Logger().Error("list of points is empty")
		return false
	}

	p.points = p.points[:len(p.points)-1]
	Logger().Info("removed last point", "remaining", len(p.points))
	return true
}

// Reload switches to the label list at path. The point list is cleared
// right away; the file itself is parsed on the next Process call.
func (p *Picker) Reload(path string) {
	p.labelPath = path
	p.dirty = true
	p.points = p.points[:0]
}

// Process runs one output cycle: it parses a pending label list and
// returns a snapshot of the points together with the next expected label.
func (p *Picker) Process() PickOutput {
	p.reloadLabels()

	next, ok := p.NextLabel()
	return PickOutput{
		Points:    p.Points(),
		Labels:    p.Labels(),
		NextLabel: next,
		HasLabel:  ok,
	}
}

func (p *Picker) reloadLabels() {
	if !p.dirty {
		return
	}
	p.dirty = false

	if p.labelPath == "" {
		return
	}

	list, err := p.load(p.labelPath)
	if err != nil {
		Logger().Error("cannot read label list", "path", p.labelPath, "err", err)
		return
	}

	p.labels = list
	Logger().Info("read label list", "path", p.labelPath, "labels", len(list))
}

// Points returns a copy of the accepted points in insertion order
func (p *Picker) Points() []geometry.Vector3 {
	out := make([]geometry.Vector3, len(p.points))
	copy(out, p.points)
	return out
}

// Len returns the number of accepted points
func (p *Picker) Len() int {
	return len(p.points)
}

// Labels returns a copy of the current label list
func (p *Picker) Labels() []string {
	out := make([]string, len(p.labels))
	copy(out, p.labels)
	return out
}

// LabelPath returns the label list path last passed to Reload
func (p *Picker) LabelPath() string {
	return p.labelPath
}

// NextLabel returns the label of the point expected next, if the label
// list is long enough.
func (p *Picker) NextLabel() (string, bool) {
	return labels.At(p.labels, len(p.points))
}
