package tool

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// EventKind is the type of a scripted input event
type EventKind int

const (
	EventClick EventKind = iota
	EventUndo
)

// Event is one scripted input event for the fitting tool
type Event struct {
	Kind EventKind
	At   image.Point
}

// ParsePoint parses "x,y" in host pixels
func ParsePoint(s string) (image.Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return image.Point{}, fmt.Errorf("invalid point %q (expected x,y)", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid y in %q: %w", s, err)
	}
	return image.Point{X: x, Y: y}, nil
}

// ParseEvents parses "x,y" clicks and "undo" tokens
func ParseEvents(tokens []string) ([]Event, error) {
	events := make([]Event, 0, len(tokens))
	for _, token := range tokens {
		if strings.EqualFold(strings.TrimSpace(token), "undo") {
			events = append(events, Event{Kind: EventUndo})
			continue
		}
		p, err := ParsePoint(token)
		if err != nil {
			return nil, err
		}
		events = append(events, Event{Kind: EventClick, At: p})
	}
	return events, nil
}

// Replay feeds events to the fitting tool and returns how many changed the
// point list.
func (s *Session) Replay(events []Event) int {
	s.SetMode(ModeFitting)

	changed := 0
	for _, e := range events {
		var ok bool
		switch e.Kind {
		case EventUndo:
			ok = s.Undo()
		default:
			ok = s.Press(e.At.X, e.At.Y)
		}
		if ok {
			changed++
		}
	}
	return changed
}

// Drag measures along a scripted gesture: press at the first point, move
// through the rest, release.
func (s *Session) Drag(points []image.Point) (bool, error) {
	if len(points) == 0 {
		return false, fmt.Errorf("a gesture needs at least one point")
	}
	s.SetMode(ModeMeasure)

	if !s.Press(points[0].X, points[0].Y) {
		return false, nil
	}
	for _, p := range points[1:] {
		s.Move(p.X, p.Y)
	}
	return s.Release(), nil
}
