package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gopoi/internal/tool"
)

const (
	rotateSpeed = 0.01
	zoomSpeed   = 0.1
)

func altDown() bool {
	return rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt)
}

func mouse() (int, int) {
	p := rl.GetMousePosition()
	return int(p.X), int(p.Y)
}

// handleInput maps Alt+mouse to the active tool. Without Alt, the left
// button orbits and the wheel zooms.
func (a *App) handleInput() {
	if rl.IsKeyPressed(rl.KeyTab) {
		a.session.ToggleMode()
		a.gesture = false
		a.dirty = true
	}

	if altDown() {
		a.handleTool()
		return
	}

	if rl.IsMouseButtonDown(rl.MouseButtonLeft) && !a.gesture {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			a.session.Rotate(float64(-delta.Y)*rotateSpeed, float64(-delta.X)*rotateSpeed)
			a.dirty = true
		}
	}
	if a.gesture && rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		a.finishGesture()
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.session.Zoom(-float64(wheel) * zoomSpeed)
		a.dirty = true
	}
}

func (a *App) handleTool() {
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		if a.session.Undo() {
			a.dirty = true
		}
		return
	}

	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		if a.session.Press(mouse()) {
			a.gesture = a.session.Mode() == tool.ModeMeasure
			a.dirty = true
		}

	case a.gesture && rl.IsMouseButtonDown(rl.MouseButtonLeft):
		if a.session.Move(mouse()) {
			a.dirty = true
		}

	case a.gesture && rl.IsMouseButtonReleased(rl.MouseButtonLeft):
		a.finishGesture()
	}
}

func (a *App) finishGesture() {
	a.gesture = false
	if a.session.Release() {
		a.dirty = true
	}
}
