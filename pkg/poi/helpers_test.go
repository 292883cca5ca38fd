package poi

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/philipparndt/gopoi/pkg/geometry"
	"github.com/philipparndt/gopoi/pkg/hitbuffer"
)

type identityVolume struct{}

func (identityVolume) ToWorld(p geometry.Vector3) geometry.Vector3 { return p }

type scaledVolume struct{ scale float64 }

func (v scaledVolume) ToWorld(p geometry.Vector3) geometry.Vector3 { return p.Mul(v.scale) }

// gridBuffer fills every pixel with its normalized centre position
func gridBuffer(width, height int) *hitbuffer.Buffer {
	buf := hitbuffer.New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			buf.Set(x, y, geometry.NewVector3(
				(float64(x)+0.5)/float64(width),
				(float64(y)+0.5)/float64(height),
				0.5,
			))
		}
	}
	return buf
}

func gridFrame(width, height int) Frame {
	return Frame{HitPoints: gridBuffer(width, height), Volume: identityVolume{}}
}

// captureLogs routes the package logger into a buffer for the duration of
// the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var out bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &out
}

func assertLogged(t *testing.T, logs *bytes.Buffer, msg string) {
	t.Helper()
	if !strings.Contains(logs.String(), msg) {
		t.Errorf("expected log message %q, got %q", msg, logs.String())
	}
}
