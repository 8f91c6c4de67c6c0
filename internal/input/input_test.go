package input

import (
	"math"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"litsphere/internal/config"
)

var testSettings = config.InputSettings{
	ZoomStep:         0.5,
	OrbitStep:        0.25,
	MouseSensitivity: 0.01,
	ScrollZoom:       0.1,
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-6
}

func TestKeyBindings(t *testing.T) {
	tests := []struct {
		name             string
		key              glfw.Key
		zoom, rotX, rotY float32
	}{
		{"W zooms in", glfw.KeyW, -0.5, 0, 0},
		{"Up zooms in", glfw.KeyUp, -0.5, 0, 0},
		{"S zooms out", glfw.KeyS, 0.5, 0, 0},
		{"Down zooms out", glfw.KeyDown, 0.5, 0, 0},
		{"A orbits left", glfw.KeyA, 0, -0.25, 0},
		{"Right orbits right", glfw.KeyRight, 0, 0.25, 0},
		{"Q orbits up", glfw.KeyQ, 0, 0, 0.25},
		{"E orbits down", glfw.KeyE, 0, 0, -0.25},
		{"unbound key", glfw.KeyZ, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			im := NewInputManager()
			im.HandleKeyEvent(tt.key, glfw.Press)

			zoom, rx, ry := im.Deltas(testSettings)
			if !near(zoom, tt.zoom) || !near(rx, tt.rotX) || !near(ry, tt.rotY) {
				t.Errorf("Deltas() = (%v, %v, %v), want (%v, %v, %v)", zoom, rx, ry, tt.zoom, tt.rotX, tt.rotY)
			}
		})
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyA, glfw.Press)
	im.HandleKeyEvent(glfw.KeyD, glfw.Press)

	if _, rx, _ := im.Deltas(testSettings); rx != 0 {
		t.Errorf("rotateX = %v, want 0", rx)
	}

	im.HandleKeyEvent(glfw.KeyA, glfw.Release)
	if _, rx, _ := im.Deltas(testSettings); !near(rx, 0.25) {
		t.Errorf("rotateX = %v, want 0.25", rx)
	}
}

func TestHeldKeysRepeatEachFrame(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)

	for i := 0; i < 3; i++ {
		if zoom, _, _ := im.Deltas(testSettings); !near(zoom, -0.5) {
			t.Fatalf("frame %d: zoom = %v, want -0.5", i, zoom)
		}
	}
}

func TestMouseDragAndScroll(t *testing.T) {
	im := NewInputManager()

	// Motion without the button held is ignored.
	im.HandleCursorPos(100, 100)
	im.HandleCursorPos(150, 80)
	if _, rx, ry := im.Deltas(testSettings); rx != 0 || ry != 0 {
		t.Fatalf("undragged motion gave (%v, %v)", rx, ry)
	}

	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	im.HandleCursorPos(160, 70)
	im.HandleCursorPos(170, 60)
	im.HandleScroll(2)

	zoom, rx, ry := im.Deltas(testSettings)
	if !near(rx, 0.2) {
		t.Errorf("rotateX = %v, want 0.2", rx)
	}
	if !near(ry, 0.2) {
		t.Errorf("rotateY = %v, want 0.2", ry)
	}
	if !near(zoom, -0.2) {
		t.Errorf("zoom = %v, want -0.2", zoom)
	}

	// Accumulated mouse input is consumed.
	if zoom, rx, ry := im.Deltas(testSettings); zoom != 0 || rx != 0 || ry != 0 {
		t.Errorf("second Deltas() = (%v, %v, %v), want zeros", zoom, rx, ry)
	}
}

func TestJustPressed(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyV, glfw.Press)
	if !im.JustPressed(ActionToggleProfiling) {
		t.Fatal("JustPressed = false right after press")
	}
	im.HandleKeyEvent(glfw.KeyV, glfw.Repeat)
	im.PostUpdate()
	if im.JustPressed(ActionToggleProfiling) {
		t.Error("JustPressed still set after PostUpdate")
	}
	if !im.IsActive(ActionToggleProfiling) {
		t.Error("IsActive = false while held")
	}

	im.HandleKeyEvent(glfw.KeyV, glfw.Release)
	if !im.JustReleased(ActionToggleProfiling) {
		t.Error("JustReleased = false right after release")
	}
	if im.IsActive(ActionToggleProfiling) {
		t.Error("IsActive = true after release")
	}

	if im.JustPressed(ActionCount) || im.IsActive(Action(-1)) {
		t.Error("out of range actions must report false")
	}
}

