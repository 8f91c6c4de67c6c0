package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"

	"litsphere/internal/config"
)

// Action represents a logical viewer action, not a physical key
type Action int

const (
	ActionZoomIn Action = iota
	ActionZoomOut
	ActionOrbitLeft
	ActionOrbitRight
	ActionOrbitUp
	ActionOrbitDown
	ActionDrag
	ActionQuit
	ActionToggleProfiling
	ActionCount // Sentinel value for array sizing
)

// InputManager maps keys and mouse buttons to actions and accumulates
// mouse motion between frames.
type InputManager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	// Mouse button to action mapping
	mouseButtonToActions map[glfw.MouseButton][]Action

	currentState [ActionCount]bool

	// Just pressed/released flags (reset each frame)
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	// Cursor motion while dragging and wheel motion since the last Deltas.
	cursorX, cursorY float64
	haveCursor       bool
	dragX, dragY     float64
	scroll           float64
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	im.BindKey(glfw.KeyW, ActionZoomIn)
	im.BindKey(glfw.KeyUp, ActionZoomIn)
	im.BindKey(glfw.KeyS, ActionZoomOut)
	im.BindKey(glfw.KeyDown, ActionZoomOut)
	im.BindKey(glfw.KeyA, ActionOrbitLeft)
	im.BindKey(glfw.KeyLeft, ActionOrbitLeft)
	im.BindKey(glfw.KeyD, ActionOrbitRight)
	im.BindKey(glfw.KeyRight, ActionOrbitRight)
	im.BindKey(glfw.KeyQ, ActionOrbitUp)
	im.BindKey(glfw.KeyE, ActionOrbitDown)
	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeyV, ActionToggleProfiling)

	im.BindMouseButton(glfw.MouseButtonLeft, ActionDrag)

	return im
}

// BindKey binds a physical key to a logical action
// Multiple keys can be bound to the same action (e.g., WASD and arrow keys)
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// BindMouseButton binds a mouse button to a logical action
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// HandleKeyEvent processes a key event and updates internal state
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	actions, exists := im.keyToActions[key]
	if !exists {
		return
	}
	im.apply(actions, action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButtonEvent processes a mouse button event and updates internal state
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	actions, exists := im.mouseButtonToActions[button]
	if !exists {
		return
	}
	im.apply(actions, action == glfw.Press)
}

// apply records a press or release for actions. Caller holds mu.
func (im *InputManager) apply(actions []Action, isPressed bool) {
	for _, act := range actions {
		if act < 0 || act >= ActionCount {
			continue
		}
		// Detect edges immediately when event arrives
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !isPressed && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = isPressed
	}
}

// HandleCursorPos records cursor motion. Motion only counts while the drag
// action is held.
func (im *InputManager) HandleCursorPos(x, y float64) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if im.haveCursor && im.currentState[ActionDrag] {
		im.dragX += x - im.cursorX
		im.dragY += y - im.cursorY
	}
	im.cursorX, im.cursorY = x, y
	im.haveCursor = true
}

// HandleScroll records vertical wheel motion; positive is away from the user.
func (im *InputManager) HandleScroll(yoff float64) {
	im.mu.Lock()
	defer im.mu.Unlock()

	im.scroll += yoff
}

// SetCallbacks routes the window's key, mouse button, cursor and scroll
// events to this input manager.
func (im *InputManager) SetCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		im.HandleCursorPos(x, y)
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		im.HandleScroll(yoff)
	})
}

// Deltas converts the held keys and the mouse motion since the previous
// call into camera input for one frame. A positive zoom moves the camera
// away from the origin; rotateX and rotateY are radians. Mouse motion is
// consumed.
func (im *InputManager) Deltas(s config.InputSettings) (zoom, rotateX, rotateY float32) {
	im.mu.Lock()
	defer im.mu.Unlock()

	zoom = axis(im.currentState[ActionZoomOut], im.currentState[ActionZoomIn]) * s.ZoomStep
	zoom -= float32(im.scroll) * s.ScrollZoom

	rotateX = axis(im.currentState[ActionOrbitRight], im.currentState[ActionOrbitLeft]) * s.OrbitStep
	rotateX += float32(im.dragX) * s.MouseSensitivity

	// Screen y grows downwards; dragging up orbits up.
	rotateY = axis(im.currentState[ActionOrbitUp], im.currentState[ActionOrbitDown]) * s.OrbitStep
	rotateY -= float32(im.dragY) * s.MouseSensitivity

	im.dragX, im.dragY, im.scroll = 0, 0, 0
	return zoom, rotateX, rotateY
}

func axis(positive, negative bool) float32 {
	var v float32
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}

// PostUpdate must be called at the end of each frame to reset edge detection
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for i := range ActionCount {
		im.justPressed[i] = false
		im.justReleased[i] = false
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justReleased[action]
}
