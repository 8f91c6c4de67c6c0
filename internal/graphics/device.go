package graphics

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"litsphere/internal/graphics/renderer"
	"litsphere/internal/logging"
)

const fieldOfView = float32(math.Pi) / 4.0

// Device manages the default framebuffer of the current GL context and the
// projection matrices for its size.
type Device struct {
	window renderer.Window

	width, height int32
	vsync         bool

	world      mgl32.Mat4
	projection mgl32.Mat4
	ortho      mgl32.Mat4
}

// NewDevice returns an uninitialized device.
func NewDevice() *Device {
	return &Device{}
}

// Initialize sets up depth testing, culling and the viewport for a
// width x height back buffer, and builds the projection matrices with the
// given clip planes. The window's GL context must be current.
func (d *Device) Initialize(width, height int, vsync bool, window renderer.Window, fullScreen bool, screenDepth, screenNear float32) error {
	if window == nil {
		return errors.New("device needs a window")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid back buffer size %dx%d", width, height)
	}

	d.window = window
	d.width, d.height = int32(width), int32(height)
	d.vsync = vsync

	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	// Model files wind front faces clockwise for a left-handed view; the
	// right-handed view matrix mirrors them to counter-clockwise.
	gl.Enable(gl.CULL_FACE)
	gl.FrontFace(gl.CCW)
	gl.CullFace(gl.BACK)

	gl.Viewport(0, 0, d.width, d.height)

	aspect := float32(width) / float32(height)
	d.projection = mgl32.Perspective(fieldOfView, aspect, screenNear, screenDepth)
	d.world = mgl32.Ident4()
	d.ortho = mgl32.Ortho(-float32(width)/2, float32(width)/2, -float32(height)/2, float32(height)/2, screenNear, screenDepth)

	if err := checkGL("device setup"); err != nil {
		return err
	}

	logging.Logger().Info("graphics: device ready",
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"fullscreen", fullScreen,
	)
	return nil
}

// BeginScene clears the back buffer's color and depth.
func (d *Device) BeginScene(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// EndScene presents the back buffer. With vsync on the swap waits for the
// display refresh.
func (d *Device) EndScene() {
	if d.window != nil {
		d.window.SwapBuffers()
	}
}

// SetBackBufferRenderTarget binds the default framebuffer and restores its viewport.
func (d *Device) SetBackBufferRenderTarget() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, d.width, d.height)
}

func (d *Device) WorldMatrix() mgl32.Mat4      { return d.world }
func (d *Device) ProjectionMatrix() mgl32.Mat4 { return d.projection }
func (d *Device) OrthoMatrix() mgl32.Mat4      { return d.ortho }

// Shutdown drops the window reference. The context itself belongs to the window.
func (d *Device) Shutdown() {
	d.window = nil
}
