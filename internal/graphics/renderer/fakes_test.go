package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// recorder collects collaborator calls in order.
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) reset() { r.calls = nil }

type deviceInit struct {
	width, height     int
	vsync, fullScreen bool
	window            Window
	depth, near       float32
}

type fakeDevice struct {
	rec     *recorder
	initErr error
	init    deviceInit
}

func (d *fakeDevice) Initialize(width, height int, vsync bool, window Window, fullScreen bool, screenDepth, screenNear float32) error {
	d.rec.add("device.Initialize")
	d.init = deviceInit{width, height, vsync, fullScreen, window, screenDepth, screenNear}
	return d.initErr
}

func (d *fakeDevice) BeginScene(r, g, b, a float32) {
	d.rec.add("device.BeginScene(%v,%v,%v,%v)", r, g, b, a)
}

func (d *fakeDevice) EndScene()                 { d.rec.add("device.EndScene") }
func (d *fakeDevice) SetBackBufferRenderTarget() { d.rec.add("device.SetBackBufferRenderTarget") }
func (d *fakeDevice) WorldMatrix() mgl32.Mat4    { return mgl32.Translate3D(1, 2, 3) }
func (d *fakeDevice) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(45), 1.5, 0.1, 1000)
}
func (d *fakeDevice) OrthoMatrix() mgl32.Mat4 { return mgl32.Ortho(-450, 450, -300, 300, 0.1, 1000) }
func (d *fakeDevice) Shutdown()               { d.rec.add("device.Shutdown") }

type fakeModel struct {
	rec         *recorder
	initErr     error
	modelPath   string
	texturePath string
}

func (m *fakeModel) Initialize(modelPath, texturePath string) error {
	m.rec.add("model.Initialize")
	m.modelPath, m.texturePath = modelPath, texturePath
	return m.initErr
}

func (m *fakeModel) Render()           { m.rec.add("model.Render") }
func (m *fakeModel) IndexCount() int32 { return 36 }
func (m *fakeModel) Texture() uint32   { return 7 }
func (m *fakeModel) Shutdown()         { m.rec.add("model.Shutdown") }

type fakeShader struct {
	rec     *recorder
	name    string
	initErr error

	// failOn makes the n-th Render call (1-based) fail.
	failOn  int
	renders int
	params  []ShaderParams
}

func (s *fakeShader) Initialize(vertexPath, fragmentPath string) error {
	s.rec.add("%s.Initialize", s.name)
	return s.initErr
}

func (s *fakeShader) Render(params ShaderParams) error {
	s.rec.add("%s.Render", s.name)
	s.renders++
	s.params = append(s.params, params)
	if s.renders == s.failOn {
		return errDraw
	}
	return nil
}

func (s *fakeShader) Shutdown() { s.rec.add("%s.Shutdown", s.name) }

type fakeRenderTexture struct {
	rec     *recorder
	initErr error
}

func (t *fakeRenderTexture) Initialize(width, height int) error {
	t.rec.add("rendertexture.Initialize(%d,%d)", width, height)
	return t.initErr
}

func (t *fakeRenderTexture) SetRenderTarget() { t.rec.add("rendertexture.SetRenderTarget") }

func (t *fakeRenderTexture) ClearRenderTarget(r, g, b, a float32) {
	t.rec.add("rendertexture.ClearRenderTarget(%v,%v,%v,%v)", r, g, b, a)
}

func (t *fakeRenderTexture) Texture() uint32 { return 9 }
func (t *fakeRenderTexture) Shutdown()       { t.rec.add("rendertexture.Shutdown") }

var (
	errDraw  = errors.New("draw failed")
	errSetup = errors.New("setup failed")
	errAlloc = errors.New("out of memory")
)

// fakeBackend hands out one of each fake; the first light shader is the
// primary one and the second the debug one, alternating across attempts.
type fakeBackend struct {
	rec *recorder

	device        *fakeDevice
	model         *fakeModel
	shader        *fakeShader
	debugShader   *fakeShader
	renderTexture *fakeRenderTexture

	shadersMade int

	// allocErr fails the named factory: device, model, shader, debug,
	// rendertexture.
	allocErr string
	// allocNil makes the named factory return nil without an error.
	allocNil string
}

func newFakeBackend() *fakeBackend {
	rec := &recorder{}
	return &fakeBackend{
		rec:           rec,
		device:        &fakeDevice{rec: rec},
		model:         &fakeModel{rec: rec},
		shader:        &fakeShader{rec: rec, name: "shader"},
		debugShader:   &fakeShader{rec: rec, name: "debug"},
		renderTexture: &fakeRenderTexture{rec: rec},
	}
}

func (b *fakeBackend) NewDevice() (Device, error) {
	switch {
	case b.allocErr == "device":
		return nil, errAlloc
	case b.allocNil == "device":
		return nil, nil
	}
	return b.device, nil
}

func (b *fakeBackend) NewModel() (Model, error) {
	switch {
	case b.allocErr == "model":
		return nil, errAlloc
	case b.allocNil == "model":
		return nil, nil
	}
	return b.model, nil
}

func (b *fakeBackend) NewLightShader() (LightShader, error) {
	b.shadersMade++
	name, s := "shader", b.shader
	if b.shadersMade%2 == 0 {
		name, s = "debug", b.debugShader
	}
	switch {
	case b.allocErr == name:
		return nil, errAlloc
	case b.allocNil == name:
		return nil, nil
	}
	return s, nil
}

func (b *fakeBackend) NewRenderTexture() (RenderTexture, error) {
	switch {
	case b.allocErr == "rendertexture":
		return nil, errAlloc
	case b.allocNil == "rendertexture":
		return nil, nil
	}
	return b.renderTexture, nil
}

type alert struct {
	title, message string
}

type fakeNotifier struct {
	alerts []alert
}

func (n *fakeNotifier) Alert(title, message string) {
	n.alerts = append(n.alerts, alert{title, message})
}

type fakeWindow struct{}

func (fakeWindow) SwapBuffers() {}
