package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"litsphere/internal/camera"
	"litsphere/internal/config"
	"litsphere/internal/light"
	"litsphere/internal/logging"
	"litsphere/internal/profiling"
)

var (
	// ErrAllocate wraps failures to create a component.
	ErrAllocate = errors.New("renderer: could not create component")
	// ErrInitialize wraps failures reported by a component's Initialize.
	ErrInitialize = errors.New("renderer: could not initialize component")
	// ErrNotInitialized is returned by Frame before Initialize succeeds or after Shutdown.
	ErrNotInitialized = errors.New("renderer: not initialized")
	// ErrAlreadyInitialized is returned by a second Initialize without Shutdown.
	ErrAlreadyInitialized = errors.New("renderer: already initialized")
	// ErrPartiallyInitialized is returned by Initialize while components from
	// a failed attempt are still held.
	ErrPartiallyInitialized = errors.New("renderer: components left from a failed Initialize; call Shutdown first")

	errNilComponent = errors.New("backend returned nil")
)

const (
	alertTitle = "Error"

	// phaseStep is added to the animation phase every frame; the phase wraps
	// at phaseWrap.
	phaseStep = float32(math.Pi) * 0.01
	phaseWrap = float32(360.0)

	// sceneAlpha is the texture blend passed to the light shader.
	sceneAlpha = float32(1.0)
)

// Renderer owns the device, camera, model, shaders, light and offscreen
// target of the demo scene and draws it twice per frame: once into the
// render texture and once into the back buffer.
//
// A Renderer is driven from the goroutine that owns the GL context and is
// not safe for concurrent use.
type Renderer struct {
	backend  Backend
	notifier Notifier
	settings config.Settings

	device        Device
	camera        *camera.Camera
	model         Model
	lightShader   LightShader
	debugShader   LightShader // reserved for a debug pass; never drawn with
	light         *light.Light
	renderTexture RenderTexture

	// ready is set only when Initialize completes every step.
	ready bool

	// Accumulated orbit angles in radians. zRotation is never advanced.
	xRotation float32
	yRotation float32
	zRotation float32

	// Animation phase and blend handed to the render pipeline each frame.
	rotation float32
	delta    float32
}

// Option configures a Renderer at construction.
type Option func(*Renderer)

// WithNotifier sets who is told about fatal initialization failures.
// The default logs them at error level.
func WithNotifier(n Notifier) Option {
	return func(r *Renderer) {
		r.notifier = n
	}
}

// WithSettings sets the screen, clip plane and asset settings used by
// Initialize. The default is config.Current().
func WithSettings(s config.Settings) Option {
	return func(r *Renderer) {
		r.settings = s
	}
}

// New creates a Renderer that builds its GPU components through backend.
// Nothing is created until Initialize.
func New(backend Backend, opts ...Option) *Renderer {
	r := &Renderer{
		backend:  backend,
		notifier: logNotifier{},
		settings: config.Current(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Initialize creates and initializes every component in order: device,
// camera, model, light shader, debug light shader, light, render texture.
// It stops at the first failure; call Shutdown afterwards to release
// whatever was created.
func (r *Renderer) Initialize(width, height int, window Window) error {
	if r.ready {
		return ErrAlreadyInitialized
	}
	if r.holdsComponents() {
		return ErrPartiallyInitialized
	}

	log := logging.Logger()
	screen := r.settings.Screen
	assets := r.settings.Assets

	r.xRotation = 0
	r.yRotation = 0
	r.zRotation = 0

	device, err := r.backend.NewDevice()
	if err := allocated(device, err); err != nil {
		return allocFailed("device", err)
	}
	r.device = device
	if err := r.device.Initialize(width, height, screen.VSync, window, screen.FullScreen, screen.Depth, screen.Near); err != nil {
		return r.initFailed("device", "Could not initialize the graphics device.", err)
	}
	log.Debug("renderer: device initialized", "width", width, "height", height, "vsync", screen.VSync)

	r.camera = camera.New()
	r.camera.SetPosition(0.0, 0.0, -10.0)

	model, err := r.backend.NewModel()
	if err := allocated(model, err); err != nil {
		return allocFailed("model", err)
	}
	r.model = model
	if err := r.model.Initialize(assets.Model, assets.Texture); err != nil {
		return r.initFailed("model", "Could not initialize the model object.", err)
	}
	log.Debug("renderer: model initialized", "model", assets.Model, "texture", assets.Texture, "indices", r.model.IndexCount())

	shader, err := r.backend.NewLightShader()
	if err := allocated(shader, err); err != nil {
		return allocFailed("light shader", err)
	}
	r.lightShader = shader
	if err := r.lightShader.Initialize(assets.VertexShader, assets.FragmentShader); err != nil {
		return r.initFailed("light shader", "Could not initialize the light shader object.", err)
	}

	debugShader, err := r.backend.NewLightShader()
	if err := allocated(debugShader, err); err != nil {
		return allocFailed("debug light shader", err)
	}
	r.debugShader = debugShader
	if err := r.debugShader.Initialize(assets.VertexShader, assets.FragmentShader); err != nil {
		return r.initFailed("debug light shader", "Could not initialize the light shader object.", err)
	}
	log.Debug("renderer: light shaders initialized", "vertex", assets.VertexShader, "fragment", assets.FragmentShader)

	r.light = light.New()
	r.light.SetAmbientColor(0.15, 0.15, 0.15, 1.0)
	r.light.SetDiffuseColor(1.0, 1.0, 1.0, 0.5)
	r.light.SetDirection(-1.0, -0.5, 1.0)
	r.light.SetSpecularColor(1.0, 1.0, 1.0, 1.0)
	r.light.SetSpecularPower(10.0)

	renderTexture, err := r.backend.NewRenderTexture()
	if err := allocated(renderTexture, err); err != nil {
		return allocFailed("render texture", err)
	}
	r.renderTexture = renderTexture
	if err := r.renderTexture.Initialize(width, height); err != nil {
		// No alert: only device, model and shader failures are reported to the user.
		return r.initFailed("render texture", "", err)
	}

	r.ready = true
	log.Info("renderer: initialized", "width", width, "height", height)
	return nil
}

// Shutdown releases every component that exists, in a fixed order, and
// clears the references. It is safe after a failed Initialize and safe to
// call more than once.
func (r *Renderer) Shutdown() {
	log := logging.Logger()
	r.ready = false

	if r.renderTexture != nil {
		r.renderTexture.Shutdown()
		r.renderTexture = nil
		log.Debug("renderer: released", "component", "render texture")
	}

	if r.light != nil {
		r.light = nil
		log.Debug("renderer: released", "component", "light")
	}

	if r.lightShader != nil {
		r.lightShader.Shutdown()
		r.lightShader = nil
		log.Debug("renderer: released", "component", "light shader")
	}

	if r.debugShader != nil {
		r.debugShader.Shutdown()
		r.debugShader = nil
		log.Debug("renderer: released", "component", "debug light shader")
	}

	if r.model != nil {
		r.model.Shutdown()
		r.model = nil
		log.Debug("renderer: released", "component", "model")
	}

	if r.camera != nil {
		r.camera = nil
		log.Debug("renderer: released", "component", "camera")
	}

	if r.device != nil {
		r.device.Shutdown()
		r.device = nil
		log.Debug("renderer: released", "component", "device")
	}
}

// Initialized reports whether the last Initialize succeeded and no
// Shutdown has run since.
func (r *Renderer) Initialized() bool {
	return r.ready
}

func (r *Renderer) holdsComponents() bool {
	return r.device != nil || r.camera != nil || r.model != nil ||
		r.lightShader != nil || r.debugShader != nil ||
		r.light != nil || r.renderTexture != nil
}

// Frame advances the animation phase, renders both passes and then moves
// the camera by the frame's zoom and orbit deltas. A render error aborts
// the frame before the camera moves.
func (r *Renderer) Frame(zoom, rotateX, rotateY float32) error {
	defer profiling.Track("renderer.Frame")()

	if !r.Initialized() {
		return ErrNotInitialized
	}

	r.rotation += phaseStep
	if r.rotation > phaseWrap {
		r.rotation -= phaseWrap
	}

	// Blend between animation states; pinned until the scene animates.
	r.delta = 1.0

	if err := r.render(r.rotation, r.delta); err != nil {
		return err
	}

	r.ProcessCameraMovement(zoom, rotateX, rotateY)
	return nil
}

// render draws the scene into the render texture and then into the back
// buffer. The phase and blend arguments are the animation hook; the scene
// itself is static.
func (r *Renderer) render(rotation, delta float32) error {
	if err := r.renderToTexture(); err != nil {
		return fmt.Errorf("offscreen pass: %w", err)
	}

	r.device.BeginScene(0.0, 0.0, 0.0, 1.0)

	if err := r.renderScene(); err != nil {
		return fmt.Errorf("back buffer pass: %w", err)
	}

	r.device.EndScene()
	return nil
}

// renderToTexture redirects drawing into the render texture, clears it to
// blue so the offscreen image is recognizable, draws the scene and restores
// the back buffer.
func (r *Renderer) renderToTexture() error {
	defer profiling.Track("renderer.RenderToTexture")()

	r.renderTexture.SetRenderTarget()
	r.renderTexture.ClearRenderTarget(0.0, 0.0, 1.0, 1.0)

	if err := r.renderScene(); err != nil {
		return err
	}

	r.device.SetBackBufferRenderTarget()
	return nil
}

// sceneMatrices are the transforms fetched for one draw.
type sceneMatrices struct {
	world      mgl32.Mat4
	view       mgl32.Mat4
	projection mgl32.Mat4
	ortho      mgl32.Mat4 // for 2D overlays; the scene has none yet
}

// renderScene draws the model into whatever target is currently bound.
func (r *Renderer) renderScene() error {
	defer profiling.Track("renderer.RenderScene")()

	r.camera.Render()

	m := sceneMatrices{
		world:      r.device.WorldMatrix(),
		view:       r.camera.ViewMatrix(),
		projection: r.device.ProjectionMatrix(),
		ortho:      r.device.OrthoMatrix(),
	}

	r.model.Render()

	err := r.lightShader.Render(ShaderParams{
		IndexCount:     r.model.IndexCount(),
		World:          m.world,
		View:           m.view,
		Projection:     m.projection,
		LightDirection: r.light.Direction(),
		DiffuseColor:   r.light.DiffuseColor(),
		AmbientColor:   r.light.AmbientColor(),
		Alpha:          sceneAlpha,
		Texture:        r.model.Texture(),
		CameraPosition: r.camera.Position(),
		SpecularColor:  r.light.SpecularColor(),
		SpecularPower:  r.light.SpecularPower(),
	})
	if err != nil {
		return fmt.Errorf("light shader: %w", err)
	}
	return nil
}

// Camera returns the scene camera, or nil when not initialized.
func (r *Renderer) Camera() *camera.Camera { return r.camera }

// Light returns the scene light, or nil when not initialized.
func (r *Renderer) Light() *light.Light { return r.light }

// RenderTexture returns the offscreen target, or nil when not initialized.
func (r *Renderer) RenderTexture() RenderTexture { return r.renderTexture }

// Phase returns the animation phase after the last Frame.
func (r *Renderer) Phase() float32 { return r.rotation }

// Blend returns the blend value set by the last Frame.
func (r *Renderer) Blend() float32 { return r.delta }

// Rotations returns the accumulated orbit angles in radians.
func (r *Renderer) Rotations() (x, y, z float32) {
	return r.xRotation, r.yRotation, r.zRotation
}

func (r *Renderer) initFailed(component, alert string, err error) error {
	if alert != "" {
		r.notifier.Alert(alertTitle, alert)
	}
	logging.Logger().Error("renderer: initialization failed", "component", component, "err", err)
	return fmt.Errorf("%w: %s: %w", ErrInitialize, component, err)
}

func allocFailed(component string, err error) error {
	logging.Logger().Error("renderer: could not create component", "component", component, "err", err)
	return fmt.Errorf("%w: %s: %w", ErrAllocate, component, err)
}

// allocated folds a nil component into a construction error.
func allocated[T any](component T, err error) error {
	if err != nil {
		return err
	}
	if any(component) == nil {
		return errNilComponent
	}
	return nil
}

// logNotifier is the default Notifier.
type logNotifier struct{}

func (logNotifier) Alert(title, message string) {
	logging.Logger().Error(message, "title", title)
}
