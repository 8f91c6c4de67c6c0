package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Window is the presentation surface the device swaps to.
// *glfw.Window satisfies it.
type Window interface {
	SwapBuffers()
}

// Device owns the GL context state for the back buffer and the
// projection matrices.
type Device interface {
	Initialize(width, height int, vsync bool, window Window, fullScreen bool, screenDepth, screenNear float32) error
	// BeginScene clears the back buffer to the given color.
	BeginScene(r, g, b, a float32)
	// EndScene presents the back buffer.
	EndScene()
	// SetBackBufferRenderTarget makes the back buffer the active target again.
	SetBackBufferRenderTarget()
	WorldMatrix() mgl32.Mat4
	ProjectionMatrix() mgl32.Mat4
	OrthoMatrix() mgl32.Mat4
	Shutdown()
}

// Model is a drawable mesh with one texture.
type Model interface {
	Initialize(modelPath, texturePath string) error
	// Render binds the geometry for the next draw call.
	Render()
	IndexCount() int32
	Texture() uint32
	Shutdown()
}

// LightShader draws the bound geometry with directional and specular lighting.
type LightShader interface {
	Initialize(vertexPath, fragmentPath string) error
	Render(params ShaderParams) error
	Shutdown()
}

// RenderTexture is an offscreen color and depth target usable in place of
// the back buffer.
type RenderTexture interface {
	Initialize(width, height int) error
	SetRenderTarget()
	ClearRenderTarget(r, g, b, a float32)
	// Texture returns the color attachment for sampling.
	Texture() uint32
	Shutdown()
}

// Backend creates the GPU collaborators. A constructor error means the
// component could not be created at all, before any initialization.
type Backend interface {
	NewDevice() (Device, error)
	NewModel() (Model, error)
	NewLightShader() (LightShader, error)
	NewRenderTexture() (RenderTexture, error)
}

// Notifier reports fatal initialization failures to the user.
type Notifier interface {
	Alert(title, message string)
}

// ShaderParams is everything the light shader needs for one draw call.
type ShaderParams struct {
	IndexCount int32

	World      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4

	LightDirection mgl32.Vec3
	DiffuseColor   mgl32.Vec4
	AmbientColor   mgl32.Vec4
	// Alpha blends the sampled texture; the scene always draws fully opaque.
	Alpha   float32
	Texture uint32

	// CameraPosition feeds the specular view vector.
	CameraPosition mgl32.Vec3
	SpecularColor  mgl32.Vec4
	SpecularPower  float32
}
