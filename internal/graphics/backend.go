package graphics

import (
	"litsphere/internal/graphics/renderer"
	"litsphere/pkg/meshfile"
)

// Backend builds the OpenGL implementations of the renderer's components.
type Backend struct {
	meshes *meshfile.Loader
}

// NewBackend returns a backend resolving model and texture files relative
// to assetsPath. An empty assetsPath uses paths as given.
func NewBackend(assetsPath string) *Backend {
	return &Backend{meshes: meshfile.NewLoader(assetsPath)}
}

func (b *Backend) NewDevice() (renderer.Device, error) {
	return NewDevice(), nil
}

func (b *Backend) NewModel() (renderer.Model, error) {
	return NewModel(b.meshes), nil
}

func (b *Backend) NewLightShader() (renderer.LightShader, error) {
	return NewLightShader(), nil
}

func (b *Backend) NewRenderTexture() (renderer.RenderTexture, error) {
	return NewRenderTexture(), nil
}

var _ renderer.Backend = (*Backend)(nil)
