package graphics

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"litsphere/internal/logging"
	"litsphere/pkg/meshfile"
)

// Model is a textured triangle list uploaded from a model file.
type Model struct {
	loader *meshfile.Loader

	vao uint32
	vbo uint32
	ebo uint32

	modelPath   string
	indexCount  int32
	texture     uint32
	texturePath string
}

// NewModel returns an uninitialized model that reads geometry through loader.
func NewModel(loader *meshfile.Loader) *Model {
	return &Model{loader: loader}
}

// Initialize uploads the mesh at modelPath and the texture at texturePath.
// Both are resolved against the loader's assets directory.
func (m *Model) Initialize(modelPath, texturePath string) error {
	mesh, err := m.loader.Load(modelPath)
	if err != nil {
		return err
	}
	m.modelPath = modelPath
	if mesh.IndexCount() == 0 {
		return errors.New("model has no vertices")
	}

	m.setupBuffers(mesh)
	m.indexCount = int32(mesh.IndexCount())
	if err := checkGL("model upload"); err != nil {
		return err
	}

	texturePath = m.loader.Resolve(texturePath)
	tex, err := GetTexture(texturePath)
	if err != nil {
		return fmt.Errorf("could not load model texture: %w", err)
	}
	m.texture = tex
	m.texturePath = texturePath
	return nil
}

// setupBuffers interleaves position, texcoord and normal into one VBO with
// a matching index buffer.
func (m *Model) setupBuffers(mesh *meshfile.Mesh) {
	vertices := mesh.Interleaved()
	const stride = meshfile.FloatsPerVertex * 4

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	// position
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	// texcoord
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)
	// normal
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, stride, 5*4)

	gl.BindVertexArray(0)
}

// Render binds the model's vertex array for the next draw.
func (m *Model) Render() {
	gl.BindVertexArray(m.vao)
}

func (m *Model) IndexCount() int32 { return m.indexCount }
func (m *Model) Texture() uint32   { return m.texture }

// Shutdown deletes the buffers, releases the texture and drops the parsed
// mesh from the loader cache.
func (m *Model) Shutdown() {
	if m.modelPath != "" {
		m.loader.Evict(m.modelPath)
		m.modelPath = ""
	}
	if m.texturePath != "" {
		if err := ReleaseTexture(m.texturePath); err != nil {
			logging.Logger().Warn("graphics: releasing model texture", "err", err)
		}
		m.texturePath = ""
		m.texture = 0
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	m.indexCount = 0
}
