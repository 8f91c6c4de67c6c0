package graphics

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"litsphere/internal/graphics/renderer"
)

// Uniforms the light program must expose.
var lightUniforms = []string{
	"world",
	"view",
	"projection",
	"lightDirection",
	"diffuseColor",
	"ambientColor",
	"alpha",
	"cameraPosition",
	"specularColor",
	"specularPower",
	"shaderTexture",
}

// LightShader draws indexed geometry with a texture, ambient and diffuse
// directional light and a specular highlight.
type LightShader struct {
	shader *Shader
}

// NewLightShader returns an uninitialized light shader.
func NewLightShader() *LightShader {
	return &LightShader{}
}

// Initialize compiles the program from the two GLSL files.
func (l *LightShader) Initialize(vertexPath, fragmentPath string) error {
	shader, err := NewShader(vertexPath, fragmentPath)
	if err != nil {
		return err
	}

	var missing []error
	for _, name := range lightUniforms {
		if !shader.HasUniform(name) {
			missing = append(missing, fmt.Errorf("uniform %q not found", name))
		}
	}
	if err := errors.Join(missing...); err != nil {
		shader.Delete()
		return fmt.Errorf("light program %s: %w", fragmentPath, err)
	}

	l.shader = shader
	return nil
}

// Render uploads params and draws params.IndexCount indices from the bound
// vertex array.
func (l *LightShader) Render(params renderer.ShaderParams) error {
	if l.shader == nil {
		return errors.New("light shader is not initialized")
	}
	if params.IndexCount <= 0 {
		return fmt.Errorf("invalid index count %d", params.IndexCount)
	}
	if params.Texture == 0 {
		return errors.New("no texture to sample")
	}

	s := l.shader
	s.Use()

	s.SetMatrix4("world", params.World)
	s.SetMatrix4("view", params.View)
	s.SetMatrix4("projection", params.Projection)
	s.SetVector3("cameraPosition", params.CameraPosition)

	s.SetVector4("ambientColor", params.AmbientColor)
	s.SetVector4("diffuseColor", params.DiffuseColor)
	s.SetVector3("lightDirection", params.LightDirection)
	s.SetVector4("specularColor", params.SpecularColor)
	s.SetFloat("specularPower", params.SpecularPower)
	s.SetFloat("alpha", params.Alpha)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, params.Texture)
	s.SetInt("shaderTexture", 0)

	gl.DrawElements(gl.TRIANGLES, params.IndexCount, gl.UNSIGNED_INT, nil)

	return checkGL("light draw")
}

// Shutdown deletes the program.
func (l *LightShader) Shutdown() {
	if l.shader != nil {
		l.shader.Delete()
		l.shader = nil
	}
}
