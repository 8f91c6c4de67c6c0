package light

import "github.com/go-gl/mathgl/mgl32"

// Light describes a single directional light with a Phong specular term.
// It is plain data: the shader reads it, nothing else acts on it.
type Light struct {
	ambient       mgl32.Vec4
	diffuse       mgl32.Vec4
	specular      mgl32.Vec4
	direction     mgl32.Vec3
	specularPower float32
}

// New creates a light with every parameter zeroed.
func New() *Light {
	return &Light{}
}

func (l *Light) SetAmbientColor(r, g, b, a float32) {
	l.ambient = mgl32.Vec4{r, g, b, a}
}

func (l *Light) SetDiffuseColor(r, g, b, a float32) {
	l.diffuse = mgl32.Vec4{r, g, b, a}
}

func (l *Light) SetSpecularColor(r, g, b, a float32) {
	l.specular = mgl32.Vec4{r, g, b, a}
}

// SetDirection stores the direction as given. The shader normalizes it.
func (l *Light) SetDirection(x, y, z float32) {
	l.direction = mgl32.Vec3{x, y, z}
}

func (l *Light) SetSpecularPower(power float32) {
	l.specularPower = power
}

func (l *Light) AmbientColor() mgl32.Vec4  { return l.ambient }
func (l *Light) DiffuseColor() mgl32.Vec4  { return l.diffuse }
func (l *Light) SpecularColor() mgl32.Vec4 { return l.specular }
func (l *Light) Direction() mgl32.Vec3     { return l.direction }
func (l *Light) SpecularPower() float32    { return l.specularPower }
