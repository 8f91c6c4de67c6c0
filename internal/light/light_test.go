package light

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewLightIsZero(t *testing.T) {
	l := New()
	if l.AmbientColor() != (mgl32.Vec4{}) || l.DiffuseColor() != (mgl32.Vec4{}) || l.SpecularColor() != (mgl32.Vec4{}) {
		t.Error("new light should have zero colors")
	}
	if l.SpecularPower() != 0 {
		t.Errorf("SpecularPower() = %v, want 0", l.SpecularPower())
	}
}

func TestSetters(t *testing.T) {
	l := New()
	l.SetAmbientColor(0.15, 0.15, 0.15, 1)
	l.SetDiffuseColor(1, 1, 1, 0.5)
	l.SetSpecularColor(1, 0.5, 0.25, 1)
	l.SetDirection(-1, -0.5, 1)
	l.SetSpecularPower(10)

	if got, want := l.AmbientColor(), (mgl32.Vec4{0.15, 0.15, 0.15, 1}); got != want {
		t.Errorf("AmbientColor() = %v, want %v", got, want)
	}
	if got, want := l.DiffuseColor(), (mgl32.Vec4{1, 1, 1, 0.5}); got != want {
		t.Errorf("DiffuseColor() = %v, want %v", got, want)
	}
	if got, want := l.SpecularColor(), (mgl32.Vec4{1, 0.5, 0.25, 1}); got != want {
		t.Errorf("SpecularColor() = %v, want %v", got, want)
	}
	// Direction is stored verbatim, not normalized.
	if got, want := l.Direction(), (mgl32.Vec3{-1, -0.5, 1}); got != want {
		t.Errorf("Direction() = %v, want %v", got, want)
	}
	if l.SpecularPower() != 10 {
		t.Errorf("SpecularPower() = %v, want 10", l.SpecularPower())
	}
}
