package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera holds a world position and a pitch/yaw/roll orientation in degrees.
// The view matrix is only rebuilt when Render is called.
type Camera struct {
	position mgl32.Vec3
	rotation mgl32.Vec3
	view     mgl32.Mat4
}

// New creates a camera at the origin looking down +Z.
func New() *Camera {
	return &Camera{view: mgl32.Ident4()}
}

// SetPosition moves the camera.
func (c *Camera) SetPosition(x, y, z float32) {
	c.position = mgl32.Vec3{x, y, z}
}

// SetRotation sets pitch (x), yaw (y) and roll (z) in degrees.
func (c *Camera) SetRotation(x, y, z float32) {
	c.rotation = mgl32.Vec3{x, y, z}
}

// Position returns the world position.
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// Rotation returns pitch, yaw and roll in degrees.
func (c *Camera) Rotation() mgl32.Vec3 {
	return c.rotation
}

// Render rebuilds the view matrix from the current position and rotation.
// Roll is applied first, then pitch, then yaw; the rotated +Z axis becomes
// the look direction.
func (c *Camera) Render() {
	pitch := mgl32.DegToRad(c.rotation.X())
	yaw := mgl32.DegToRad(c.rotation.Y())
	roll := mgl32.DegToRad(c.rotation.Z())

	rot := mgl32.HomogRotate3DY(yaw).Mul4(mgl32.HomogRotate3DX(pitch)).Mul4(mgl32.HomogRotate3DZ(roll))

	forward := rot.Mul4x1(mgl32.Vec4{0, 0, 1, 0}).Vec3()
	up := rot.Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3()

	c.view = mgl32.LookAtV(c.position, c.position.Add(forward), up)
}

// ViewMatrix returns the matrix computed by the last Render call.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return c.view
}
