package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// cameraBound limits every axis of the zoomed camera position.
	cameraBound = float32(20.0)

	radToDeg = float32(57.2958)
)

// ProcessCameraMovement zooms the camera along its line to the origin and
// orbits it by the accumulated angles. zoom scales the distance
// proportionally; rotateX and rotateY are added to the orbit angles in
// radians. The camera ends up facing along its yaw only.
//
// It does nothing before Initialize.
func (r *Renderer) ProcessCameraMovement(zoom, rotateX, rotateY float32) {
	if r.camera == nil {
		return
	}

	c := zoomCandidate(r.camera.Position(), zoom)

	r.xRotation += rotateX
	r.yRotation += rotateY

	xz, yr := orbitRadii(c)
	signs := axisSigns(c)

	// Only the z sign is applied; x and y follow the sine of the angle.
	x := sin32(r.xRotation) * xz
	y := sin32(r.yRotation) * yr
	z := cos32(r.xRotation) * xz * signs.Z()
	r.camera.SetPosition(x, y, z)

	r.camera.SetRotation(0.0, yawDegrees(r.camera.Position()), 0.0)
}

// zoomCandidate moves p away from the origin by |p|*zoom times p and clamps
// the result to the camera bounds.
func zoomCandidate(p mgl32.Vec3, zoom float32) mgl32.Vec3 {
	length := float32(math.Sqrt(float64(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])))
	dist := length * zoom

	var delta mgl32.Vec3
	if dist != 0 {
		delta = mgl32.Vec3{p[0] * dist, p[1] * dist, p[2] * dist}
	}

	c := mgl32.Vec3{p[0] + delta[0], p[1] + delta[1], p[2] + delta[2]}
	for i := range c {
		c[i] = mgl32.Clamp(c[i], -cameraBound, cameraBound)
	}
	return c
}

// orbitRadii returns the radius of c projected on the XZ plane and the
// radius of that projection combined with c's height.
func orbitRadii(c mgl32.Vec3) (xz, yr float32) {
	xz = float32(math.Sqrt(float64(c[0]*c[0] + c[2]*c[2])))
	yr = float32(math.Sqrt(float64(xz*xz + c[1]*c[1])))
	return xz, yr
}

// axisSigns is -1 for each negative axis of c and 1 otherwise.
func axisSigns(c mgl32.Vec3) mgl32.Vec3 {
	s := mgl32.Vec3{1, 1, 1}
	for i := range c {
		if c[i] < 0 {
			s[i] = -1
		}
	}
	return s
}

// yawDegrees is the heading of pos around the Y axis. z == 0 follows IEEE
// division.
func yawDegrees(pos mgl32.Vec3) float32 {
	return float32(math.Atan(float64(pos[0]/pos[2]))) * radToDeg
}

func sin32(a float32) float32 { return float32(math.Sin(float64(a))) }
func cos32(a float32) float32 { return float32(math.Cos(float64(a))) }
