package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// RenderTexture is an offscreen framebuffer with a sampleable color
// texture and a depth/stencil renderbuffer.
type RenderTexture struct {
	frameBuffer  uint32
	texture      uint32
	renderBuffer uint32

	width, height int32
}

// NewRenderTexture returns an uninitialized render texture.
func NewRenderTexture() *RenderTexture {
	return &RenderTexture{}
}

// Initialize allocates the attachments at width x height and checks that
// the framebuffer is complete.
func (t *RenderTexture) Initialize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid render texture size %dx%d", width, height)
	}
	t.width, t.height = int32(width), int32(height)

	gl.GenFramebuffers(1, &t.frameBuffer)
	gl.GenTextures(1, &t.texture)
	gl.GenRenderbuffers(1, &t.renderBuffer)

	// color attachment
	gl.BindTexture(gl.TEXTURE_2D, t.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, t.width, t.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	gl.BindFramebuffer(gl.FRAMEBUFFER, t.frameBuffer)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.texture, 0)

	// depth and stencil
	gl.BindRenderbuffer(gl.RENDERBUFFER, t.renderBuffer)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, t.width, t.height)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, t.renderBuffer)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("framebuffer incomplete: status 0x%04X", status)
	}
	return checkGL("render texture setup")
}

// SetRenderTarget redirects drawing into the texture.
func (t *RenderTexture) SetRenderTarget() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.frameBuffer)
	gl.Viewport(0, 0, t.width, t.height)
}

// ClearRenderTarget clears color and depth of the bound texture target.
func (t *RenderTexture) ClearRenderTarget(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Texture returns the color attachment.
func (t *RenderTexture) Texture() uint32 {
	return t.texture
}

// Shutdown deletes the framebuffer and its attachments.
func (t *RenderTexture) Shutdown() {
	if t.renderBuffer != 0 {
		gl.DeleteRenderbuffers(1, &t.renderBuffer)
		t.renderBuffer = 0
	}
	if t.texture != 0 {
		gl.DeleteTextures(1, &t.texture)
		t.texture = 0
	}
	if t.frameBuffer != 0 {
		gl.DeleteFramebuffers(1, &t.frameBuffer)
		t.frameBuffer = 0
	}
}
