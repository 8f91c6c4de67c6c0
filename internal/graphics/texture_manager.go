package graphics

import (
	"fmt"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type textureEntry struct {
	id   uint32
	refs int
}

// TextureCache shares GL textures between users of the same file and
// deletes a texture when its last user releases it.
type TextureCache struct {
	mu      sync.Mutex
	entries map[string]*textureEntry

	load   func(path string) (uint32, error)
	delete func(id uint32)
}

// NewTextureCache returns a cache that loads with load and frees with del.
func NewTextureCache(load func(path string) (uint32, error), del func(id uint32)) *TextureCache {
	return &TextureCache{
		entries: make(map[string]*textureEntry),
		load:    load,
		delete:  del,
	}
}

// Acquire returns the texture for path, loading it on first use.
// Every successful Acquire must be paired with a Release.
func (c *TextureCache) Acquire(path string) (uint32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[path]; ok {
		e.refs++
		return e.id, nil
	}

	id, err := c.load(path)
	if err != nil {
		return 0, err
	}
	c.entries[path] = &textureEntry{id: id, refs: 1}
	return id, nil
}

// Release drops one reference to path's texture.
func (c *TextureCache) Release(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[path]
	if !ok {
		return fmt.Errorf("texture %s is not loaded", path)
	}
	e.refs--
	if e.refs == 0 {
		c.delete(e.id)
		delete(c.entries, path)
	}
	return nil
}

// Refs returns how many users hold path's texture.
func (c *TextureCache) Refs(path string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[path]; ok {
		return e.refs
	}
	return 0
}

var textures = NewTextureCache(
	func(path string) (uint32, error) {
		id, _, _, err := LoadTexture(path)
		return id, err
	},
	func(id uint32) {
		gl.DeleteTextures(1, &id)
	},
)

// GetTexture returns the shared GL texture for path, uploading it on first use.
func GetTexture(path string) (uint32, error) {
	return textures.Acquire(path)
}

// ReleaseTexture drops a reference taken by GetTexture.
func ReleaseTexture(path string) error {
	return textures.Release(path)
}
