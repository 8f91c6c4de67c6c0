package graphics

import (
	"errors"
	"testing"
)

type fakeTextures struct {
	next    uint32
	loads   map[string]int
	deleted []uint32
	fail    map[string]error
}

func newFakeTextures() *fakeTextures {
	return &fakeTextures{next: 1, loads: map[string]int{}, fail: map[string]error{}}
}

func (f *fakeTextures) cache() *TextureCache {
	return NewTextureCache(
		func(path string) (uint32, error) {
			if err := f.fail[path]; err != nil {
				return 0, err
			}
			f.loads[path]++
			id := f.next
			f.next++
			return id, nil
		},
		func(id uint32) { f.deleted = append(f.deleted, id) },
	)
}

func TestTextureCacheSharesTextures(t *testing.T) {
	f := newFakeTextures()
	c := f.cache()

	a, err := c.Acquire("seafloor.bmp")
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	b, err := c.Acquire("seafloor.bmp")
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if a != b {
		t.Errorf("same path gave textures %d and %d", a, b)
	}
	if f.loads["seafloor.bmp"] != 1 {
		t.Errorf("loaded %d times, want 1", f.loads["seafloor.bmp"])
	}
	if got := c.Refs("seafloor.bmp"); got != 2 {
		t.Errorf("Refs = %d, want 2", got)
	}

	other, _ := c.Acquire("stone.png")
	if other == a {
		t.Error("different paths share a texture")
	}
}

func TestTextureCacheReleaseDeletesLastReference(t *testing.T) {
	f := newFakeTextures()
	c := f.cache()

	id, _ := c.Acquire("seafloor.bmp")
	c.Acquire("seafloor.bmp")

	if err := c.Release("seafloor.bmp"); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if len(f.deleted) != 0 {
		t.Fatalf("deleted %v while still referenced", f.deleted)
	}

	if err := c.Release("seafloor.bmp"); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if len(f.deleted) != 1 || f.deleted[0] != id {
		t.Fatalf("deleted = %v, want [%d]", f.deleted, id)
	}
	if got := c.Refs("seafloor.bmp"); got != 0 {
		t.Errorf("Refs after release = %d, want 0", got)
	}

	// Loading again after the last release uploads a fresh texture.
	c.Acquire("seafloor.bmp")
	if f.loads["seafloor.bmp"] != 2 {
		t.Errorf("loaded %d times, want 2", f.loads["seafloor.bmp"])
	}
}

func TestTextureCacheErrors(t *testing.T) {
	f := newFakeTextures()
	errMissing := errors.New("missing")
	f.fail["missing.png"] = errMissing
	c := f.cache()

	if _, err := c.Acquire("missing.png"); !errors.Is(err, errMissing) {
		t.Errorf("Acquire error = %v, want %v", err, errMissing)
	}
	if got := c.Refs("missing.png"); got != 0 {
		t.Errorf("failed load left %d refs", got)
	}
	if err := c.Release("never-loaded.png"); err == nil {
		t.Error("expected error releasing an unknown texture")
	}
}

func TestGLErrorString(t *testing.T) {
	tests := []struct {
		code uint32
		want string
	}{
		{0x0500, "GL_INVALID_ENUM"},
		{0x0502, "GL_INVALID_OPERATION"},
		{0x0505, "GL_OUT_OF_MEMORY"},
		{0x1234, "GL error 0x1234"},
	}
	for _, tt := range tests {
		if got := GLError(tt.code).Error(); got != tt.want {
			t.Errorf("GLError(0x%04X) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
