package meshfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Loader parses model files relative to an assets directory and caches the
// result by name.
type Loader struct {
	assetsPath string

	mu        sync.Mutex
	meshCache map[string]*Mesh
}

func NewLoader(assetsPath string) *Loader {
	return &Loader{
		assetsPath: assetsPath,
		meshCache:  make(map[string]*Mesh),
	}
}

// Load returns the mesh stored at name. Repeated loads return the same
// *Mesh; callers must treat it as read-only.
func (l *Loader) Load(name string) (*Mesh, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if mesh, ok := l.meshCache[name]; ok {
		return mesh, nil
	}

	path := l.Resolve(name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open model file: %w", err)
	}
	defer f.Close()

	mesh, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse model %s: %w", path, err)
	}

	l.meshCache[name] = mesh
	return mesh, nil
}

// Resolve returns the file path for name under the assets directory.
func (l *Loader) Resolve(name string) string {
	return filepath.Join(l.assetsPath, name)
}

// Evict drops name from the cache so the next Load reads the file again.
func (l *Loader) Evict(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.meshCache, name)
}
