package backend

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a new backend instance.
type Factory func() Backend

// Registered backend names.
const (
	NameRaster = "raster"
	NameSVG    = "svg"
)

var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for Default (first registered wins).
	backendPriority = []string{NameRaster, NameSVG}
)

// Register registers a backend factory under name. It is typically called
// from init() in backend packages.
//
// Register panics if factory is nil or name is already registered, so that
// duplicate registrations surface during program initialization.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("backend: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("backend: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// It is a no-op for unknown names and mostly useful in tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates a backend instance by name.
// The error mentions a likely forgotten import.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("backend: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}

// MustBackend is like NewBackend but panics on error.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns the registered backend names in alphabetical order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Default returns the best available backend: raster, then svg, then any
// other registered backend in alphabetical order. It returns nil when the
// registry is empty.
func Default() Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if factory, ok := backends[name]; ok {
			return factory()
		}
	}

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil
	}
	sort.Strings(names)
	return backends[names[0]]()
}
