// Package registry provides a global registry for platform backends.
// Backends register themselves in init() functions, allowing the CLI
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/paddleball/internal/platform"
)

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name        string
	Description string
}

// Factory creates a new, not yet opened, platform instance.
type Factory func(opts platform.Options) platform.Platform

type entry struct {
	factory     Factory
	description string
}

var (
	backends = make(map[string]entry)
	mu       sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := backends[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}
	backends[name] = entry{factory: f, description: description}
}

// List returns information about all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(backends))
	for name, e := range backends {
		result = append(result, BackendInfo{
			Name:        name,
			Description: e.description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a backend by name.
// Returns an error if the name is not registered.
func Create(name string, opts platform.Options) (platform.Platform, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}

	return e.factory(opts), nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := backends[name]
	return ok
}
