package backend

import (
	"sync"
)

// Canvas backend names.
const (
	// CanvasBrowser hosts the window in a web browser.
	CanvasBrowser = "browser"
	// CanvasHeadless keeps the element tree in memory with no display.
	CanvasHeadless = "headless"
)

// Factory creates a new canvas for the given window configuration.
type Factory func(cfg Config) (Canvas, error)

// registry holds registered canvas factories.
var (
	registryMu sync.RWMutex
	canvases   = make(map[string]Factory)
	// Priority order for canvas selection (first registered wins).
	// Browser is the real display; headless is a fallback for
	// display-less environments.
	canvasPriority = []string{CanvasBrowser, CanvasHeadless}
)

// Register registers a canvas factory with the given name.
// This is typically called from init() functions in canvas packages.
// If a canvas with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	canvases[name] = factory
}

// Unregister removes a canvas from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(canvases, name)
}

// Available returns a list of registered canvas names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(canvases))
	for name := range canvases {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a canvas with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := canvases[name]
	return ok
}

// Get returns the factory registered under name, or nil if none.
func Get(name string) Factory {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return canvases[name]
}

// Default returns the best available canvas factory based on priority.
// Priority order: browser > headless.
// Returns nil if no canvases are registered.
func Default() Factory {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range canvasPriority {
		if factory, ok := canvases[name]; ok {
			return factory
		}
	}

	// Fallback: return any registered factory.
	for _, factory := range canvases {
		return factory
	}
	return nil
}

// New creates a canvas by name, or the default canvas when name is empty.
func New(name string, cfg Config) (Canvas, error) {
	var factory Factory
	if name == "" {
		factory = Default()
	} else {
		factory = Get(name)
	}
	if factory == nil {
		return nil, ErrCanvasNotAvailable
	}
	return factory(cfg)
}
