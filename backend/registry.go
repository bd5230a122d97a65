package backend

import (
	"fmt"
	"sync"

	"github.com/gogpu/rescale"
)

// Factory creates a new scaler instance.
type Factory func() rescale.Scaler

// registry holds registered scalers.
var (
	registryMu sync.RWMutex
	scalers    = make(map[string]Factory)
	// Priority order for default selection (first available wins).
	priority = []string{BackendNative, BackendXDraw, BackendImaging, BackendGift, BackendBild, BackendNfnt}
)

// Register registers a scaler factory with the given name.
// This is typically called from init() functions in the backend
// packages. If a scaler with the same name is already registered,
// it is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	scalers[name] = factory
}

// Unregister removes a scaler from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(scalers, name)
}

// Available returns a list of registered backend names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(scalers))
	for name := range scalers {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := scalers[name]
	return ok
}

// Get returns a scaler instance by name.
// Returns nil if the backend is not registered.
func Get(name string) rescale.Scaler {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := scalers[name]
	if !ok {
		return nil
	}
	return factory()
}

// Lookup returns a scaler instance by name, or an error wrapping
// ErrBackendNotAvailable when no such backend is registered.
func Lookup(name string) (rescale.Scaler, error) {
	if s := Get(name); s != nil {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
}

// Default returns the best available scaler based on priority.
// Returns nil if no backends are registered.
func Default() rescale.Scaler {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range priority {
		if factory, ok := scalers[name]; ok {
			if s := factory(); s != nil {
				return s
			}
		}
	}

	// Fallback: return first available
	for _, factory := range scalers {
		if s := factory(); s != nil {
			return s
		}
	}

	return nil
}

// MustDefault returns the default scaler or panics.
func MustDefault() rescale.Scaler {
	s := Default()
	if s == nil {
		panic("backend: no scaler available")
	}
	return s
}
