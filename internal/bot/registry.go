package bot

import (
	"fmt"
	"sync"
)

// Registry collects the modules compiled into the binary.
type Registry struct {
	mu      sync.RWMutex
	modules []Module
	names   map[string]struct{}
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		names: make(map[string]struct{}),
	}
}

// Register adds a module. Registering two modules under one name panics,
// since it can only come from a programming error in an init function.
func (r *Registry) Register(m Module) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := m.Name()
	if _, dup := r.names[name]; dup {
		panic(fmt.Sprintf("bot: module %q registered twice", name))
	}
	r.names[name] = struct{}{}
	r.modules = append(r.modules, m)
}

// Modules returns the registered modules in registration order.
// The returned slice is a copy.
func (r *Registry) Modules() []Module {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Module, len(r.modules))
	copy(result, r.modules)
	return result
}

// globalRegistry receives modules from their init functions.
var globalRegistry = NewRegistry()

// Register adds a module to the global registry. Modules call it from init,
// so importing a module package for side effects is enough to enable it.
func Register(m Module) {
	globalRegistry.Register(m)
}

// Modules returns all modules from the global registry.
func Modules() []Module {
	return globalRegistry.Modules()
}

// ResetGlobalRegistry empties the global registry. Tests only.
func ResetGlobalRegistry() {
	globalRegistry = NewRegistry()
}
