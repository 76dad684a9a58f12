package service

import (
	"sync"

	"github.com/kpchand/fireservice/errors"
)

// Registry manages service definitions by name. It provides
// thread-safe registration and lookup so a program can declare its
// service types once, at startup, and resolve them anywhere.
type Registry struct {
	definitions map[string]*Definition
	order       []string
	mu          sync.RWMutex
}

// NewRegistry creates a new empty definition registry.
func NewRegistry() *Registry {
	return &Registry{definitions: make(map[string]*Definition)}
}

// Register adds a definition under its service name. Registering a
// second definition under the same name fails with a DefinitionError.
func (r *Registry) Register(def *Definition) error {
	if def == nil {
		return errors.NewDefinition("definition must not be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.definitions[def.name]; exists {
		return errors.NewDefinition("service %q is already registered", def.name)
	}
	r.definitions[def.name] = def
	r.order = append(r.order, def.name)
	return nil
}

// MustRegister is like Register but panics on error. Intended for
// package-level registration blocks.
func (r *Registry) MustRegister(defs ...*Definition) {
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			panic(err)
		}
	}
}

// Get returns the definition registered under name.
func (r *Registry) Get(name string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.definitions[name]
	return def, ok
}

// Names returns the registered service names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.definitions)
}
