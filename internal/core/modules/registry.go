// Package modules tracks which optional feature modules are registered and
// enabled, and enforces the dependencies between them.
package modules

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ID identifies a feature module.
type ID string

const (
	Subscriptions ID = "subscriptions"
	Payments      ID = "payments"
	Vendors       ID = "vendors"
	Assets        ID = "assets"
	Depreciation  ID = "depreciation"
	Imports       ID = "imports"
	PageBuilder   ID = "page_builder"
	Notifications ID = "notifications"
)

var (
	ErrUnknownModule     = errors.New("unknown module")
	ErrAlreadyRegistered = errors.New("module already registered")
	ErrMissingDependency = errors.New("module dependency not satisfied")
	ErrHasDependents     = errors.New("module has enabled dependents")
)

// Module describes one optional feature set.
type Module struct {
	ID           ID     `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Dependencies []ID   `json:"dependencies"`
	Enabled      bool   `json:"enabled"`
}

// Builtin lists the modules shipped with the application, dependencies first.
func Builtin() []Module {
	return []Module{
		{ID: Subscriptions, Name: "Subscriptions", Description: "Service and subscription tracking"},
		{ID: Payments, Name: "Payments", Description: "Payment history per service", Dependencies: []ID{Subscriptions}},
		{ID: Vendors, Name: "Vendors", Description: "Vendor and category management"},
		{ID: Assets, Name: "Assets", Description: "Asset register, categories and locations"},
		{ID: Depreciation, Name: "Depreciation", Description: "Depreciation schedules for assets", Dependencies: []ID{Assets}},
		{ID: Imports, Name: "Imports", Description: "CSV and JSON imports", Dependencies: []ID{Subscriptions}},
		{ID: PageBuilder, Name: "Page Builder", Description: "Stored page layouts"},
		{ID: Notifications, Name: "Notifications", Description: "Renewal digests", Dependencies: []ID{Subscriptions}},
	}
}

// Registry holds the registered modules. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	modules map[ID]*Module
	order   []ID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[ID]*Module)}
}

// NewDefaultRegistry registers the builtin modules and enables the ones listed
// in enabled. Enabling follows declaration order so dependencies come first.
func NewDefaultRegistry(enabled []string) (*Registry, error) {
	r := NewRegistry()
	for _, m := range Builtin() {
		if err := r.Register(m); err != nil {
			return nil, err
		}
	}

	want := make(map[ID]bool, len(enabled))
	for _, id := range enabled {
		if _, ok := r.modules[ID(id)]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownModule, id)
		}
		want[ID(id)] = true
	}
	for _, id := range r.order {
		if !want[id] {
			continue
		}
		if err := r.Enable(id); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds m in a disabled state. Every dependency must already be registered.
func (r *Registry) Register(m Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[m.ID]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, m.ID)
	}
	for _, dep := range m.Dependencies {
		if _, ok := r.modules[dep]; !ok {
			return fmt.Errorf("%w: %s requires unregistered module %s", ErrMissingDependency, m.ID, dep)
		}
	}
	m.Enabled = false
	m.Dependencies = append([]ID(nil), m.Dependencies...)
	r.modules[m.ID] = &m
	r.order = append(r.order, m.ID)
	return nil
}

// Enable turns on id once all of its dependencies are enabled.
func (r *Registry) Enable(id ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.modules[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownModule, id)
	}
	for _, dep := range m.Dependencies {
		if !r.modules[dep].Enabled {
			return fmt.Errorf("%w: %s requires %s to be enabled", ErrMissingDependency, id, dep)
		}
	}
	m.Enabled = true
	return nil
}

// Disable turns off id unless an enabled module depends on it.
func (r *Registry) Disable(id ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.modules[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownModule, id)
	}
	var dependents []string
	for _, m := range r.modules {
		if !m.Enabled {
			continue
		}
		for _, dep := range m.Dependencies {
			if dep == id {
				dependents = append(dependents, string(m.ID))
			}
		}
	}
	if len(dependents) > 0 {
		sort.Strings(dependents)
		return fmt.Errorf("%w: %s is required by %v", ErrHasDependents, id, dependents)
	}
	r.modules[id].Enabled = false
	return nil
}

// IsEnabled reports whether id is registered and enabled.
func (r *Registry) IsEnabled(id ID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modules[id]
	return ok && m.Enabled
}

// Get returns a copy of the module.
func (r *Registry) Get(id ID) (Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modules[id]
	if !ok {
		return Module{}, false
	}
	return clone(m), true
}

// List returns copies of all modules in registration order.
func (r *Registry) List() []Module {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Module, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, clone(r.modules[id]))
	}
	return out
}

func clone(m *Module) Module {
	c := *m
	c.Dependencies = append([]ID{}, m.Dependencies...)
	return c
}
