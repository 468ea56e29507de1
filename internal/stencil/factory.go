package stencil

import (
	"sort"
	"sync"

	apperrors "github.com/agbru/stencilcalc/internal/errors"
)

// Factory is a registry of named averaging strategies.
type Factory interface {
	// Register adds or replaces the strategy stored under name.
	Register(name string, a Averager)
	// Get returns the strategy stored under name.
	Get(name string) (Averager, error)
	// List returns the registered names in sorted order.
	List() []string
	// GetAll returns a copy of the registry.
	GetAll() map[string]Averager
}

// DefaultFactory is a concurrency-safe Factory backed by a map.
type DefaultFactory struct {
	mu        sync.RWMutex
	averagers map[string]Averager
}

// NewDefaultFactory returns a factory holding the sequential strategy and a
// parallel strategy configured with the given worker count and chunk size
// (zero means automatic for both).
func NewDefaultFactory(workers, chunkSize int) *DefaultFactory {
	f := &DefaultFactory{averagers: make(map[string]Averager)}
	f.Register("sequential", Sequential{})
	f.Register("parallel", Parallel{Workers: workers, ChunkSize: chunkSize})
	return f
}

// Register implements Factory.
func (f *DefaultFactory) Register(name string, a Averager) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.averagers[name] = a
}

// Get implements Factory.
func (f *DefaultFactory) Get(name string) (Averager, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	a, ok := f.averagers[name]
	if !ok {
		return nil, apperrors.NewConfigError("unknown strategy %q", name)
	}
	return a, nil
}

// List implements Factory.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.averagers))
	for name := range f.averagers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll implements Factory.
func (f *DefaultFactory) GetAll() map[string]Averager {
	f.mu.RLock()
	defer f.mu.RUnlock()
	all := make(map[string]Averager, len(f.averagers))
	for name, a := range f.averagers {
		all[name] = a
	}
	return all
}
