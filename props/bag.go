// Package props provides Bag, a property container that satisfies
// deprecate.Object: plain values plus accessor-backed properties.
package props

import (
	"maps"
	"slices"
	"sync"

	"github.com/sghaida/deprecate/deprecate"
)

// Bag stores named properties. A property is either a plain value or an
// accessor installed with Define. The zero value is ready to use and Bag is
// safe for concurrent use.
type Bag struct {
	mu        sync.RWMutex
	values    map[string]any
	accessors map[string]deprecate.Accessor
}

// New returns a Bag holding a copy of initial.
func New(initial map[string]any) *Bag {
	b := &Bag{
		values:    make(map[string]any, len(initial)),
		accessors: make(map[string]deprecate.Accessor),
	}
	maps.Copy(b.values, initial)
	return b
}

// HasOwn reports whether name is a plain or accessor property of b.
func (b *Bag) HasOwn(name string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if _, ok := b.accessors[name]; ok {
		return true
	}
	_, ok := b.values[name]
	return ok
}

// Get returns the value of name. Missing properties read as nil.
func (b *Bag) Get(name string) (any, error) {
	b.mu.RLock()
	acc, isAccessor := b.accessors[name]
	value := b.values[name]
	b.mu.RUnlock()

	if isAccessor {
		if acc.Get == nil {
			return nil, nil
		}
		return acc.Get()
	}
	return value, nil
}

// Set writes name. Writes to an accessor property without a setter are
// dropped.
func (b *Bag) Set(name string, value any) error {
	b.mu.Lock()
	acc, isAccessor := b.accessors[name]
	if !isAccessor {
		if b.values == nil {
			b.values = make(map[string]any)
		}
		b.values[name] = value
	}
	b.mu.Unlock()

	if isAccessor && acc.Set != nil {
		return acc.Set(value)
	}
	return nil
}

// Define replaces name with acc, discarding any plain value stored there.
func (b *Bag) Define(name string, acc deprecate.Accessor) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.accessors == nil {
		b.accessors = make(map[string]deprecate.Accessor)
	}
	delete(b.values, name)
	b.accessors[name] = acc
}

// Delete removes name, plain or accessor.
func (b *Bag) Delete(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.values, name)
	delete(b.accessors, name)
}

// Keys returns every property name in sorted order.
func (b *Bag) Keys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	keys := slices.Collect(maps.Keys(b.values))
	for name := range b.accessors {
		keys = append(keys, name)
	}
	slices.Sort(keys)
	return keys
}

var _ deprecate.Object = (*Bag)(nil)
