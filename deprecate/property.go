package deprecate

import "sync"

// Accessor is a get/set pair that replaces a plain property.
type Accessor struct {
	Get func() (any, error)
	Set func(value any) error
}

// Object is the capability RemoveProperty and RenameProperty need from a
// property-bearing value.
//
// Get and Set on a name defined through Define must call the accessor; Get
// and Set on other names operate on plain storage. Define must not hold
// locks while accessors run, since accessors read and write the same object.
type Object interface {
	HasOwn(name string) bool
	Get(name string) (any, error)
	Set(name string, value any) error
	Define(name string, acc Accessor)
}

// RemoveProperty marks name as deprecated with no replacement and returns
// obj. Reads and writes keep working on the property's current value; the
// first of either warns once.
//
// It returns an *InvalidArgumentError when obj does not own name.
func RemoveProperty(f *Facility, obj Object, name string) (Object, error) {
	if !obj.HasOwn(name) {
		return nil, invalidArgument("RemoveProperty", name, "object does not own that property")
	}

	value, err := obj.Get(name)
	if err != nil {
		return nil, err
	}

	var (
		gate Gate
		mu   sync.Mutex
	)
	warn := func() error {
		return f.Log("The '" + name + "' property has been deprecated and marked for removal.")
	}

	obj.Define(name, Accessor{
		Get: func() (any, error) {
			if err := gate.Do(f, warn); err != nil {
				return nil, err
			}
			mu.Lock()
			defer mu.Unlock()
			return value, nil
		},
		Set: func(v any) error {
			if err := gate.Do(f, warn); err != nil {
				return err
			}
			mu.Lock()
			value = v
			mu.Unlock()
			return nil
		},
	})
	return obj, nil
}

// RenameProperty moves oldName to newName and returns obj. If obj owns
// oldName but not newName, the value is copied over first (warning once).
// Afterwards reads and writes of oldName operate on newName, the first of
// them warning unless the copy already did.
func RenameProperty(f *Facility, obj Object, oldName, newName string) (Object, error) {
	var gate Gate
	warn := func() error { return f.Warn(oldName, newName) }

	if !obj.HasOwn(newName) && obj.HasOwn(oldName) {
		if err := gate.Do(f, warn); err != nil {
			return nil, err
		}
		value, err := obj.Get(oldName)
		if err != nil {
			return nil, err
		}
		if err := obj.Set(newName, value); err != nil {
			return nil, err
		}
	}

	obj.Define(oldName, Accessor{
		Get: func() (any, error) {
			if err := gate.Do(f, warn); err != nil {
				return nil, err
			}
			return obj.Get(newName)
		},
		Set: func(v any) error {
			if err := gate.Do(f, warn); err != nil {
				return err
			}
			return obj.Set(newName, v)
		},
	})
	return obj, nil
}
