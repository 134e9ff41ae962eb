package deprecate

import "reflect"

var errorType = reflect.TypeFor[error]()

// RenameFunction returns a function with the same type as fn that warns once
// that oldName is deprecated in favor of newName, then forwards every call to
// fn and returns its results unchanged.
//
// Methods are wrapped through a method expression so the receiver is
// forwarded as the first argument:
//
//	var dial = deprecate.RenameFunction(f, (*Client).Connect, "Client.Dial", "Client.Connect")
//
//	// Deprecated: Use Connect instead.
//	func (c *Client) Dial(addr string) error { return dial(c, addr) }
//
// Under throw-mode the first call does not reach fn. If fn's last result is
// an error, the *DeprecationError is returned through it with every other
// result zeroed; otherwise the wrapper panics with the *DeprecationError.
//
// RenameFunction panics if fn is nil or not a function.
func RenameFunction[F any](f *Facility, fn F, oldName, newName string) F {
	fnVal := reflect.ValueOf(fn)
	if fnVal.Kind() != reflect.Func || fnVal.IsNil() {
		panic(invalidArgument("RenameFunction", oldName, "not a non-nil function"))
	}

	fnType := fnVal.Type()
	w := &funcWrapper{facility: f, oldName: oldName, newName: newName}

	wrapped := reflect.MakeFunc(fnType, func(args []reflect.Value) []reflect.Value {
		if err := w.gate.Do(w.facility, w.warn); err != nil {
			return failedResults(fnType, err)
		}
		if fnType.IsVariadic() {
			return fnVal.CallSlice(args)
		}
		return fnVal.Call(args)
	})

	return wrapped.Interface().(F)
}

type funcWrapper struct {
	facility *Facility
	gate     Gate
	oldName  string
	newName  string
}

func (w *funcWrapper) warn() error { return w.facility.Warn(w.oldName, w.newName) }

// failedResults builds the results of a call short-circuited by err: zero
// values plus err in a trailing error slot, or a panic when there is none.
func failedResults(fnType reflect.Type, err error) []reflect.Value {
	n := fnType.NumOut()
	if n == 0 || fnType.Out(n-1) != errorType {
		panic(err)
	}
	out := make([]reflect.Value, n)
	for i := range n - 1 {
		out[i] = reflect.Zero(fnType.Out(i))
	}
	out[n-1] = reflect.ValueOf(&err).Elem()
	return out
}
