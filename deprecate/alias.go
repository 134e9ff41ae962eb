package deprecate

import (
	"reflect"
	"strconv"
)

// Alias forwards a deprecated method name to its replacement on every value
// of type T. All receivers share one Gate, so the warning fires once per
// Alias no matter how many values call it.
//
// Alias dispatches by name at run time. When the signature is known at
// compile time, RenameFunction over a method expression is the typed
// equivalent.
type Alias[T any] struct {
	gate     Gate
	facility *Facility
	oldName  string
	newName  string
	method   reflect.Type
}

// NewAlias returns an Alias from oldName to newName, which must be in T's
// method set. T is usually a pointer type (*Client) or an interface.
func NewAlias[T any](f *Facility, oldName, newName string) (*Alias[T], error) {
	typ := reflect.TypeFor[T]()
	m, ok := typ.MethodByName(newName)
	if !ok {
		return nil, invalidArgument("NewAlias", newName, "no such method on "+typ.String())
	}

	mt := m.Type
	if typ.Kind() != reflect.Interface {
		// Drop the receiver so the type matches the bound method value.
		mt = boundMethodType(m.Type)
	}

	return &Alias[T]{facility: f, oldName: oldName, newName: newName, method: mt}, nil
}

// Call warns once, then calls recv's replacement method with args and
// returns its results.
func (a *Alias[T]) Call(recv T, args ...any) ([]any, error) {
	rv := reflect.ValueOf(&recv).Elem()
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, invalidArgument("Alias.Call", a.oldName, "nil receiver")
		}
		rv = rv.Elem()
	}

	method := rv.MethodByName(a.newName)
	if !method.IsValid() {
		return nil, invalidArgument("Alias.Call", a.newName, "no such method on "+rv.Type().String())
	}

	in, err := convertArgs("Alias.Call", a.oldName, a.method, args)
	if err != nil {
		return nil, err
	}
	if err := a.gate.Do(a.facility, a.warn); err != nil {
		return nil, err
	}
	return invoke(method, in), nil
}

func (a *Alias[T]) warn() error { return a.facility.Warn(a.oldName, a.newName) }

// BoundAlias forwards a deprecated method name to its replacement on one
// value. Its Gate is private to that value.
type BoundAlias struct {
	gate     Gate
	facility *Facility
	oldName  string
	newName  string
	method   reflect.Value
}

// AliasInstance returns a BoundAlias from oldName to obj's method newName.
func AliasInstance(f *Facility, obj any, oldName, newName string) (*BoundAlias, error) {
	if obj == nil {
		return nil, invalidArgument("AliasInstance", oldName, "nil object")
	}
	method := reflect.ValueOf(obj).MethodByName(newName)
	if !method.IsValid() {
		return nil, invalidArgument("AliasInstance", newName, "no such method on "+reflect.TypeOf(obj).String())
	}
	return &BoundAlias{facility: f, oldName: oldName, newName: newName, method: method}, nil
}

// Call warns once, then calls the bound replacement method with args.
func (b *BoundAlias) Call(args ...any) ([]any, error) {
	in, err := convertArgs("BoundAlias.Call", b.oldName, b.method.Type(), args)
	if err != nil {
		return nil, err
	}
	if err := b.gate.Do(b.facility, b.warn); err != nil {
		return nil, err
	}
	return invoke(b.method, in), nil
}

func (b *BoundAlias) warn() error { return b.facility.Warn(b.oldName, b.newName) }

// boundMethodType returns the type of a method value for a method whose
// expression type is mt (receiver first).
func boundMethodType(mt reflect.Type) reflect.Type {
	in := make([]reflect.Type, 0, mt.NumIn()-1)
	for i := 1; i < mt.NumIn(); i++ {
		in = append(in, mt.In(i))
	}
	out := make([]reflect.Type, 0, mt.NumOut())
	for i := range mt.NumOut() {
		out = append(out, mt.Out(i))
	}
	return reflect.FuncOf(in, out, mt.IsVariadic())
}

// convertArgs checks args against fnType and converts them to reflect values.
// Variadic tails are passed unpacked, as in a normal call.
func convertArgs(op, name string, fnType reflect.Type, args []any) ([]reflect.Value, error) {
	numIn := fnType.NumIn()
	variadic := fnType.IsVariadic()

	if (!variadic && len(args) != numIn) || (variadic && len(args) < numIn-1) {
		return nil, invalidArgument(op, name, "want "+strconv.Itoa(numIn)+" arguments, got "+strconv.Itoa(len(args)))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var want reflect.Type
		if variadic && i >= numIn-1 {
			want = fnType.In(numIn - 1).Elem()
		} else {
			want = fnType.In(i)
		}

		if arg == nil {
			switch want.Kind() {
			case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
				in[i] = reflect.Zero(want)
				continue
			default:
				return nil, invalidArgument(op, name, "argument "+strconv.Itoa(i)+": nil for "+want.String())
			}
		}

		v := reflect.ValueOf(arg)
		if !v.Type().AssignableTo(want) {
			return nil, invalidArgument(op, name, "argument "+strconv.Itoa(i)+": "+v.Type().String()+" is not assignable to "+want.String())
		}
		in[i] = v
	}
	return in, nil
}

func invoke(method reflect.Value, in []reflect.Value) []any {
	results := method.Call(in)
	out := make([]any, len(results))
	for i, r := range results {
		out[i] = r.Interface()
	}
	return out
}
