package deprecate

import "reflect"

// MemberAlias forwards a method that moved from T onto one of T's fields:
// calling it on recv invokes recv.<member>.<method>. The warning reads
// "'method' is deprecated. Use 'member.method' instead."
//
// T must be a struct or a pointer to a struct carrying an exported field
// named member whose type has method.
type MemberAlias[T any] struct {
	gate     Gate
	facility *Facility
	method   string
	member   string
	fieldIdx []int
	sig      reflect.Type
}

// NewMemberAlias returns a MemberAlias for method delegated to member.
func NewMemberAlias[T any](f *Facility, method, member string) (*MemberAlias[T], error) {
	typ := reflect.TypeFor[T]()
	st := typ
	if st.Kind() == reflect.Pointer {
		st = st.Elem()
	}
	if st.Kind() != reflect.Struct {
		return nil, invalidArgument("NewMemberAlias", member, typ.String()+" is not a struct")
	}

	field, ok := st.FieldByName(member)
	if !ok || !field.IsExported() {
		return nil, invalidArgument("NewMemberAlias", member, "no exported field on "+typ.String())
	}

	m, ok := field.Type.MethodByName(method)
	if !ok {
		// Pointer-receiver methods are reachable through the addressable field.
		m, ok = reflect.PointerTo(field.Type).MethodByName(method)
		if !ok {
			return nil, invalidArgument("NewMemberAlias", method, "no such method on "+field.Type.String())
		}
	}

	sig := m.Type
	if field.Type.Kind() != reflect.Interface {
		sig = boundMethodType(m.Type)
	}

	return &MemberAlias[T]{
		facility: f,
		method:   method,
		member:   member,
		fieldIdx: field.Index,
		sig:      sig,
	}, nil
}

// Call warns once, then calls recv.<member>.<method> with args.
func (a *MemberAlias[T]) Call(recv T, args ...any) ([]any, error) {
	rv := reflect.ValueOf(&recv).Elem()
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, invalidArgument("MemberAlias.Call", a.method, "nil receiver")
		}
		rv = rv.Elem()
	}

	field := rv.FieldByIndex(a.fieldIdx)
	if field.Kind() == reflect.Interface && field.IsNil() {
		return nil, invalidArgument("MemberAlias.Call", a.member, "nil member")
	}

	method := field.MethodByName(a.method)
	if !method.IsValid() && field.CanAddr() {
		method = field.Addr().MethodByName(a.method)
	}
	if !method.IsValid() {
		return nil, invalidArgument("MemberAlias.Call", a.method, "no such method on "+field.Type().String())
	}

	in, err := convertArgs("MemberAlias.Call", a.method, a.sig, args)
	if err != nil {
		return nil, err
	}
	if err := a.gate.Do(a.facility, a.warn); err != nil {
		return nil, err
	}
	return invoke(method, in), nil
}

func (a *MemberAlias[T]) warn() error {
	return a.facility.Warn(a.method, a.member+"."+a.method)
}
