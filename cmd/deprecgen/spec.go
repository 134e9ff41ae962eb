package main

import (
	"encoding/json"
	"fmt"
	"go/token"
	"strings"
)

// Entry describes one deprecated name and the existing name it forwards to.
type Entry struct {
	// Recv is the receiver type of a method entry, e.g. "*Client" or "Client".
	// Empty for function entries.
	Recv string `json:"recv,omitempty"`

	// Old is the deprecated name the generator declares.
	Old string `json:"old"`

	// New is the existing function or method the forwarder calls.
	New string `json:"new"`
}

// Spec is the full input schema (*.deprecate.json) consumed by the generator.
type Spec struct {
	Package string `json:"package"`

	// Facility is a Go expression of type *deprecate.Facility, evaluated at
	// package initialization. Defaults to deprecate.Default().
	Facility string `json:"facility"`

	Functions []Entry `json:"functions"`
	Methods   []Entry `json:"methods"`
}

const defaultFacilityExpr = "deprecate.Default()"

// parseSpec decodes and validates a spec, filling defaults.
func parseSpec(data []byte) (*Spec, error) {
	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("decode spec: %w", err)
	}
	if err := validateSpec(&spec); err != nil {
		return nil, err
	}
	if strings.TrimSpace(spec.Facility) == "" {
		spec.Facility = defaultFacilityExpr
	}
	return &spec, nil
}

// validateSpec checks names, duplicates and receivers of a decoded spec.
func validateSpec(spec *Spec) error {
	if !token.IsIdentifier(spec.Package) {
		return fmt.Errorf("spec: package %q is not a valid identifier", spec.Package)
	}
	if len(spec.Functions)+len(spec.Methods) == 0 {
		return fmt.Errorf("spec: functions or methods must have at least 1 entry")
	}

	seen := make(map[string]struct{}, len(spec.Functions)+len(spec.Methods))

	check := func(kind string, e Entry) error {
		if !token.IsIdentifier(e.Old) || !token.IsIdentifier(e.New) {
			return fmt.Errorf("spec: %s entry needs identifier old/new; got: %+v", kind, e)
		}
		if e.Old == e.New {
			return fmt.Errorf("spec: %s entry %q forwards to itself", kind, e.Old)
		}
		key := recvBase(e.Recv) + "." + e.Old
		if _, dup := seen[key]; dup {
			return fmt.Errorf("spec: duplicate %s %s", kind, strings.TrimPrefix(key, "."))
		}
		seen[key] = struct{}{}
		return nil
	}

	for _, e := range spec.Functions {
		if e.Recv != "" {
			return fmt.Errorf("spec: function entry %q must not set recv", e.Old)
		}
		if err := check("function", e); err != nil {
			return err
		}
	}
	for _, e := range spec.Methods {
		if !token.IsIdentifier(recvBase(e.Recv)) {
			return fmt.Errorf("spec: method entry %q needs recv like \"*Type\" or \"Type\"; got %q", e.Old, e.Recv)
		}
		if err := check("method", e); err != nil {
			return err
		}
	}
	return nil
}

// recvBase strips a leading "*" from a receiver type.
func recvBase(recv string) string {
	return strings.TrimPrefix(strings.TrimSpace(recv), "*")
}
