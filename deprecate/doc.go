// Package deprecate marks parts of a library's public surface as deprecated
// and warns once, on first use, without changing the deprecated behavior.
//
// Everything hangs off a *Facility: an explicit context object holding three
// switches (Config), an optional Handler and a zerolog diagnostic logger.
// Create it once in your composition root and pass it to the wrapping
// constructors:
//
//	cfg, err := deprecate.ConfigFromEnv()
//	if err != nil {
//		return err
//	}
//	f := deprecate.New(cfg)
//
// Message routing (Facility.Log), in priority order:
//
//   - a registered Handler receives the message, nothing else happens
//   - ThrowOnDeprecation: a *DeprecationError is returned to the caller
//   - TraceOnDeprecation: a warn line with a stack trace is logged
//   - otherwise: a warn line prefixed with "(deprecate)" is logged
//
// SuppressDeprecation short-circuits every Gate, so nothing is routed at all.
//
// Wrapping constructors
//
// Each wrapper owns one Gate and routes at most one message in its lifetime:
//
//   - RenameFunction: same-typed function forwarding to the replacement
//   - NewAlias / AliasInstance: name-based method forwarding for every value
//     of a type, or for one value
//   - NewMemberAlias: forwarding a method that moved onto a field
//   - Event: re-emitting a renamed event under its old name
//   - RemoveProperty / RenameProperty: accessors on an Object
//
// Facility.Warn, Facility.Log and Facility.RemoveFunction are ungated and can
// be called directly.
//
// Errors
//
// Throw-mode surfaces as *DeprecationError (errors.Is(err, ErrDeprecated)).
// Bad arguments to constructors surface as *InvalidArgumentError
// (errors.Is(err, ErrInvalidArgument)). Wrapped functions without an error
// result panic with the *DeprecationError instead.
//
// Import
//
//	"github.com/sghaida/deprecate/deprecate"
package deprecate
