// Package deprecate is the umbrella for a small deprecation toolkit: keep old
// names of functions, methods, events and properties working while warning
// once that they moved.
//
// The goal is to keep the deprecated behavior identical, keep the warning
// routing explicit (a *deprecate.Facility built in your composition root), and
// keep reflection out of the hot path where the signature is known.
//
// See subpackages:
//   - deprecate: Facility, Gate and the wrapping constructors
//   - events, props: ready-made Emitter and Object implementations
//   - zaphandler: a Handler that forwards messages to zap
//   - internal/logging: the zerolog setup behind the default sink
//   - cmd/deprecgen: generator for typed forwarders of renamed functions and methods
//   - examples/*: runnable examples
package deprecate
