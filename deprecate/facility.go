package deprecate

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/sghaida/deprecate/internal/logging"
)

// DefaultTag prefixes plain (untraced) deprecation log lines.
const DefaultTag = "(deprecate)"

// Handler receives deprecation messages instead of the built-in sinks.
type Handler func(message string)

// Facility is the explicit deprecation context: switches, the optional
// handler, and the diagnostic logger.
//
// Create one in your composition root and pass it to every wrapping
// constructor. A Facility is safe for concurrent use.
type Facility struct {
	cfg     Config
	handler atomic.Pointer[Handler]
	logger  zerolog.Logger
	tag     string
}

// Option customizes a Facility at construction.
type Option func(*Facility)

// WithLogger replaces the default stderr logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(f *Facility) { f.logger = logger }
}

// WithHandler installs h as the initial handler.
func WithHandler(h Handler) Option {
	return func(f *Facility) { f.SetHandler(h) }
}

// WithTag replaces DefaultTag.
func WithTag(tag string) Option {
	return func(f *Facility) { f.tag = tag }
}

// New returns a Facility using cfg.
func New(cfg Config, opts ...Option) *Facility {
	f := &Facility{
		cfg:    cfg,
		logger: logging.New(logging.Config{Format: "auto", Component: "deprecate"}, nil),
		tag:    DefaultTag,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

var defaultFacility = sync.OnceValue(func() *Facility {
	cfg, err := ConfigFromEnv()
	f := New(cfg)
	if err != nil {
		f.logger.Error().Err(err).Msg("ignoring deprecation environment")
	}
	return f
})

// Default returns the process-wide Facility, configured from the environment
// (see ConfigFromEnv) on first use.
//
// Prefer passing an explicit *Facility; Default exists for packages that
// cannot have one injected.
func Default() *Facility { return defaultFacility() }

// Config returns the switches the facility was built with.
func (f *Facility) Config() Config { return f.cfg }

// Suppressed reports whether SuppressDeprecation is set.
func (f *Facility) Suppressed() bool { return f.cfg.SuppressDeprecation }

// SetHandler replaces the handler. A nil h clears it.
func (f *Facility) SetHandler(h Handler) {
	if h == nil {
		f.handler.Store(nil)
		return
	}
	f.handler.Store(&h)
}

// Handler returns the current handler, or nil.
func (f *Facility) Handler() Handler {
	if h := f.handler.Load(); h != nil {
		return *h
	}
	return nil
}

// Log routes message to exactly one sink, in priority order:
//
//  1. the handler, if one is registered;
//  2. a returned *DeprecationError, under ThrowOnDeprecation;
//  3. a warn line with a stack trace, under TraceOnDeprecation;
//  4. a warn line prefixed with the facility tag.
//
// Log itself is not gated; wrappers call it through a Gate.
func (f *Facility) Log(message string) error {
	if h := f.Handler(); h != nil {
		h(message)
		return nil
	}

	switch {
	case f.cfg.ThrowOnDeprecation:
		return &DeprecationError{Message: message}
	case f.cfg.TraceOnDeprecation:
		f.logger.Warn().Stack().Err(errors.New(message)).Msg(f.tag + " " + message)
	default:
		f.logger.Warn().Msg(f.tag + " " + message)
	}
	return nil
}

// Warn logs the standard rename message for oldName and newName.
func (f *Facility) Warn(oldName, newName string) error {
	return f.Log(renameMessage(oldName, newName))
}

// RemoveFunction logs that oldName is slated for removal. Unlike the wrapping
// constructors it is not gated: every call logs unless suppressed.
func (f *Facility) RemoveFunction(oldName string) error {
	if f.Suppressed() {
		return nil
	}
	return f.Log("The '" + oldName + "' function has been deprecated and marked for removal.")
}

func renameMessage(oldName, newName string) string {
	return "'" + oldName + "' is deprecated. Use '" + newName + "' instead."
}
