package deprecate

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvThrowDeprecation = "THROW_DEPRECATION"
	EnvTraceDeprecation = "TRACE_DEPRECATION"
	EnvNoDeprecation    = "NO_DEPRECATION"
)

// Command-line switches registered by BindFlags.
const (
	FlagThrowDeprecation = "throw-deprecation"
	FlagTraceDeprecation = "trace-deprecation"
	FlagNoDeprecation    = "no-deprecation"
)

// Config holds the three process-wide behavior switches.
//
// The zero value is the default: plain tagged warnings, nothing thrown,
// nothing traced, nothing suppressed. A Facility copies its Config at
// construction and never changes it afterwards.
type Config struct {
	// ThrowOnDeprecation turns every warning into a *DeprecationError.
	ThrowOnDeprecation bool

	// TraceOnDeprecation logs every warning together with a stack trace.
	TraceOnDeprecation bool

	// SuppressDeprecation disables all warnings; one-shot gates never fire.
	SuppressDeprecation bool
}

// ConfigFromEnv reads THROW_DEPRECATION, TRACE_DEPRECATION and NO_DEPRECATION.
//
// Unset or empty variables leave the switch false. Values are parsed with
// strconv.ParseBool; anything else yields an *InvalidArgumentError naming
// the variable.
func ConfigFromEnv() (Config, error) {
	return configFromLookup(os.LookupEnv)
}

func configFromLookup(lookup func(string) (string, bool)) (Config, error) {
	var cfg Config

	fields := []struct {
		name string
		dst  *bool
	}{
		{EnvThrowDeprecation, &cfg.ThrowOnDeprecation},
		{EnvTraceDeprecation, &cfg.TraceOnDeprecation},
		{EnvNoDeprecation, &cfg.SuppressDeprecation},
	}

	for _, field := range fields {
		raw, ok := lookup(field.name)
		raw = strings.TrimSpace(raw)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, invalidArgument("ConfigFromEnv", field.name, "not a boolean: "+strconv.Quote(raw))
		}
		*field.dst = v
	}

	return cfg, nil
}

// BindFlags registers --throw-deprecation, --trace-deprecation and
// --no-deprecation on fs, writing into cfg. Values already in cfg become the
// flag defaults, so BindFlags composes with ConfigFromEnv:
//
//	cfg, _ := deprecate.ConfigFromEnv()
//	deprecate.BindFlags(cmd.PersistentFlags(), &cfg)
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.ThrowOnDeprecation, FlagThrowDeprecation, cfg.ThrowOnDeprecation,
		"turn deprecation warnings into errors")
	fs.BoolVar(&cfg.TraceOnDeprecation, FlagTraceDeprecation, cfg.TraceOnDeprecation,
		"print stack traces for deprecation warnings")
	fs.BoolVar(&cfg.SuppressDeprecation, FlagNoDeprecation, cfg.SuppressDeprecation,
		"silence deprecation warnings")
}
