package deprecate

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

//
// -----------------------------------------------------------------------------
// configFromLookup / ConfigFromEnv
// -----------------------------------------------------------------------------

// TestConfigFromLookup_Empty verifies unset variables yield the zero config.
func TestConfigFromLookup_Empty(t *testing.T) {
	t.Parallel()

	cfg, err := configFromLookup(lookupFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

// TestConfigFromLookup_AllSet verifies each variable maps onto its switch.
func TestConfigFromLookup_AllSet(t *testing.T) {
	t.Parallel()

	cfg, err := configFromLookup(lookupFrom(map[string]string{
		EnvThrowDeprecation: "true",
		EnvTraceDeprecation: " 1 ",
		EnvNoDeprecation:    "T",
	}))
	require.NoError(t, err)
	assert.Equal(t, Config{ThrowOnDeprecation: true, TraceOnDeprecation: true, SuppressDeprecation: true}, cfg)
}

// TestConfigFromLookup_BlankIgnored verifies blank values leave the switch off.
func TestConfigFromLookup_BlankIgnored(t *testing.T) {
	t.Parallel()

	cfg, err := configFromLookup(lookupFrom(map[string]string{EnvNoDeprecation: "  "}))
	require.NoError(t, err)
	assert.False(t, cfg.SuppressDeprecation)
}

// TestConfigFromLookup_Invalid verifies a bad value names the variable.
func TestConfigFromLookup_Invalid(t *testing.T) {
	t.Parallel()

	_, err := configFromLookup(lookupFrom(map[string]string{EnvTraceDeprecation: "sometimes"}))
	require.ErrorIs(t, err, ErrInvalidArgument)

	var argErr *InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, EnvTraceDeprecation, argErr.Name)
	assert.Equal(t, `deprecate: ConfigFromEnv "TRACE_DEPRECATION": not a boolean: "sometimes"`, err.Error())
}

// TestConfigFromEnv_ReadsProcessEnv verifies ConfigFromEnv uses the real environment.
func TestConfigFromEnv_ReadsProcessEnv(t *testing.T) {
	t.Setenv(EnvThrowDeprecation, "false")
	t.Setenv(EnvNoDeprecation, "true")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.ThrowOnDeprecation)
	assert.True(t, cfg.SuppressDeprecation)
}

//
// -----------------------------------------------------------------------------
// BindFlags
// -----------------------------------------------------------------------------

// TestBindFlags_Parse verifies the three switches parse from flags.
func TestBindFlags_Parse(t *testing.T) {
	t.Parallel()

	var cfg Config
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs, &cfg)

	require.NoError(t, fs.Parse([]string{"--throw-deprecation", "--no-deprecation"}))
	assert.True(t, cfg.ThrowOnDeprecation)
	assert.False(t, cfg.TraceOnDeprecation)
	assert.True(t, cfg.SuppressDeprecation)
}

// TestBindFlags_DefaultsFromConfig verifies existing values become defaults and can be overridden.
func TestBindFlags_DefaultsFromConfig(t *testing.T) {
	t.Parallel()

	cfg := Config{TraceOnDeprecation: true}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs, &cfg)

	assert.Equal(t, "true", fs.Lookup(FlagTraceDeprecation).DefValue)

	require.NoError(t, fs.Parse([]string{"--trace-deprecation=false"}))
	assert.False(t, cfg.TraceOnDeprecation)
}
