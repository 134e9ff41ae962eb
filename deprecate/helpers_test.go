package deprecate

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Shared fixtures
// -----------------------------------------------------------------------------

// recorder is a Handler that remembers every message it receives.
type recorder struct {
	mu       sync.Mutex
	messages []string
}

func (r *recorder) handle(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}

// newRecordedFacility returns a facility whose handler is a fresh recorder.
func newRecordedFacility(t *testing.T, cfg Config) (*Facility, *recorder) {
	t.Helper()
	rec := &recorder{}
	f := New(cfg, WithHandler(rec.handle), WithLogger(zerolog.Nop()))
	return f, rec
}

// newLoggedFacility returns a facility without handler logging json into a buffer.
func newLoggedFacility(t *testing.T, cfg Config) (*Facility, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return New(cfg, WithLogger(zerolog.New(&buf))), &buf
}

// logLines decodes every json log line written to buf.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &entry))
		lines = append(lines, entry)
	}
	return lines
}

// requirePanicsWithDeprecation asserts fn panics with a *DeprecationError carrying message.
func requirePanicsWithDeprecation(t *testing.T, message string, fn func()) {
	t.Helper()

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered)

		err, ok := recovered.(error)
		require.True(t, ok, "panic value %T is not an error", recovered)

		var depErr *DeprecationError
		require.ErrorAs(t, err, &depErr)
		require.Equal(t, message, depErr.Message)
	}()

	fn()
}
