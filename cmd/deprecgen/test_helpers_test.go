// test_helpers_test.go
package main

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Shared fixtures
// -----------------------------------------------------------------------------

// fixtureSource is a package with functions and methods worth renaming.
const fixtureSource = `package client

import (
	"context"
	"time"
	_ "embed"

	"github.com/sghaida/deprecate/deprecate"
)

type Client struct{ base string }

var Deprecations = deprecate.New(deprecate.Config{})

func Connect(ctx context.Context, addr string, timeout time.Duration) (*Client, error) {
	return &Client{base: addr}, nil
}

func Join(sep string, parts ...string) string { return sep }

func Ping() {}

func Split(a, b int) (q, r int) { return a / b, a % b }

func Map[T any](in []T) []T { return in }

func (c *Client) Get(key string) (string, error) { return c.base + key, nil }

func (c Client) Name() string { return c.base }
`

// minimalSpecJSON returns a spec that passes validateSpec and resolves
// against fixtureSource.
func minimalSpecJSON() []byte {
	return []byte(`{
  "package": "client",
  "facility": "Deprecations",
  "functions": [
    { "old": "Dial", "new": "Connect" },
    { "old": "Concat", "new": "Join" },
    { "old": "OldPing", "new": "Ping" },
    { "old": "divmod", "new": "Split" }
  ],
  "methods": [
    { "recv": "*Client", "old": "Fetch", "new": "Get" },
    { "recv": "Client", "old": "Label", "new": "Name" }
  ]
}`)
}

//
// -----------------------------------------------------------------------------
// Small helpers
// -----------------------------------------------------------------------------

// writeTempFile writes a file under dir/name and returns its full path.
func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

// readFileString reads a file and returns its contents as string (fatal on error).
func readFileString(t *testing.T, p string) string {
	t.Helper()
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	return string(b)
}

// fixturePackage lays out fixtureSource plus the minimal spec in a temp dir
// and returns (dir, specPath, outPath).
func fixturePackage(t *testing.T) (string, string, string) {
	t.Helper()
	dir := t.TempDir()
	writeTempFile(t, dir, "client.go", fixtureSource)
	specPath := writeTempFile(t, dir, "client.deprecate.json", string(minimalSpecJSON()))
	return dir, specPath, filepath.Join(dir, "deprecated.gen.go")
}

// requireParsesAsGo asserts src is syntactically valid Go.
func requireParsesAsGo(t *testing.T, src string) {
	t.Helper()
	_, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, parser.AllErrors)
	require.NoError(t, err, src)
}

// runCmd runs the command with a no-op .env loader and returns (code, stdout, stderr).
func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	orig := loadDotEnv
	t.Cleanup(func() { loadDotEnv = orig })
	loadDotEnv = func() error { return nil }

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// fakeTempFile is a controllable file-like object for writeFileAtomic tests.
// It lets us force errors on Write and Close without using a real file.
type fakeTempFile struct {
	fileName string
	writeErr error
	closeErr error
}

func (f *fakeTempFile) Name() string { return f.fileName }

func (f *fakeTempFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return len(p), nil
}

func (f *fakeTempFile) Close() error {
	return f.closeErr
}
