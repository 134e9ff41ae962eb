// Command deprecgen generates one-shot deprecation forwarders (Go)
//
// When a function or method is renamed, the old name usually has to stay for a
// while. deprecgen writes the old name for you:
//
//   - You write a tiny *.deprecate.json spec next to your package.
//   - You add a //go:generate ... directive in the owner Go file.
//   - deprecgen generates, for every entry, a forwarder with the identical
//     signature, a "Deprecated: Use X instead." doc comment, and a package var
//     built with deprecate.RenameFunction so the first call warns once.
//
// There is no reflection at the call site beyond the single RenameFunction
// wrapper per entry.
//
// When NOT to use deprecgen
//
// Generic functions and methods on generic types are rejected; wrap those by
// hand with a deprecate.Gate. Renamed events and properties are runtime
// values and have no generated form; use deprecate.Event and
// deprecate.RenameProperty.
//
// Spec format (*.deprecate.json)
//
// Minimal example:
//
//	{
//	  "package": "client",
//	  "facility": "Deprecations",
//	  "functions": [
//	    { "old": "Dial", "new": "Connect" }
//	  ],
//	  "methods": [
//	    { "recv": "*Client", "old": "Fetch", "new": "Get" }
//	  ]
//	}
//
// "facility" is any expression of type *deprecate.Facility visible in the
// package; it defaults to deprecate.Default().
//
// Typical go:generate usage
//
// Put this in the owner Go file (same package directory as the spec):
//
//	//go:generate go run ../../cmd/deprecgen --spec ./client.deprecate.json --out ./deprecated.gen.go
//
// Then:
//
//	go generate ./...
//
// Generated API (summary)
//
// For { "recv": "*Client", "old": "Fetch", "new": "Get" } with
// func (c *Client) Get(key string) (string, error):
//
//	var deprecatedClientFetch = deprecate.RenameFunction(Deprecations, (*Client).Get, "Client.Fetch", "Client.Get")
//
//	// Fetch forwards to Get.
//	//
//	// Deprecated: Use Get instead.
//	func (r *Client) Fetch(p0 string) (string, error) {
//		return deprecatedClientFetch(r, p0)
//	}
//
// Flags
//
//	--spec                 spec file
//	--out                  output file; its directory is the package parsed
//	--in                   deprecated alias of --spec
//	--throw-deprecation    fail instead of warning (also THROW_DEPRECATION)
//	--trace-deprecation    warn with stack traces (also TRACE_DEPRECATION)
//	--no-deprecation       silence warnings (also NO_DEPRECATION)
//
// A .env file in the working directory is loaded before the environment is
// read.
package main
