// Package identity resolves a game's identity (title, serial, CRC,
// region) from partial keys against a bundled static table, with an
// optional injected network lookup for anything the table misses.
//
// Resolution against the table is a pure function; the table is
// immutable after construction and safe for concurrent use.
//
// # Related Packages
//
//   - github.com/ps2tools/go-pnach/remote - JSON-RPC Lookup implementation
//   - github.com/ps2tools/go-pnach/store - the merged database keyed on identities
package identity
