// Package format defines the pnach grammar: the place, patch-type and
// region enums, their token tables, and the Diagnostic type shared by
// the parser and the raw-dump decoder.
//
// The package is pure data; it has no behavior beyond token mapping.
//
// # Related Packages
//
//   - github.com/ps2tools/go-pnach/parse - Parse pnach text to patch sets
//   - github.com/ps2tools/go-pnach/encode - Encode patch sets to pnach text
package format
