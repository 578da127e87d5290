// Package encode builds canonical pnach text from patch sets.
//
// Encoding is deterministic: the same sets always produce byte-identical
// output. Any text that parses with zero diagnostics re-encodes to a
// semantically equivalent file (same sets, same entries, same order),
// with whitespace and comment placement normalized.
//
// # Usage
//
//	err := encode.Encode(sets, w)
//	s := encode.MustString(sets)
//
// # Related Packages
//
//   - github.com/ps2tools/go-pnach/parse - the inverse operation
//   - github.com/ps2tools/go-pnach/ir - the patch set representation
package encode
