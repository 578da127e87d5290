// Package ir holds the normalized in-memory representation of patch
// data: PatchEntry, PatchSet, GameIdentity and the merged database
// records. Parsing produces these values, the builder consumes them,
// and the merger owns the record types.
//
// # Related Packages
//
//   - github.com/ps2tools/go-pnach/parse - pnach text to patch sets
//   - github.com/ps2tools/go-pnach/encode - patch sets to pnach text
//   - github.com/ps2tools/go-pnach/store - merged database of records
package ir
