// Package pnach is the front door to the pnach cheat-file engine: a
// parser, builder and identity resolver for PCSX2 patch files, plus a
// database merger in the store subpackage.
//
// The subpackages compose bottom-up:
//
//   - format: grammar tokens, regions, diagnostics
//   - token: line scanning
//   - ir: patch entries, sets and game records
//   - parse: pnach text -> sets, tolerant of dialects
//   - rawdump: memory-dump text -> entries
//   - encode: sets -> canonical pnach text
//   - identity: serial/CRC/title resolution
//   - remote: JSON-RPC identity lookup client
//   - source: directories and archives -> merge items
//   - store: the merged database
//   - eval: expression filters over the database
//   - libdiff: diffs between renderings
//
// Tool bundles the common paths for callers that do not need to pick
// the pieces apart.
package pnach
