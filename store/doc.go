// Package store owns the merged cheat database: one GameRecord list,
// persisted as a single JSON document that is read fully and rewritten
// fully. Merge ingests candidate items from any number of sources,
// deduplicating identical cheats and keeping both halves of same-name
// conflicts.
//
// A Store is single-writer: callers serialize Merge calls against the
// same Store. Independent stores may be built in parallel and combined
// afterward with MergeFrom.
//
// # Related Packages
//
//   - github.com/ps2tools/go-pnach/source - produces the items to merge
//   - github.com/ps2tools/go-pnach/ir - the record types
package store
