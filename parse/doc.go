// Package parse parses pnach text into patch sets.
//
// Parsing never fails hard: malformed lines become Diagnostics and are
// skipped, and whatever parsed cleanly is returned alongside them.
//
// # Usage
//
//	sets, diags := parse.Parse(text)
//	for _, d := range diags {
//	    fmt.Println(d)
//	}
//
// ParseDocument additionally mines the text for identity hints (title,
// serials, CRC) the way collection files conventionally carry them.
//
// # Related Packages
//
//   - github.com/ps2tools/go-pnach/format - grammar and Diagnostic
//   - github.com/ps2tools/go-pnach/encode - the inverse operation
package parse
