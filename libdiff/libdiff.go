// Package libdiff renders line diffs between pnach documents. Sets are
// first put through the canonical encoder so the diff reflects
// semantic changes, not formatting drift.
package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/ps2tools/go-pnach/encode"
	"github.com/ps2tools/go-pnach/ir"
)

// Sets diffs two groups of patch sets by their canonical renderings.
// The result is empty when the groups encode identically.
func Sets(from, to []*ir.PatchSet) string {
	a := encode.MustString(from)
	b := encode.MustString(to)
	if a == b {
		return ""
	}
	return Text(a, b)
}

// Text renders a line diff in +/- form. Unchanged lines keep their
// place so hunks stay readable in context.
func Text(from, to string) string {
	diffCfg := diffpatch.New()
	fromRunes, toRunes, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(fromRunes, toRunes, false), lines)

	var sb strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		prefix := "  "
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range splitLines(diff.Text) {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
