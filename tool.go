package pnach

import (
	"context"
	"fmt"
	"strings"

	"github.com/ps2tools/go-pnach/encode"
	"github.com/ps2tools/go-pnach/format"
	"github.com/ps2tools/go-pnach/identity"
	"github.com/ps2tools/go-pnach/ir"
	"github.com/ps2tools/go-pnach/parse"
	"github.com/ps2tools/go-pnach/rawdump"
)

// Tool bundles the parse/build/resolve paths behind one value.
type Tool struct {
	Resolver *identity.Resolver
}

// DefaultTool resolves against the bundled identity table, offline.
func DefaultTool() *Tool {
	return &Tool{Resolver: &identity.Resolver{Table: identity.Bundled()}}
}

// Parse parses pnach text. Skipped lines come back as diagnostics,
// never as errors.
func (t *Tool) Parse(text string) ([]*ir.PatchSet, []format.Diagnostic) {
	return parse.Parse(text)
}

// ParseDocument parses pnach text and also mines identity hints.
func (t *Tool) ParseDocument(text string) *parse.Document {
	return parse.ParseDocument(text)
}

// Decode decodes raw memory-dump text into one named set.
func (t *Tool) Decode(name string, data []byte, opts ...rawdump.DecodeOption) (*ir.PatchSet, []format.Diagnostic) {
	entries, diags := rawdump.Decode(data, opts...)
	return &ir.PatchSet{Name: name, Enabled: true, Entries: entries}, diags
}

// Build renders sets as a canonical pnach file labeled with id.
func (t *Tool) Build(id ir.GameIdentity, sets []*ir.PatchSet) string {
	return encode.MustString(sets, encode.EncodeIdentity(id))
}

// Resolve resolves a partial identity, table first, then the
// configured lookup if any.
func (t *Tool) Resolve(ctx context.Context, p identity.Partial) identity.Resolution {
	return t.Resolver.Resolve(ctx, p)
}

// Verify checks that sets survive a build/parse round trip: the
// reparse of the canonical rendering must produce no diagnostics and
// re-render identically.
func (t *Tool) Verify(sets []*ir.PatchSet) error {
	text := encode.MustString(sets)
	got, diags := parse.Parse(text)
	if len(diags) > 0 {
		return fmt.Errorf("round trip: rendering did not reparse: %v", diags[0])
	}
	if again := encode.MustString(got); again != text {
		return fmt.Errorf("round trip: renderings differ:\n%s\nvs\n%s", text, again)
	}
	return nil
}

// FileName is the collection filename convention for an identity:
// "<CRC> - <Title> <SERIAL>.pnach", with absent parts omitted.
func FileName(id ir.GameIdentity) string {
	var sb strings.Builder
	if id.CRC != "" {
		sb.WriteString(id.CRC)
		sb.WriteString(" - ")
	}
	sb.WriteString(id.Title)
	if id.Serial != "" {
		if id.Title != "" {
			sb.WriteByte(' ')
		}
		sb.WriteString(id.Serial)
	}
	sb.WriteString(".pnach")
	return sb.String()
}
