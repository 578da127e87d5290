// Package rawdump decodes the RAW 8x8 memory-dump format: one
// whitespace-delimited <address> <value> pair per line, 8 hex digits
// each, optionally prefixed by a width marker column. Malformed rows
// become Diagnostics and are skipped, mirroring the parser's policy.
package rawdump

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ps2tools/go-pnach/format"
	"github.com/ps2tools/go-pnach/ir"
	"github.com/ps2tools/go-pnach/token"
)

type decodeOpts struct {
	defaultType format.PatchType
	place       format.Place
}

type DecodeOption func(*decodeOpts)

// DefaultType sets the patch type for rows without a width marker.
// The default is word.
func DefaultType(t format.PatchType) DecodeOption {
	return func(o *decodeOpts) { o.defaultType = t }
}

// Place sets the memory domain for every decoded entry. Raw dumps
// carry no domain column; the default leaves it unspecified.
func Place(p format.Place) DecodeOption {
	return func(o *decodeOpts) { o.place = p }
}

// Decode decodes raw dump text into patch entries. Commas, equals
// signs and tabs are tolerated as separators; short values are
// interpreted as zero-extended. No row failure aborts the decode.
func Decode(data []byte, opts ...DecodeOption) ([]ir.PatchEntry, []format.Diagnostic) {
	dOpts := &decodeOpts{defaultType: format.TypeWord}
	for _, f := range opts {
		f(dOpts)
	}
	var (
		entries []ir.PatchEntry
		diags   []format.Diagnostic
	)
	for _, ln := range token.Split(string(data)) {
		switch ln.Kind {
		case token.Blank, token.Comment:
			continue
		}
		s := strings.NewReplacer(",", " ", "=", " ", "\t", " ").Replace(strings.TrimSpace(ln.Raw))
		parts := strings.Fields(s)
		typ := dOpts.defaultType
		if len(parts) >= 3 {
			// leading width marker column, by token or by bit width
			if t, ok := widthMarker(parts[0]); ok {
				typ = t
				parts = parts[1:]
			}
		}
		if len(parts) < 2 {
			diags = append(diags, rowDiag(ln, format.MissingField, "want <address> <value>"))
			continue
		}
		addr, err := strconv.ParseUint(parts[0], 16, 32)
		if err != nil || len(parts[0]) != 8 {
			diags = append(diags, rowDiag(ln, format.MalformedAddress, fmt.Sprintf("%q", parts[0])))
			continue
		}
		val, err := strconv.ParseUint(parts[1], 16, typ.Bits())
		if err != nil {
			diags = append(diags, rowDiag(ln, format.MalformedValue, fmt.Sprintf("%q", parts[1])))
			continue
		}
		entries = append(entries, ir.PatchEntry{
			Address: uint32(addr),
			Type:    typ,
			Value:   val,
			Place:   dOpts.place,
		})
	}
	return entries, diags
}

func widthMarker(tok string) (format.PatchType, bool) {
	switch tok {
	case "8":
		return format.TypeByte, true
	case "16":
		return format.TypeShort, true
	case "32":
		return format.TypeWord, true
	case "64":
		return format.TypeDword, true
	}
	t, err := format.ParsePatchType(tok)
	if err != nil {
		return 0, false
	}
	return t, true
}

func rowDiag(ln token.Line, kind format.DiagKind, msg string) format.Diagnostic {
	return format.Diagnostic{
		Kind: kind,
		Line: ln.Num,
		Text: strings.TrimSpace(ln.Raw),
		Msg:  msg,
	}
}
