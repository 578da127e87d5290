// Package source turns external pnach collections into merge items.
// A Source enumerates items; the store package folds them in. Sources
// never mutate the database and may run concurrently against
// independent stores.
package source

import (
	"context"
	"path"
	"regexp"
	"strings"

	"github.com/ps2tools/go-pnach/debug"
	"github.com/ps2tools/go-pnach/format"
	"github.com/ps2tools/go-pnach/identity"
	"github.com/ps2tools/go-pnach/ir"
	"github.com/ps2tools/go-pnach/parse"
	"github.com/ps2tools/go-pnach/store"
)

// Source is one collection of pnach files.
type Source interface {
	// Label names the source for conflict attribution and reporting.
	Label() string
	// Items reads the collection and returns its merge candidates.
	Items(ctx context.Context) ([]store.Item, error)
}

// Collection filenames follow the "<CRC> - <Title> <SERIAL>.pnach"
// convention; emulator cheat directories use bare "<CRC>.pnach".
var (
	fullNameRE = regexp.MustCompile(
		`^([0-9A-Fa-f]{4,8})\s*-\s*(.+?)\s+([A-Z]{4}[-_ ]?\d{3,6})$`)
	crcNameRE = regexp.MustCompile(`^([0-9A-Fa-f]{8})$`)
)

// identityFromName mines identity hints from a pnach filename.
func identityFromName(name string) ir.GameIdentity {
	stem := strings.TrimSuffix(path.Base(name), path.Ext(name))
	if m := fullNameRE.FindStringSubmatch(stem); m != nil {
		serial := identity.NormalizeSerial(m[3])
		return ir.GameIdentity{
			Title:  strings.TrimSpace(m[2]),
			Serial: serial,
			CRC:    identity.NormalizeCRC(m[1]),
			Region: identity.RegionFromSerial(serial),
		}
	}
	if m := crcNameRE.FindStringSubmatch(stem); m != nil {
		return ir.GameIdentity{CRC: identity.NormalizeCRC(m[1])}
	}
	return ir.GameIdentity{}
}

// itemFrom parses one pnach file into a merge item. Filename hints win
// over in-file hints; both are normalized. Diagnostics are logged when
// source debugging is on and otherwise dropped, a bad line in a
// collection file must not block the rest.
func itemFrom(origin, name string, data []byte) store.Item {
	doc := parse.ParseDocument(string(data))
	id := identityFromName(name)
	hinted := doc.Identity
	hinted.Serial = identity.NormalizeSerial(hinted.Serial)
	hinted.CRC = identity.NormalizeCRC(hinted.CRC)
	id = id.FillFrom(hinted)
	if id.Region == format.RegionUnknown && id.Serial != "" {
		id.Region = identity.RegionFromSerial(id.Serial)
	}
	if debug.Source() && len(doc.Diags) > 0 {
		debug.Logf("source %s: %s: %d skipped lines\n", origin, name, len(doc.Diags))
	}
	return store.Item{Identity: id, Sets: doc.Sets, Origin: origin}
}

func isPnach(name string) bool {
	return strings.EqualFold(path.Ext(name), ".pnach")
}
