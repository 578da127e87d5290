// Package eval filters database records with expr-lang expressions.
// An expression is evaluated once per (game, region) pair against an
// environment of that pair's fields:
//
//	title   string   game title
//	region  string   region record key, e.g. "NTSC-U"
//	serial  string   region serial
//	crc     string   region CRC
//	cheats  int      cheat count for the region
//	names   []string cheat names for the region
//
// Example: `region == "PAL" && cheats > 3`.
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ps2tools/go-pnach/debug"
	"github.com/ps2tools/go-pnach/ir"
	"github.com/ps2tools/go-pnach/store"
)

// Filter is a compiled record predicate.
type Filter struct {
	src  string
	prog *vm.Program
}

func Compile(src string) (*Filter, error) {
	prog, err := expr.Compile(src, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", src, err)
	}
	return &Filter{src: src, prog: prog}, nil
}

func (f *Filter) String() string {
	return f.src
}

// Match evaluates the filter for one region of one game.
func (f *Filter) Match(g *ir.GameRecord, region string, rr *ir.RegionRecord) (bool, error) {
	env := envFor(g, region, rr)
	v, err := vm.Run(f.prog, env)
	if err != nil {
		return false, fmt.Errorf("eval filter %q: %w", f.src, err)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("eval filter %q: result %T, want bool", f.src, v)
	}
	if debug.Eval() {
		debug.Logf("eval %q on %s/%s gave %v\n", f.src, g.Title, region, b)
	}
	return b, nil
}

// Apply builds a new store holding only the region records the filter
// matches. Games whose every region is filtered out are dropped. The
// input store is not modified; kept records are shared, not copied.
func (f *Filter) Apply(s *store.Store) (*store.Store, error) {
	out := store.New()
	for _, g := range s.Games {
		var kept *ir.GameRecord
		for key, rr := range g.Regions {
			ok, err := f.Match(g, key, rr)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			if kept == nil {
				kept = &ir.GameRecord{Title: g.Title, Regions: map[string]*ir.RegionRecord{}}
				out.Add(kept)
			}
			kept.Regions[key] = rr
		}
	}
	return out, nil
}

func envFor(g *ir.GameRecord, region string, rr *ir.RegionRecord) map[string]any {
	names := make([]string, len(rr.Cheats))
	for i, c := range rr.Cheats {
		names[i] = c.Name
	}
	return map[string]any{
		"title":  g.Title,
		"region": region,
		"serial": rr.Serial,
		"crc":    rr.CRC,
		"cheats": len(rr.Cheats),
		"names":  names,
	}
}
