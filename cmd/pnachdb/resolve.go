package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/ps2tools/go-pnach/identity"
	"github.com/ps2tools/go-pnach/parse"
)

func resolve(cfg *ResolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Resolve.Parse(cc, args)
	if err != nil {
		return err
	}
	var partials []identity.Partial
	if p := (identity.Partial{Title: cfg.Title, Serial: cfg.Serial, CRC: cfg.CRC}); !p.Empty() {
		partials = append(partials, p)
	}
	for _, arg := range args {
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		doc := parse.ParseDocument(string(d))
		partials = append(partials, identity.Partial{
			Title:  doc.Identity.Title,
			Serial: doc.Identity.Serial,
			CRC:    doc.Identity.CRC,
		})
	}
	if len(partials) == 0 {
		return fmt.Errorf("%w: resolve requires -serial, -crc, -title or files", cli.ErrUsage)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resolver, closeLookup, err := cfg.resolver(ctx)
	if err != nil {
		return err
	}
	if closeLookup != nil {
		defer closeLookup()
	}
	unresolved := 0
	for _, p := range partials {
		res := resolver.Resolve(ctx, p)
		out := map[string]any{"query": p, "status": res.Status.String()}
		switch res.Status {
		case identity.StatusResolved:
			out["identity"] = res.Identity
		case identity.StatusAmbiguous:
			out["candidates"] = res.Candidates
			unresolved++
		default:
			unresolved++
		}
		d, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", d)
	}
	if unresolved > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
