package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/ps2tools/go-pnach/encode"
	"github.com/ps2tools/go-pnach/format"
	"github.com/ps2tools/go-pnach/ir"
	"github.com/ps2tools/go-pnach/rawdump"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	typ, err := format.ParsePatchType(cfg.Type)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	dOpts := []rawdump.DecodeOption{rawdump.DefaultType(typ)}
	if cfg.Place != "" {
		place, err := format.ParsePlace(cfg.Place)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		dOpts = append(dOpts, rawdump.Place(place))
	}
	args = stdinIfEmpty(args)
	for _, arg := range args {
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		entries, diags := rawdump.Decode(d, dOpts...)
		for _, diag := range diags {
			fmt.Fprintf(cc.Out, "// skipped %s\n", diag)
		}
		set := &ir.PatchSet{Name: cfg.Name, Enabled: true, Entries: entries}
		if err := encode.Encode([]*ir.PatchSet{set}, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
