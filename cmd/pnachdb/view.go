package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/ps2tools/go-pnach/encode"
	"github.com/ps2tools/go-pnach/parse"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	args = stdinIfEmpty(args)
	for _, arg := range args {
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		doc := parse.ParseDocument(string(d))
		for _, diag := range doc.Diags {
			fmt.Fprintf(cc.Out, "// skipped %s\n", diag)
		}
		opts := cfg.encOpts(cc.Out)
		if cfg.Identity {
			opts = append(opts, encode.EncodeIdentity(doc.Identity))
		}
		if err := encode.Encode(doc.Sets, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
