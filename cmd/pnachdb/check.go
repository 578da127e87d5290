package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/ps2tools/go-pnach/parse"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	args = stdinIfEmpty(args)
	bad := 0
	for _, arg := range args {
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		doc := parse.ParseDocument(string(d))
		if len(doc.Diags) == 0 {
			continue
		}
		bad++
		if cfg.Quiet {
			continue
		}
		for _, diag := range doc.Diags {
			fmt.Fprintf(cc.Out, "%s:%d: %s: %s\n", arg, diag.Line, diag.Kind, diag.Msg)
		}
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
