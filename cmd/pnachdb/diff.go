package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/ps2tools/go-pnach/libdiff"
	"github.com/ps2tools/go-pnach/parse"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two pnach files", cli.ErrUsage)
	}
	a, err := readArg(cc, args[0])
	if err != nil {
		return err
	}
	b, err := readArg(cc, args[1])
	if err != nil {
		return err
	}
	aSets, _ := parse.Parse(string(a))
	bSets, _ := parse.Parse(string(b))
	d := libdiff.Sets(aSets, bSets)
	if d == "" {
		return nil
	}
	fmt.Fprint(cc.Out, d)
	return cli.ExitCodeErr(1)
}
