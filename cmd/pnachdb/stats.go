package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/ps2tools/go-pnach/store"
)

func stats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Stats.Parse(cc, args); err != nil {
		return err
	}
	db, err := store.Load(cfg.DB)
	if err != nil {
		return err
	}
	d, err := json.MarshalIndent(db.Stats(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "%s\n", d)
	return nil
}
