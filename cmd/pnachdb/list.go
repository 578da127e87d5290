package main

import (
	"fmt"
	"sort"

	"github.com/scott-cotton/cli"

	"github.com/ps2tools/go-pnach/eval"
	"github.com/ps2tools/go-pnach/store"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.List.Parse(cc, args); err != nil {
		return err
	}
	db, err := store.Load(cfg.DB)
	if err != nil {
		return err
	}
	if cfg.Filter != "" {
		f, err := eval.Compile(cfg.Filter)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		db, err = f.Apply(db)
		if err != nil {
			return err
		}
	}
	games := db.Games
	sort.Slice(games, func(i, j int) bool { return games[i].Title < games[j].Title })
	for _, g := range games {
		keys := make([]string, 0, len(g.Regions))
		for k := range g.Regions {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintf(cc.Out, "%s (%d cheats)\n", g.Title, g.CheatCount())
		for _, k := range keys {
			rr := g.Regions[k]
			fmt.Fprintf(cc.Out, "  %s %s %s (%d cheats)\n", k, rr.Serial, rr.CRC, len(rr.Cheats))
			if !cfg.Long {
				continue
			}
			for _, c := range rr.Cheats {
				fmt.Fprintf(cc.Out, "    %s\n", c.Name)
			}
		}
	}
	return nil
}
