package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/ps2tools/go-pnach/source"
	"github.com/ps2tools/go-pnach/store"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires at least one directory or archive", cli.ErrUsage)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.Load(cfg.DB)
	if err != nil {
		return err
	}
	var items []store.Item
	for _, arg := range args {
		src, err := sourceFor(arg)
		if err != nil {
			return err
		}
		si, err := src.Items(ctx)
		if err != nil {
			return err
		}
		items = append(items, si...)
	}
	report, err := db.Merge(items)
	if err != nil {
		return err
	}
	d, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "%s\n", d)
	if cfg.DryRun {
		return nil
	}
	return db.Save(cfg.DB)
}

func sourceFor(arg string) (source.Source, error) {
	fi, err := os.Stat(arg)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	if fi.IsDir() {
		return source.Dir{Path: arg}, nil
	}
	lower := strings.ToLower(arg)
	if strings.HasSuffix(lower, ".zip") || strings.HasSuffix(lower, ".7z") {
		return source.Archive{Path: arg}, nil
	}
	return nil, fmt.Errorf("%s: not a directory, .zip or .7z", arg)
}
