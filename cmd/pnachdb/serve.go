package main

import (
	"context"
	"fmt"
	"net"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"

	"github.com/ps2tools/go-pnach/identity"
	"github.com/ps2tools/go-pnach/remote"
)

type ServeConfig struct {
	*MainConfig

	Addr  string `cli:"name=addr desc='TCP listen address' default=localhost:9224"`
	Table string `cli:"name=table desc='identity table file (yaml), default bundled'"`

	Serve *cli.Command
}

func ServeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ServeConfig{MainConfig: mainCfg, Addr: "localhost:9224"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Serve, "serve").
		WithSynopsis("serve [-addr <addr>] [-table <file>]").
		WithDescription("run the identity lookup service").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
}

func serve(cfg *ServeConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Serve.Parse(cc, args); err != nil {
		return err
	}

	// Start gops agent for debugging
	if err := agent.Listen(agent.Options{}); err != nil {
		fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
	}

	table := identity.Bundled()
	if cfg.Table != "" {
		d, err := readArg(cc, cfg.Table)
		if err != nil {
			return err
		}
		table, err = identity.LoadTable(d)
		if err != nil {
			return err
		}
	}
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Addr, err)
	}
	fmt.Fprintf(cc.Out, "lookup service listening on %s\n", ln.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv := remote.NewServer(&identity.Resolver{Table: table})
	return srv.Serve(ctx, ln)
}
