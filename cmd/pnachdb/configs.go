package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/ps2tools/go-pnach/encode"
	"github.com/ps2tools/go-pnach/identity"
	"github.com/ps2tools/go-pnach/remote"
)

type MainConfig struct {
	Color bool   `cli:"name=color desc='encode with color'"`
	DB    string `cli:"name=db desc='database file' default=cheats.json"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='suppress per-line output, set exit code only'"`
	Check *cli.Command
}

type ViewConfig struct {
	*MainConfig

	Identity bool `cli:"name=id desc='emit an identity comment header'"`
	View     *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Name  string `cli:"name=n aliases=name desc='name for the generated cheat' default=converted"`
	Type  string `cli:"name=t aliases=type desc='patch type for unmarked rows' default=word"`
	Place string `cli:"name=p aliases=place desc='memory domain: EE or IOP'"`

	Convert *cli.Command
}

type MergeConfig struct {
	*MainConfig

	DryRun bool `cli:"name=dry desc='report without saving'"`
	Merge  *cli.Command
}

type ResolveConfig struct {
	*MainConfig

	Serial string `cli:"name=serial desc='serial to resolve'"`
	CRC    string `cli:"name=crc desc='CRC to resolve'"`
	Title  string `cli:"name=title desc='title to resolve'"`
	Lookup string `cli:"name=lookup desc='identity lookup service address'"`

	Timeout time.Duration
	Resolve *cli.Command
}

func (cfg *ResolveConfig) mkTimeout() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.Timeout = d
		return d, nil
	}
}

// resolver builds the resolver for this invocation: bundled table,
// plus the remote lookup when -lookup is given.
func (cfg *ResolveConfig) resolver(ctx context.Context) (*identity.Resolver, func() error, error) {
	r := &identity.Resolver{Table: identity.Bundled(), Timeout: cfg.Timeout}
	if cfg.Lookup == "" {
		return r, nil, nil
	}
	client, err := remote.Dial(ctx, cfg.Lookup)
	if err != nil {
		return nil, nil, err
	}
	r.Lookup = client.Lookup
	return r, client.Close, nil
}

type ListConfig struct {
	*MainConfig

	Filter string `cli:"name=f aliases=filter desc='expression filter, e.g. region == \"PAL\"'"`
	Long   bool   `cli:"name=l desc='list cheats, not just games'"`

	List *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type StatsConfig struct {
	*MainConfig

	Stats *cli.Command
}
