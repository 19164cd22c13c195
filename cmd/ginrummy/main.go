package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	LogLevel string           `help:"Log level (debug|info|warn|error), default info"`

	Play     PlayCmd     `cmd:"" help:"Play one narrated game between two strategies"`
	Simulate SimulateCmd `cmd:"" help:"Run a batch of games and report statistics"`
	Melds    MeldsCmd    `cmd:"" help:"Show melds, meld sets and deadwood for a hand"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("ginrummy"),
		kong.Description("Gin Rummy meld engine and match simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
