package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"withargs" help:"Play a game of four-of-a-kind"`
	GenPack GenPackCmd       `cmd:"" name:"gen-pack" help:"Generate a winnable pack file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cardrace"),
		kong.Description("Concurrent four-of-a-kind card game"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
