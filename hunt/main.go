package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/sectorhunter/hunter/cmd"
)

func main() {
	// API keys usually live in a .env next to the watchlist.
	godotenv.Load()

	// Shell completion, a no-op outside a completion request.
	completion().Complete("hunt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	sub := func() *complete.Command { return &complete.Command{Args: predict.Something} }
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"show":    sub(),
			"add":     sub(),
			"edit":    sub(),
			"remove":  sub(),
			"switch":  sub(),
			"search":  sub(),
			"refresh": {},
			"watch":   {},
			"share":   sub(),
			"export":  {},
			"import":  sub(),
			"analyze": sub(),
			"assist":  sub(),
		},
		Flags: map[string]complete.Predictor{
			"sectors-dir": predict.Dirs("*"),
		},
	}
}
