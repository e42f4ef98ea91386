package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/sectorhunter/hunter"
	"github.com/sectorhunter/hunter/renderer"
)

type refreshCmd struct{}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "fetch live quotes for the active sector" }
func (*refreshCmd) Usage() string {
	return `hunt refresh:
  Fetch live quotes for the active sector, merge them and show the dashboard.
`
}
func (c *refreshCmd) SetFlags(f *flag.FlagSet) {}
func (c *refreshCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Println("no arguments expected")
		return subcommands.ExitUsageError
	}

	store := OpenStore()
	engine := hunter.NewSyncEngine(store, NewProvider(), 0)
	engine.Refresh(ctx)

	sec, ok := store.Active()
	if !ok {
		return fail(fmt.Errorf("no sector in the watchlist"))
	}
	printMarkdown(renderer.RenderSector(renderer.NewSectorView(sec, engine.Status(), nil)))
	if engine.Status() != hunter.StatusOnline {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
