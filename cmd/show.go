package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/sectorhunter/hunter"
	"github.com/sectorhunter/hunter/renderer"
)

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show a sector dashboard" }
func (*showCmd) Usage() string {
	return `hunt show [sector-id]:
  Show the dashboard of the given sector, or of the active one.
`
}
func (c *showCmd) SetFlags(f *flag.FlagSet) {}
func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()

	var sec hunter.Sector
	var ok bool
	if f.NArg() > 0 {
		sec, ok = store.Sector(f.Arg(0))
		if !ok {
			return fail(fmt.Errorf("unknown sector %q", f.Arg(0)))
		}
	} else {
		sec, ok = store.Active()
		if !ok {
			return fail(fmt.Errorf("no sector in the watchlist"))
		}
	}

	printMarkdown(renderer.RenderSector(renderer.NewSectorView(sec, hunter.StatusOffline, nil)))
	return subcommands.ExitSuccess
}
