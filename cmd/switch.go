package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/sectorhunter/hunter"
	"github.com/sectorhunter/hunter/renderer"
)

type switchCmd struct {
	refresh bool
}

func (*switchCmd) Name() string     { return "switch" }
func (*switchCmd) Synopsis() string { return "make another sector the active one" }
func (*switchCmd) Usage() string {
	return `hunt switch [-refresh] <sector-id>:
  Make the given sector the active one and show its dashboard.
`
}
func (c *switchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.refresh, "refresh", false, "also fetch live quotes for the new active sector")
}
func (c *switchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Println("sector id expected")
		return subcommands.ExitUsageError
	}
	store := OpenStore()
	if _, ok := store.Sector(f.Arg(0)); !ok {
		return fail(fmt.Errorf("unknown sector %q", f.Arg(0)))
	}

	engine := hunter.NewSyncEngine(store, NewProvider(), 0)
	if c.refresh {
		engine.SwitchSector(ctx, f.Arg(0))
		engine.Disarm()
	} else {
		store.SetActive(f.Arg(0))
	}

	sec, _ := store.Active()
	printMarkdown(renderer.RenderSector(renderer.NewSectorView(sec, engine.Status(), nil)))
	return subcommands.ExitSuccess
}
