package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type removeCmd struct {
	stock string
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a sector, or one stock from a sector" }
func (*removeCmd) Usage() string {
	return `hunt remove [-stock <symbol>] <sector-id>:
  Remove the sector from the watchlist, or just one of its stocks.
`
}
func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.stock, "stock", "", "remove only this stock from the sector")
}
func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Println("sector id expected")
		return subcommands.ExitUsageError
	}
	store := OpenStore()
	id := f.Arg(0)

	if c.stock == "" {
		if err := store.RemoveSector(id); err != nil {
			return fail(err)
		}
		fmt.Printf("Removed sector %q\n", id)
		return subcommands.ExitSuccess
	}

	sec, ok := store.Sector(id)
	if !ok {
		return fail(fmt.Errorf("unknown sector %q", id))
	}
	if sec.Stock(c.stock) == nil {
		return fail(fmt.Errorf("no stock %q in sector %q", c.stock, id))
	}
	sec.RemoveStock(c.stock)
	if err := store.UpdateSector(sec); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed %q from sector %q\n", c.stock, id)
	return subcommands.ExitSuccess
}
