package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/sectorhunter/hunter"
)

type editCmd struct {
	name  string
	phase string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "rewrite a sector through the authoring form" }
func (*editCmd) Usage() string {
	return `hunt edit [-name <name>] [-phase <phase>] <sector-id> SYMBOL:Name:Price[:leader]...:
  Rewrite a sector. The stock arguments replace the sector's stock list:
  stocks that keep their symbol carry their live quote and scores forward,
  new symbols start with authoring defaults, omitted symbols are dropped.
`
}
func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "new display name, keeps the current one when empty")
	f.StringVar(&c.phase, "phase", "", "new rotation phase, keeps the current one when empty")
}
func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		fmt.Println("sector id expected")
		return subcommands.ExitUsageError
	}

	store := OpenStore()
	existing, ok := store.Sector(f.Arg(0))
	if !ok {
		return fail(fmt.Errorf("unknown sector %q", f.Arg(0)))
	}

	form := hunter.SectorForm{ID: existing.ID, Name: existing.Name, Phase: existing.Phase}
	if c.name != "" {
		form.Name = c.name
	}
	if c.phase != "" {
		phase, err := hunter.ParsePhase(c.phase)
		if err != nil {
			return fail(err)
		}
		form.Phase = phase
	}
	for _, arg := range f.Args()[1:] {
		stock, err := parseStockArg(arg)
		if err != nil {
			return fail(err)
		}
		form.Stocks = append(form.Stocks, stock)
	}
	if len(form.Stocks) == 0 {
		// No stock arguments means the stock list is untouched.
		for _, s := range existing.Stocks {
			form.Stocks = append(form.Stocks, hunter.StockForm{
				ID:       s.ID,
				Name:     s.Name,
				Price:    fmt.Sprintf("%g", s.Price),
				IsLeader: s.IsLeader,
			})
		}
	}

	sec, err := form.Build(&existing)
	if err != nil {
		return fail(err)
	}
	if err := store.UpdateSector(sec); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated sector %q, now %d stocks\n", sec.ID, len(sec.Stocks))
	return subcommands.ExitSuccess
}
