package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/sectorhunter/hunter"
)

type addCmd struct {
	id    string
	name  string
	phase string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new sector to the watchlist" }
func (*addCmd) Usage() string {
	return `hunt add -name <name> [-id <id>] [-phase advancing] SYMBOL:Name:Price[:leader]...:
  Add a new sector. Each argument declares one stock; the first stock
  becomes the leader unless another one carries the :leader mark.

  Example: hunt add -name "散熱族群" -phase climax 3017:奇鋐:850:leader 3324:雙鴻:620
`
}
func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "sector id, generated when empty")
	f.StringVar(&c.name, "name", "", "sector display name")
	f.StringVar(&c.phase, "phase", string(hunter.Advancing), "rotation phase: accumulation, advancing, climax or distribution")
}
func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	form, err := c.form(f.Args())
	if err != nil {
		return fail(err)
	}
	sec, err := form.Build(nil)
	if err != nil {
		return fail(err)
	}

	store := OpenStore()
	if err := store.AddSector(sec); err != nil {
		return fail(err)
	}
	fmt.Printf("Added sector %q with %d stocks\n", sec.ID, len(sec.Stocks))
	return subcommands.ExitSuccess
}

func (c *addCmd) form(args []string) (hunter.SectorForm, error) {
	phase, err := hunter.ParsePhase(c.phase)
	if err != nil {
		return hunter.SectorForm{}, err
	}
	form := hunter.SectorForm{ID: c.id, Name: c.name, Phase: phase}
	if form.Name == "" {
		return form, fmt.Errorf("-name is required")
	}
	for _, arg := range args {
		stock, err := parseStockArg(arg)
		if err != nil {
			return form, err
		}
		form.Stocks = append(form.Stocks, stock)
	}
	return form, nil
}

// parseStockArg parses one SYMBOL:Name:Price[:leader] argument.
func parseStockArg(arg string) (hunter.StockForm, error) {
	parts := strings.Split(arg, ":")
	if len(parts) < 2 {
		return hunter.StockForm{}, fmt.Errorf("invalid stock %q, want SYMBOL:Name[:Price][:leader]", arg)
	}
	stock := hunter.StockForm{ID: parts[0], Name: parts[1]}
	for _, p := range parts[2:] {
		if p == "leader" {
			stock.IsLeader = true
		} else {
			stock.Price = p
		}
	}
	if stock.ID == "" || stock.Name == "" {
		return stock, fmt.Errorf("invalid stock %q, symbol and name are required", arg)
	}
	return stock, nil
}
