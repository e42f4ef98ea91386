// Package cmd implements the CLI application to manage sector watchlists.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/sectorhunter/hunter"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&showCmd{}, "watchlist")
	c.Register(&addCmd{}, "watchlist")
	c.Register(&editCmd{}, "watchlist")
	c.Register(&removeCmd{}, "watchlist")
	c.Register(&switchCmd{}, "watchlist")
	c.Register(&searchCmd{}, "watchlist")

	c.Register(&refreshCmd{}, "quotes")
	c.Register(&watchCmd{}, "quotes")

	c.Register(&shareCmd{}, "sharing")
	c.Register(&exportCmd{}, "sharing")
	c.Register(&importCmd{}, "sharing")

	c.Register(&analyzeCmd{}, "ai")
	c.Register(&assistCmd{}, "ai")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var sectorsDir = flag.String("sectors-dir", ".", "Path to the folder holding the sector watchlist file")

// OpenStore is the central function to open the watchlist store.
func OpenStore() *hunter.Store {
	store := hunter.NewStore(*sectorsDir)
	store.Load()
	return store
}

// NewProvider builds the quote provider chain: Fugle for Taiwan listings
// when keys are configured, Yahoo for everything else.
func NewProvider() hunter.QuoteProvider {
	router := &hunter.RoutedProvider{Fallback: hunter.NewYahooProvider()}
	if keys := hunter.FugleKeys(); len(keys) > 0 {
		router.Taiwan = hunter.NewFugleProvider(keys)
	} else {
		router.Taiwan = router.Fallback
	}
	return router
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the terminal renderer is not usable.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, err)
	return subcommands.ExitFailure
}
