package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/sectorhunter/hunter"
	"github.com/sectorhunter/hunter/renderer"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search stocks across all sectors" }
func (*searchCmd) Usage() string {
	return `hunt search <query>:
  Full-text search over symbols, stock names and sector names.
`
}
func (c *searchCmd) SetFlags(f *flag.FlagSet) {}
func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Println("query expected")
		return subcommands.ExitUsageError
	}
	query := strings.Join(f.Args(), " ")

	store := OpenStore()
	index, err := hunter.NewIndex(store.Sectors())
	if err != nil {
		return fail(err)
	}
	defer index.Close()

	hits, err := index.Search(query)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.RenderHits(renderer.NewHitsView(query, hits)))
	return subcommands.ExitSuccess
}
