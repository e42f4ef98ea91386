package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/sectorhunter/hunter"
)

type importCmd struct {
	url string
	yes bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a shared sector or restore a backup" }
func (*importCmd) Usage() string {
	return `hunt import -url <share-link> | hunt import [-y] <backup-file>:
  With -url, decode the shared sector and add it to the watchlist.
  With a backup file, replace the whole watchlist with its content
  after confirmation.
`
}
func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.url, "url", "", "share link to import one sector from")
	f.BoolVar(&c.yes, "y", false, "replace the watchlist without asking")
}
func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.url != "" {
		return c.importShared()
	}
	if f.NArg() != 1 {
		fmt.Println("backup file expected")
		return subcommands.ExitUsageError
	}
	return c.importBackup(f.Arg(0))
}

func (c *importCmd) importShared() subcommands.ExitStatus {
	sec, err := hunter.SectorFromShareURL(c.url)
	if err != nil {
		return fail(err)
	}

	store := OpenStore()
	// A re-import of the same sector must not clash with the local copy.
	if _, ok := store.Sector(sec.ID); ok {
		sec.ID = sec.ID + "_shared"
	}
	if err := store.AddSector(sec); err != nil {
		return fail(err)
	}
	fmt.Printf("Imported sector %q (%s) with %d stocks\n", sec.ID, sec.Name, len(sec.Stocks))
	return subcommands.ExitSuccess
}

func (c *importCmd) importBackup(path string) subcommands.ExitStatus {
	data, err := os.ReadFile(path)
	if err != nil {
		return fail(err)
	}
	sectors, err := hunter.DecodeBackup(data)
	if err != nil {
		return fail(err)
	}

	store := OpenStore()
	if !c.yes {
		fmt.Printf("Replace the current %d sectors with the %d from %s? [y/N] ",
			len(store.Sectors()), len(sectors), path)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if !strings.HasPrefix(strings.TrimSpace(strings.ToLower(answer)), "y") {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
	}
	if err := store.ReplaceAll(sectors); err != nil {
		return fail(err)
	}
	fmt.Printf("Restored %d sectors from %s\n", len(sectors), path)
	return subcommands.ExitSuccess
}
