package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/subcommands"
	"github.com/sectorhunter/hunter"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a backup of all sectors" }
func (*exportCmd) Usage() string {
	return `hunt export [-o <file>]:
  Write all sectors to a dated backup file in the current directory.
`
}
func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "backup file name, dated by default")
}
func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Println("no arguments expected")
		return subcommands.ExitUsageError
	}

	store := OpenStore()
	data, err := hunter.EncodeBackup(store.Sectors())
	if err != nil {
		return fail(err)
	}

	name := c.output
	if name == "" {
		name = hunter.BackupFilename(time.Now())
	}
	if err := os.WriteFile(name, data, 0644); err != nil {
		return fail(err)
	}
	abs, _ := filepath.Abs(name)
	fmt.Printf("Exported %d sectors to %s\n", len(store.Sectors()), abs)
	return subcommands.ExitSuccess
}
