package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/sectorhunter/hunter"
)

type shareCmd struct {
	base string
	qr   bool
}

func (*shareCmd) Name() string     { return "share" }
func (*shareCmd) Synopsis() string { return "print the share link of a sector" }
func (*shareCmd) Usage() string {
	return `hunt share [-base <url>] [-qr] [sector-id]:
  Print a link encoding the whole sector, ready to be imported by a peer.
`
}
func (c *shareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.base, "base", "https://hunter.local/", "base URL the link points at")
	f.BoolVar(&c.qr, "qr", false, "also print a QR image URL for the link")
}
func (c *shareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()

	var sec hunter.Sector
	var ok bool
	if f.NArg() > 0 {
		sec, ok = store.Sector(f.Arg(0))
	} else {
		sec, ok = store.Active()
	}
	if !ok {
		return fail(fmt.Errorf("no such sector"))
	}

	link, err := hunter.ShareURL(c.base, sec)
	if err != nil {
		return fail(err)
	}
	fmt.Println(link)
	if c.qr {
		fmt.Println(hunter.QRImageURL(link))
	}
	return subcommands.ExitSuccess
}
