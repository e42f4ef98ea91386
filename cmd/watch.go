package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/subcommands"
	"github.com/sectorhunter/hunter"
	"github.com/sectorhunter/hunter/renderer"
)

type watchCmd struct {
	interval time.Duration
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "keep the active sector dashboard live" }
func (*watchCmd) Usage() string {
	return `hunt watch [-interval 30s]:
  Refresh the active sector on a timer and redraw its dashboard until interrupted.
`
}
func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.interval, "interval", hunter.DefaultSyncInterval, "refresh period")
}
func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	store := OpenStore()
	engine := hunter.NewSyncEngine(store, NewProvider(), c.interval)
	flashes := hunter.NewFlashTracker(hunter.FlashWindow)
	prev := make(map[string]float64)

	engine.Arm(ctx)
	defer engine.Disarm()

	draw := func() {
		engine.Refresh(ctx)
		sec, ok := store.Active()
		if !ok {
			return
		}
		marks := make(map[string]hunter.Flash, len(sec.Stocks))
		for _, s := range sec.Stocks {
			last, seen := prev[s.ID]
			if !seen {
				last = s.Price
			}
			marks[s.ID] = flashes.Observe(s.ID, last, s.Price)
			prev[s.ID] = s.Price
		}
		fmt.Print("\033[H\033[2J")
		printMarkdown(renderer.RenderSector(renderer.NewSectorView(sec, engine.Status(), marks)))
	}

	draw()
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			return subcommands.ExitSuccess
		case <-ticker.C:
			draw()
		}
	}
}
