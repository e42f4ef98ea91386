package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sectorhunter/hunter"
	"github.com/sectorhunter/hunter/agent"
	"github.com/sectorhunter/hunter/renderer"
	"google.golang.org/genai"
)

type analyzeCmd struct{}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "run an AI review of a sector" }
func (*analyzeCmd) Usage() string {
	return `hunt analyze [sector-id]:
  Review the sector with Gemini, grounded on today's news, and show the
  dashboard with the verdict.
`
}
func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {}
func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analysis, err := agent.NewAnalyst(client).Analyze(ctx, sec)
	if err != nil {
		return fail(err)
	}

	view := renderer.NewSectorView(sec, hunter.StatusOffline, nil)
	var sources []renderer.SourceView
	for _, s := range analysis.Sources {
		sources = append(sources, renderer.SourceView{URI: s.URI, Title: s.Title})
	}
	view.Analysis = renderer.NewAnalysisView(analysis.Commentary, analysis.SuggestedLaggards,
		analysis.ExitSignals, analysis.WinProbability, analysis.RiskReward, sources)
	printMarkdown(renderer.RenderSector(view))
	return subcommands.ExitSuccess
}
