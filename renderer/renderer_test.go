package renderer

import (
	"strings"
	"testing"

	"github.com/sectorhunter/hunter"
)

func testSector() hunter.Sector {
	return hunter.Sector{
		ID:                "thermal_mgmt",
		Name:              "散熱族群",
		Phase:             hunter.Climax,
		RotationRisk:      35,
		MarketCorrelation: 0.72,
		Stocks: []hunter.Stock{
			{
				ID: "3017", Name: "奇鋐", Price: 850, Change: 12.5, ChangePercent: 1.49,
				Volume: "22.0K", IsLeader: true, HunterScore: 91, DistributionRisk: 15,
				LastUpdated: "10:31:02", IsRealData: true,
			},
			{
				ID: "3324", Name: "雙鴻", Price: 620, Change: -4, ChangePercent: -0.64,
				Volume: "8.3K", HunterScore: 75, DistributionRisk: 85, IsStalling: true,
			},
		},
	}
}

func TestRenderSector(t *testing.T) {
	v := NewSectorView(testSector(), hunter.StatusOnline, map[string]hunter.Flash{"3017": hunter.FlashUp})
	got := RenderSector(v)

	for _, want := range []string{
		"# 散熱族群 (CLIMAX)",
		"Sync online",
		"| 3017 | 奇鋐 |",
		"▲ ",              // flash marker on the moved price
		"★ leader",        // leader badge
		"**91** LOCK-ON",  // score above the lock-on threshold
		"⚠ distribution",  // distribution risk warning
		"stalling",
		"live 10:31:02",   // provenance of a real quote
		"simulated",       // provenance of an authored placeholder
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered sector is missing %q:\n%s", want, got)
		}
	}
}

func TestRenderSectorWithAnalysis(t *testing.T) {
	v := NewSectorView(testSector(), hunter.StatusOffline, nil)
	v.Analysis = NewAnalysisView("Momentum is broadening.", []string{"3324"}, []string{"3017"},
		80, "1:2.5", []SourceView{{URI: "https://example.com/news", Title: "News"}})

	got := RenderSector(v)
	for _, want := range []string{
		"## AI Review",
		"Momentum is broadening.",
		"**80%**",
		"1:2.5",
		"`3324`",
		"[News](https://example.com/news)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered analysis is missing %q:\n%s", want, got)
		}
	}
}

func TestRenderHits(t *testing.T) {
	sec := testSector()
	got := RenderHits(NewHitsView("奇鋐", []hunter.Hit{
		{SectorID: sec.ID, SectorName: sec.Name, Stock: sec.Stocks[0]},
	}))
	if !strings.Contains(got, "| 3017 | 奇鋐 | 散熱族群 |") {
		t.Errorf("rendered hits table is wrong:\n%s", got)
	}

	empty := RenderHits(NewHitsView("zzz", nil))
	if !strings.Contains(empty, "No match.") {
		t.Errorf("empty search should say so:\n%s", empty)
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(850, "3017"); !strings.Contains(got, "850") {
		t.Errorf("FormatPrice(TW) = %q", got)
	}
	if got := FormatPrice(131.25, "NVDA"); !strings.Contains(got, "131.25") || !strings.Contains(got, "$") {
		t.Errorf("FormatPrice(US) = %q", got)
	}
}
