package renderer

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/sectorhunter/hunter"
	"github.com/shopspring/decimal"
)

// AnalysisView is the rendered form of an AI sector review.
type AnalysisView struct {
	Commentary     string
	Laggards       []string
	ExitSignals    []string
	WinProbability int
	RiskReward     string
	Sources        []SourceView
}

type SourceView struct {
	URI   string
	Title string
}

// StockRow is one stock of the dashboard table, all cells pre-formatted.
type StockRow struct {
	Symbol  string
	Name    string
	Price   string
	Change  string
	Volume  string
	Score   string
	Badges  string
	Quality string
}

// SectorView is the data behind the sector dashboard report.
type SectorView struct {
	Name              string
	Phase             string
	RotationRisk      float64
	MarketCorrelation string
	TotalChange       string
	Status            string
	Rows              []StockRow
	Analysis          *AnalysisView
}

// NewSectorView prepares a sector for rendering. flashes carries the price
// direction markers still inside their decay window, keyed by symbol.
func NewSectorView(sec hunter.Sector, status hunter.SyncStatus, flashes map[string]hunter.Flash) *SectorView {
	v := &SectorView{
		Name:              sec.Name,
		Phase:             strings.ToUpper(string(sec.Phase)),
		RotationRisk:      sec.RotationRisk,
		MarketCorrelation: decimal.NewFromFloat(sec.MarketCorrelation).StringFixed(2),
		TotalChange:       sec.TotalChangePercent.SignedString(),
		Status:            status.String(),
	}
	for _, s := range sec.Stocks {
		v.Rows = append(v.Rows, stockRow(s, flashes[s.ID]))
	}
	return v
}

func stockRow(s hunter.Stock, flash hunter.Flash) StockRow {
	return StockRow{
		Symbol:  s.ID,
		Name:    s.Name,
		Price:   flashMark(flash) + FormatPrice(s.Price, s.ID),
		Change:  fmt.Sprintf("%s (%s)", decimal.NewFromFloat(s.Change).StringFixed(2), s.ChangePercent.SignedString()),
		Volume:  s.Volume,
		Score:   scoreBadge(s.HunterScore),
		Badges:  badges(s),
		Quality: quality(s),
	}
}

// FormatPrice renders a price in the currency the symbol trades in: Taiwan
// listings in TWD, everything else assumed USD.
func FormatPrice(price float64, symbol string) string {
	code := money.USD
	if hunter.IsTaiwanSymbol(symbol) {
		code = money.TWD
	}
	return money.NewFromFloat(price, code).Display()
}

func scoreBadge(score int) string {
	if score > 85 {
		return fmt.Sprintf("**%d** LOCK-ON", score)
	}
	return fmt.Sprintf("%d", score)
}

func badges(s hunter.Stock) string {
	var b []string
	if s.IsLeader {
		b = append(b, "★ leader")
	}
	if s.DistributionRisk > 80 {
		b = append(b, "⚠ distribution")
	}
	if s.IsStalling {
		b = append(b, "stalling")
	}
	return strings.Join(b, ", ")
}

// quality tells live quotes apart from authored placeholders.
func quality(s hunter.Stock) string {
	if !s.IsRealData {
		return "simulated"
	}
	if s.LastUpdated != "" {
		return "live " + s.LastUpdated
	}
	return "live"
}

func flashMark(f hunter.Flash) string {
	switch f {
	case hunter.FlashUp:
		return "▲ "
	case hunter.FlashDown:
		return "▼ "
	default:
		return ""
	}
}

// HitView is one pre-formatted search result.
type HitView struct {
	Symbol string
	Name   string
	Sector string
	Score  string
}

// HitsView is the data behind the search report.
type HitsView struct {
	Query string
	Hits  []HitView
}

// NewHitsView prepares search results for rendering.
func NewHitsView(query string, hits []hunter.Hit) *HitsView {
	v := &HitsView{Query: query}
	for _, h := range hits {
		v.Hits = append(v.Hits, HitView{
			Symbol: h.Stock.ID,
			Name:   h.Stock.Name,
			Sector: h.SectorName,
			Score:  scoreBadge(h.Stock.HunterScore),
		})
	}
	return v
}

// NewAnalysisView prepares an AI review for rendering.
func NewAnalysisView(commentary string, laggards, exitSignals []string, winProbability int, riskReward string, sources []SourceView) *AnalysisView {
	return &AnalysisView{
		Commentary:     commentary,
		Laggards:       laggards,
		ExitSignals:    exitSignals,
		WinProbability: winProbability,
		RiskReward:     riskReward,
		Sources:        sources,
	}
}
