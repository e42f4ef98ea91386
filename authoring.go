package hunter

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// This file implements the manual add/edit merge policy: user input only
// covers the editable fields, everything else is carried forward from the
// previous revision of the same stock, or seeded with fixed defaults.

// Fixed defaults applied to brand-new stocks and sectors.
const (
	defaultHunterScore       = 75
	defaultConfidenceScore   = 70
	defaultDistributionRisk  = 10
	defaultVolumeRatio       = 1.0
	defaultRotationRisk      = 20
	defaultMarketCorrelation = 0.5
	defaultFormPrice         = 100

	// Support and resistance start as a +-5% band around the entered price
	// until real levels are known.
	supportBand    = 0.95
	resistanceBand = 1.05
)

// StockForm is one row of the sector authoring form.
type StockForm struct {
	ID       string
	Name     string
	Price    string // as typed by the user
	IsLeader bool
}

// SectorForm is the user-editable subset of a sector. ID is empty when
// authoring a new sector and carries the existing id on edits.
type SectorForm struct {
	ID     string
	Name   string
	Phase  Phase
	Stocks []StockForm
}

// Build merges the form with the previous revision of the sector (nil for a
// brand-new one) and returns a complete sector. Fields absent from the form
// keep their previous value when the stock id already existed, and get fixed
// defaults otherwise. The leader invariant is repaired as part of the same
// operation.
func (f SectorForm) Build(existing *Sector) (Sector, error) {
	if f.Name == "" {
		return Sector{}, errors.New("sector name is required")
	}
	for i, row := range f.Stocks {
		if row.ID == "" || row.Name == "" {
			return Sector{}, fmt.Errorf("stock row %d: id and name are required", i+1)
		}
	}

	sec := Sector{
		ID:                f.ID,
		Name:              f.Name,
		Phase:             f.Phase,
		RotationRisk:      defaultRotationRisk,
		MarketCorrelation: defaultMarketCorrelation,
	}
	if sec.ID == "" {
		sec.ID = "custom_" + uuid.NewString()
	}
	if sec.Phase == "" {
		sec.Phase = Accumulation
	}
	if existing != nil {
		sec.RotationRisk = existing.RotationRisk
		sec.MarketCorrelation = existing.MarketCorrelation
		sec.TotalChangePercent = existing.TotalChangePercent
	}

	sec.Stocks = make([]Stock, 0, len(f.Stocks))
	for _, row := range f.Stocks {
		price := parseFormPrice(row.Price)
		var prev *Stock
		if existing != nil {
			prev = existing.Stock(row.ID)
		}
		if prev != nil {
			// Carry the previous live and derived fields forward, the form
			// only owns name, price and the leader mark.
			st := *prev
			st.Name = row.Name
			st.Price = price
			st.IsLeader = row.IsLeader
			sec.Stocks = append(sec.Stocks, st)
			continue
		}
		sec.Stocks = append(sec.Stocks, Stock{
			ID:               row.ID,
			Name:             row.Name,
			Price:            price,
			Volume:           "0",
			IsLeader:         row.IsLeader,
			VolumeRatio:      defaultVolumeRatio,
			ConfidenceScore:  defaultConfidenceScore,
			DistributionRisk: defaultDistributionRisk,
			HunterScore:      defaultHunterScore,
			SupportPrice:     price * supportBand,
			ResistancePrice:  price * resistanceBand,
		})
	}
	sec.repairLeader()

	if err := sec.Validate(); err != nil {
		return Sector{}, err
	}
	return sec, nil
}

// parseFormPrice parses a user-entered price. Empty or unparseable input
// falls back to a nominal price, matching the permissive authoring form.
func parseFormPrice(s string) float64 {
	if s == "" {
		return defaultFormPrice
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return defaultFormPrice
	}
	v, _ := d.Float64()
	return v
}
