package hunter

import (
	"fmt"
	"strings"
)

// Phase is the lifecycle stage of a sector.
type Phase string

const (
	Accumulation Phase = "Accumulation"
	Advancing    Phase = "Advancing"
	Climax       Phase = "Climax"
	Distribution Phase = "Distribution"
)

// ParsePhase returns the phase matching the given string, ignoring case.
func ParsePhase(s string) (Phase, error) {
	for _, p := range []Phase{Accumulation, Advancing, Climax, Distribution} {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown sector phase %q", s)
}

// Valid reports whether p is one of the four known phases.
func (p Phase) Valid() bool {
	_, err := ParsePhase(string(p))
	return err == nil
}

// Sector is a named group of related stocks tracked together. Stock order is
// display-significant and preserved across merges and edits.
type Sector struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Phase              Phase   `json:"phase"`
	RotationRisk       float64 `json:"rotationRisk"`
	MarketCorrelation  float64 `json:"marketCorrelation"`
	TotalChangePercent Percent `json:"totalChangePercent"`
	Stocks             []Stock `json:"stocks"`
}

// MarshalJSON writes the sector with a canonical field order.
func (s Sector) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	w.Append("id", s.ID).
		Append("name", s.Name).
		Append("phase", s.Phase).
		Append("rotationRisk", s.RotationRisk).
		Append("marketCorrelation", s.MarketCorrelation).
		Append("totalChangePercent", s.TotalChangePercent).
		Append("stocks", s.Stocks)
	return w.MarshalJSON()
}

// Equal reports field-for-field equality, including stock order.
func (s Sector) Equal(o Sector) bool {
	if s.ID != o.ID || s.Name != o.Name || s.Phase != o.Phase ||
		s.RotationRisk != o.RotationRisk || s.MarketCorrelation != o.MarketCorrelation ||
		s.TotalChangePercent != o.TotalChangePercent || len(s.Stocks) != len(o.Stocks) {
		return false
	}
	for i := range s.Stocks {
		if s.Stocks[i] != o.Stocks[i] {
			return false
		}
	}
	return true
}

// Stock returns a pointer to the stock with the given id, or nil.
func (s *Sector) Stock(id string) *Stock {
	for i := range s.Stocks {
		if s.Stocks[i].ID == id {
			return &s.Stocks[i]
		}
	}
	return nil
}

// Symbols returns the stock ids in display order.
func (s *Sector) Symbols() []string {
	symbols := make([]string, 0, len(s.Stocks))
	for i := range s.Stocks {
		symbols = append(symbols, s.Stocks[i].ID)
	}
	return symbols
}

// Leader returns the current leader stock, or nil for an empty sector.
func (s *Sector) Leader() *Stock {
	for i := range s.Stocks {
		if s.Stocks[i].IsLeader {
			return &s.Stocks[i]
		}
	}
	return nil
}

// SetLeader marks the stock with the given id as the sector leader and
// demotes all others in the same operation. Unknown ids leave the sector
// unchanged.
func (s *Sector) SetLeader(id string) {
	if s.Stock(id) == nil {
		return
	}
	for i := range s.Stocks {
		s.Stocks[i].IsLeader = s.Stocks[i].ID == id
	}
}

// RemoveStock deletes the stock with the given id, preserving the order of
// the remaining stocks, and repairs the leader invariant: removing the
// current leader promotes the first remaining stock.
func (s *Sector) RemoveStock(id string) {
	for i := range s.Stocks {
		if s.Stocks[i].ID == id {
			s.Stocks = append(s.Stocks[:i], s.Stocks[i+1:]...)
			break
		}
	}
	s.repairLeader()
}

// repairLeader restores the single-leader invariant: exactly one leader
// whenever the stock list is non-empty. The first marked leader wins; with
// none marked the first stock is promoted. Called inside every mutation, so
// no intermediate state without a leader is ever observable.
func (s *Sector) repairLeader() {
	if len(s.Stocks) == 0 {
		return
	}
	leader := -1
	for i := range s.Stocks {
		if s.Stocks[i].IsLeader {
			if leader == -1 {
				leader = i
			} else {
				s.Stocks[i].IsLeader = false
			}
		}
	}
	if leader == -1 {
		s.Stocks[0].IsLeader = true
	}
}
