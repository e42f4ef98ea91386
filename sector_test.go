package hunter

import "testing"

func TestSetLeaderDemotesOthers(t *testing.T) {
	sec := sampleSector()

	sec.SetLeader("3324")
	if got := sec.Leader(); got == nil || got.ID != "3324" {
		t.Fatalf("Leader() = %+v, want 3324", got)
	}
	count := 0
	for _, s := range sec.Stocks {
		if s.IsLeader {
			count++
		}
	}
	if count != 1 {
		t.Errorf("leader count = %d, want exactly 1", count)
	}
}

func TestSetLeaderUnknownKeepsInvariant(t *testing.T) {
	sec := sampleSector()

	sec.SetLeader("no_such_stock")
	if got := sec.Leader(); got == nil {
		t.Error("Leader() = nil after setting an unknown leader, invariant broken")
	}
}

func TestRemoveLeaderPromotesAnother(t *testing.T) {
	sec := sampleSector()

	sec.RemoveStock("3017")
	if len(sec.Stocks) != 1 {
		t.Fatalf("stocks = %d, want 1", len(sec.Stocks))
	}
	if got := sec.Leader(); got == nil || got.ID != "3324" {
		t.Errorf("Leader() = %+v, want promotion of the remaining stock", got)
	}
}

func TestRemoveLastStock(t *testing.T) {
	sec := sampleSector()
	sec.RemoveStock("3017")
	sec.RemoveStock("3324")
	if len(sec.Stocks) != 0 {
		t.Fatalf("stocks = %d, want none", len(sec.Stocks))
	}
	if err := sec.Validate(); err != nil {
		t.Errorf("an empty sector must stay valid: %v", err)
	}
}

func TestRepairLeaderKeepsFirstMarked(t *testing.T) {
	sec := sampleSector()
	// Corrupt the invariant: both stocks marked.
	sec.Stocks[0].IsLeader = true
	sec.Stocks[1].IsLeader = true

	sec.repairLeader()
	if !sec.Stocks[0].IsLeader || sec.Stocks[1].IsLeader {
		t.Errorf("repairLeader() should keep the first marked leader: %+v", sec.Stocks)
	}
}

func TestValidateRejectsDuplicateStocks(t *testing.T) {
	sec := sampleSector()
	sec.Stocks = append(sec.Stocks, sec.Stocks[0])
	sec.repairLeader()
	if err := sec.Validate(); err == nil {
		t.Error("Validate() accepted duplicate stock ids")
	}
}

func TestSymbols(t *testing.T) {
	sec := sampleSector()
	got := sec.Symbols()
	if len(got) != 2 || got[0] != "3017" || got[1] != "3324" {
		t.Errorf("Symbols() = %v", got)
	}
}
