package agent

import (
	"strings"
	"testing"

	"github.com/sectorhunter/hunter"
)

func TestWatchlistLookup(t *testing.T) {
	store := hunter.NewStore(t.TempDir())
	store.Load()

	out, err := watchlistLookup(store, "$[0].id")
	if err != nil {
		t.Fatalf("watchlistLookup() = %v", err)
	}
	if out != `"us_ai_concepts"` {
		t.Errorf("lookup = %s, want the first seed sector id", out)
	}

	out, err = watchlistLookup(store, "$")
	if err != nil {
		t.Fatalf("watchlistLookup($) = %v", err)
	}
	if !strings.Contains(out, "thermal_mgmt") {
		t.Errorf("full lookup is missing sectors: %s", out)
	}

	if _, err := watchlistLookup(store, "not a path"); err == nil {
		t.Error("watchlistLookup() accepted a bad path")
	}
}
