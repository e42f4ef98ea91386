package hunter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func fugleTestServer(t *testing.T, goodKey string, rejected *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Fugle-Api-Key") != goodKey {
			if rejected != nil {
				*rejected++
			}
			http.Error(w, `{"message":"rate limit exceeded"}`, http.StatusTooManyRequests)
			return
		}
		if !strings.HasPrefix(r.URL.Path, "/marketdata/v1.0/stock/intraday/quote/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"symbol": "3017",
			"closePrice": 845,
			"change": 12.5,
			"changePercent": 0.0149,
			"lastTrade": {"price": 850},
			"total": {"tradeValue": 18700000000, "tradeVolume": 22000000, "unit": 22000}
		}`))
	}))
}

func newTestFugle(srv *httptest.Server, keys ...string) *FugleProvider {
	p := NewFugleProvider(keys)
	p.client = srv.Client()
	p.host = srv.URL
	p.now = func() time.Time { return time.Date(2026, time.August, 30, 10, 31, 2, 0, time.UTC) }
	return p
}

func TestFugleQuotes(t *testing.T) {
	srv := fugleTestServer(t, "good", nil)
	defer srv.Close()

	patches, err := newTestFugle(srv, "good").Quotes(context.Background(), []string{"3017"})
	if err != nil {
		t.Fatalf("Quotes() = %v", err)
	}
	if len(patches) != 1 {
		t.Fatalf("got %d patches, want 1", len(patches))
	}
	p := patches[0]
	if p.Symbol != "3017" || *p.Price != 850 || *p.Change != 12.5 {
		t.Errorf("patch = %+v", p)
	}
	// The API reports the ratio, the dashboard tracks percent.
	if got := *p.ChangePercent; !got.Equal(1.49) {
		t.Errorf("changePercent = %v, want 1.49", got)
	}
	// Displayed volume is board lots (total.unit), not share count.
	if *p.Volume != "22.0K" {
		t.Errorf("volume = %q, want 22.0K", *p.Volume)
	}
	if *p.LastUpdated != "10:31:02" || !*p.IsRealData {
		t.Errorf("provenance = %q / %v", *p.LastUpdated, *p.IsRealData)
	}
}

func TestFugleKeyRotation(t *testing.T) {
	var rejected int
	srv := fugleTestServer(t, "second", &rejected)
	defer srv.Close()

	p := newTestFugle(srv, "throttled", "second")
	patches, err := p.Quotes(context.Background(), []string{"3017", "3324"})
	if err != nil {
		t.Fatalf("Quotes() = %v", err)
	}
	if len(patches) != 2 {
		t.Fatalf("got %d patches, want 2", len(patches))
	}
	// The first symbol burned the bad key; the second starts on the good one.
	if rejected != 1 {
		t.Errorf("bad key tried %d times, want 1", rejected)
	}
}

func TestFugleAllKeysRejected(t *testing.T) {
	srv := fugleTestServer(t, "none-of-them", nil)
	defer srv.Close()

	patches, err := newTestFugle(srv, "a", "b").Quotes(context.Background(), []string{"3017"})
	// Per-symbol failures never fail the batch.
	if err != nil {
		t.Fatalf("Quotes() = %v", err)
	}
	if len(patches) != 0 {
		t.Errorf("got %d patches, want none", len(patches))
	}
}

func TestFugleNoKeys(t *testing.T) {
	if _, err := NewFugleProvider(nil).Quotes(context.Background(), []string{"3017"}); err == nil {
		t.Error("Quotes() without keys should fail")
	}
}

func TestFormatVolume(t *testing.T) {
	cases := map[float64]string{
		22000:   "22.0K",
		1000:    "1.0K",
		1550:    "1.6K",
		999:     "999",
		0:       "0",
		1234567: "1234.6K",
	}
	for in, want := range cases {
		if got := FormatVolume(in); got != want {
			t.Errorf("FormatVolume(%v) = %q, want %q", in, got, want)
		}
	}
}
