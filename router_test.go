package hunter

import (
	"context"
	"testing"
)

func TestIsTaiwanSymbol(t *testing.T) {
	cases := map[string]bool{
		"3017":   true,
		"2330":   true,
		"NVDA":   false,
		"00940B": false,
		"":       false,
	}
	for symbol, want := range cases {
		if got := IsTaiwanSymbol(symbol); got != want {
			t.Errorf("IsTaiwanSymbol(%q) = %v, want %v", symbol, got, want)
		}
	}
}

func TestRoutedProviderSplitsBySymbol(t *testing.T) {
	tw := &fakeProvider{patches: []QuotePatch{{Symbol: "3017"}}}
	us := &fakeProvider{patches: []QuotePatch{{Symbol: "NVDA"}}}
	r := &RoutedProvider{Taiwan: tw, Fallback: us}

	patches, err := r.Quotes(context.Background(), []string{"3017", "NVDA", "2330"})
	if err != nil {
		t.Fatalf("Quotes() = %v", err)
	}
	if len(patches) != 2 {
		t.Fatalf("got %d patches, want 2", len(patches))
	}
	if tw.calls.Load() != 1 || us.calls.Load() != 1 {
		t.Errorf("calls = %d taiwan / %d fallback, want 1 each", tw.calls.Load(), us.calls.Load())
	}
}

func TestRoutedProviderAllTaiwan(t *testing.T) {
	tw := &fakeProvider{patches: []QuotePatch{{Symbol: "3017"}}}
	us := &fakeProvider{}
	r := &RoutedProvider{Taiwan: tw, Fallback: us}

	if _, err := r.Quotes(context.Background(), []string{"3017", "3324"}); err != nil {
		t.Fatalf("Quotes() = %v", err)
	}
	if us.calls.Load() != 0 {
		t.Error("fallback called for a Taiwan-only batch")
	}
}

func TestRoutedProviderPartialBatchIsNotAnError(t *testing.T) {
	tw := &fakeProvider{patches: []QuotePatch{{Symbol: "3017"}}}
	us := &fakeProvider{err: context.DeadlineExceeded}
	r := &RoutedProvider{Taiwan: tw, Fallback: us}

	patches, err := r.Quotes(context.Background(), []string{"3017", "NVDA"})
	if err != nil {
		t.Fatalf("Quotes() = %v, a partial batch is still a batch", err)
	}
	if len(patches) != 1 {
		t.Errorf("got %d patches, want the Taiwan one", len(patches))
	}
}
