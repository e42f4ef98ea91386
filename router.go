package hunter

import "context"

// RoutedProvider splits a batch between two providers: plain numeric
// symbols are Taiwan listings, everything else goes to the fallback.
type RoutedProvider struct {
	Taiwan   QuoteProvider
	Fallback QuoteProvider
}

func (p *RoutedProvider) Quotes(ctx context.Context, symbols []string) ([]QuotePatch, error) {
	var tw, other []string
	for _, s := range symbols {
		if IsTaiwanSymbol(s) {
			tw = append(tw, s)
		} else {
			other = append(other, s)
		}
	}
	var patches []QuotePatch
	var firstErr error
	if len(tw) > 0 && p.Taiwan != nil {
		got, err := p.Taiwan.Quotes(ctx, tw)
		patches = append(patches, got...)
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if len(other) > 0 && p.Fallback != nil {
		got, err := p.Fallback.Quotes(ctx, other)
		patches = append(patches, got...)
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	// A partial batch is still a batch.
	if len(patches) > 0 {
		return patches, nil
	}
	return nil, firstErr
}

// IsTaiwanSymbol reports whether the symbol names a Taiwan listing. Taiwan
// tickers are plain digits; anything with a letter goes elsewhere.
func IsTaiwanSymbol(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
