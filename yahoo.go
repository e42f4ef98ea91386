package hunter

import (
	"context"
	"log"
	"time"

	"github.com/piquette/finance-go/quote"
)

// YahooProvider fetches quotes from Yahoo Finance. It is the fallback
// provider for symbols outside the Taiwan market and needs no credentials.
type YahooProvider struct {
	now func() time.Time
}

func NewYahooProvider() *YahooProvider {
	return &YahooProvider{now: time.Now}
}

func (p *YahooProvider) Quotes(ctx context.Context, symbols []string) ([]QuotePatch, error) {
	patches := make([]QuotePatch, 0, len(symbols))
	for _, symbol := range symbols {
		if err := ctx.Err(); err != nil {
			return patches, err
		}
		q, err := quote.Get(symbol)
		if err != nil {
			log.Printf("yahoo: skipping %v: %v", symbol, err)
			continue
		}
		if q == nil || q.RegularMarketPrice == 0 {
			log.Printf("yahoo: skipping %v: no market price", symbol)
			continue
		}
		patches = append(patches, QuotePatch{
			Symbol:        symbol,
			Price:         fptr(q.RegularMarketPrice),
			Change:        fptr(q.RegularMarketChange),
			ChangePercent: pptr(Percent(q.RegularMarketChangePercent)),
			Volume:        sptr(FormatVolume(float64(q.RegularMarketVolume))),
			LastUpdated:   sptr(p.now().Format("15:04:05")),
			IsRealData:    bptr(true),
		})
	}
	return patches, nil
}
