package hunter

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

const fugleHost = "https://api.fugle.tw"

var fugleAPIKeys = flag.String("fugle-api-keys", "", "space-separated Fugle API keys, overrides HUNTER_FUGLE_KEYS")

// FugleKeys returns the configured Fugle API keys, flag first then
// environment. The value may be given either as plain space-separated keys
// or as a single base64 blob of the same.
func FugleKeys() []string {
	raw := *fugleAPIKeys
	if raw == "" {
		raw = os.Getenv("HUNTER_FUGLE_KEYS")
	}
	if raw == "" {
		return nil
	}
	if decoded, err := base64.StdEncoding.DecodeString(raw); err == nil && len(decoded) > 0 {
		raw = string(decoded)
	}
	return strings.Fields(raw)
}

// FugleProvider fetches Taiwan market quotes from the Fugle intraday REST
// API, one request per symbol, rotating across keys when one is rejected or
// throttled.
type FugleProvider struct {
	client *http.Client
	host   string
	keys   []string
	key    int // index of the key currently in use
	now    func() time.Time
}

func NewFugleProvider(keys []string) *FugleProvider {
	return &FugleProvider{
		client: http.DefaultClient,
		host:   fugleHost,
		keys:   keys,
		now:    time.Now,
	}
}

// fugleQuote is the subset of the intraday quote payload the dashboard uses.
type fugleQuote struct {
	Symbol        string  `json:"symbol"`
	ClosePrice    float64 `json:"closePrice"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	LastTrade     struct {
		Price float64 `json:"price"`
	} `json:"lastTrade"`
	Total struct {
		// Unit is the cumulative traded volume in board lots, the figure
		// the dashboard displays.
		Unit float64 `json:"unit"`
	} `json:"total"`
}

func (p *FugleProvider) Quotes(ctx context.Context, symbols []string) ([]QuotePatch, error) {
	if len(p.keys) == 0 {
		return nil, fmt.Errorf("no fugle api keys configured")
	}
	patches := make([]QuotePatch, 0, len(symbols))
	for _, symbol := range symbols {
		q, err := p.quote(ctx, symbol)
		if err != nil {
			log.Printf("fugle: skipping %v: %v", symbol, err)
			continue
		}
		price := q.LastTrade.Price
		if price == 0 {
			price = q.ClosePrice
		}
		if price == 0 {
			log.Printf("fugle: skipping %v: no trade price yet", symbol)
			continue
		}
		patches = append(patches, QuotePatch{
			Symbol:        symbol,
			Price:         fptr(price),
			Change:        fptr(q.Change),
			ChangePercent: pptr(Percent(q.ChangePercent * 100)),
			Volume:        sptr(FormatVolume(q.Total.Unit)),
			LastUpdated:   sptr(p.now().Format("15:04:05")),
			IsRealData:    bptr(true),
		})
	}
	return patches, nil
}

// quote fetches one symbol, trying each key at most once starting from the
// one that last worked.
func (p *FugleProvider) quote(ctx context.Context, symbol string) (*fugleQuote, error) {
	addr := fmt.Sprintf("%v/marketdata/v1.0/stock/intraday/quote/%v", p.host, symbol)
	var lastErr error
	for try := 0; try < len(p.keys); try++ {
		key := p.keys[(p.key+try)%len(p.keys)]
		q := new(fugleQuote)
		err := jwget(ctx, p.client, addr, map[string]string{"X-Fugle-Api-Key": key}, q)
		if err == nil {
			p.key = (p.key + try) % len(p.keys)
			return q, nil
		}
		lastErr = err
		if serr, ok := err.(*httpStatusError); !ok || !serr.throttled() {
			return nil, err
		}
	}
	return nil, fmt.Errorf("all %d fugle keys rejected: %w", len(p.keys), lastErr)
}
