package hunter

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
)

// Hit is one stock found by Search, with the sector it belongs to.
type Hit struct {
	SectorID   string
	SectorName string
	Stock      Stock
}

// stockDoc is the flattened view of a stock that gets indexed.
type stockDoc struct {
	Symbol     string  `json:"symbol"`
	Name       string  `json:"name"`
	SectorID   string  `json:"sector_id"`
	SectorName string  `json:"sector_name"`
	Phase      string  `json:"phase"`
	Score      float64 `json:"score"`
}

// Index is an in-memory full-text index over every stock in every sector.
// It is rebuilt from the store on each use and never persisted.
type Index struct {
	index   bleve.Index
	sectors []Sector
}

// NewIndex builds a search index over the given sectors.
func NewIndex(sectors []Sector) (*Index, error) {
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("cannot create search index: %w", err)
	}
	batch := index.NewBatch()
	for _, sec := range sectors {
		for _, s := range sec.Stocks {
			doc := stockDoc{
				Symbol:     strings.ToLower(s.ID),
				Name:       s.Name,
				SectorID:   sec.ID,
				SectorName: sec.Name,
				Phase:      string(sec.Phase),
				Score:      float64(s.HunterScore),
			}
			id := sec.ID + "/" + s.ID
			if err := batch.Index(id, doc); err != nil {
				return nil, fmt.Errorf("cannot index %v: %w", id, err)
			}
		}
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("cannot index stocks: %w", err)
	}
	return &Index{index: index, sectors: sectors}, nil
}

// Close releases the index resources.
func (x *Index) Close() error { return x.index.Close() }

// Search matches the query against symbols, stock names and sector names,
// exact symbol matches first.
func (x *Index) Search(query string) ([]Hit, error) {
	exact := bleve.NewTermQuery(strings.ToLower(query))
	exact.SetField("symbol")
	exact.SetBoost(10.0)

	prefix := bleve.NewPrefixQuery(strings.ToLower(query))
	prefix.SetField("symbol")
	prefix.SetBoost(5.0)

	name := bleve.NewMatchQuery(query)
	name.SetField("name")
	name.SetBoost(3.0)

	sector := bleve.NewMatchQuery(query)
	sector.SetField("sector_name")
	sector.SetBoost(1.5)

	wildcard := bleve.NewWildcardQuery("*" + strings.ToLower(query) + "*")
	wildcard.SetField("symbol")
	wildcard.SetBoost(2.0)

	req := bleve.NewSearchRequest(bleve.NewDisjunctionQuery(exact, prefix, name, sector, wildcard))
	req.Size = 50
	res, err := x.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		sectorID, stockID, ok := strings.Cut(h.ID, "/")
		if !ok {
			continue
		}
		for _, sec := range x.sectors {
			if sec.ID != sectorID {
				continue
			}
			if s := sec.Stock(stockID); s != nil {
				hits = append(hits, Hit{SectorID: sec.ID, SectorName: sec.Name, Stock: *s})
			}
			break
		}
	}
	return hits, nil
}
