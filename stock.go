package hunter

// Stock is one tradable instrument tracked within a sector. The first block
// of fields is live market data, the second is derived analytics. Live fields
// are only ever written through a QuotePatch, derived fields only through the
// scoring functions or the authoring form.
type Stock struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Price                float64 `json:"price"`
	Change               float64 `json:"change"`
	ChangePercent        Percent `json:"changePercent"`
	Volume               string  `json:"volume"`
	IsLeader             bool    `json:"isLeader"`
	OpeningFiveMinChange Percent `json:"openingFiveMinChange"`
	VolumeRatio          float64 `json:"volumeRatio"`
	GapPercent           Percent `json:"gapPercent"`
	ConfidenceScore      int     `json:"confidenceScore"`
	DistributionRisk     int     `json:"distributionRisk"`
	IsStalling           bool    `json:"isStalling"`
	RelativeStrength     float64 `json:"relativeStrength"`
	HunterScore          int     `json:"hunterScore"`
	SupportPrice         float64 `json:"supportPrice"`
	ResistancePrice      float64 `json:"resistancePrice"`

	// LastUpdated is a display timestamp (HH:MM:SS) of the last quote merge,
	// and IsRealData records whether that quote came from a live provider.
	// Both are absent until the first merge.
	LastUpdated string `json:"lastUpdated,omitempty"`
	IsRealData  bool   `json:"isRealData,omitempty"`
}

// MarshalJSON writes the stock with a canonical field order so that encoded
// forms are stable across encode/decode round trips.
func (s Stock) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	w.Append("id", s.ID).
		Append("name", s.Name).
		Append("price", s.Price).
		Append("change", s.Change).
		Append("changePercent", s.ChangePercent).
		Append("volume", s.Volume).
		Append("isLeader", s.IsLeader).
		Append("openingFiveMinChange", s.OpeningFiveMinChange).
		Append("volumeRatio", s.VolumeRatio).
		Append("gapPercent", s.GapPercent).
		Append("confidenceScore", s.ConfidenceScore).
		Append("distributionRisk", s.DistributionRisk).
		Append("isStalling", s.IsStalling).
		Append("relativeStrength", s.RelativeStrength).
		Append("hunterScore", s.HunterScore).
		Append("supportPrice", s.SupportPrice).
		Append("resistancePrice", s.ResistancePrice).
		Optional("lastUpdated", s.LastUpdated).
		Optional("isRealData", s.IsRealData)
	return w.MarshalJSON()
}

// QuotePatch is the exhaustive list of fields a live quote is allowed to
// touch. Every field is optional: nil means the provider did not report it
// and the stock keeps its previous value. Derived analytics fields are
// structurally excluded; they are recomputed after the patch is applied.
type QuotePatch struct {
	Symbol               string
	Price                *float64
	Change               *float64
	ChangePercent        *Percent
	OpeningFiveMinChange *Percent
	Volume               *string
	LastUpdated          *string
	IsRealData           *bool
}

// apply copies the present patch fields onto the stock and recomputes the
// hunter score from the resulting momentum inputs.
func (p QuotePatch) apply(s *Stock) {
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.Change != nil {
		s.Change = *p.Change
	}
	if p.ChangePercent != nil {
		s.ChangePercent = *p.ChangePercent
	}
	if p.OpeningFiveMinChange != nil {
		s.OpeningFiveMinChange = *p.OpeningFiveMinChange
	}
	if p.Volume != nil {
		s.Volume = *p.Volume
	}
	if p.LastUpdated != nil {
		s.LastUpdated = *p.LastUpdated
	}
	if p.IsRealData != nil {
		s.IsRealData = *p.IsRealData
	}
	s.HunterScore = HunterScore(s.ChangePercent, s.OpeningFiveMinChange)
}

// helpers to build optional patch fields without temporaries.

func fptr(v float64) *float64 { return &v }
func pptr(v Percent) *Percent { return &v }
func sptr(v string) *string   { return &v }
func bptr(v bool) *bool       { return &v }
