package hunter

import (
	"errors"
	"fmt"
)

// Validate checks the creation-time invariants of a sector and returns all
// failures joined. Quote merges later are allowed to move prices freely, so
// the support/resistance ordering is only enforced here.
func (s *Sector) Validate() error {
	var errs error
	if s.ID == "" {
		errs = errors.Join(errs, errors.New("sector has no id"))
	}
	if s.Name == "" {
		errs = errors.Join(errs, errors.New("sector has no name"))
	}
	if !s.Phase.Valid() {
		errs = errors.Join(errs, fmt.Errorf("sector %q: unknown phase %q", s.ID, s.Phase))
	}
	seen := make(map[string]bool, len(s.Stocks))
	leaders := 0
	for i := range s.Stocks {
		st := &s.Stocks[i]
		if st.ID == "" {
			errs = errors.Join(errs, fmt.Errorf("sector %q: stock %d has no id", s.ID, i))
			continue
		}
		if seen[st.ID] {
			errs = errors.Join(errs, fmt.Errorf("sector %q: duplicate stock id %q", s.ID, st.ID))
		}
		seen[st.ID] = true
		if st.IsLeader {
			leaders++
		}
		if st.Price < 0 || st.SupportPrice < 0 || st.ResistancePrice < 0 {
			errs = errors.Join(errs, fmt.Errorf("sector %q: stock %q has a negative price", s.ID, st.ID))
		}
		if st.ResistancePrice <= st.SupportPrice {
			errs = errors.Join(errs, fmt.Errorf("sector %q: stock %q resistance %v is not above support %v", s.ID, st.ID, st.ResistancePrice, st.SupportPrice))
		}
	}
	if len(s.Stocks) > 0 && leaders != 1 {
		errs = errors.Join(errs, fmt.Errorf("sector %q: %d leaders, want exactly one", s.ID, leaders))
	}
	return errs
}
