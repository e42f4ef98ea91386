package hunter

import (
	"math"
	"sync"
	"time"
)

// This file holds the pure scoring functions. They are deterministic and
// side-effect free so they can be recomputed on every merge.

// Hunter score v1 weighting. Earlier revisions of the heuristic shipped with
// different constants; v1 is the canonical one: a neutral baseline plus the
// day change weighted 5x and the opening five minute move weighted 2x,
// floored and clamped to [0,100].
const (
	scoreBaseline      = 70
	scoreChangeWeight  = 5
	scoreOpeningWeight = 2
)

// HunterScore derives the 0-100 momentum heuristic from the day change and
// the move since session open. Identical inputs always yield identical
// output.
func HunterScore(changePercent, openingFiveMinChange Percent) int {
	raw := scoreBaseline +
		scoreChangeWeight*float64(changePercent) +
		scoreOpeningWeight*float64(openingFiveMinChange)
	score := int(math.Floor(raw))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Flash is the transient visual classification of a price change.
type Flash int

const (
	FlashNone Flash = iota
	FlashUp
	FlashDown
)

func (f Flash) String() string {
	switch f {
	case FlashUp:
		return "up"
	case FlashDown:
		return "down"
	}
	return "none"
}

// ClassifyPriceFlash compares two prices: strictly increasing is up,
// strictly decreasing is down, equal is none.
func ClassifyPriceFlash(previous, next float64) Flash {
	switch {
	case next > previous:
		return FlashUp
	case next < previous:
		return FlashDown
	}
	return FlashNone
}

// FlashWindow is how long a non-none classification stays visible without
// further price changes.
const FlashWindow = 800 * time.Millisecond

// FlashTracker keeps the expiring flash classification per symbol,
// independent of any rendering cycle. A same-direction repeated change
// restarts the decay window, a reversal reclassifies immediately.
type FlashTracker struct {
	mu     sync.Mutex
	window time.Duration
	now    func() time.Time
	states map[string]flashState
}

type flashState struct {
	flash Flash
	until time.Time
}

// NewFlashTracker returns a tracker with the given decay window; zero means
// the default FlashWindow.
func NewFlashTracker(window time.Duration) *FlashTracker {
	if window <= 0 {
		window = FlashWindow
	}
	return &FlashTracker{
		window: window,
		now:    time.Now,
		states: make(map[string]flashState),
	}
}

// Observe records a price transition for a symbol and returns its
// classification. An equal price leaves any running window untouched.
func (t *FlashTracker) Observe(symbol string, previous, next float64) Flash {
	flash := ClassifyPriceFlash(previous, next)
	if flash == FlashNone {
		return t.Current(symbol)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.states[symbol] = flashState{flash: flash, until: t.now().Add(t.window)}
	return flash
}

// Current returns the live classification for a symbol, reverting to none
// once the decay window has elapsed.
func (t *FlashTracker) Current(symbol string) Flash {
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.states[symbol]
	if !ok {
		return FlashNone
	}
	if !t.now().Before(st.until) {
		delete(t.states, symbol)
		return FlashNone
	}
	return st.flash
}
