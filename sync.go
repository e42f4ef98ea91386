package hunter

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// SyncStatus is the connectivity verdict of the last completed refresh.
type SyncStatus int

const (
	StatusOffline SyncStatus = iota // no refresh has completed yet
	StatusOnline                    // last refresh delivered at least one quote
	StatusError                     // last refresh delivered nothing
)

func (s SyncStatus) String() string {
	switch s {
	case StatusOnline:
		return "online"
	case StatusError:
		return "error"
	default:
		return "offline"
	}
}

// DefaultSyncInterval is the recurring refresh period for the active sector.
const DefaultSyncInterval = 30 * time.Second

// syncCooldown is the minimum spacing between refresh cycles. Triggers
// arriving faster than this are dropped, not queued.
const syncCooldown = 500 * time.Millisecond

// SyncEngine funnels every refresh trigger (timer tick, sector switch,
// manual request) through one entry point so that at most one fetch cycle
// runs at a time. A trigger arriving while a cycle is in flight collapses
// into a single follow-up cycle instead of piling up.
type SyncEngine struct {
	store    *Store
	provider QuoteProvider
	interval time.Duration
	limiter  *rate.Limiter

	mu          sync.Mutex
	inflight    bool
	pending     bool
	status      SyncStatus
	cancelTimer context.CancelFunc
}

func NewSyncEngine(store *Store, provider QuoteProvider, interval time.Duration) *SyncEngine {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}
	return &SyncEngine{
		store:    store,
		provider: provider,
		interval: interval,
		limiter:  rate.NewLimiter(rate.Every(syncCooldown), 1),
	}
}

func (e *SyncEngine) Status() SyncStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Refresh runs one fetch-and-merge cycle for the active sector. It is the
// single entry point for all triggers: concurrent calls collapse into the
// running cycle plus at most one follow-up, and calls inside the cool-down
// window are dropped.
func (e *SyncEngine) Refresh(ctx context.Context) {
	e.mu.Lock()
	if e.inflight {
		e.pending = true
		e.mu.Unlock()
		return
	}
	if !e.limiter.Allow() {
		e.mu.Unlock()
		return
	}
	e.inflight = true
	e.mu.Unlock()

	for {
		e.runOnce(ctx)
		e.mu.Lock()
		if !e.pending {
			e.inflight = false
			e.mu.Unlock()
			return
		}
		e.pending = false
		e.mu.Unlock()
	}
}

func (e *SyncEngine) runOnce(ctx context.Context) {
	// Capture the active sector before fetching. The id is compared again
	// after the fetch so quotes for a sector the user already left are
	// discarded instead of merged.
	captured, ok := e.store.Active()
	if !ok || len(captured.Stocks) == 0 {
		return
	}
	patches, err := e.provider.Quotes(ctx, captured.Symbols())
	if err != nil {
		log.Printf("sync: refresh of %v failed: %v", captured.ID, err)
		e.setStatus(StatusError)
		return
	}
	if len(patches) == 0 {
		e.setStatus(StatusError)
		return
	}
	if e.store.ActiveID() != captured.ID {
		log.Printf("sync: discarding %d stale quotes for %v", len(patches), captured.ID)
		return
	}
	applied, err := e.store.MergeQuotes(captured.ID, patches)
	if err != nil {
		log.Printf("sync: merge into %v failed: %v", captured.ID, err)
		e.setStatus(StatusError)
		return
	}
	log.Printf("sync: applied %d quotes to %v", applied, captured.ID)
	e.setStatus(StatusOnline)
}

func (e *SyncEngine) setStatus(s SyncStatus) {
	e.mu.Lock()
	e.status = s
	e.mu.Unlock()
}

// Arm starts the recurring refresh timer, replacing any previous one. There
// is never more than one timer alive, whichever sector it was armed for.
func (e *SyncEngine) Arm(ctx context.Context) {
	tctx, cancel := context.WithCancel(ctx)
	e.mu.Lock()
	if e.cancelTimer != nil {
		e.cancelTimer()
	}
	e.cancelTimer = cancel
	e.mu.Unlock()

	go func() {
		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()
		for {
			select {
			case <-tctx.Done():
				return
			case <-ticker.C:
				e.Refresh(tctx)
			}
		}
	}()
}

// Disarm stops the recurring refresh timer if one is running.
func (e *SyncEngine) Disarm() {
	e.mu.Lock()
	if e.cancelTimer != nil {
		e.cancelTimer()
		e.cancelTimer = nil
	}
	e.mu.Unlock()
}

// SwitchSector makes the given sector active, re-arms the timer and kicks
// off an immediate refresh for it.
func (e *SyncEngine) SwitchSector(ctx context.Context, id string) {
	e.store.SetActive(id)
	e.Arm(ctx)
	e.Refresh(ctx)
}
