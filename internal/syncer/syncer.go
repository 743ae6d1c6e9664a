// Package syncer approximates shared state across independently
// running replicas of the facility registry. It is deliberately simple:
// a periodic full resync plus a push-style change notification, with
// last-write-wins semantics and no field-level merging. There is a
// single logical writer per facility in practice, so collisions are
// not expected and not detected.
package syncer

import (
    "context"
    "log"
    "time"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/registry"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/store"
)

// DefaultInterval is the polling cadence.
const DefaultInterval = 2 * time.Second

// Syncer reconciles the facility registry against the persisted
// collection.
type Syncer struct {
    reg      *registry.FacilityRegistry
    st       store.Store
    interval time.Duration

    cancel context.CancelFunc
    done   chan struct{}
}

// New builds a syncer. A non-positive interval falls back to the
// default two seconds.
func New(reg *registry.FacilityRegistry, st store.Store, interval time.Duration) *Syncer {
    if interval <= 0 {
        interval = DefaultInterval
    }
    return &Syncer{reg: reg, st: st, interval: interval}
}

// Start launches the reconciliation loop. Call Stop to tear it down;
// the loop also ends when ctx is cancelled.
func (s *Syncer) Start(ctx context.Context) {
    ctx, s.cancel = context.WithCancel(ctx)
    s.done = make(chan struct{})
    changes := s.st.Watch(ctx, store.KeyFacilities)

    go func() {
        defer close(s.done)
        ticker := time.NewTicker(s.interval)
        defer ticker.Stop()
        for {
            select {
            case <-ctx.Done():
                return
            case <-ticker.C:
                s.reconcile(ctx)
            case data, ok := <-changes:
                // A change notification skips the wait until the next
                // tick; the payload is already the new serialized form.
                if !ok {
                    changes = nil
                    continue
                }
                s.adopt(data)
            }
        }
    }()
}

// Stop tears the loop down and waits for it to exit, so no stale
// callback can mutate the registry afterwards.
func (s *Syncer) Stop() {
    if s.cancel == nil {
        return
    }
    s.cancel()
    <-s.done
}

// reconcile pulls the persisted collection and adopts it wholesale if
// its serialized form differs from the in-memory state.
func (s *Syncer) reconcile(ctx context.Context) {
    data, err := s.st.Get(ctx, store.KeyFacilities)
    if err != nil {
        if err != store.ErrNotFound && ctx.Err() == nil {
            log.Printf("syncer: read failed: %v", err)
        }
        return
    }
    s.adopt(data)
}

func (s *Syncer) adopt(data []byte) {
    if _, err := s.reg.AdoptSerialized(data); err != nil {
        log.Printf("syncer: persisted payload unreadable: %v", err)
    }
}
