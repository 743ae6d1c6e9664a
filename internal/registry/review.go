package registry

import (
    "context"
    "encoding/json"
    "log"
    "sync"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/store"
)

// ReviewBoard serves the per-facility review lists. Seed reviews are
// static; user-submitted reviews are persisted per facility key and
// merged after the seed entries on every read. Entries are append-only.
type ReviewBoard struct {
    mu   sync.Mutex
    st   store.Store
    seed []model.Review
}

// NewReviewBoard builds a board over the given store and seed set.
func NewReviewBoard(st store.Store, seed []model.Review) *ReviewBoard {
    return &ReviewBoard{st: st, seed: seed}
}

// ListByFacility returns the merged review list for one facility: seed
// entries first, then persisted user submissions in insertion order.
func (b *ReviewBoard) ListByFacility(ctx context.Context, facilityID string) []model.Review {
    var out []model.Review
    for _, r := range b.seed {
        if r.FacilityID == facilityID {
            out = append(out, r)
        }
    }
    out = append(out, b.persisted(ctx, facilityID)...)
    return out
}

// Add validates and appends a review to the facility's persisted list.
func (b *ReviewBoard) Add(ctx context.Context, review model.Review) error {
    if err := review.Validate(); err != nil {
        return err
    }
    b.mu.Lock()
    defer b.mu.Unlock()
    items := b.persisted(ctx, review.FacilityID)
    items = append(items, review)
    data, err := json.Marshal(items)
    if err != nil {
        log.Printf("review board: marshal failed: %v", err)
        return nil
    }
    if err := b.st.Set(ctx, store.ReviewKey(review.FacilityID), data); err != nil {
        log.Printf("review board: persist failed: %v", err)
    }
    return nil
}

func (b *ReviewBoard) persisted(ctx context.Context, facilityID string) []model.Review {
    data, err := b.st.Get(ctx, store.ReviewKey(facilityID))
    if err != nil {
        return nil
    }
    var items []model.Review
    if err := json.Unmarshal(data, &items); err != nil {
        log.Printf("review board: persisted payload unreadable for %s: %v", facilityID, err)
        return nil
    }
    return items
}
