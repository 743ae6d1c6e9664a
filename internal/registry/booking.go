package registry

import (
    "context"
    "encoding/json"
    "log"
    "sync"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/store"
)

// BookingStore holds the booking history. New bookings are prepended so
// the most recent one lists first; records are immutable once created.
type BookingStore struct {
    mu    sync.RWMutex
    items []model.Booking
    st    store.Store
}

// NewBookingStore loads the persisted bookings, seeding on first run.
func NewBookingStore(ctx context.Context, st store.Store, seed []model.Booking) *BookingStore {
    s := &BookingStore{st: st}
    data, err := st.Get(ctx, store.KeyBookings)
    if err == nil {
        var items []model.Booking
        if jerr := json.Unmarshal(data, &items); jerr == nil {
            s.items = items
            return s
        }
        log.Printf("booking store: persisted payload unreadable, reseeding: %v", err)
    }
    s.items = append([]model.Booking(nil), seed...)
    s.persist(ctx)
    return s
}

// List returns every booking, most recent first.
func (s *BookingStore) List() []model.Booking {
    s.mu.RLock()
    defer s.mu.RUnlock()
    return append([]model.Booking(nil), s.items...)
}

// ListByUser returns the bookings made by one user.
func (s *BookingStore) ListByUser(userID string) []model.Booking {
    s.mu.RLock()
    defer s.mu.RUnlock()
    var out []model.Booking
    for _, b := range s.items {
        if b.UserID == userID {
            out = append(out, b)
        }
    }
    return out
}

// Add prepends the booking and rewrites the collection.
func (s *BookingStore) Add(ctx context.Context, b model.Booking) {
    s.mu.Lock()
    s.items = append([]model.Booking{b}, s.items...)
    s.mu.Unlock()
    s.persist(ctx)
}

func (s *BookingStore) persist(ctx context.Context) {
    s.mu.RLock()
    data, err := json.Marshal(s.items)
    s.mu.RUnlock()
    if err != nil {
        log.Printf("booking store: marshal failed: %v", err)
        return
    }
    if err := s.st.Set(ctx, store.KeyBookings, data); err != nil {
        log.Printf("booking store: persist failed: %v", err)
    }
}
