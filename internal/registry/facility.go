// Package registry contains the in-memory collection managers backing
// the platform. Each registry owns exactly one collection and one
// storage key; every mutation rewrites the whole collection through the
// store. Persistence failures are logged and swallowed so the service
// keeps running on its in-memory state (durability degrades silently,
// which is acceptable for this demo-grade system). Not-found conditions
// are reported with ErrNotFound rather than absorbed as no-ops.
package registry

import (
    "bytes"
    "context"
    "encoding/json"
    "errors"
    "log"
    "sync"
    "time"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/store"
)

// ErrNotFound is returned when an update or delete names an unknown id.
var ErrNotFound = errors.New("registry: record not found")

// FacilityPatch carries the fields an update may change. Nil fields are
// left untouched, so an empty patch is a no-op that leaves the record
// byte-for-byte equal to before.
type FacilityPatch struct {
    Name         *string   `json:"name"`
    Location     *string   `json:"location"`
    Description  *string   `json:"description"`
    Sports       *[]string `json:"sports"`
    Amenities    *[]string `json:"amenities"`
    Images       *[]string `json:"images"`
    Rating       *float64  `json:"rating"`
    PricePerHour *float64  `json:"pricePerHour"`
    Status       *string   `json:"status"`
}

// FacilityRegistry manages the facility collection. It is seeded from
// static data, merged with whatever the store already holds, and
// reconciled against the seed again on Refresh.
type FacilityRegistry struct {
    mu    sync.RWMutex
    items []model.Facility

    st   store.Store
    seed []model.Facility

    refreshing   bool
    refreshDelay time.Duration
}

// NewFacilityRegistry loads the persisted collection, falling back to
// the seed when the store is empty or the payload does not parse.
func NewFacilityRegistry(ctx context.Context, st store.Store, seed []model.Facility) *FacilityRegistry {
    r := &FacilityRegistry{st: st, seed: seed, refreshDelay: 500 * time.Millisecond}
    data, err := st.Get(ctx, store.KeyFacilities)
    if err == nil {
        var items []model.Facility
        if jerr := json.Unmarshal(data, &items); jerr == nil {
            r.items = items
            return r
        }
        log.Printf("facility registry: persisted payload unreadable, reseeding: %v", err)
    }
    r.items = append([]model.Facility(nil), seed...)
    r.persist(ctx)
    return r
}

// SetRefreshDelay overrides the artificial delay the refreshing flag
// stays up after a Refresh. Used by tests.
func (r *FacilityRegistry) SetRefreshDelay(d time.Duration) {
    r.mu.Lock()
    r.refreshDelay = d
    r.mu.Unlock()
}

// List returns every known facility regardless of status.
func (r *FacilityRegistry) List() []model.Facility {
    r.mu.RLock()
    defer r.mu.RUnlock()
    return append([]model.Facility(nil), r.items...)
}

// Approved returns the player-facing catalog view. It is a derived
// filter, not a separate store: a facility appears here the moment its
// status flips to approved.
func (r *FacilityRegistry) Approved() []model.Facility {
    r.mu.RLock()
    defer r.mu.RUnlock()
    out := make([]model.Facility, 0, len(r.items))
    for _, f := range r.items {
        if f.Status == model.StatusApproved {
            out = append(out, f)
        }
    }
    return out
}

// ByID returns the facility with the given id.
func (r *FacilityRegistry) ByID(id string) (model.Facility, error) {
    r.mu.RLock()
    defer r.mu.RUnlock()
    for _, f := range r.items {
        if f.ID == id {
            return f, nil
        }
    }
    return model.Facility{}, ErrNotFound
}

// Create validates the facility and prepends it to the collection.
func (r *FacilityRegistry) Create(ctx context.Context, f model.Facility) error {
    if err := f.Validate(); err != nil {
        return err
    }
    r.mu.Lock()
    r.items = append([]model.Facility{f}, r.items...)
    r.mu.Unlock()
    r.persist(ctx)
    return nil
}

// Update merges the patch into the matching record. Unknown ids are
// reported with ErrNotFound.
func (r *FacilityRegistry) Update(ctx context.Context, id string, patch FacilityPatch) error {
    r.mu.Lock()
    idx := -1
    for i := range r.items {
        if r.items[i].ID == id {
            idx = i
            break
        }
    }
    if idx < 0 {
        r.mu.Unlock()
        return ErrNotFound
    }
    f := &r.items[idx]
    if patch.Name != nil {
        f.Name = *patch.Name
    }
    if patch.Location != nil {
        f.Location = *patch.Location
    }
    if patch.Description != nil {
        f.Description = *patch.Description
    }
    if patch.Sports != nil {
        f.Sports = *patch.Sports
    }
    if patch.Amenities != nil {
        f.Amenities = *patch.Amenities
    }
    if patch.Images != nil {
        f.Images = *patch.Images
    }
    if patch.Rating != nil {
        f.Rating = *patch.Rating
    }
    if patch.PricePerHour != nil {
        f.PricePerHour = *patch.PricePerHour
    }
    if patch.Status != nil {
        f.Status = *patch.Status
    }
    if err := f.Validate(); err != nil {
        r.mu.Unlock()
        return err
    }
    r.mu.Unlock()
    r.persist(ctx)
    return nil
}

// Delete removes the matching record, reporting ErrNotFound when absent.
func (r *FacilityRegistry) Delete(ctx context.Context, id string) error {
    r.mu.Lock()
    idx := -1
    for i := range r.items {
        if r.items[i].ID == id {
            idx = i
            break
        }
    }
    if idx < 0 {
        r.mu.Unlock()
        return ErrNotFound
    }
    r.items = append(r.items[:idx], r.items[idx+1:]...)
    r.mu.Unlock()
    r.persist(ctx)
    return nil
}

// Approve flips the facility into the player catalog.
func (r *FacilityRegistry) Approve(ctx context.Context, id string) error {
    status := model.StatusApproved
    return r.Update(ctx, id, FacilityPatch{Status: &status})
}

// Reject marks the facility as rejected.
func (r *FacilityRegistry) Reject(ctx context.Context, id string) error {
    status := model.StatusRejected
    return r.Update(ctx, id, FacilityPatch{Status: &status})
}

// Refresh reconciles the collection as "seed union persisted records
// not present in the seed, by id" and rewrites both the in-memory and
// the persisted state. It exists as the explicit repair operation for
// drift between the seed and accumulated user data. The refreshing
// flag stays up for a short artificial delay for UI feedback.
func (r *FacilityRegistry) Refresh(ctx context.Context) {
    r.mu.Lock()
    r.refreshing = true
    delay := r.refreshDelay
    r.mu.Unlock()

    var persisted []model.Facility
    if data, err := r.st.Get(ctx, store.KeyFacilities); err == nil {
        if jerr := json.Unmarshal(data, &persisted); jerr != nil {
            log.Printf("facility registry: refresh could not parse persisted payload: %v", jerr)
            persisted = nil
        }
    }

    seedIDs := make(map[string]bool, len(r.seed))
    for _, f := range r.seed {
        seedIDs[f.ID] = true
    }
    merged := append([]model.Facility(nil), r.seed...)
    for _, f := range persisted {
        if !seedIDs[f.ID] {
            merged = append(merged, f)
        }
    }

    r.mu.Lock()
    r.items = merged
    r.mu.Unlock()
    r.persist(ctx)

    time.AfterFunc(delay, func() {
        r.mu.Lock()
        r.refreshing = false
        r.mu.Unlock()
    })
}

// IsRefreshing reports whether a Refresh is still in its feedback window.
func (r *FacilityRegistry) IsRefreshing() bool {
    r.mu.RLock()
    defer r.mu.RUnlock()
    return r.refreshing
}

// AdoptSerialized replaces the in-memory state wholesale with the given
// serialized collection when it differs from the current one. This is
// the synchronizer's entry point: no field-level merge, no conflict
// resolution, last writer via the store wins. It reports whether the
// state changed.
func (r *FacilityRegistry) AdoptSerialized(data []byte) (bool, error) {
    if len(data) == 0 {
        return false, nil
    }
    var incoming []model.Facility
    if err := json.Unmarshal(data, &incoming); err != nil {
        return false, err
    }
    r.mu.Lock()
    defer r.mu.Unlock()
    current, err := json.Marshal(r.items)
    if err == nil && bytes.Equal(current, data) {
        return false, nil
    }
    r.items = incoming
    return true, nil
}

// persist rewrites the whole collection. Failures are logged, never
// surfaced: callers already applied the mutation in memory.
func (r *FacilityRegistry) persist(ctx context.Context) {
    r.mu.RLock()
    data, err := json.Marshal(r.items)
    r.mu.RUnlock()
    if err != nil {
        log.Printf("facility registry: marshal failed: %v", err)
        return
    }
    if err := r.st.Set(ctx, store.KeyFacilities, data); err != nil {
        log.Printf("facility registry: persist failed: %v", err)
    }
}
