// Package store is the persistence boundary of the platform. Each
// registry serializes its whole collection as JSON and writes it under
// a single key, mirroring a browser local-storage layout. Writes also
// produce a change notification so other replicas (tabs, processes)
// can reconcile without waiting for their next poll.
package store

import (
    "context"
    "errors"
)

// Keys used by the registries. All facilities live under one key, all
// users under one key and so on; reviews are keyed per facility.
const (
    KeyFacilities = "facilities"
    KeyUsers      = "quickcourt_users"
    KeyBookings   = "quickcourt_bookings"
    KeySession    = "quickcourt_user"

    reviewKeyPrefix = "quickcourt_reviews_"
)

// ReviewKey returns the storage key holding the user-submitted reviews
// of one facility.
func ReviewKey(facilityID string) string {
    return reviewKeyPrefix + facilityID
}

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("store: key not found")

// Store is an opaque get/set/remove/on-change capability. Implementations
// must treat values as opaque bytes.
//
// Watch returns a channel delivering the new serialized value after
// each external write to the key. The channel is closed when ctx is
// cancelled. Notifications are best-effort; a periodic full resync is
// still required for correctness.
type Store interface {
    Get(ctx context.Context, key string) ([]byte, error)
    Set(ctx context.Context, key string, value []byte) error
    Remove(ctx context.Context, key string) error
    Watch(ctx context.Context, key string) <-chan []byte
}
