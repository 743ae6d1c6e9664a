package model

import (
    "fmt"
    "time"
)

// Publication lifecycle of a facility. Owners create facilities in the
// pending state; an admin moves them to approved or rejected. Only
// approved facilities are visible in the player catalog.
const (
    StatusPending  = "pending"
    StatusApproved = "approved"
    StatusRejected = "rejected"
)

// Facility is a bookable sports venue. The whole facility collection is
// persisted as one JSON document, so every mutation rewrites the
// collection.
type Facility struct {
    ID           string    `json:"id"`
    Name         string    `json:"name"`
    Location     string    `json:"location"`
    Description  string    `json:"description"`
    Sports       []string  `json:"sports"`
    Amenities    []string  `json:"amenities"`
    Images       []string  `json:"images"` // first entry is the primary image
    Rating       float64   `json:"rating"`
    PricePerHour float64   `json:"pricePerHour"`
    OwnerID      string    `json:"ownerId"`
    Status       string    `json:"status"`
    CreatedAt    time.Time `json:"createdAt"`
}

// Validate checks the invariants enforced at the registry boundary.
func (f *Facility) Validate() error {
    if f.ID == "" {
        return fmt.Errorf("facility: id is required")
    }
    if f.Name == "" {
        return fmt.Errorf("facility: name is required")
    }
    if len(f.Sports) == 0 {
        return fmt.Errorf("facility: at least one sport is required")
    }
    if f.PricePerHour <= 0 {
        return fmt.Errorf("facility: pricePerHour must be positive")
    }
    if f.Rating < 0 || f.Rating > 5 {
        return fmt.Errorf("facility: rating must be between 0 and 5")
    }
    switch f.Status {
    case StatusPending, StatusApproved, StatusRejected:
    default:
        return fmt.Errorf("facility: unknown status %q", f.Status)
    }
    return nil
}
