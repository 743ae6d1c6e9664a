package model

import (
    "fmt"
    "time"
)

// Review is a visitor-submitted rating and comment for one facility.
// UserName is free text and deliberately not linked to a User record.
// Reviews are append-only: never edited or deleted.
type Review struct {
    ID         string    `json:"id"`
    FacilityID string    `json:"facilityId"`
    UserName   string    `json:"userName"`
    Rating     int       `json:"rating"` // 1-5
    Comment    string    `json:"comment"`
    CreatedAt  time.Time `json:"createdAt"`
}

// Validate checks the invariants enforced at the board boundary.
func (r *Review) Validate() error {
    if r.FacilityID == "" {
        return fmt.Errorf("review: facilityId is required")
    }
    if r.UserName == "" {
        return fmt.Errorf("review: userName is required")
    }
    if r.Rating < 1 || r.Rating > 5 {
        return fmt.Errorf("review: rating must be between 1 and 5")
    }
    return nil
}
