package model

import (
    "fmt"
    "time"
)

// Role names carried on user records and inside JWT claims.
const (
    RolePlayer = "player"
    RoleOwner  = "owner"
    RoleAdmin  = "admin"
)

// Account status values. A banned user keeps their record but is
// excluded from the active view.
const (
    UserActive = "active"
    UserBanned = "banned"
)

// User represents a platform account. Records are persisted as a JSON
// collection under a single storage key, so the json tags define the
// wire format as well as the persisted one.
//
// Fields:
//  ID             – opaque unique identifier.
//  Email          – sign-in email address.
//  Name           – display name (derived from the email on demo sign-in).
//  Role           – one of player, owner, admin. Immutable after creation.
//  Avatar         – optional avatar URI.
//  Phone          – optional contact phone.
//  FavoriteSports – ordered list of preferred sports.
//  CreatedAt      – creation timestamp.
//  Status         – active or banned.
type User struct {
    ID             string    `json:"id"`
    Email          string    `json:"email"`
    Name           string    `json:"name"`
    Role           string    `json:"role"`
    Avatar         string    `json:"avatar,omitempty"`
    Phone          string    `json:"phone,omitempty"`
    FavoriteSports []string  `json:"favoriteSports,omitempty"`
    CreatedAt      time.Time `json:"createdAt"`
    Status         string    `json:"status"`
}

// ValidRole reports whether the given string is a known role name.
func ValidRole(role string) bool {
    return role == RolePlayer || role == RoleOwner || role == RoleAdmin
}

// Validate checks the invariants enforced at the registry boundary.
func (u *User) Validate() error {
    if u.ID == "" {
        return fmt.Errorf("user: id is required")
    }
    if u.Email == "" {
        return fmt.Errorf("user: email is required")
    }
    if !ValidRole(u.Role) {
        return fmt.Errorf("user: unknown role %q", u.Role)
    }
    if u.Status != UserActive && u.Status != UserBanned {
        return fmt.Errorf("user: unknown status %q", u.Status)
    }
    return nil
}
