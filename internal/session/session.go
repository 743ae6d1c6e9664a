// Package session holds the current demo user. Sign-in is a stub:
// any email succeeds and a user record is synthesized on the spot.
// The record mirrors into the persistent store so a restart (the page
// reload of this build) restores it.
package session

import (
    "context"
    "encoding/json"
    "fmt"
    "log"
    "strings"
    "sync"
    "time"

    "github.com/google/uuid"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/store"
)

// Session is the current-user holder.
type Session struct {
    mu   sync.RWMutex
    user *model.User
    st   store.Store
}

// New builds an empty session over the given store.
func New(st store.Store) *Session {
    return &Session{st: st}
}

// Login always succeeds. It synthesizes a user from the email (the
// display name is the local part) and mirrors it into the store.
// Persistence failures are logged and swallowed; the session itself is
// established either way.
func (s *Session) Login(ctx context.Context, email, role string) (model.User, error) {
    email = strings.ToLower(strings.TrimSpace(email))
    if email == "" {
        return model.User{}, fmt.Errorf("session: email is required")
    }
    if role == "" {
        role = model.RolePlayer
    }
    if !model.ValidRole(role) {
        return model.User{}, fmt.Errorf("session: unknown role %q", role)
    }
    name := email
    if at := strings.IndexByte(email, '@'); at > 0 {
        name = email[:at]
    }
    u := model.User{
        ID:        uuid.NewString(),
        Email:     email,
        Name:      name,
        Role:      role,
        CreatedAt: time.Now().UTC(),
        Status:    model.UserActive,
    }

    s.mu.Lock()
    s.user = &u
    s.mu.Unlock()

    if data, err := json.Marshal(u); err == nil {
        if err := s.st.Set(ctx, store.KeySession, data); err != nil {
            log.Printf("session: persist failed: %v", err)
        }
    }
    return u, nil
}

// Logout clears the current user and removes the mirrored record.
func (s *Session) Logout(ctx context.Context) {
    s.mu.Lock()
    s.user = nil
    s.mu.Unlock()
    if err := s.st.Remove(ctx, store.KeySession); err != nil {
        log.Printf("session: remove failed: %v", err)
    }
}

// Current returns the signed-in user, or nil.
func (s *Session) Current() *model.User {
    s.mu.RLock()
    defer s.mu.RUnlock()
    if s.user == nil {
        return nil
    }
    u := *s.user
    return &u
}

// Restore rehydrates the session from the store on startup. Broken
// payloads are discarded along with the stored record, matching the
// original's tolerance for a corrupt saved session.
func (s *Session) Restore(ctx context.Context) {
    data, err := s.st.Get(ctx, store.KeySession)
    if err != nil {
        return
    }
    var u model.User
    if err := json.Unmarshal(data, &u); err != nil {
        log.Printf("session: stored record unreadable, discarding: %v", err)
        _ = s.st.Remove(ctx, store.KeySession)
        return
    }
    // Persisted avatars sometimes hold stringified garbage; normalize.
    if a := strings.TrimSpace(u.Avatar); a == "" || a == "undefined" || a == "null" {
        u.Avatar = ""
    }
    s.mu.Lock()
    s.user = &u
    s.mu.Unlock()
}
