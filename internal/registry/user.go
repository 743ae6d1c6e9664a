package registry

import (
    "context"
    "encoding/json"
    "log"
    "sync"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/store"
)

// UserPatch carries the account fields an update may change. Role is
// deliberately absent: no role transition is defined after creation.
type UserPatch struct {
    Email          *string   `json:"email"`
    Name           *string   `json:"name"`
    Avatar         *string   `json:"avatar"`
    Phone          *string   `json:"phone"`
    FavoriteSports *[]string `json:"favoriteSports"`
    Status         *string   `json:"status"`
}

// UserRegistry manages the account collection. Unlike facilities there
// is no seed-merge reconciliation: the registry is seeded once at first
// load and thereafter solely reflects persisted state. The asymmetry is
// intentional — facilities carry a publish/approve workflow that users
// do not.
type UserRegistry struct {
    mu    sync.RWMutex
    items []model.User
    st    store.Store
}

// NewUserRegistry loads the persisted accounts, seeding the store on
// first run.
func NewUserRegistry(ctx context.Context, st store.Store, seed []model.User) *UserRegistry {
    r := &UserRegistry{st: st}
    data, err := st.Get(ctx, store.KeyUsers)
    if err == nil {
        var items []model.User
        if jerr := json.Unmarshal(data, &items); jerr == nil {
            r.items = items
            return r
        }
        log.Printf("user registry: persisted payload unreadable, reseeding: %v", err)
    }
    r.items = append([]model.User(nil), seed...)
    r.persist(ctx)
    return r
}

// List returns every account.
func (r *UserRegistry) List() []model.User {
    r.mu.RLock()
    defer r.mu.RUnlock()
    return append([]model.User(nil), r.items...)
}

// ByID returns the account with the given id.
func (r *UserRegistry) ByID(id string) (model.User, error) {
    r.mu.RLock()
    defer r.mu.RUnlock()
    for _, u := range r.items {
        if u.ID == id {
            return u, nil
        }
    }
    return model.User{}, ErrNotFound
}

// ByRole returns all accounts carrying the given role.
func (r *UserRegistry) ByRole(role string) []model.User {
    return r.filter(func(u model.User) bool { return u.Role == role })
}

// Active returns accounts whose status is active.
func (r *UserRegistry) Active() []model.User {
    return r.filter(func(u model.User) bool { return u.Status == model.UserActive })
}

// Banned returns accounts whose status is banned.
func (r *UserRegistry) Banned() []model.User {
    return r.filter(func(u model.User) bool { return u.Status == model.UserBanned })
}

func (r *UserRegistry) filter(keep func(model.User) bool) []model.User {
    r.mu.RLock()
    defer r.mu.RUnlock()
    var out []model.User
    for _, u := range r.items {
        if keep(u) {
            out = append(out, u)
        }
    }
    return out
}

// Create validates the account and prepends it to the collection.
func (r *UserRegistry) Create(ctx context.Context, u model.User) error {
    if err := u.Validate(); err != nil {
        return err
    }
    r.mu.Lock()
    r.items = append([]model.User{u}, r.items...)
    r.mu.Unlock()
    r.persist(ctx)
    return nil
}

// Update merges the patch into the matching account.
func (r *UserRegistry) Update(ctx context.Context, id string, patch UserPatch) error {
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
    u := &r.items[idx]
    if patch.Email != nil {
        u.Email = *patch.Email
    }
    if patch.Name != nil {
        u.Name = *patch.Name
    }
    if patch.Avatar != nil {
        u.Avatar = *patch.Avatar
    }
    if patch.Phone != nil {
        u.Phone = *patch.Phone
    }
    if patch.FavoriteSports != nil {
        u.FavoriteSports = *patch.FavoriteSports
    }
    if patch.Status != nil {
        u.Status = *patch.Status
    }
    if err := u.Validate(); err != nil {
        r.mu.Unlock()
        return err
    }
    r.mu.Unlock()
    r.persist(ctx)
    return nil
}

// Delete removes the matching account.
func (r *UserRegistry) Delete(ctx context.Context, id string) error {
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

// Ban sets the account status to banned.
func (r *UserRegistry) Ban(ctx context.Context, id string) error {
    status := model.UserBanned
    return r.Update(ctx, id, UserPatch{Status: &status})
}

// Unban returns the account to active status.
func (r *UserRegistry) Unban(ctx context.Context, id string) error {
    status := model.UserActive
    return r.Update(ctx, id, UserPatch{Status: &status})
}

func (r *UserRegistry) persist(ctx context.Context) {
    r.mu.RLock()
    data, err := json.Marshal(r.items)
    r.mu.RUnlock()
    if err != nil {
        log.Printf("user registry: marshal failed: %v", err)
        return
    }
    if err := r.st.Set(ctx, store.KeyUsers, data); err != nil {
        log.Printf("user registry: persist failed: %v", err)
    }
}
