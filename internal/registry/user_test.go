package registry

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/store"
)

func account(id, email, role string) model.User {
    return model.User{ID: id, Email: email, Name: "Test", Role: role, Status: model.UserActive}
}

func TestBanAndUnbanMoveBetweenViews(t *testing.T) {
    ctx := context.Background()
    reg := NewUserRegistry(ctx, store.NewMemoryStore(), []model.User{
        account("u1", "a@example.com", model.RolePlayer),
        account("u2", "b@example.com", model.RoleOwner),
    })

    assert.Len(t, reg.Active(), 2)
    assert.Empty(t, reg.Banned())

    require.NoError(t, reg.Ban(ctx, "u1"))
    assert.Len(t, reg.Active(), 1)
    require.Len(t, reg.Banned(), 1)
    assert.Equal(t, "u1", reg.Banned()[0].ID)

    // Banning again is a no-op, not an error.
    require.NoError(t, reg.Ban(ctx, "u1"))
    assert.Len(t, reg.Banned(), 1)

    require.NoError(t, reg.Unban(ctx, "u1"))
    assert.Empty(t, reg.Banned())
    assert.Len(t, reg.Active(), 2)
}

func TestByRoleFiltersOneCollection(t *testing.T) {
    ctx := context.Background()
    reg := NewUserRegistry(ctx, store.NewMemoryStore(), []model.User{
        account("u1", "a@example.com", model.RolePlayer),
        account("u2", "b@example.com", model.RoleOwner),
        account("u3", "c@example.com", model.RoleAdmin),
    })

    assert.Len(t, reg.ByRole(model.RolePlayer), 1)
    assert.Len(t, reg.ByRole(model.RoleOwner), 1)
    assert.Len(t, reg.ByRole(model.RoleAdmin), 1)
    assert.Len(t, reg.List(), 3)
}

func TestUserUpdateCannotTouchRole(t *testing.T) {
    ctx := context.Background()
    reg := NewUserRegistry(ctx, store.NewMemoryStore(), []model.User{
        account("u1", "a@example.com", model.RolePlayer),
    })

    name := "Renamed"
    require.NoError(t, reg.Update(ctx, "u1", UserPatch{Name: &name}))
    u, err := reg.ByID("u1")
    require.NoError(t, err)
    assert.Equal(t, "Renamed", u.Name)
    assert.Equal(t, model.RolePlayer, u.Role)
}

func TestUserMutationsOnUnknownID(t *testing.T) {
    ctx := context.Background()
    reg := NewUserRegistry(ctx, store.NewMemoryStore(), nil)

    assert.ErrorIs(t, reg.Ban(ctx, "ghost"), ErrNotFound)
    assert.ErrorIs(t, reg.Delete(ctx, "ghost"), ErrNotFound)
    _, err := reg.ByID("ghost")
    assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRegistryPersistsAcrossLoads(t *testing.T) {
    ctx := context.Background()
    st := store.NewMemoryStore()
    reg := NewUserRegistry(ctx, st, []model.User{account("u1", "a@example.com", model.RolePlayer)})
    require.NoError(t, reg.Ban(ctx, "u1"))

    again := NewUserRegistry(ctx, st, nil)
    u, err := again.ByID("u1")
    require.NoError(t, err)
    assert.Equal(t, model.UserBanned, u.Status)
}
