package session

import (
    "context"
    "encoding/json"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/store"
)

func TestLoginSynthesizesUser(t *testing.T) {
    ctx := context.Background()
    s := New(store.NewMemoryStore())

    u, err := s.Login(ctx, "  Jane.Doe@Example.COM ", "")
    require.NoError(t, err)
    assert.Equal(t, "jane.doe@example.com", u.Email)
    assert.Equal(t, "jane.doe", u.Name)
    assert.Equal(t, model.RolePlayer, u.Role)
    assert.Equal(t, model.UserActive, u.Status)
    assert.NotEmpty(t, u.ID)

    cur := s.Current()
    require.NotNil(t, cur)
    assert.Equal(t, u.ID, cur.ID)
}

func TestLoginRejectsEmptyEmailAndUnknownRole(t *testing.T) {
    ctx := context.Background()
    s := New(store.NewMemoryStore())

    _, err := s.Login(ctx, "   ", "")
    assert.Error(t, err)

    _, err = s.Login(ctx, "a@b.com", "superuser")
    assert.Error(t, err)
}

func TestLogoutClearsSessionAndStore(t *testing.T) {
    ctx := context.Background()
    st := store.NewMemoryStore()
    s := New(st)

    _, err := s.Login(ctx, "a@b.com", model.RoleOwner)
    require.NoError(t, err)
    s.Logout(ctx)

    assert.Nil(t, s.Current())
    _, err = st.Get(ctx, store.KeySession)
    assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRestoreRehydratesAndNormalizesAvatar(t *testing.T) {
    ctx := context.Background()
    st := store.NewMemoryStore()

    saved := model.User{ID: "u1", Email: "a@b.com", Name: "a", Role: model.RolePlayer,
        Avatar: "undefined", Status: model.UserActive}
    data, _ := json.Marshal(saved)
    require.NoError(t, st.Set(ctx, store.KeySession, data))

    s := New(st)
    s.Restore(ctx)
    cur := s.Current()
    require.NotNil(t, cur)
    assert.Equal(t, "u1", cur.ID)
    assert.Empty(t, cur.Avatar)
}

func TestRestoreDiscardsBrokenPayload(t *testing.T) {
    ctx := context.Background()
    st := store.NewMemoryStore()
    require.NoError(t, st.Set(ctx, store.KeySession, []byte("{broken")))

    s := New(st)
    s.Restore(ctx)
    assert.Nil(t, s.Current())

    // The unreadable record is removed so the next start is clean.
    _, err := st.Get(ctx, store.KeySession)
    assert.ErrorIs(t, err, store.ErrNotFound)
}
