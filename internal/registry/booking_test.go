package registry

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/store"
)

func TestBookingsPrependMostRecentFirst(t *testing.T) {
    ctx := context.Background()
    st := store.NewMemoryStore()
    bs := NewBookingStore(ctx, st, []model.Booking{{ID: "old", UserID: "u1"}})

    bs.Add(ctx, model.Booking{ID: "new", UserID: "u1"})

    items := bs.List()
    require.Len(t, items, 2)
    assert.Equal(t, "new", items[0].ID)
    assert.Equal(t, "old", items[1].ID)
}

func TestListByUserFilters(t *testing.T) {
    ctx := context.Background()
    bs := NewBookingStore(ctx, store.NewMemoryStore(), []model.Booking{
        {ID: "1", UserID: "u1"},
        {ID: "2", UserID: "u2"},
        {ID: "3", UserID: "u1"},
    })

    mine := bs.ListByUser("u1")
    require.Len(t, mine, 2)
    assert.Empty(t, bs.ListByUser("nobody"))
}

func TestBookingsSurviveReload(t *testing.T) {
    ctx := context.Background()
    st := store.NewMemoryStore()
    bs := NewBookingStore(ctx, st, nil)
    bs.Add(ctx, model.Booking{ID: "b1", UserID: "u1"})

    again := NewBookingStore(ctx, st, nil)
    items := again.List()
    require.Len(t, items, 1)
    assert.Equal(t, "b1", items[0].ID)
}
