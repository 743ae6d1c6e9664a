package registry

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/store"
)

func TestReviewsMergeSeedThenPersisted(t *testing.T) {
    ctx := context.Background()
    st := store.NewMemoryStore()
    board := NewReviewBoard(st, []model.Review{
        {ID: "s1", FacilityID: "f1", UserName: "Seed One", Rating: 5},
        {ID: "s2", FacilityID: "f2", UserName: "Seed Two", Rating: 4},
    })

    require.NoError(t, board.Add(ctx, model.Review{ID: "u1", FacilityID: "f1", UserName: "Visitor", Rating: 3}))

    items := board.ListByFacility(ctx, "f1")
    require.Len(t, items, 2)
    // Seed entries come first, submissions after in insertion order.
    assert.Equal(t, "s1", items[0].ID)
    assert.Equal(t, "u1", items[1].ID)

    // The other facility's board is untouched.
    other := board.ListByFacility(ctx, "f2")
    require.Len(t, other, 1)
    assert.Equal(t, "s2", other[0].ID)
}

func TestReviewsSurviveBoardReload(t *testing.T) {
    ctx := context.Background()
    st := store.NewMemoryStore()
    board := NewReviewBoard(st, nil)
    require.NoError(t, board.Add(ctx, model.Review{ID: "u1", FacilityID: "f1", UserName: "Visitor", Rating: 5}))

    fresh := NewReviewBoard(st, nil)
    items := fresh.ListByFacility(ctx, "f1")
    require.Len(t, items, 1)
    assert.Equal(t, "u1", items[0].ID)
}

func TestReviewValidationAtTheBoundary(t *testing.T) {
    ctx := context.Background()
    board := NewReviewBoard(store.NewMemoryStore(), nil)

    assert.Error(t, board.Add(ctx, model.Review{FacilityID: "f1", UserName: "x", Rating: 0}))
    assert.Error(t, board.Add(ctx, model.Review{FacilityID: "f1", UserName: "x", Rating: 6}))
    assert.Error(t, board.Add(ctx, model.Review{FacilityID: "", UserName: "x", Rating: 3}))
    assert.Error(t, board.Add(ctx, model.Review{FacilityID: "f1", UserName: "", Rating: 3}))
}
