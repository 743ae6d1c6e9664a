package syncer

import (
    "context"
    "encoding/json"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/registry"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/store"
)

func testFacility(id, name string) model.Facility {
    return model.Facility{
        ID: id, Name: name, Location: "here",
        Sports: []string{"Badminton"}, PricePerHour: 20,
        OwnerID: "owner_1", Status: model.StatusApproved,
    }
}

func TestSyncerAdoptsExternalWrites(t *testing.T) {
    ctx := context.Background()
    st := store.NewMemoryStore()
    reg := registry.NewFacilityRegistry(ctx, st, []model.Facility{testFacility("a", "A")})

    s := New(reg, st, 10*time.Millisecond)
    s.Start(ctx)
    defer s.Stop()

    // Simulate another replica rewriting the collection.
    external := []model.Facility{testFacility("a", "A"), testFacility("b", "B")}
    data, err := json.Marshal(external)
    require.NoError(t, err)
    require.NoError(t, st.Set(ctx, store.KeyFacilities, data))

    assert.Eventually(t, func() bool {
        return len(reg.List()) == 2
    }, time.Second, 5*time.Millisecond)
}

func TestSyncerLastWriteWins(t *testing.T) {
    ctx := context.Background()
    st := store.NewMemoryStore()
    reg := registry.NewFacilityRegistry(ctx, st, []model.Facility{testFacility("a", "Original")})

    s := New(reg, st, 10*time.Millisecond)
    s.Start(ctx)
    defer s.Stop()

    // Two external writes in sequence; the later one must stick,
    // including its field values, with no merging of the earlier state.
    first, _ := json.Marshal([]model.Facility{testFacility("a", "First")})
    require.NoError(t, st.Set(ctx, store.KeyFacilities, first))
    second, _ := json.Marshal([]model.Facility{testFacility("a", "Second")})
    require.NoError(t, st.Set(ctx, store.KeyFacilities, second))

    assert.Eventually(t, func() bool {
        items := reg.List()
        return len(items) == 1 && items[0].Name == "Second"
    }, time.Second, 5*time.Millisecond)
}

func TestSyncerIgnoresBrokenPayloads(t *testing.T) {
    ctx := context.Background()
    st := store.NewMemoryStore()
    reg := registry.NewFacilityRegistry(ctx, st, []model.Facility{testFacility("a", "A")})

    s := New(reg, st, 10*time.Millisecond)
    s.Start(ctx)
    defer s.Stop()

    require.NoError(t, st.Set(ctx, store.KeyFacilities, []byte("{not json")))
    time.Sleep(50 * time.Millisecond)

    // The registry keeps serving its last good state.
    items := reg.List()
    require.Len(t, items, 1)
    assert.Equal(t, "A", items[0].Name)
}

func TestStopWaitsForLoopExit(t *testing.T) {
    ctx := context.Background()
    st := store.NewMemoryStore()
    reg := registry.NewFacilityRegistry(ctx, st, []model.Facility{testFacility("a", "A")})

    s := New(reg, st, time.Millisecond)
    s.Start(ctx)
    s.Stop() // must not hang or panic

    // Writes after Stop are no longer adopted.
    data, _ := json.Marshal([]model.Facility{testFacility("b", "B")})
    require.NoError(t, st.Set(ctx, store.KeyFacilities, data))
    time.Sleep(20 * time.Millisecond)
    items := reg.List()
    require.Len(t, items, 1)
    assert.Equal(t, "a", items[0].ID)
}
