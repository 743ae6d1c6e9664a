package registry

import (
    "context"
    "encoding/json"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/store"
)

func facility(id, name, status string) model.Facility {
    return model.Facility{
        ID: id, Name: name, Location: "somewhere",
        Sports: []string{"Badminton"}, PricePerHour: 20,
        OwnerID: "owner_1", Status: status,
    }
}

func TestFacilityRegistrySeedsEmptyStore(t *testing.T) {
    ctx := context.Background()
    st := store.NewMemoryStore()
    seed := []model.Facility{facility("a", "A", model.StatusApproved)}

    reg := NewFacilityRegistry(ctx, st, seed)
    assert.Len(t, reg.List(), 1)

    // The seed must have been written through.
    data, err := st.Get(ctx, store.KeyFacilities)
    require.NoError(t, err)
    var persisted []model.Facility
    require.NoError(t, json.Unmarshal(data, &persisted))
    assert.Equal(t, "a", persisted[0].ID)
}

func TestFacilityRegistryLoadsPersistedOverSeed(t *testing.T) {
    ctx := context.Background()
    st := store.NewMemoryStore()
    existing := []model.Facility{facility("x", "X", model.StatusPending)}
    data, _ := json.Marshal(existing)
    require.NoError(t, st.Set(ctx, store.KeyFacilities, data))

    reg := NewFacilityRegistry(ctx, st, []model.Facility{facility("a", "A", model.StatusApproved)})
    items := reg.List()
    require.Len(t, items, 1)
    assert.Equal(t, "x", items[0].ID)
}

func TestApprovedIsDerivedView(t *testing.T) {
    ctx := context.Background()
    st := store.NewMemoryStore()
    reg := NewFacilityRegistry(ctx, st, []model.Facility{
        facility("a", "A", model.StatusApproved),
        facility("b", "B", model.StatusPending),
    })

    assert.Len(t, reg.Approved(), 1)

    require.NoError(t, reg.Approve(ctx, "b"))
    assert.Len(t, reg.Approved(), 2)

    require.NoError(t, reg.Reject(ctx, "b"))
    approved := reg.Approved()
    require.Len(t, approved, 1)
    assert.Equal(t, "a", approved[0].ID)
}

func TestUpdateUnknownIDReturnsNotFound(t *testing.T) {
    ctx := context.Background()
    reg := NewFacilityRegistry(ctx, store.NewMemoryStore(), []model.Facility{facility("a", "A", model.StatusApproved)})

    name := "New Name"
    assert.ErrorIs(t, reg.Update(ctx, "missing", FacilityPatch{Name: &name}), ErrNotFound)
    assert.ErrorIs(t, reg.Delete(ctx, "missing"), ErrNotFound)
}

func TestEmptyPatchLeavesRecordUnchanged(t *testing.T) {
    ctx := context.Background()
    reg := NewFacilityRegistry(ctx, store.NewMemoryStore(), []model.Facility{facility("a", "A", model.StatusApproved)})

    before, err := reg.ByID("a")
    require.NoError(t, err)
    require.NoError(t, reg.Update(ctx, "a", FacilityPatch{}))
    after, err := reg.ByID("a")
    require.NoError(t, err)
    assert.Equal(t, before, after)
}

func TestUpdateRejectsInvalidResult(t *testing.T) {
    ctx := context.Background()
    reg := NewFacilityRegistry(ctx, store.NewMemoryStore(), []model.Facility{facility("a", "A", model.StatusApproved)})

    bad := -5.0
    assert.Error(t, reg.Update(ctx, "a", FacilityPatch{PricePerHour: &bad}))
}

func TestRefreshMergesSeedWithUserRecords(t *testing.T) {
    ctx := context.Background()
    st := store.NewMemoryStore()
    seed := []model.Facility{
        facility("a", "A", model.StatusApproved),
        facility("b", "B", model.StatusApproved),
    }
    reg := NewFacilityRegistry(ctx, st, seed)
    reg.SetRefreshDelay(time.Millisecond)

    // A user-created record and a locally mutated seed record.
    require.NoError(t, reg.Create(ctx, facility("c", "C", model.StatusPending)))
    name := "Renamed"
    require.NoError(t, reg.Update(ctx, "a", FacilityPatch{Name: &name}))

    reg.Refresh(ctx)

    byID := map[string]model.Facility{}
    for _, f := range reg.List() {
        byID[f.ID] = f
    }
    require.Len(t, byID, 3)
    // Seed records are restored; the user record survives.
    assert.Equal(t, "A", byID["a"].Name)
    assert.Equal(t, "C", byID["c"].Name)

    assert.Eventually(t, func() bool { return !reg.IsRefreshing() }, time.Second, 5*time.Millisecond)
}

func TestAdoptSerializedReportsChange(t *testing.T) {
    ctx := context.Background()
    reg := NewFacilityRegistry(ctx, store.NewMemoryStore(), []model.Facility{facility("a", "A", model.StatusApproved)})

    same, err := json.Marshal(reg.List())
    require.NoError(t, err)
    changed, err := reg.AdoptSerialized(same)
    require.NoError(t, err)
    assert.False(t, changed)

    incoming, _ := json.Marshal([]model.Facility{facility("z", "Z", model.StatusApproved)})
    changed, err = reg.AdoptSerialized(incoming)
    require.NoError(t, err)
    assert.True(t, changed)
    items := reg.List()
    require.Len(t, items, 1)
    assert.Equal(t, "z", items[0].ID)

    _, err = reg.AdoptSerialized([]byte("{broken"))
    assert.Error(t, err)
}
