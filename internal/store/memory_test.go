package store

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
    ctx := context.Background()
    st := NewMemoryStore()

    _, err := st.Get(ctx, "missing")
    assert.ErrorIs(t, err, ErrNotFound)

    require.NoError(t, st.Set(ctx, "k", []byte("v1")))
    got, err := st.Get(ctx, "k")
    require.NoError(t, err)
    assert.Equal(t, []byte("v1"), got)

    require.NoError(t, st.Remove(ctx, "k"))
    _, err = st.Get(ctx, "k")
    assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
    ctx := context.Background()
    st := NewMemoryStore()

    val := []byte("original")
    require.NoError(t, st.Set(ctx, "k", val))
    val[0] = 'X' // caller mutation must not leak in

    got, err := st.Get(ctx, "k")
    require.NoError(t, err)
    assert.Equal(t, []byte("original"), got)

    got[0] = 'Y' // nor out
    again, _ := st.Get(ctx, "k")
    assert.Equal(t, []byte("original"), again)
}

func TestWatchDeliversWrites(t *testing.T) {
    ctx, cancel := context.WithCancel(context.Background())
    st := NewMemoryStore()

    ch := st.Watch(ctx, "k")
    require.NoError(t, st.Set(context.Background(), "k", []byte("v")))

    select {
    case got := <-ch:
        assert.Equal(t, []byte("v"), got)
    case <-time.After(time.Second):
        t.Fatal("no notification delivered")
    }

    // Other keys do not notify this watcher.
    require.NoError(t, st.Set(context.Background(), "other", []byte("x")))
    select {
    case got := <-ch:
        t.Fatalf("unexpected notification: %q", got)
    case <-time.After(20 * time.Millisecond):
    }

    cancel()
    assert.Eventually(t, func() bool {
        _, open := <-ch
        return !open
    }, time.Second, 5*time.Millisecond)
}
