package store

import (
    "context"
    "sync"
)

// MemoryStore is a process-local Store. It backs the service when Redis
// is unreachable at startup (the registries then degrade to in-memory
// durability, matching the demo tolerance for data loss) and is the
// store used throughout the tests.
type MemoryStore struct {
    mu       sync.RWMutex
    data     map[string][]byte
    watchers map[string][]chan []byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
    return &MemoryStore{
        data:     make(map[string][]byte),
        watchers: make(map[string][]chan []byte),
    }
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    val, ok := s.data[key]
    if !ok {
        return nil, ErrNotFound
    }
    out := make([]byte, len(val))
    copy(out, val)
    return out, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
    cp := make([]byte, len(value))
    copy(cp, value)
    s.mu.Lock()
    s.data[key] = cp
    watchers := append([]chan []byte(nil), s.watchers[key]...)
    s.mu.Unlock()
    s.notify(watchers, cp)
    return nil
}

func (s *MemoryStore) Remove(_ context.Context, key string) error {
    s.mu.Lock()
    delete(s.data, key)
    watchers := append([]chan []byte(nil), s.watchers[key]...)
    s.mu.Unlock()
    s.notify(watchers, nil)
    return nil
}

// Watch registers a buffered listener for the key. The listener is
// dropped and its channel closed when ctx is cancelled.
func (s *MemoryStore) Watch(ctx context.Context, key string) <-chan []byte {
    ch := make(chan []byte, 8)
    s.mu.Lock()
    s.watchers[key] = append(s.watchers[key], ch)
    s.mu.Unlock()

    go func() {
        <-ctx.Done()
        s.mu.Lock()
        listeners := s.watchers[key]
        for i, w := range listeners {
            if w == ch {
                s.watchers[key] = append(listeners[:i], listeners[i+1:]...)
                break
            }
        }
        s.mu.Unlock()
        close(ch)
    }()
    return ch
}

// notify delivers without blocking; a slow listener misses the update
// and catches up on its next poll.
func (s *MemoryStore) notify(watchers []chan []byte, value []byte) {
    for _, w := range watchers {
        select {
        case w <- value:
        default:
        }
    }
}
