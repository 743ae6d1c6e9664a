package workflow

import (
    "sync"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
)

// Manager tracks the in-flight workflows of this process, keyed by
// workflow id. Finished workflows remove themselves so the map only
// holds live state.
type Manager struct {
    mu    sync.Mutex
    items map[string]*Workflow
    cfg   Config
}

// NewManager builds a manager whose workflows share the given config.
// Per-facility courts are filtered out of cfg.Courts on Start.
func NewManager(cfg Config) *Manager {
    return &Manager{items: make(map[string]*Workflow), cfg: cfg}
}

// Start opens a new workflow for the user and facility.
func (m *Manager) Start(userID string, facility model.Facility) *Workflow {
    cfg := m.cfg
    var courts []model.Court
    for _, c := range m.cfg.Courts {
        if c.FacilityID == facility.ID {
            courts = append(courts, c)
        }
    }
    cfg.Courts = courts

    w := New(userID, facility, cfg)
    m.mu.Lock()
    m.items[w.id] = w
    m.mu.Unlock()

    go func() {
        <-w.Done()
        m.mu.Lock()
        delete(m.items, w.id)
        m.mu.Unlock()
    }()
    return w
}

// Get returns the live workflow with the given id.
func (m *Manager) Get(id string) (*Workflow, bool) {
    m.mu.Lock()
    defer m.mu.Unlock()
    w, ok := m.items[id]
    return w, ok
}

// Shutdown stops the timers of every live workflow. State is left as
// is; the process is going away.
func (m *Manager) Shutdown() {
    m.mu.Lock()
    defer m.mu.Unlock()
    for _, w := range m.items {
        w.Close()
    }
}
