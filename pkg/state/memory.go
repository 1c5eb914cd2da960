package state

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	gametypes "github.com/DylM0nster22/Tetris/pkg/game/types"
)

type InMemoryStateManager struct {
	lock     sync.RWMutex
	snapshot *gametypes.Snapshot
	version  uint64
}

var _ StateManager = &InMemoryStateManager{}

func NewInMemoryStateManager() *InMemoryStateManager {
	return &InMemoryStateManager{}
}

// Get returns the stored snapshot. Snapshots are treated as immutable once
// stored, so callers share the value and must not modify it.
func (m *InMemoryStateManager) Get(ctx context.Context) (*gametypes.Snapshot, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	if m.snapshot == nil {
		return nil, fmt.Errorf("no snapshot has been published")
	}

	return m.snapshot, nil
}

func (m *InMemoryStateManager) Set(ctx context.Context, snapshot *gametypes.Snapshot) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if snapshot == nil {
		return fmt.Errorf("snapshot is nil")
	}

	if m.snapshot != nil && reflect.DeepEqual(m.snapshot, snapshot) {
		return nil
	}
	m.snapshot = snapshot
	m.version++
	return nil
}

func (m *InMemoryStateManager) Version() uint64 {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.version
}
