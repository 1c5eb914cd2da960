package state

import (
	"context"

	gametypes "github.com/DylM0nster22/Tetris/pkg/game/types"
)

// StateManager provides shared access to the latest session snapshot.
// Implementations must be thread-safe.
type StateManager interface {
	// Get returns the current snapshot.
	Get(ctx context.Context) (*gametypes.Snapshot, error)
	// Set replaces the current snapshot.
	Set(ctx context.Context, snapshot *gametypes.Snapshot) error
	// Version increases on every Set that changes the snapshot. It lets
	// readers skip unchanged snapshots.
	Version() uint64
}
