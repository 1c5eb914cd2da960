package workers

import (
	"context"
	"time"

	"github.com/DylM0nster22/Tetris/pkg/log"
	"github.com/DylM0nster22/Tetris/pkg/messages"
	"github.com/DylM0nster22/Tetris/pkg/state"
)

const DefaultSnapshotInterval = 100 * time.Millisecond

// GameUpdateSender mirrors local game states to the opponent.
type GameUpdateSender interface {
	SendGameUpdate(ctx context.Context, gameState *messages.GameState) error
}

type SnapshotWorker struct {
	stateManager state.StateManager
	sender       GameUpdateSender
	interval     time.Duration
	lastVersion  uint64
}

type NewSnapshotWorkerOptions struct {
	StateManager state.StateManager
	Sender       GameUpdateSender
	Interval     time.Duration
}

// NewSnapshotWorker creates a new SnapshotWorker.
// The worker sends the latest snapshot at most once per interval and
// only when it changed since the last send.
func NewSnapshotWorker(opts NewSnapshotWorkerOptions) *SnapshotWorker {
	if opts.Interval <= 0 {
		opts.Interval = DefaultSnapshotInterval
	}
	return &SnapshotWorker{
		stateManager: opts.StateManager,
		sender:       opts.Sender,
		interval:     opts.Interval,
	}
}

func (w *SnapshotWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.publish(ctx)
		}
	}
}

func (w *SnapshotWorker) publish(ctx context.Context) {
	version := w.stateManager.Version()
	if version == 0 || version == w.lastVersion {
		return
	}

	snapshot, err := w.stateManager.Get(ctx)
	if err != nil {
		log.Error("Failed to get current snapshot: %v", err)
		return
	}

	if err := w.sender.SendGameUpdate(ctx, messages.GameStateFromSnapshot(snapshot)); err != nil {
		log.Error("Failed to send game update: %v", err)
		return
	}
	w.lastVersion = version
}
