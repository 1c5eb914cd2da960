package workers

import (
	"context"
	"time"

	"github.com/DylM0nster22/Tetris/pkg/log"
)

const (
	DefaultRoomSweepInterval = 5 * time.Minute
	DefaultRoomTimeout       = 15 * time.Minute
)

// RoomSweeper closes rooms idle for longer than a timeout.
type RoomSweeper interface {
	SweepIdleRooms(timeout time.Duration) int
}

type RoomSweepWorker struct {
	sweeper  RoomSweeper
	interval time.Duration
	timeout  time.Duration
}

type NewRoomSweepWorkerOptions struct {
	Sweeper  RoomSweeper
	Interval time.Duration
	Timeout  time.Duration
}

// NewRoomSweepWorker creates a new RoomSweepWorker.
// It is the only timeout based cleanup of the relay.
func NewRoomSweepWorker(opts NewRoomSweepWorkerOptions) *RoomSweepWorker {
	if opts.Interval <= 0 {
		opts.Interval = DefaultRoomSweepInterval
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultRoomTimeout
	}
	return &RoomSweepWorker{
		sweeper:  opts.Sweeper,
		interval: opts.Interval,
		timeout:  opts.Timeout,
	}
}

func (w *RoomSweepWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if closed := w.sweeper.SweepIdleRooms(w.timeout); closed > 0 {
				log.Info("Closed %d idle rooms", closed)
			}
		}
	}
}
