package game

import (
	"context"
	"fmt"
	"time"

	"github.com/DylM0nster22/Tetris/pkg/events"
	"github.com/DylM0nster22/Tetris/pkg/log"
	"github.com/DylM0nster22/Tetris/pkg/queue"
	"github.com/DylM0nster22/Tetris/pkg/state"
)

// DefaultGameLoopInterval ticks at roughly the display refresh rate.
const DefaultGameLoopInterval = 16 * time.Millisecond

// GameManager drives a Session: it drains queued intents, ticks gravity,
// publishes snapshots and forwards events once per loop iteration.
type GameManager struct {
	session          *Session
	intentQueue      queue.Queue
	stateManager     state.StateManager
	eventManager     *events.Manager[Event]
	gameLoopInterval time.Duration
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	Session *Session
	// IntentQueue holds Intent values produced by the input layer
	IntentQueue  queue.Queue
	StateManager state.StateManager
	// EventManager is optional
	EventManager     *events.Manager[Event]
	GameLoopInterval time.Duration
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	if opts.GameLoopInterval <= 0 {
		opts.GameLoopInterval = DefaultGameLoopInterval
	}
	return &GameManager{
		session:          opts.Session,
		intentQueue:      opts.IntentQueue,
		stateManager:     opts.StateManager,
		eventManager:     opts.EventManager,
		gameLoopInterval: opts.GameLoopInterval,
	}
}

// Start starts the game loop and blocks until ctx is done.
func (gm *GameManager) Start(ctx context.Context) error {
	if err := gm.publishSnapshot(ctx); err != nil {
		return fmt.Errorf("failed to publish initial snapshot: %v", err)
	}

	ticker := time.NewTicker(gm.gameLoopInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case t := <-ticker.C:
			if err := gm.gameTick(ctx, t); err != nil {
				log.Error("Failed to run game tick: %v", err)
			}
		}
	}
}

// gameTick runs one iteration of the game loop.
func (gm *GameManager) gameTick(ctx context.Context, t time.Time) error {
	gm.processIntents()
	gm.session.Tick(t)
	gm.dispatchEvents()
	return gm.publishSnapshot(ctx)
}

// processIntents applies all pending intents in the order they were queued.
func (gm *GameManager) processIntents() {
	pending, err := gm.intentQueue.ReadAllMessages()
	if err != nil {
		log.Error("Failed to read intents: %v", err)
		return
	}
	for _, item := range pending {
		intent, ok := item.(Intent)
		if !ok {
			log.Error("Unhandled intent type: %T", item)
			continue
		}
		if !gm.session.Apply(intent) {
			log.Trace("Intent %s rejected in state %s", intent, gm.session.State())
		}
	}
}

func (gm *GameManager) dispatchEvents() {
	for _, event := range gm.session.DrainEvents() {
		log.Debug("Session event %s", event.Type)
		if gm.eventManager != nil {
			gm.eventManager.Trigger(event)
		}
	}
}

func (gm *GameManager) publishSnapshot(ctx context.Context) error {
	snapshot := gm.session.Snapshot()
	if err := gm.stateManager.Set(ctx, &snapshot); err != nil {
		return fmt.Errorf("failed to set snapshot: %v", err)
	}
	return nil
}
