package scenes

import (
	"context"
	"encoding/json"
	"testing"

	clientnetwork "github.com/DylM0nster22/Tetris/pkg/client/network"
	"github.com/DylM0nster22/Tetris/pkg/game"
	gametypes "github.com/DylM0nster22/Tetris/pkg/game/types"
	"github.com/DylM0nster22/Tetris/pkg/messages"
	"github.com/DylM0nster22/Tetris/pkg/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGameScene(t *testing.T, relay bool, onGameOver func(*gametypes.Snapshot)) (*GameScene, *queue.InMemoryQueue) {
	t.Helper()
	opts := NewGameSceneOptions{
		SessionOptions: game.DefaultSessionOptions(),
		OnGameOver:     onGameOver,
	}
	relayQueue := queue.NewInMemoryQueue(16)
	if relay {
		opts.Relay = clientnetwork.NewWSClient(clientnetwork.DefaultServerURL, relayQueue)
		opts.RelayQueue = relayQueue
	}
	s, err := NewGameScene(opts)
	require.NoError(t, err)
	return s, relayQueue
}

func TestNewGameScene_requiresRelayQueue(t *testing.T) {
	_, err := NewGameScene(NewGameSceneOptions{
		SessionOptions: game.DefaultSessionOptions(),
		Relay:          clientnetwork.NewWSClient(clientnetwork.DefaultServerURL, nil),
	})
	assert.Error(t, err)
}

func TestGameScene_processRelayMessages(t *testing.T) {
	s, relayQueue := newTestGameScene(t, true, nil)

	session := game.NewSession(game.DefaultSessionOptions())
	session.Start()
	snapshot := session.Snapshot()
	snapshot.Score = 700
	gameState, err := json.Marshal(messages.GameStateFromSnapshot(&snapshot))
	require.NoError(t, err)

	for _, msg := range []*messages.Message{
		{Type: messages.MessageTypeRoomCreated, RoomID: "abc123"},
		{Type: messages.MessageTypeError, Message: messages.RoomFullText},
		{Type: messages.MessageTypeGameStart, Message: messages.GameStartText},
		{Type: messages.MessageTypeOpponentUpdate, GameState: json.RawMessage(`{"board":[[1],[1,2]]}`)},
		{Type: messages.MessageTypeOpponentUpdate, GameState: gameState},
	} {
		require.NoError(t, relayQueue.Enqueue(msg))
	}
	require.NoError(t, relayQueue.Enqueue("not a message"))

	require.NoError(t, s.processRelayMessages())

	assert.Equal(t, "abc123", s.roomID)
	assert.Empty(t, s.statusText, "game start clears the previous error")
	assert.True(t, s.matched)
	assert.True(t, s.hasOpponentState)
	assert.Equal(t, 700, s.opponentScore)

	intents, err := s.intentQueue.ReadAllMessages()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{game.IntentStart}, intents)

	require.NoError(t, relayQueue.Enqueue(&messages.Message{Type: messages.MessageTypePlayerLeft, Message: messages.PlayerLeftText}))
	require.NoError(t, s.processRelayMessages())
	assert.False(t, s.matched)
	assert.False(t, s.hasOpponentState)
}

func TestGameScene_refreshSnapshot(t *testing.T) {
	var gameOvers []int
	s, _ := newTestGameScene(t, false, func(snapshot *gametypes.Snapshot) {
		gameOvers = append(gameOvers, snapshot.Score)
	})
	ctx := context.Background()

	// nothing published yet
	require.NoError(t, s.refreshSnapshot())
	assert.Nil(t, s.Snapshot())

	set := func(state game.State, score int) {
		require.NoError(t, s.stateManager.Set(ctx, &gametypes.Snapshot{State: state.String(), Score: score}))
		require.NoError(t, s.refreshSnapshot())
	}

	set(game.StateReady, 0)
	assert.Equal(t, "ready", s.Snapshot().State)

	set(game.StateGameOver, 1200)
	set(game.StateGameOver, 1200)
	assert.Equal(t, []int{1200}, gameOvers)

	set(game.StateRunning, 0)
	set(game.StateGameOver, 300)
	assert.Equal(t, []int{1200, 300}, gameOvers)
}

func TestGameScene_processSessionEvents(t *testing.T) {
	s, _ := newTestGameScene(t, false, nil)
	before := len(s.GetRoot().GetChildren())

	require.NoError(t, s.eventQueue.Enqueue(game.Event{Type: game.EventLinesCleared, Count: 2}))
	require.NoError(t, s.eventQueue.Enqueue(game.Event{Type: game.EventLinesCleared, Count: 4}))
	require.NoError(t, s.eventQueue.Enqueue(game.Event{Type: game.EventQuad}))
	require.NoError(t, s.eventQueue.Enqueue(game.Event{Type: game.EventPieceLocked}))

	require.NoError(t, s.processSessionEvents())

	// one banner for the double and one for the quad
	assert.Len(t, s.GetRoot().GetChildren(), before+2)
}
