package network

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DylM0nster22/Tetris/pkg/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

func newTestRelay(t *testing.T, maxRooms int) (*NetworkManager, string) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	n := NewNetworkManager(NewNetworkManagerOptions{
		Ctx:           ctx,
		ClientManager: NewClientManager(),
		RoomManager:   NewRoomManager(NewRoomManagerOptions{MaxRooms: maxRooms}),
	})
	server := httptest.NewServer(n.Handler())
	t.Cleanup(func() {
		cancel()
		server.Close()
	})
	return n, "ws" + strings.TrimPrefix(server.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.Close(websocket.StatusNormalClosure, "")
	})
	return conn
}

func send(t *testing.T, conn *websocket.Conn, msg interface{}) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, wsjson.Write(ctx, conn, msg))
}

func receive(t *testing.T, conn *websocket.Conn) *messages.Message {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	msg := &messages.Message{}
	require.NoError(t, wsjson.Read(ctx, conn, msg))
	return msg
}

func createRoom(t *testing.T, conn *websocket.Conn) string {
	t.Helper()
	send(t, conn, messages.Message{Type: messages.MessageTypeCreateRoom})
	msg := receive(t, conn)
	require.Equal(t, messages.MessageTypeRoomCreated, msg.Type)
	require.NotEmpty(t, msg.RoomID)
	return msg.RoomID
}

func TestNetworkManager_matchAndRelay(t *testing.T) {
	_, url := newTestRelay(t, DefaultMaxRooms)
	host := dial(t, url)
	guest := dial(t, url)

	roomID := createRoom(t, host)

	send(t, guest, messages.Message{Type: messages.MessageTypeJoinRoom, RoomID: roomID})
	for _, conn := range []*websocket.Conn{host, guest} {
		msg := receive(t, conn)
		assert.Equal(t, messages.MessageTypeGameStart, msg.Type)
		assert.Equal(t, messages.GameStartText, msg.Message)
	}

	send(t, guest, map[string]interface{}{
		"type": messages.MessageTypeGameUpdate,
		"gameState": map[string]interface{}{
			"board":        [][]int{{0, 1}, {2, 0}},
			"currentPiece": map[string]interface{}{"id": 1, "shape": [][]int{{1}}, "x": 3, "y": 0},
			"score":        300,
			"nextPiece":    nil,
			"extra":        "dropped",
		},
	})
	msg := receive(t, host)
	assert.Equal(t, messages.MessageTypeOpponentUpdate, msg.Type)
	assert.JSONEq(t, `{"board":[[0,1],[2,0]],"currentPiece":{"id":1,"shape":[[1]],"x":3,"y":0},"score":300,"nextPiece":null}`, string(msg.GameState))

	gameState, err := messages.DecodeGameState(msg.GameState)
	require.NoError(t, err)
	assert.Equal(t, 300, gameState.Score)
}

func TestNetworkManager_errors(t *testing.T) {
	_, url := newTestRelay(t, 1)
	host := dial(t, url)
	other := dial(t, url)

	roomID := createRoom(t, host)

	// unparseable frames are dropped without closing the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, other.Write(ctx, websocket.MessageText, []byte("{not json")))

	send(t, other, messages.Message{Type: messages.MessageTypeCreateRoom})
	msg := receive(t, other)
	assert.Equal(t, messages.MessageTypeError, msg.Type)
	assert.Equal(t, messages.ServerFullText, msg.Message)

	send(t, other, messages.Message{Type: messages.MessageTypeJoinRoom, RoomID: "missing"})
	msg = receive(t, other)
	assert.Equal(t, messages.MessageTypeError, msg.Type)
	assert.Equal(t, messages.RoomFullText, msg.Message)

	send(t, host, messages.Message{Type: messages.MessageTypeJoinRoom, RoomID: roomID})
	msg = receive(t, host)
	assert.Equal(t, messages.MessageTypeError, msg.Type)
	assert.Equal(t, messages.RoomFullText, msg.Message)
}

func TestNetworkManager_playerLeft(t *testing.T) {
	n, url := newTestRelay(t, DefaultMaxRooms)
	host := dial(t, url)
	guest := dial(t, url)

	roomID := createRoom(t, host)
	send(t, guest, messages.Message{Type: messages.MessageTypeJoinRoom, RoomID: roomID})
	receive(t, host)
	receive(t, guest)

	require.NoError(t, guest.Close(websocket.StatusNormalClosure, "bye"))

	msg := receive(t, host)
	assert.Equal(t, messages.MessageTypePlayerLeft, msg.Type)
	assert.Equal(t, messages.PlayerLeftText, msg.Message)

	room, err := n.RoomManager.GetRoom(roomID)
	require.NoError(t, err)
	assert.Len(t, room.Members, 1)

	require.NoError(t, host.Close(websocket.StatusNormalClosure, "bye"))
	assert.Eventually(t, func() bool {
		return n.RoomManager.Count() == 0 && n.ClientManager.Count() == 0
	}, 5*time.Second, 10*time.Millisecond)
}

func TestNetworkManager_failedJoinKeepsRoom(t *testing.T) {
	n, url := newTestRelay(t, DefaultMaxRooms)
	host := dial(t, url)
	guest := dial(t, url)

	roomID := createRoom(t, host)
	send(t, guest, messages.Message{Type: messages.MessageTypeJoinRoom, RoomID: roomID})
	receive(t, host)
	receive(t, guest)

	send(t, host, messages.Message{Type: messages.MessageTypeJoinRoom, RoomID: "missing"})
	msg := receive(t, host)
	assert.Equal(t, messages.MessageTypeError, msg.Type)
	assert.Equal(t, messages.RoomFullText, msg.Message)

	room, err := n.RoomManager.GetRoom(roomID)
	require.NoError(t, err)
	assert.Len(t, room.Members, 2)

	// the guest sees the next update, not a player_left
	send(t, host, map[string]interface{}{
		"type": messages.MessageTypeGameUpdate,
		"gameState": map[string]interface{}{
			"board":        [][]int{{0}},
			"currentPiece": nil,
			"score":        10,
			"nextPiece":    nil,
		},
	})
	msg = receive(t, guest)
	assert.Equal(t, messages.MessageTypeOpponentUpdate, msg.Type)
}

func TestNetworkManager_joinAnotherRoom(t *testing.T) {
	_, url := newTestRelay(t, DefaultMaxRooms)
	host := dial(t, url)
	guest := dial(t, url)
	other := dial(t, url)

	roomID := createRoom(t, host)
	send(t, guest, messages.Message{Type: messages.MessageTypeJoinRoom, RoomID: roomID})
	receive(t, host)
	receive(t, guest)

	otherRoomID := createRoom(t, other)
	send(t, guest, messages.Message{Type: messages.MessageTypeJoinRoom, RoomID: otherRoomID})

	msg := receive(t, host)
	assert.Equal(t, messages.MessageTypePlayerLeft, msg.Type)
	for _, conn := range []*websocket.Conn{guest, other} {
		msg := receive(t, conn)
		assert.Equal(t, messages.MessageTypeGameStart, msg.Type)
	}
}

func TestNetworkManager_SweepIdleRooms(t *testing.T) {
	n, url := newTestRelay(t, DefaultMaxRooms)
	host := dial(t, url)
	createRoom(t, host)

	closed := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, _, err := host.Read(ctx)
		closed <- err
	}()

	assert.Equal(t, 0, n.SweepIdleRooms(time.Hour))
	assert.Equal(t, 1, n.SweepIdleRooms(0))
	assert.Equal(t, 0, n.RoomManager.Count())

	err := <-closed
	assert.Equal(t, websocket.StatusNormalClosure, websocket.CloseStatus(err))
}
