package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/DylM0nster22/Tetris/pkg/log"
	"github.com/DylM0nster22/Tetris/pkg/messages"
	"github.com/DylM0nster22/Tetris/pkg/queue"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	DefaultServerURL = "ws://localhost:10000/ws"
	// WriteTimeout bounds a single frame write
	WriteTimeout = 5 * time.Second
)

var ErrNotConnected = errors.New("not connected to relay")

// WSClient is a connection to the relay server.
type WSClient struct {
	serverURL    string
	messageQueue queue.Queue
	conn         *websocket.Conn
	lock         sync.RWMutex
}

// NewWSClient creates a new relay client. Received messages are
// enqueued to messageQueue as *messages.Message.
func NewWSClient(serverURL string, messageQueue queue.Queue) *WSClient {
	return &WSClient{
		serverURL:    serverURL,
		messageQueue: messageQueue,
	}
}

// Connect dials the relay.
func (c *WSClient) Connect(ctx context.Context) error {
	conn, _, err := websocket.Dial(ctx, c.serverURL, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to relay: %v", err)
	}
	// opponent updates carry a full client frame plus the envelope
	conn.SetReadLimit(2 * messages.MaxMessageSize)

	c.lock.Lock()
	c.conn = conn
	c.lock.Unlock()
	return nil
}

// IsConnected reports whether Connect succeeded and Close was not called.
func (c *WSClient) IsConnected() bool {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.conn != nil
}

// HandleMessages reads from the relay until the connection ends.
func (c *WSClient) HandleMessages(ctx context.Context) error {
	conn, err := c.getConn()
	if err != nil {
		return err
	}
	defer c.Close()

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("failed to read from relay: %v", err)
		}

		msg := &messages.Message{}
		if err := json.Unmarshal(data, msg); err != nil {
			log.Warn("Dropping unparseable relay message: %v", err)
			continue
		}
		log.Trace("Received relay message %s", msg.Type)

		if err := c.messageQueue.Enqueue(msg); err != nil {
			log.Error("Failed to enqueue message: %v", err)
		}
	}
}

func (c *WSClient) CreateRoom(ctx context.Context) error {
	return c.SendMessage(ctx, &messages.Message{Type: messages.MessageTypeCreateRoom})
}

func (c *WSClient) JoinRoom(ctx context.Context, roomID string) error {
	return c.SendMessage(ctx, &messages.Message{Type: messages.MessageTypeJoinRoom, RoomID: roomID})
}

// SendGameUpdate mirrors the local game state to the opponent.
func (c *WSClient) SendGameUpdate(ctx context.Context, gameState *messages.GameState) error {
	payload, err := json.Marshal(gameState)
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %v", err)
	}
	return c.SendMessage(ctx, &messages.Message{Type: messages.MessageTypeGameUpdate, GameState: payload})
}

// SendMessage sends a message to the relay.
func (c *WSClient) SendMessage(ctx context.Context, msg *messages.Message) error {
	conn, err := c.getConn()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, WriteTimeout)
	defer cancel()
	if err := wsjson.Write(ctx, conn, msg); err != nil {
		return fmt.Errorf("failed to write message to relay: %v", err)
	}
	return nil
}

// Close closes the connection. It is safe to call more than once.
func (c *WSClient) Close() error {
	c.lock.Lock()
	conn := c.conn
	c.conn = nil
	c.lock.Unlock()

	if conn == nil {
		return nil
	}
	return conn.Close(websocket.StatusNormalClosure, "")
}

func (c *WSClient) getConn() (*websocket.Conn, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	if c.conn == nil {
		return nil, ErrNotConnected
	}
	return c.conn, nil
}
