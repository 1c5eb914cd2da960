package network

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/DylM0nster22/Tetris/pkg/messages"
	"github.com/google/uuid"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	// WriteTimeout bounds a single frame write to a client
	WriteTimeout = 5 * time.Second
)

// Client represents a connected client
type Client struct {
	ID         string
	RemoteAddr string
	conn       *websocket.Conn
}

// Send writes a message to the client.
func (c *Client) Send(ctx context.Context, msg *messages.Message) error {
	ctx, cancel := context.WithTimeout(ctx, WriteTimeout)
	defer cancel()
	if err := wsjson.Write(ctx, c.conn, msg); err != nil {
		return fmt.Errorf("failed to write message to client %s: %v", c.ID, err)
	}
	return nil
}

// Close closes the client's connection with a normal closure.
func (c *Client) Close(reason string) error {
	return c.conn.Close(websocket.StatusNormalClosure, reason)
}

// ClientManager manages connected clients
type ClientManager struct {
	clients     map[string]*Client
	clientsLock sync.RWMutex
}

// NewClientManager creates a new ClientManager
func NewClientManager() *ClientManager {
	return &ClientManager{
		clients: make(map[string]*Client),
	}
}

// ConnectClient registers a connection and returns the new client
func (cm *ClientManager) ConnectClient(conn *websocket.Conn, remoteAddr string) *Client {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()

	client := &Client{
		ID:         uuid.NewString(),
		RemoteAddr: remoteAddr,
		conn:       conn,
	}
	cm.clients[client.ID] = client

	return client
}

// DisconnectClient removes a client from the manager
func (cm *ClientManager) DisconnectClient(clientID string) {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()
	delete(cm.clients, clientID)
}

// GetClient returns a connected client by ID
func (cm *ClientManager) GetClient(clientID string) (*Client, bool) {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	client, ok := cm.clients[clientID]
	return client, ok
}

// GetClients returns all connected clients.
func (cm *ClientManager) GetClients() []*Client {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	clients := make([]*Client, 0, len(cm.clients))
	for _, client := range cm.clients {
		clients = append(clients, client)
	}
	return clients
}

func (cm *ClientManager) Count() int {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	return len(cm.clients)
}
