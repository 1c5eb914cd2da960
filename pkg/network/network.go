package network

import (
	"context"
	"net/http"
	"time"

	"github.com/DylM0nster22/Tetris/pkg/log"
	"github.com/DylM0nster22/Tetris/pkg/messages"
	"nhooyr.io/websocket"
)

// NetworkManager relays messages between the two members of a room.
// It never looks inside game states.
type NetworkManager struct {
	ClientManager *ClientManager
	RoomManager   *RoomManager
	WSServer      *WSServer
}

type NewNetworkManagerOptions struct {
	// Ctx ends every relay connection when done
	Ctx           context.Context
	ClientManager *ClientManager
	RoomManager   *RoomManager
	PingInterval  time.Duration
}

func NewNetworkManager(opts NewNetworkManagerOptions) *NetworkManager {
	n := &NetworkManager{
		ClientManager: opts.ClientManager,
		RoomManager:   opts.RoomManager,
	}
	n.WSServer = NewWSServer(NewWSServerOptions{
		Ctx:               opts.Ctx,
		PingInterval:      opts.PingInterval,
		ConnectHandler:    n.handleConnect,
		DisconnectHandler: n.handleDisconnect,
		MessageHandler:    n.handleMessage,
	})
	return n
}

// Handler returns the http.Handler serving relay connections.
func (n *NetworkManager) Handler() http.Handler {
	return n.WSServer
}

func (n *NetworkManager) handleConnect(conn *websocket.Conn, r *http.Request) *Client {
	client := n.ClientManager.ConnectClient(conn, r.RemoteAddr)
	log.Info("Client %s connected from %s", client.ID, client.RemoteAddr)
	return client
}

func (n *NetworkManager) handleDisconnect(client *Client) {
	n.leaveRoom(context.Background(), client.ID)
	n.ClientManager.DisconnectClient(client.ID)
	log.Info("Client %s disconnected", client.ID)
}

func (n *NetworkManager) handleMessage(ctx context.Context, client *Client, message *messages.Message) {
	n.RoomManager.Touch(client.ID)

	switch message.Type {
	case messages.MessageTypeCreateRoom:
		n.handleCreateRoom(ctx, client)
	case messages.MessageTypeJoinRoom:
		n.handleJoinRoom(ctx, client, message.RoomID)
	case messages.MessageTypeGameUpdate:
		n.handleGameUpdate(ctx, client, message.GameState)
	default:
		log.Debug("Ignoring message of type %q from client %s", message.Type, client.ID)
	}
}

func (n *NetworkManager) handleCreateRoom(ctx context.Context, client *Client) {
	n.leaveRoom(ctx, client.ID)

	room, err := n.RoomManager.CreateRoom(client.ID)
	if err != nil {
		log.Warn("Client %s failed to create a room: %v", client.ID, err)
		n.send(ctx, client.ID, messages.NewErrorMessage(messages.ServerFullText))
		return
	}

	log.Info("Client %s created room %s", client.ID, room.ID)
	n.send(ctx, client.ID, &messages.Message{
		Type:   messages.MessageTypeRoomCreated,
		RoomID: room.ID,
	})
}

func (n *NetworkManager) handleJoinRoom(ctx context.Context, client *Client, roomID string) {
	room, left, err := n.RoomManager.JoinRoom(roomID, client.ID)
	if err != nil {
		log.Debug("Client %s failed to join room %q: %v", client.ID, roomID, err)
		n.send(ctx, client.ID, messages.NewErrorMessage(messages.RoomFullText))
		return
	}
	n.notifyLeft(ctx, left)

	log.Info("Client %s joined room %s", client.ID, room.ID)
	for _, member := range room.Members {
		n.send(ctx, member, &messages.Message{
			Type:    messages.MessageTypeGameStart,
			Message: messages.GameStartText,
		})
	}
}

func (n *NetworkManager) handleGameUpdate(ctx context.Context, client *Client, raw []byte) {
	peers := n.RoomManager.Peers(client.ID)
	if len(peers) == 0 {
		return
	}

	gameState, err := messages.RelayGameState(raw)
	if err != nil {
		log.Warn("Dropping game update from client %s: %v", client.ID, err)
		return
	}

	for _, peer := range peers {
		n.send(ctx, peer, &messages.Message{
			Type:      messages.MessageTypeOpponentUpdate,
			GameState: gameState,
		})
	}
}

// leaveRoom removes the client from its room and tells whoever is left.
func (n *NetworkManager) leaveRoom(ctx context.Context, clientID string) {
	n.notifyLeft(ctx, n.RoomManager.Leave(clientID))
}

func (n *NetworkManager) notifyLeft(ctx context.Context, members []string) {
	for _, member := range members {
		n.send(ctx, member, &messages.Message{
			Type:    messages.MessageTypePlayerLeft,
			Message: messages.PlayerLeftText,
		})
	}
}

// SweepIdleRooms closes the members of rooms idle for longer than timeout
// and deletes the rooms.
func (n *NetworkManager) SweepIdleRooms(timeout time.Duration) int {
	rooms := n.RoomManager.RemoveIdleRooms(timeout)
	for _, room := range rooms {
		log.Info("Closing idle room %s", room.ID)
		for _, member := range room.Members {
			client, ok := n.ClientManager.GetClient(member)
			if !ok {
				continue
			}
			if err := client.Close("room inactive"); err != nil {
				log.Debug("Failed to close client %s: %v", member, err)
			}
		}
	}
	return len(rooms)
}

func (n *NetworkManager) send(ctx context.Context, clientID string, msg *messages.Message) {
	client, ok := n.ClientManager.GetClient(clientID)
	if !ok {
		log.Debug("Client %s is gone, dropping %s", clientID, msg.Type)
		return
	}
	if err := client.Send(ctx, msg); err != nil {
		log.Error("Failed to send %s: %v", msg.Type, err)
	}
}
