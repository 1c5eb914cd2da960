package network

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/DylM0nster22/Tetris/pkg/log"
	"github.com/DylM0nster22/Tetris/pkg/messages"
	"nhooyr.io/websocket"
)

const (
	// DefaultPingInterval is how often idle connections are probed
	DefaultPingInterval = 30 * time.Second
)

// ConnectHandler is called once per accepted connection.
type ConnectHandler func(conn *websocket.Conn, r *http.Request) *Client

// DisconnectHandler is called once when a connection ends.
type DisconnectHandler func(client *Client)

// MessageHandler is called for each well-formed frame, in arrival order.
type MessageHandler func(ctx context.Context, client *Client, message *messages.Message)

// WSServer upgrades HTTP requests to relay connections.
type WSServer struct {
	ctx               context.Context
	pingInterval      time.Duration
	connectHandler    ConnectHandler
	disconnectHandler DisconnectHandler
	messageHandler    MessageHandler
}

type NewWSServerOptions struct {
	// Ctx ends every connection when done
	Ctx               context.Context
	PingInterval      time.Duration
	ConnectHandler    ConnectHandler
	DisconnectHandler DisconnectHandler
	MessageHandler    MessageHandler
}

// NewWSServer creates a new WebSocket server.
func NewWSServer(opts NewWSServerOptions) *WSServer {
	if opts.Ctx == nil {
		opts.Ctx = context.Background()
	}
	if opts.PingInterval <= 0 {
		opts.PingInterval = DefaultPingInterval
	}
	return &WSServer{
		ctx:               opts.Ctx,
		pingInterval:      opts.PingInterval,
		connectHandler:    opts.ConnectHandler,
		disconnectHandler: opts.DisconnectHandler,
		messageHandler:    opts.MessageHandler,
	}
}

func (s *WSServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// browser clients are served from other origins
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.Error("Failed to upgrade to WebSocket: %v", err)
		return
	}
	conn.SetReadLimit(messages.MaxMessageSize)
	log.Debug("New WebSocket connection from %s", r.RemoteAddr)

	s.handleWSConnection(conn, r)
}

// handleWSConnection blocks until the connection ends.
func (s *WSServer) handleWSConnection(conn *websocket.Conn, r *http.Request) {
	ctx, cancel := context.WithCancel(s.ctx)
	client := s.connectHandler(conn, r)
	defer func() {
		cancel()
		s.disconnectHandler(client)
		conn.Close(websocket.StatusNormalClosure, "")
	}()

	go s.keepAlive(ctx, conn)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway && !errors.Is(err, context.Canceled) {
				log.Error("Error reading WebSocket message from %s: %v", client.RemoteAddr, err)
			}
			log.Trace("Connection closed for client %s", client.ID)
			return
		}

		message := &messages.Message{}
		if err := json.Unmarshal(data, message); err != nil {
			log.Warn("Dropping unparseable message from client %s: %v", client.ID, err)
			continue
		}

		s.messageHandler(ctx, client, message)
	}
}

// keepAlive closes the connection when a ping goes unanswered.
func (s *WSServer) keepAlive(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(s.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, s.pingInterval)
			err := conn.Ping(pingCtx)
			cancel()
			if err != nil {
				if ctx.Err() == nil {
					log.Debug("Ping failed, closing connection: %v", err)
					conn.Close(websocket.StatusPolicyViolation, "ping timeout")
				}
				return
			}
		}
	}
}
