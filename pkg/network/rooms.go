package network

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultMaxRooms is the number of rooms the relay hosts at once
	DefaultMaxRooms = 50
	// RoomCapacity is the number of players in a room
	RoomCapacity = 2
	// RoomIDLength is the length of generated room ids
	RoomIDLength = 6
	// RoomIDMaxRetries bounds room id generation
	RoomIDMaxRetries = 1024
)

var (
	ErrServerFull   = errors.New("server is full")
	ErrRoomFull     = errors.New("room is full")
	ErrRoomNotFound = errors.New("room not found")
)

func IsServerFull(err error) bool {
	return errors.Is(err, ErrServerFull)
}

func IsRoomFull(err error) bool {
	return errors.Is(err, ErrRoomFull)
}

func IsRoomNotFound(err error) bool {
	return errors.Is(err, ErrRoomNotFound)
}

// Room pairs up to RoomCapacity clients.
type Room struct {
	ID           string
	Members      []string
	LastActivity time.Time
}

func (r *Room) copy() *Room {
	return &Room{
		ID:           r.ID,
		Members:      append([]string(nil), r.Members...),
		LastActivity: r.LastActivity,
	}
}

// RoomManager tracks rooms and which room each client is in.
// A client is a member of at most one room.
type RoomManager struct {
	rooms    map[string]*Room
	clients  map[string]string
	lock     sync.RWMutex
	maxRooms int
	now      func() time.Time
}

type NewRoomManagerOptions struct {
	MaxRooms int
	// Now defaults to time.Now
	Now func() time.Time
}

func NewRoomManager(opts NewRoomManagerOptions) *RoomManager {
	if opts.MaxRooms <= 0 {
		opts.MaxRooms = DefaultMaxRooms
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &RoomManager{
		rooms:    make(map[string]*Room),
		clients:  make(map[string]string),
		maxRooms: opts.MaxRooms,
		now:      opts.Now,
	}
}

// CreateRoom opens a room with the client as its only member.
func (rm *RoomManager) CreateRoom(clientID string) (*Room, error) {
	rm.lock.Lock()
	defer rm.lock.Unlock()

	if len(rm.rooms) >= rm.maxRooms {
		return nil, ErrServerFull
	}

	roomID, err := rm.generateRoomID(RoomIDMaxRetries)
	if err != nil {
		return nil, err
	}
	room := &Room{
		ID:           roomID,
		Members:      []string{clientID},
		LastActivity: rm.now(),
	}
	rm.rooms[roomID] = room
	rm.clients[clientID] = roomID

	return room.copy(), nil
}

// JoinRoom adds the client to an existing room that still has a free seat.
// A client already in another room leaves it only once the join succeeds,
// and the members left behind there are returned.
func (rm *RoomManager) JoinRoom(roomID string, clientID string) (*Room, []string, error) {
	rm.lock.Lock()
	defer rm.lock.Unlock()

	room, ok := rm.rooms[roomID]
	if !ok {
		return nil, nil, ErrRoomNotFound
	}
	if len(room.Members) >= RoomCapacity {
		return nil, nil, ErrRoomFull
	}
	for _, member := range room.Members {
		if member == clientID {
			return nil, nil, ErrRoomFull
		}
	}

	left := rm.leave(clientID)
	room.Members = append(room.Members, clientID)
	room.LastActivity = rm.now()
	rm.clients[clientID] = roomID

	return room.copy(), left, nil
}

// Touch refreshes the activity time of the client's room, if any.
func (rm *RoomManager) Touch(clientID string) {
	rm.lock.Lock()
	defer rm.lock.Unlock()

	if room, ok := rm.rooms[rm.clients[clientID]]; ok {
		room.LastActivity = rm.now()
	}
}

// RoomOf returns the id of the client's room or "" when it is not in one.
func (rm *RoomManager) RoomOf(clientID string) string {
	rm.lock.RLock()
	defer rm.lock.RUnlock()
	return rm.clients[clientID]
}

// Peers returns the other members of the client's room.
func (rm *RoomManager) Peers(clientID string) []string {
	rm.lock.RLock()
	defer rm.lock.RUnlock()

	room, ok := rm.rooms[rm.clients[clientID]]
	if !ok {
		return nil
	}
	peers := make([]string, 0, len(room.Members)-1)
	for _, member := range room.Members {
		if member != clientID {
			peers = append(peers, member)
		}
	}
	return peers
}

// Leave removes the client from its room. The room is deleted once empty.
// It returns the members left behind.
func (rm *RoomManager) Leave(clientID string) []string {
	rm.lock.Lock()
	defer rm.lock.Unlock()
	return rm.leave(clientID)
}

// leave expects rm.lock to be held.
func (rm *RoomManager) leave(clientID string) []string {
	roomID, ok := rm.clients[clientID]
	if !ok {
		return nil
	}
	delete(rm.clients, clientID)

	room, ok := rm.rooms[roomID]
	if !ok {
		return nil
	}
	members := room.Members[:0]
	for _, member := range room.Members {
		if member != clientID {
			members = append(members, member)
		}
	}
	room.Members = members

	if len(room.Members) == 0 {
		delete(rm.rooms, roomID)
		return nil
	}
	return append([]string(nil), room.Members...)
}

// RemoveIdleRooms deletes every room without activity for longer than
// timeout and returns them.
func (rm *RoomManager) RemoveIdleRooms(timeout time.Duration) []*Room {
	rm.lock.Lock()
	defer rm.lock.Unlock()

	now := rm.now()
	removed := make([]*Room, 0)
	for roomID, room := range rm.rooms {
		if now.Sub(room.LastActivity) <= timeout {
			continue
		}
		for _, member := range room.Members {
			delete(rm.clients, member)
		}
		delete(rm.rooms, roomID)
		removed = append(removed, room.copy())
	}
	return removed
}

// GetRoom returns a copy of a room.
func (rm *RoomManager) GetRoom(roomID string) (*Room, error) {
	rm.lock.RLock()
	defer rm.lock.RUnlock()

	room, ok := rm.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room.copy(), nil
}

func (rm *RoomManager) Count() int {
	rm.lock.RLock()
	defer rm.lock.RUnlock()
	return len(rm.rooms)
}

// generateRoomID must be called with the lock held.
func (rm *RoomManager) generateRoomID(maxRetries int) (string, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		id := strings.ReplaceAll(uuid.NewString(), "-", "")[:RoomIDLength]
		if _, ok := rm.rooms[id]; !ok {
			return id, nil
		}
	}

	return "", fmt.Errorf("failed to generate a unique room ID after %d attempts", maxRetries)
}
