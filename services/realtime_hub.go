package services

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// WSClient is one connected browser tab.
type WSClient struct {
	ID     uuid.UUID
	UserID int
	Conn   *websocket.Conn
}

func NewWSClient(userID int, conn *websocket.Conn) *WSClient {
	return &WSClient{ID: uuid.New(), UserID: userID, Conn: conn}
}

// RealtimeHub fans chat events out to every connection a user has
// open, so other tabs see assistant replies as they are stored.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[int]map[uuid.UUID]*WSClient
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[int]map[uuid.UUID]*WSClient)}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[uuid.UUID]*WSClient)
	}
	h.clients[c.UserID][c.ID] = c
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c.ID)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	if c.Conn != nil {
		_ = c.Conn.Close()
	}
}

// ClientCount reports how many connections a user currently has.
func (h *RealtimeHub) ClientCount(userID int) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func (h *RealtimeHub) Broadcast(userID int, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
