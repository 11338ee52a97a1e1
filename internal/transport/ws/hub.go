package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgAssessmentStarted   MessageType = "assessment_started"
	MsgAnswerRecorded      MessageType = "answer_recorded"
	MsgAssessmentCompleted MessageType = "assessment_completed"
	MsgError               MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections for project watchers
type Hub struct {
	// projectID -> watcherID -> conn
	watchers map[string]map[string]*Connection

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents one watcher connection on a project feed
type Connection struct {
	ProjectID string
	WatcherID string
	Send      chan []byte
	Hub       *Hub
}

// BroadcastMessage is a message to broadcast to a project's watchers
type BroadcastMessage struct {
	ProjectID string
	Message   *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		watchers:   make(map[string]map[string]*Connection),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.watchers[conn.ProjectID] == nil {
				h.watchers[conn.ProjectID] = make(map[string]*Connection)
			}
			h.watchers[conn.ProjectID][conn.WatcherID] = conn
			log.Printf("Watcher %s connected to project %s", conn.WatcherID, conn.ProjectID)
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.watchers[conn.ProjectID]; ok {
				if existing, ok := conns[conn.WatcherID]; ok && existing == conn {
					delete(conns, conn.WatcherID)
					close(conn.Send)
					log.Printf("Watcher %s disconnected from project %s", conn.WatcherID, conn.ProjectID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for _, conn := range h.watchers[msg.ProjectID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToProject sends a message to all watchers of a project
// (implements service.Broadcaster)
func (h *Hub) BroadcastToProject(projectID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		ProjectID: projectID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}
