package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"notekeeper/internal/domain"
	"notekeeper/internal/logger"
)

// Manager is the change-feed hub. Run owns registration; Broadcast may be
// called from any goroutine.
type Manager struct {
	clients      map[string]*Client
	clientsMutex sync.RWMutex
	Register     chan *Client
	Unregister   chan *Client
	broadcast    chan []byte
	maxClients   int
	writeWait    time.Duration
	pongWait     time.Duration
	pingPeriod   time.Duration
	logger       *logger.Logger
	done         chan struct{}
}

func NewManager(maxClients int, writeWait, pongWait, pingPeriod time.Duration, log *logger.Logger) *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		maxClients: maxClients,
		writeWait:  writeWait,
		pongWait:   pongWait,
		pingPeriod: pingPeriod,
		logger:     log,
		done:       make(chan struct{}),
	}
}

// Run processes registrations and broadcasts until ctx is done, then closes
// every client.
func (m *Manager) Run(ctx context.Context) {
	defer close(m.done)

	for {
		select {
		case <-ctx.Done():
			m.closeAll()
			return

		case client := <-m.Register:
			m.registerClient(client)

		case client := <-m.Unregister:
			m.unregisterClient(client)

		case message := <-m.broadcast:
			m.deliver(message)
		}
	}
}

// Attach hands client to the hub. It reports false once the hub has stopped.
func (m *Manager) Attach(client *Client) bool {
	select {
	case m.Register <- client:
		return true
	case <-m.done:
		return false
	}
}

func (m *Manager) detach(client *Client) {
	select {
	case m.Unregister <- client:
	case <-m.done:
	}
}

func (m *Manager) registerClient(client *Client) {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	if len(m.clients) >= m.maxClients {
		m.logger.Warn().Int("max_clients", m.maxClients).Msg("max websocket clients reached")
		close(client.Send)
		return
	}

	m.clients[client.ID] = client
	m.logger.Debug().Str("client_id", client.ID).Msg("client registered")
}

func (m *Manager) unregisterClient(client *Client) {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	m.removeLocked(client)
}

func (m *Manager) removeLocked(client *Client) {
	if _, ok := m.clients[client.ID]; ok {
		delete(m.clients, client.ID)
		close(client.Send)
		m.logger.Debug().Str("client_id", client.ID).Msg("client unregistered")
	}
}

func (m *Manager) deliver(message []byte) {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	for _, client := range m.clients {
		select {
		case client.Send <- message:
		default:
			m.logger.Warn().Str("client_id", client.ID).Msg("client send buffer full, dropping connection")
			m.removeLocked(client)
		}
	}
}

func (m *Manager) closeAll() {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	for _, client := range m.clients {
		m.removeLocked(client)
	}
}

// Broadcast queues message for every connected client. It never blocks: when
// the queue is full the message is dropped.
func (m *Manager) Broadcast(message *Message) error {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		return err
	}

	select {
	case m.broadcast <- messageBytes:
	default:
		m.logger.Warn().Str("type", string(message.Type)).Msg("broadcast queue full, dropping message")
	}
	return nil
}

// NotifyNoteChange publishes a committed note mutation to the feed.
func (m *Manager) NotifyNoteChange(change domain.NoteChange) {
	message, err := MessageFromChange(change)
	if err != nil {
		m.logger.Error().Err(err).Str("note_id", change.NoteID).Msg("failed to build change message")
		return
	}

	if err := m.Broadcast(message); err != nil {
		m.logger.Error().Err(err).Str("note_id", change.NoteID).Msg("failed to broadcast change")
	}
}

func (m *Manager) Connections() int {
	m.clientsMutex.RLock()
	defer m.clientsMutex.RUnlock()

	return len(m.clients)
}
