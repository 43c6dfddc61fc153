package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"homeclean-booking/internal/pkg/errs"
	"homeclean-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

var ErrHubStopped = errs.New("notification hub stopped")

// Hub routes per-user notifications to connected websocket clients. A user
// may hold several connections, one per client session key.
type Hub struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]map[string]*Client
	stopped bool
}

func NewHub() *Hub {
	return &Hub{users: make(map[uuid.UUID]map[string]*Client)}
}

func (h *Hub) Start(context.Context) error {
	h.mu.Lock()
	h.stopped = false
	h.mu.Unlock()
	slog.Info("notification hub started")
	return nil
}

// Stop closes every connection. Further Attach calls are rejected.
func (h *Hub) Stop(context.Context) error {
	h.mu.Lock()
	h.stopped = true
	var all []*Client
	for userID, sessions := range h.users {
		for _, c := range sessions {
			all = append(all, c)
		}
		delete(h.users, userID)
	}
	h.mu.Unlock()

	for _, c := range all {
		c.close()
	}
	slog.Info("notification hub stopped", slog.Int("closed_clients", len(all)))
	return nil
}

// Attach registers c, replacing a stale connection with the same session key.
func (h *Hub) Attach(c *Client) error {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return ErrHubStopped
	}
	sessions := h.users[c.userID]
	if sessions == nil {
		sessions = make(map[string]*Client)
		h.users[c.userID] = sessions
	}
	stale := sessions[c.sessionKey]
	sessions[c.sessionKey] = c
	h.mu.Unlock()

	if stale != nil && stale != c {
		stale.close()
		slog.Info("ws client replaced", slog.String("user_id", c.userID.String()), slog.String("session_key", c.sessionKey))
	}
	slog.Info("ws client attached", slog.String("user_id", c.userID.String()), slog.String("session_key", c.sessionKey))
	return nil
}

func (h *Hub) Detach(c *Client) {
	h.mu.Lock()
	if sessions, ok := h.users[c.userID]; ok && sessions[c.sessionKey] == c {
		delete(sessions, c.sessionKey)
		if len(sessions) == 0 {
			delete(h.users, c.userID)
		}
	}
	h.mu.Unlock()

	c.close()
	slog.Info("ws client detached", slog.String("user_id", c.userID.String()), slog.String("session_key", c.sessionKey))
}

// Notify delivers n to every connection of userID. A user with no open
// connection is not an error; the notification job row covers offline users.
func (h *Hub) Notify(_ context.Context, userID uuid.UUID, n commands.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return errs.Wrap(err, "marshal notification")
	}

	h.mu.RLock()
	if h.stopped {
		h.mu.RUnlock()
		return ErrHubStopped
	}
	targets := make([]*Client, 0, len(h.users[userID]))
	for _, c := range h.users[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if !c.enqueue(data) {
			slog.Warn("ws send buffer full", slog.String("user_id", userID.String()), slog.String("session_key", c.sessionKey))
			go h.Detach(c)
		}
	}
	return nil
}

func (h *Hub) ConnectionCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users[userID])
}
