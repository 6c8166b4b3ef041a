package sse

import (
	"context"
	"log/slog"
	"sync"

	"github.com/xaca/triviaboard-go/internal/model"
	"github.com/xaca/triviaboard-go/internal/services/team"
)

// Relay bridges store-side team subscriptions into SSE hubs: one store
// subscription per session, shared by every connected client of that
// session, so the store sees a single subscriber per session regardless
// of browser count.
type Relay struct {
	teams       team.ServiceInterface
	broadcaster *Broadcaster
	logger      *slog.Logger

	mu     sync.Mutex
	active map[model.SessionID]func()
}

// NewRelay creates a new Relay
func NewRelay(teams team.ServiceInterface, broadcaster *Broadcaster, logger *slog.Logger) *Relay {
	return &Relay{
		teams:       teams,
		broadcaster: broadcaster,
		logger:      logger.With(slog.String("component", "sse-relay")),
		active:      make(map[model.SessionID]func()),
	}
}

// EnsureSession starts the store subscription for a session if it is
// not already running. The subscription outlives the requesting client
// and is released by Close.
func (r *Relay) EnsureSession(sessionID model.SessionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.active[sessionID]; ok {
		return nil
	}

	unsubscribe, err := r.teams.SubscribeToTeams(context.Background(), sessionID, func(teams []*model.Team) {
		r.broadcaster.BroadcastTeamsUpdate(sessionID, teams)
	})
	if err != nil {
		return err
	}

	r.active[sessionID] = unsubscribe
	r.logger.Info("store subscription started", slog.String("session_id", string(sessionID)))
	return nil
}

// Close releases every store subscription
func (r *Relay) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for sessionID, unsubscribe := range r.active {
		unsubscribe()
		delete(r.active, sessionID)
	}
	r.logger.Info("store subscriptions released")
}
