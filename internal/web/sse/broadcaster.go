package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/xaca/triviaboard-go/internal/model"
)

// Event names pushed to session clients
const (
	EventTeamsUpdate = "teams-update"
	EventBoardUpdate = "board-update"
)

// Broadcaster pushes JSON state updates to the SSE clients of a session.
// Payloads carry data, not markup; the pages render them client-side.
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// teamPayload is the wire shape of one team in a teams-update event
type teamPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// BroadcastTeamsUpdate pushes the full current team list to all session
// clients
func (b *Broadcaster) BroadcastTeamsUpdate(sessionID model.SessionID, teams []*model.Team) {
	hub := b.hubManager.GetHub(sessionID)
	if hub == nil {
		return
	}

	payload := make([]teamPayload, 0, len(teams))
	for _, t := range teams {
		payload = append(payload, teamPayload{
			ID:    string(t.ID),
			Name:  t.Name,
			Score: t.Score,
		})
	}

	data, err := json.Marshal(payload)
	if err != nil {
		b.logger.Error("sse failed to encode team list",
			slog.String("session_id", string(sessionID)),
			slog.Any("error", err))
		return
	}
	hub.BroadcastEvent(EventTeamsUpdate, string(data))
}

// BroadcastBoardUpdate pushes a newly answered cell to all session
// clients. This is an optimistic hint layered over the durable board;
// clients reconcile against ReadBoard on reload.
func (b *Broadcaster) BroadcastBoardUpdate(sessionID model.SessionID, pos model.Position) {
	hub := b.hubManager.GetHub(sessionID)
	if hub == nil {
		return
	}

	data, err := json.Marshal(pos)
	if err != nil {
		b.logger.Error("sse failed to encode board update",
			slog.String("session_id", string(sessionID)),
			slog.Any("error", err))
		return
	}
	hub.BroadcastEvent(EventBoardUpdate, string(data))
}
