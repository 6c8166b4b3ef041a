package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/xaca/triviaboard-go/internal/api/apierr"
	"github.com/xaca/triviaboard-go/internal/model"
	"github.com/xaca/triviaboard-go/internal/services/session"
	"github.com/xaca/triviaboard-go/internal/web/sse"
)

// EventsHandler serves the per-session SSE stream
type EventsHandler struct {
	sessions   session.ServiceInterface
	relay      *sse.Relay
	hubManager *sse.HubManager
}

// NewEventsHandler creates a new EventsHandler
func NewEventsHandler(sessions session.ServiceInterface, relay *sse.Relay, hubManager *sse.HubManager) *EventsHandler {
	return &EventsHandler{
		sessions:   sessions,
		relay:      relay,
		hubManager: hubManager,
	}
}

// Stream handles GET /sessions/{id}/events. The stream carries
// teams-update events (full team list) and board-update events (newly
// answered cells). An optional ?team= query labels the connection.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	sessionID := model.SessionID(mux.Vars(r)["id"])

	if _, err := h.sessions.GetSession(r.Context(), sessionID); err != nil {
		apierr.WriteError(w, err)
		return
	}

	if err := h.relay.EnsureSession(sessionID); err != nil {
		apierr.WriteError(w, err)
		return
	}

	viewer := r.URL.Query().Get("team")
	if viewer == "" {
		viewer = "host"
	}

	hub := h.hubManager.GetOrCreateHub(sessionID)
	sse.ServeSSE(w, r, hub, viewer)
}
