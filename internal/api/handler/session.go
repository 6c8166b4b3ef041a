package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/xaca/triviaboard-go/internal/api/apierr"
	"github.com/xaca/triviaboard-go/internal/api/response"
	"github.com/xaca/triviaboard-go/internal/model"
	"github.com/xaca/triviaboard-go/internal/services/session"
)

// SessionHandler handles session endpoints
type SessionHandler struct {
	sessions session.ServiceInterface
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(sessions session.ServiceInterface) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Create handles POST /sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := h.sessions.CreateSession(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionCreated{ID: string(id)})
}

// List handles GET /sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.sessions.ListSessionIDs(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	response.JSON(w, http.StatusOK, response.SessionList{IDs: out})
}

// Get handles GET /sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	s, err := h.sessions.GetSession(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}
