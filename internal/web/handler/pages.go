package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/xaca/triviaboard-go/internal/model"
	"github.com/xaca/triviaboard-go/internal/services/session"
	"github.com/xaca/triviaboard-go/internal/services/team"
)

// PageHandler serves the embedded HTML shells. Pages read their session
// and team IDs from the URL client-side; the handlers only validate
// that the records exist before serving.
type PageHandler struct {
	sessions session.ServiceInterface
	teams    team.ServiceInterface

	home   []byte
	host   []byte
	player []byte
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(sessions session.ServiceInterface, teams team.ServiceInterface, home, host, player []byte) *PageHandler {
	return &PageHandler{
		sessions: sessions,
		teams:    teams,
		home:     home,
		host:     host,
		player:   player,
	}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	servePage(w, h.home)
}

// Host handles GET /host/{id}
func (h *PageHandler) Host(w http.ResponseWriter, r *http.Request) {
	sessionID := model.SessionID(mux.Vars(r)["id"])

	if _, err := h.sessions.GetSession(r.Context(), sessionID); err != nil {
		http.NotFound(w, r)
		return
	}
	servePage(w, h.host)
}

// Player handles GET /player/{id}/{team_id}. This URL shape is encoded
// into QR codes; it must remain stable.
func (h *PageHandler) Player(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := model.SessionID(vars["id"])
	teamID := model.TeamID(vars["team_id"])

	if _, err := h.teams.ReadTeam(r.Context(), sessionID, teamID); err != nil {
		http.NotFound(w, r)
		return
	}
	servePage(w, h.player)
}

func servePage(w http.ResponseWriter, page []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(page)
}
