package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/xaca/triviaboard-go/internal/api/apierr"
	"github.com/xaca/triviaboard-go/internal/api/request"
	"github.com/xaca/triviaboard-go/internal/api/response"
	"github.com/xaca/triviaboard-go/internal/model"
	"github.com/xaca/triviaboard-go/internal/services/team"
)

// TeamHandler handles team endpoints
type TeamHandler struct {
	teams team.ServiceInterface
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(teams team.ServiceInterface) *TeamHandler {
	return &TeamHandler{teams: teams}
}

// Create handles POST /sessions/{id}/teams
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	sessionID := model.SessionID(mux.Vars(r)["id"])

	var req request.CreateTeams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}
	if req.Count < 1 {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Count must be at least 1"))
		return
	}

	if err := h.teams.CreateTeams(r.Context(), sessionID, req.Count); err != nil {
		apierr.WriteError(w, err)
		return
	}

	teams, err := h.teams.ReadTeams(r.Context(), sessionID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.TeamListFromModels(teams))
}

// List handles GET /sessions/{id}/teams
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	sessionID := model.SessionID(mux.Vars(r)["id"])

	teams, err := h.teams.ReadTeams(r.Context(), sessionID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TeamListFromModels(teams))
}

// Get handles GET /sessions/{id}/teams/{team_id}
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := model.SessionID(vars["id"])
	teamID := model.TeamID(vars["team_id"])

	t, err := h.teams.ReadTeam(r.Context(), sessionID, teamID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TeamFromModel(t))
}

// UpdateScore handles PUT /sessions/{id}/teams/{team_id}/score
func (h *TeamHandler) UpdateScore(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := model.SessionID(vars["id"])
	teamID := model.TeamID(vars["team_id"])

	var req request.UpdateScore
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	if err := h.teams.UpdateTeamScore(r.Context(), sessionID, teamID, req.Score); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}
