package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/xaca/triviaboard-go/internal/api/apierr"
	"github.com/xaca/triviaboard-go/internal/api/request"
	"github.com/xaca/triviaboard-go/internal/api/response"
	"github.com/xaca/triviaboard-go/internal/model"
	"github.com/xaca/triviaboard-go/internal/services/board"
	"github.com/xaca/triviaboard-go/internal/web/sse"
)

// BoardHandler handles board endpoints
type BoardHandler struct {
	boards      board.ServiceInterface
	mapper      *board.Mapper
	broadcaster *sse.Broadcaster
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(boards board.ServiceInterface, mapper *board.Mapper, broadcaster *sse.Broadcaster) *BoardHandler {
	return &BoardHandler{
		boards:      boards,
		mapper:      mapper,
		broadcaster: broadcaster,
	}
}

// Get handles GET /sessions/{id}/board
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := model.SessionID(mux.Vars(r)["id"])

	answered, err := h.boards.ReadBoard(r.Context(), sessionID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BoardFromPositions(answered))
}

// MarkAnswered handles POST /sessions/{id}/board/answered
func (h *BoardHandler) MarkAnswered(w http.ResponseWriter, r *http.Request) {
	sessionID := model.SessionID(mux.Vars(r)["id"])

	var req request.MarkAnswered
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	var pos model.Position
	switch {
	case req.ByQuestion():
		mapped, err := h.mapper.CoordinatesOf(*req.Category, *req.Points)
		if err != nil {
			apierr.WriteError(w, err)
			return
		}
		pos = mapped
	case req.ByPosition():
		pos = model.Position{Row: *req.Row, Col: *req.Col}
	default:
		apierr.WriteError(w, apierr.NewInvalidRequestError("Provide either row and col, or category and points"))
		return
	}

	if err := h.boards.MarkAnswered(r.Context(), sessionID, pos); err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.broadcaster.BroadcastBoardUpdate(sessionID, pos)
	response.NoContent(w)
}
