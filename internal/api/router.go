package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/xaca/triviaboard-go/internal/api/handler"
	"github.com/xaca/triviaboard-go/internal/middleware"
	"github.com/xaca/triviaboard-go/internal/services/board"
	"github.com/xaca/triviaboard-go/internal/services/question"
	"github.com/xaca/triviaboard-go/internal/services/session"
	"github.com/xaca/triviaboard-go/internal/services/team"
	"github.com/xaca/triviaboard-go/internal/web/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	SessionService  session.ServiceInterface
	TeamService     team.ServiceInterface
	BoardService    board.ServiceInterface
	Mapper          *board.Mapper
	QuestionService *question.Service
	HubManager      *sse.HubManager
	Broadcaster     *sse.Broadcaster
	Relay           *sse.Relay
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	sessionHandler := handler.NewSessionHandler(cfg.SessionService)
	boardHandler := handler.NewBoardHandler(cfg.BoardService, cfg.Mapper, cfg.Broadcaster)
	teamHandler := handler.NewTeamHandler(cfg.TeamService)
	questionHandler := handler.NewQuestionHandler(cfg.QuestionService)
	eventsHandler := handler.NewEventsHandler(cfg.SessionService, cfg.Relay, cfg.HubManager)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Session routes
	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions", sessionHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods(http.MethodGet)

	// Board routes
	api.HandleFunc("/sessions/{id}/board", boardHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/board/answered", boardHandler.MarkAnswered).Methods(http.MethodPost)

	// Team routes
	api.HandleFunc("/sessions/{id}/teams", teamHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/teams", teamHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/teams/{team_id}", teamHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/teams/{team_id}/score", teamHandler.UpdateScore).Methods(http.MethodPut)

	// SSE stream
	api.HandleFunc("/sessions/{id}/events", eventsHandler.Stream).Methods(http.MethodGet)

	// Question catalog
	api.HandleFunc("/questions", questionHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/questions/{category}/{points}", questionHandler.Get).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
