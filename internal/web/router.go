package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/xaca/triviaboard-go/internal/middleware"
	"github.com/xaca/triviaboard-go/internal/services/session"
	"github.com/xaca/triviaboard-go/internal/services/team"
	"github.com/xaca/triviaboard-go/internal/web/handler"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger         *slog.Logger
	SessionService session.ServiceInterface
	TeamService    team.ServiceInterface

	// PublicURL is the externally reachable base URL used in QR join
	// links; empty means derive from the request
	PublicURL string
}

// NewRouter creates the web router serving the host and player pages
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	pages := handler.NewPageHandler(cfg.SessionService, cfg.TeamService, homeHTML, hostHTML, playerHTML)
	qr := handler.NewQRHandler(cfg.TeamService, cfg.PublicURL)

	r.HandleFunc("/", pages.Home).Methods(http.MethodGet)
	r.HandleFunc("/host/{id}", pages.Host).Methods(http.MethodGet)
	r.HandleFunc("/player/{id}/{team_id}", pages.Player).Methods(http.MethodGet)
	r.HandleFunc("/player/{id}/{team_id}/qr", qr.Get).Methods(http.MethodGet)

	return r
}
