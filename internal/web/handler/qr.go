package handler

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/skip2/go-qrcode"

	"github.com/xaca/triviaboard-go/internal/model"
	"github.com/xaca/triviaboard-go/internal/services/team"
)

// Pixel size of the generated QR image, mobile-friendly
const qrSize = 320

// QRHandler renders PNG QR codes for player join links
type QRHandler struct {
	teams team.ServiceInterface

	// publicURL, when set, overrides the scheme and host derived from
	// the request (for deployments behind a proxy)
	publicURL string
}

// NewQRHandler creates a new QRHandler
func NewQRHandler(teams team.ServiceInterface, publicURL string) *QRHandler {
	return &QRHandler{
		teams:     teams,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

// Get handles GET /player/{id}/{team_id}/qr
func (h *QRHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := model.SessionID(vars["id"])
	teamID := model.TeamID(vars["team_id"])

	if _, err := h.teams.ReadTeam(r.Context(), sessionID, teamID); err != nil {
		http.NotFound(w, r)
		return
	}

	// We are at /player/{id}/{team_id}/qr; the join URL is the path
	// minus the trailing "/qr"
	joinPath := strings.TrimSuffix(r.URL.Path, "/qr")

	base := h.publicURL
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}
		base = scheme + "://" + r.Host
	}

	png, err := qrcode.Encode(base+joinPath, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}
