package session

import (
	"context"
	"log/slog"

	"github.com/xaca/triviaboard-go/internal/dependencies/clock"
	"github.com/xaca/triviaboard-go/internal/model"
	"github.com/xaca/triviaboard-go/internal/services/board"
	"github.com/xaca/triviaboard-go/internal/storage"
)

// Service owns game session ("partida") lifecycle
type Service struct {
	storage storage.Storage
	clk     clock.Clock
	logger  *slog.Logger
}

// New creates a new session Service
func New(storage storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clk:     clk,
		logger:  logger.With(slog.String("component", "session")),
	}
}

// CreateSession creates a new active session. The board is seeded with
// the all-zero grid string here so the first ReadBoard or MarkAnswered
// against the session operates on a valid board.
func (s *Service) CreateSession(ctx context.Context) (model.SessionID, error) {
	session := &model.Session{
		Board:     board.EmptyBoard(),
		Status:    model.SessionStatusActive,
		CreatedAt: s.clk.Now().UTC(),
	}

	id, err := s.storage.CreateSession(ctx, session)
	if err != nil {
		return "", err
	}

	s.logger.Info("session created", slog.String("session_id", string(id)))
	return id, nil
}

// GetSession fetches one session by ID
func (s *Service) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return s.storage.GetSession(ctx, id)
}

// ListSessionIDs returns the IDs of all known sessions
func (s *Service) ListSessionIDs(ctx context.Context) ([]model.SessionID, error) {
	return s.storage.ListSessionIDs(ctx)
}

// Interface for dependency injection
type ServiceInterface interface {
	CreateSession(ctx context.Context) (model.SessionID, error)
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	ListSessionIDs(ctx context.Context) ([]model.SessionID, error)
}

var _ ServiceInterface = (*Service)(nil)
