package board

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xaca/triviaboard-go/internal/model"
	"github.com/xaca/triviaboard-go/internal/storage"
)

// Service synchronizes the answered-cell grid against the store
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new board Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger.With(slog.String("component", "board")),
	}
}

// ReadBoard fetches a session's board and decodes it into the set of
// answered positions
func (s *Service) ReadBoard(ctx context.Context, sessionID model.SessionID) (map[model.Position]bool, error) {
	session, err := s.storage.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	answered, err := DecodeBoard(session.Board)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}
	return answered, nil
}

// MarkAnswered marks one cell answered and writes the full board back.
// This is a read-modify-write with no compare-and-swap: two concurrent
// marks against different cells can race and the loser's patch is
// silently dropped. Marking an already-answered cell is a no-op on the
// resulting board.
func (s *Service) MarkAnswered(ctx context.Context, sessionID model.SessionID, pos model.Position) error {
	if !pos.IsValid() {
		return fmt.Errorf("%w: row=%d col=%d", model.ErrInvalidPosition, pos.Row, pos.Col)
	}

	session, err := s.storage.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}

	updated, err := patchCell(session.Board, pos)
	if err != nil {
		return fmt.Errorf("session %s: %w", sessionID, err)
	}

	if err := s.storage.UpdateSessionBoard(ctx, sessionID, updated); err != nil {
		return err
	}

	s.logger.Info("cell marked answered",
		slog.String("session_id", string(sessionID)),
		slog.Int("row", pos.Row),
		slog.Int("col", pos.Col))
	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	ReadBoard(ctx context.Context, sessionID model.SessionID) (map[model.Position]bool, error)
	MarkAnswered(ctx context.Context, sessionID model.SessionID, pos model.Position) error
}

var _ ServiceInterface = (*Service)(nil)
