package team

import (
	"context"
	"log/slog"

	"github.com/xaca/triviaboard-go/internal/dependencies/random"
	"github.com/xaca/triviaboard-go/internal/model"
	"github.com/xaca/triviaboard-go/internal/storage"
)

// Service owns team lifecycle and score mutation/propagation for game
// sessions
type Service struct {
	storage storage.Storage
	rnd     random.Random
	logger  *slog.Logger
}

// New creates a new team Service
func New(storage storage.Storage, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		rnd:     rnd,
		logger:  logger.With(slog.String("component", "team")),
	}
}

// CreateTeams creates count teams under a session, each with a unique
// random name and a starting score of 0. Each team's store-assigned ID
// is patched into the record after creation; the two steps are not
// atomic, so a crash in between leaves a record with an empty embedded
// ID while the true identifier already exists.
func (s *Service) CreateTeams(ctx context.Context, sessionID model.SessionID, count int) error {
	if _, err := s.storage.GetSession(ctx, sessionID); err != nil {
		return err
	}

	names, err := generateUniqueNames(s.rnd, count)
	if err != nil {
		return err
	}

	for _, name := range names {
		team := &model.Team{
			Name:      name,
			Score:     0,
			SessionID: sessionID,
		}

		id, err := s.storage.CreateTeam(ctx, sessionID, team)
		if err != nil {
			return err
		}
		if err := s.storage.SetTeamID(ctx, sessionID, id); err != nil {
			return err
		}
	}

	s.logger.Info("teams created",
		slog.String("session_id", string(sessionID)),
		slog.Int("count", count))
	return nil
}

// ReadTeams returns all teams under a session, ordered by name.
// Malformed records are dropped by the store with a warning, not
// surfaced as errors.
func (s *Service) ReadTeams(ctx context.Context, sessionID model.SessionID) ([]*model.Team, error) {
	return s.storage.ListTeams(ctx, sessionID)
}

// ReadTeam fetches one team; absence propagates the store's not-found
func (s *Service) ReadTeam(ctx context.Context, sessionID model.SessionID, teamID model.TeamID) (*model.Team, error) {
	return s.storage.GetTeam(ctx, sessionID, teamID)
}

// UpdateTeamScore writes an absolute score value, not a delta. The
// caller computes the new score from its local copy, so two scorers
// updating the same team concurrently can lose an update. Scores are
// signed and unclamped; negative values are permitted.
func (s *Service) UpdateTeamScore(ctx context.Context, sessionID model.SessionID, teamID model.TeamID, newScore int) error {
	if err := s.storage.UpdateTeamScore(ctx, sessionID, teamID, newScore); err != nil {
		return err
	}

	s.logger.Info("team score updated",
		slog.String("session_id", string(sessionID)),
		slog.String("team_id", string(teamID)),
		slog.Int("score", newScore))
	return nil
}

// SubscribeToTeams establishes a push subscription invoking fn with the
// full current team list on every change under the session. The
// returned function unsubscribes; it is safe to call more than once.
// A writer's own update is not guaranteed to echo back synchronously.
func (s *Service) SubscribeToTeams(ctx context.Context, sessionID model.SessionID, fn func([]*model.Team)) (func(), error) {
	return s.storage.SubscribeTeams(ctx, sessionID, storage.TeamsFunc(fn))
}

// Interface for dependency injection
type ServiceInterface interface {
	CreateTeams(ctx context.Context, sessionID model.SessionID, count int) error
	ReadTeams(ctx context.Context, sessionID model.SessionID) ([]*model.Team, error)
	ReadTeam(ctx context.Context, sessionID model.SessionID, teamID model.TeamID) (*model.Team, error)
	UpdateTeamScore(ctx context.Context, sessionID model.SessionID, teamID model.TeamID, newScore int) error
	SubscribeToTeams(ctx context.Context, sessionID model.SessionID, fn func([]*model.Team)) (func(), error)
}

var _ ServiceInterface = (*Service)(nil)
