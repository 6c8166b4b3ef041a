package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xaca/triviaboard-go/internal/dependencies/random"
	"github.com/xaca/triviaboard-go/internal/model"
	"github.com/xaca/triviaboard-go/internal/storage"
)

// idAlphabet matches the document-store style of opaque alphanumeric IDs
const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 20
)

// Storage is a Redis-backed implementation of the storage interface.
// Documents are JSON values; change propagation uses one pubsub channel
// per session.
type Storage struct {
	client *redis.Client
	cfg    Config
	rnd    random.Random
	logger *slog.Logger
}

// New creates a new Redis storage instance
func New(cfg Config, logger *slog.Logger) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewWithClient(client, cfg, logger), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config, logger *slog.Logger) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
		rnd:    random.New(),
		logger: logger.With(slog.String("component", "redis-storage")),
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

func (s *Storage) CreateSession(ctx context.Context, session *model.Session) (model.SessionID, error) {
	id := model.SessionID(s.rnd.String(idLength, idAlphabet))
	stored := *session
	stored.ID = id

	data, err := json.Marshal(&stored)
	if err != nil {
		return "", err
	}

	// Pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, sessionKey(id), data, s.cfg.SessionTTL)
	pipe.SAdd(ctx, sessionIndexKey(), string(id))
	if _, err := pipe.Exec(ctx); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) ListSessionIDs(ctx context.Context) ([]model.SessionID, error) {
	members, err := s.client.SMembers(ctx, sessionIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]model.SessionID, 0, len(members))
	for _, m := range members {
		ids = append(ids, model.SessionID(m))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *Storage) UpdateSessionBoard(ctx context.Context, id model.SessionID, board string) error {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return err
	}

	session.Board = board
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(id), data, redis.KeepTTL).Err()
}

// Team operations

func (s *Storage) CreateTeam(ctx context.Context, sessionID model.SessionID, team *model.Team) (model.TeamID, error) {
	id := model.TeamID(s.rnd.String(idLength, idAlphabet))

	// The embedded ID field is written empty here and patched in by
	// SetTeamID; the two steps are intentionally separate
	stored := *team
	stored.ID = ""
	stored.SessionID = sessionID

	data, err := json.Marshal(&stored)
	if err != nil {
		return "", err
	}

	tKey := teamKey(sessionID, id)
	indexKey := teamsForSessionIndexKey(sessionID)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, tKey, data, s.cfg.TeamTTL)
	pipe.SAdd(ctx, indexKey, tKey)
	pipe.Expire(ctx, indexKey, s.cfg.TeamTTL) // Keep index TTL in sync
	if _, err := pipe.Exec(ctx); err != nil {
		return "", err
	}

	s.publishTeamsChanged(ctx, sessionID, id)
	return id, nil
}

func (s *Storage) GetTeam(ctx context.Context, sessionID model.SessionID, teamID model.TeamID) (*model.Team, error) {
	data, err := s.client.Get(ctx, teamKey(sessionID, teamID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrTeamNotFound
		}
		return nil, err
	}

	var team model.Team
	if err := json.Unmarshal(data, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *Storage) ListTeams(ctx context.Context, sessionID model.SessionID) ([]*model.Team, error) {
	indexKey := teamsForSessionIndexKey(sessionID)

	teamKeys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}

	if len(teamKeys) == 0 {
		return []*model.Team{}, nil
	}

	values, err := s.client.MGet(ctx, teamKeys...).Result()
	if err != nil {
		return nil, err
	}

	teams := make([]*model.Team, 0, len(values))
	for i, val := range values {
		if val == nil {
			continue // Team may have expired
		}
		team, err := decodeTeamDocument([]byte(val.(string)), teamIDFromKey(teamKeys[i], sessionID), sessionID)
		if err != nil {
			// Tolerant read: a malformed record is dropped, never
			// fails the whole listing
			s.logger.Warn("skipping malformed team record",
				slog.String("key", teamKeys[i]),
				slog.String("error", err.Error()))
			continue
		}
		teams = append(teams, team)
	}

	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return teams, nil
}

func (s *Storage) SetTeamID(ctx context.Context, sessionID model.SessionID, teamID model.TeamID) error {
	team, err := s.GetTeam(ctx, sessionID, teamID)
	if err != nil {
		return err
	}

	team.ID = teamID
	if err := s.saveTeam(ctx, sessionID, teamID, team); err != nil {
		return err
	}

	s.publishTeamsChanged(ctx, sessionID, teamID)
	return nil
}

func (s *Storage) UpdateTeamScore(ctx context.Context, sessionID model.SessionID, teamID model.TeamID, score int) error {
	team, err := s.GetTeam(ctx, sessionID, teamID)
	if err != nil {
		return err
	}

	team.Score = score
	if err := s.saveTeam(ctx, sessionID, teamID, team); err != nil {
		return err
	}

	s.publishTeamsChanged(ctx, sessionID, teamID)
	return nil
}

func (s *Storage) saveTeam(ctx context.Context, sessionID model.SessionID, teamID model.TeamID, team *model.Team) error {
	data, err := json.Marshal(team)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, teamKey(sessionID, teamID), data, redis.KeepTTL).Err()
}

// Subscription operations

func (s *Storage) SubscribeTeams(ctx context.Context, sessionID model.SessionID, fn storage.TeamsFunc) (storage.UnsubscribeFunc, error) {
	pubsub := s.client.Subscribe(ctx, teamsChannel(sessionID))

	// Force the subscription onto the wire before returning so no
	// change notification published after this call can be missed
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	go func() {
		// Initial snapshot, matching the store's deliver-on-subscribe
		// behavior
		if teams, err := s.ListTeams(ctx, sessionID); err == nil {
			fn(teams)
		} else {
			s.logger.Warn("initial team snapshot failed",
				slog.String("session_id", string(sessionID)),
				slog.String("error", err.Error()))
		}

		for range pubsub.Channel() {
			teams, err := s.ListTeams(ctx, sessionID)
			if err != nil {
				s.logger.Warn("team re-list after change notification failed",
					slog.String("session_id", string(sessionID)),
					slog.String("error", err.Error()))
				continue
			}
			fn(teams)
		}
	}()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			_ = pubsub.Close()
		})
	}
	return unsubscribe, nil
}

// publishTeamsChanged notifies session subscribers that a team record
// changed. Failure to publish is logged, not surfaced: the write itself
// succeeded and subscribers converge on the next notification.
func (s *Storage) publishTeamsChanged(ctx context.Context, sessionID model.SessionID, teamID model.TeamID) {
	if err := s.client.Publish(ctx, teamsChannel(sessionID), string(teamID)).Err(); err != nil {
		s.logger.Warn("team change publish failed",
			slog.String("session_id", string(sessionID)),
			slog.String("team_id", string(teamID)),
			slog.String("error", err.Error()))
	}
}

// decodeTeamDocument validates that a raw team document carries a string
// name and a numeric score before interpreting it. The returned team's
// ID is the store key, not the embedded field, so records awaiting their
// ID patch still list correctly.
func decodeTeamDocument(data []byte, teamID model.TeamID, sessionID model.SessionID) (*model.Team, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	name, ok := doc["name"].(string)
	if !ok {
		return nil, errors.New("missing or non-string name")
	}
	score, ok := doc["score"].(float64)
	if !ok {
		return nil, errors.New("missing or non-numeric score")
	}

	return &model.Team{
		ID:        teamID,
		Name:      name,
		Score:     int(score),
		SessionID: sessionID,
	}, nil
}
