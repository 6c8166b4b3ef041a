package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/xaca/triviaboard-go/internal/dependencies/random"
	"github.com/xaca/triviaboard-go/internal/model"
	"github.com/xaca/triviaboard-go/internal/storage"
)

// Buffer size for per-subscriber notification channels
const subscriberBufferSize = 32

// idAlphabet matches the document-store style of opaque alphanumeric IDs
const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 20
)

// Storage is an in-memory implementation of the storage interface with
// local subscriber fan-out. Intended for tests and single-process use.
type Storage struct {
	mu sync.RWMutex

	sessions map[model.SessionID]*model.Session
	teams    map[model.SessionID]map[model.TeamID]*model.Team

	subscribers map[model.SessionID]map[int]chan []*model.Team
	nextSubID   int

	rnd random.Random
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions:    make(map[model.SessionID]*model.Session),
		teams:       make(map[model.SessionID]map[model.TeamID]*model.Team),
		subscribers: make(map[model.SessionID]map[int]chan []*model.Team),
		rnd:         random.New(),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

func (s *Storage) CreateSession(ctx context.Context, session *model.Session) (model.SessionID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := model.SessionID(s.rnd.String(idLength, idAlphabet))
	stored := *session
	stored.ID = id
	s.sessions[id] = &stored
	return id, nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (s *Storage) ListSessionIDs(ctx context.Context) ([]model.SessionID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]model.SessionID, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *Storage) UpdateSessionBoard(ctx context.Context, id model.SessionID, board string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return model.ErrSessionNotFound
	}
	session.Board = board
	return nil
}

// Team operations

func (s *Storage) CreateTeam(ctx context.Context, sessionID model.SessionID, team *model.Team) (model.TeamID, error) {
	s.mu.Lock()

	id := model.TeamID(s.rnd.String(idLength, idAlphabet))
	stored := *team
	stored.SessionID = sessionID

	if s.teams[sessionID] == nil {
		s.teams[sessionID] = make(map[model.TeamID]*model.Team)
	}
	s.teams[sessionID][id] = &stored

	s.notifyLocked(sessionID)
	s.mu.Unlock()
	return id, nil
}

func (s *Storage) GetTeam(ctx context.Context, sessionID model.SessionID, teamID model.TeamID) (*model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	team, ok := s.teams[sessionID][teamID]
	if !ok {
		return nil, model.ErrTeamNotFound
	}
	// Returned as stored: the embedded ID field is empty until SetTeamID
	// patches it in after creation
	copied := *team
	return &copied, nil
}

func (s *Storage) ListTeams(ctx context.Context, sessionID model.SessionID) ([]*model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listTeamsLocked(sessionID), nil
}

func (s *Storage) SetTeamID(ctx context.Context, sessionID model.SessionID, teamID model.TeamID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	team, ok := s.teams[sessionID][teamID]
	if !ok {
		return model.ErrTeamNotFound
	}
	team.ID = teamID
	s.notifyLocked(sessionID)
	return nil
}

func (s *Storage) UpdateTeamScore(ctx context.Context, sessionID model.SessionID, teamID model.TeamID, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	team, ok := s.teams[sessionID][teamID]
	if !ok {
		return model.ErrTeamNotFound
	}
	team.Score = score
	s.notifyLocked(sessionID)
	return nil
}

// Subscription operations

func (s *Storage) SubscribeTeams(ctx context.Context, sessionID model.SessionID, fn storage.TeamsFunc) (storage.UnsubscribeFunc, error) {
	s.mu.Lock()

	ch := make(chan []*model.Team, subscriberBufferSize)
	subID := s.nextSubID
	s.nextSubID++

	if s.subscribers[sessionID] == nil {
		s.subscribers[sessionID] = make(map[int]chan []*model.Team)
	}
	s.subscribers[sessionID][subID] = ch

	// Initial delivery of the current list, matching the store's
	// snapshot-on-subscribe behavior
	ch <- s.listTeamsLocked(sessionID)
	s.mu.Unlock()

	go func() {
		for teams := range ch {
			fn(teams)
		}
	}()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers[sessionID], subID)
			s.mu.Unlock()
			close(ch)
		})
	}
	return unsubscribe, nil
}

// listTeamsLocked returns a name-ordered snapshot; callers hold s.mu
func (s *Storage) listTeamsLocked(sessionID model.SessionID) []*model.Team {
	teams := make([]*model.Team, 0, len(s.teams[sessionID]))
	for id, team := range s.teams[sessionID] {
		copied := *team
		copied.ID = id
		teams = append(teams, &copied)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return teams
}

// notifyLocked fans the current team list out to all session
// subscribers; callers hold s.mu. Slow subscribers drop updates rather
// than block writers - delivery is at-least-once for the final state
// only while writes continue, which is all the contract promises.
func (s *Storage) notifyLocked(sessionID model.SessionID) {
	subs := s.subscribers[sessionID]
	if len(subs) == 0 {
		return
	}
	teams := s.listTeamsLocked(sessionID)
	for _, ch := range subs {
		select {
		case ch <- teams:
		default:
		}
	}
}
