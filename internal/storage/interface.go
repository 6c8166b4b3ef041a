package storage

import (
	"context"

	"github.com/xaca/triviaboard-go/internal/model"
)

// TeamsFunc receives the full current team list for a session each time
// any team record under that session changes. Delivery is at-least-once
// and eventually consistent with store-side ordering; a writer's own
// update is not guaranteed to echo back synchronously.
type TeamsFunc func(teams []*model.Team)

// UnsubscribeFunc releases a subscription and its underlying channel.
// Safe to call more than once.
type UnsubscribeFunc func()

// Storage defines the document-store interface for data persistence and
// cross-client propagation. The store assigns record IDs and is the
// single source of truth; callers hold only cached copies.
type Storage interface {
	// Session operations
	CreateSession(ctx context.Context, session *model.Session) (model.SessionID, error)
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	ListSessionIDs(ctx context.Context) ([]model.SessionID, error)
	UpdateSessionBoard(ctx context.Context, id model.SessionID, board string) error

	// Team operations. CreateTeam assigns the team's ID but does not
	// embed it into the record; SetTeamID patches it in afterwards
	// (a deliberately non-atomic two-step sequence).
	CreateTeam(ctx context.Context, sessionID model.SessionID, team *model.Team) (model.TeamID, error)
	GetTeam(ctx context.Context, sessionID model.SessionID, teamID model.TeamID) (*model.Team, error)
	ListTeams(ctx context.Context, sessionID model.SessionID) ([]*model.Team, error)
	SetTeamID(ctx context.Context, sessionID model.SessionID, teamID model.TeamID) error
	UpdateTeamScore(ctx context.Context, sessionID model.SessionID, teamID model.TeamID, score int) error

	// SubscribeTeams establishes a push subscription for team changes
	// under a session. The callback runs on the subscription's own
	// goroutine until the returned function is called.
	SubscribeTeams(ctx context.Context, sessionID model.SessionID, fn TeamsFunc) (UnsubscribeFunc, error)
}
