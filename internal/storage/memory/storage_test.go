package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/xaca/triviaboard-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) createSession() model.SessionID {
	id, err := s.storage.CreateSession(s.ctx, &model.Session{
		Board:     "0,0,0,0,0;0,0,0,0,0;0,0,0,0,0;0,0,0,0,0;0,0,0,0,0",
		Status:    model.SessionStatusActive,
		CreatedAt: time.Now().UTC(),
	})
	s.Require().NoError(err)
	return id
}

// Session tests

func (s *StorageSuite) TestCreateSessionAssignsID() {
	id := s.createSession()
	s.Len(string(id), idLength)

	session, err := s.storage.GetSession(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(id, session.ID)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestGetSessionReturnsCopy() {
	id := s.createSession()

	first, _ := s.storage.GetSession(s.ctx, id)
	first.Board = "mutated"

	second, err := s.storage.GetSession(s.ctx, id)
	s.Require().NoError(err)
	s.NotEqual("mutated", second.Board)
}

func (s *StorageSuite) TestListSessionIDsSorted() {
	first := s.createSession()
	second := s.createSession()

	ids, err := s.storage.ListSessionIDs(s.ctx)
	s.Require().NoError(err)
	s.Len(ids, 2)
	s.Contains(ids, first)
	s.Contains(ids, second)
	s.LessOrEqual(ids[0], ids[1])
}

func (s *StorageSuite) TestUpdateSessionBoard() {
	id := s.createSession()

	updated := "1,0,0,0,0;0,0,0,0,0;0,0,0,0,0;0,0,0,0,0;0,0,0,0,0"
	s.Require().NoError(s.storage.UpdateSessionBoard(s.ctx, id, updated))

	session, err := s.storage.GetSession(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(updated, session.Board)
}

func (s *StorageSuite) TestUpdateSessionBoardNotFound() {
	err := s.storage.UpdateSessionBoard(s.ctx, "nonexistent", "x")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

// Team tests

func (s *StorageSuite) TestCreateTeamLeavesEmbeddedIDEmpty() {
	sessionID := s.createSession()

	id, err := s.storage.CreateTeam(s.ctx, sessionID, &model.Team{Name: "Swift Fox", Score: 0})
	s.Require().NoError(err)
	s.Len(string(id), idLength)

	// Until SetTeamID runs, the record itself carries no ID
	team, err := s.storage.GetTeam(s.ctx, sessionID, id)
	s.Require().NoError(err)
	s.Empty(team.ID)
	s.Equal("Swift Fox", team.Name)
	s.Equal(sessionID, team.SessionID)
}

func (s *StorageSuite) TestSetTeamIDPatchesRecord() {
	sessionID := s.createSession()
	id, _ := s.storage.CreateTeam(s.ctx, sessionID, &model.Team{Name: "Swift Fox"})

	s.Require().NoError(s.storage.SetTeamID(s.ctx, sessionID, id))

	team, err := s.storage.GetTeam(s.ctx, sessionID, id)
	s.Require().NoError(err)
	s.Equal(id, team.ID)
}

func (s *StorageSuite) TestSetTeamIDNotFound() {
	sessionID := s.createSession()

	err := s.storage.SetTeamID(s.ctx, sessionID, "nonexistent")
	s.ErrorIs(err, model.ErrTeamNotFound)
}

func (s *StorageSuite) TestGetTeamNotFound() {
	sessionID := s.createSession()

	_, err := s.storage.GetTeam(s.ctx, sessionID, "nonexistent")
	s.ErrorIs(err, model.ErrTeamNotFound)
}

func (s *StorageSuite) TestListTeamsSortedByName() {
	sessionID := s.createSession()
	_, _ = s.storage.CreateTeam(s.ctx, sessionID, &model.Team{Name: "Wild Wolf"})
	_, _ = s.storage.CreateTeam(s.ctx, sessionID, &model.Team{Name: "Amber Eagle"})
	_, _ = s.storage.CreateTeam(s.ctx, sessionID, &model.Team{Name: "Lucky Otter"})

	teams, err := s.storage.ListTeams(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Require().Len(teams, 3)
	s.Equal("Amber Eagle", teams[0].Name)
	s.Equal("Lucky Otter", teams[1].Name)
	s.Equal("Wild Wolf", teams[2].Name)
}

func (s *StorageSuite) TestListTeamsSetsIDFromStoreKey() {
	sessionID := s.createSession()
	id, _ := s.storage.CreateTeam(s.ctx, sessionID, &model.Team{Name: "Swift Fox"})

	// Listing resolves IDs from store keys even before SetTeamID runs
	teams, err := s.storage.ListTeams(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Require().Len(teams, 1)
	s.Equal(id, teams[0].ID)
}

func (s *StorageSuite) TestListTeamsScopedToSession() {
	first := s.createSession()
	second := s.createSession()
	_, _ = s.storage.CreateTeam(s.ctx, first, &model.Team{Name: "Swift Fox"})
	_, _ = s.storage.CreateTeam(s.ctx, second, &model.Team{Name: "Wild Wolf"})

	teams, err := s.storage.ListTeams(s.ctx, first)
	s.Require().NoError(err)
	s.Require().Len(teams, 1)
	s.Equal("Swift Fox", teams[0].Name)
}

func (s *StorageSuite) TestUpdateTeamScore() {
	sessionID := s.createSession()
	id, _ := s.storage.CreateTeam(s.ctx, sessionID, &model.Team{Name: "Swift Fox"})

	s.Require().NoError(s.storage.UpdateTeamScore(s.ctx, sessionID, id, -200))

	team, err := s.storage.GetTeam(s.ctx, sessionID, id)
	s.Require().NoError(err)
	s.Equal(-200, team.Score)
}

// Subscription tests

func (s *StorageSuite) TestSubscribeDeliversInitialSnapshot() {
	sessionID := s.createSession()
	_, _ = s.storage.CreateTeam(s.ctx, sessionID, &model.Team{Name: "Swift Fox"})

	updates := make(chan []*model.Team, 16)
	unsubscribe, err := s.storage.SubscribeTeams(s.ctx, sessionID, func(teams []*model.Team) {
		updates <- teams
	})
	s.Require().NoError(err)
	defer unsubscribe()

	select {
	case teams := <-updates:
		s.Len(teams, 1)
	case <-time.After(time.Second):
		s.FailNow("no initial snapshot delivered")
	}
}

func (s *StorageSuite) TestSubscribeObservesWrites() {
	sessionID := s.createSession()

	updates := make(chan []*model.Team, 16)
	unsubscribe, err := s.storage.SubscribeTeams(s.ctx, sessionID, func(teams []*model.Team) {
		updates <- teams
	})
	s.Require().NoError(err)
	defer unsubscribe()

	id, err := s.storage.CreateTeam(s.ctx, sessionID, &model.Team{Name: "Swift Fox"})
	s.Require().NoError(err)
	s.Require().NoError(s.storage.UpdateTeamScore(s.ctx, sessionID, id, 300))

	s.Eventually(func() bool {
		select {
		case teams := <-updates:
			return len(teams) == 1 && teams[0].Score == 300
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}

func (s *StorageSuite) TestSubscribeScopedToSession() {
	watched := s.createSession()
	other := s.createSession()

	updates := make(chan []*model.Team, 16)
	unsubscribe, err := s.storage.SubscribeTeams(s.ctx, watched, func(teams []*model.Team) {
		updates <- teams
	})
	s.Require().NoError(err)
	defer unsubscribe()

	// Drain the initial snapshot
	<-updates

	_, err = s.storage.CreateTeam(s.ctx, other, &model.Team{Name: "Wild Wolf"})
	s.Require().NoError(err)

	select {
	case teams := <-updates:
		s.Failf("unexpected update", "got %d teams from another session", len(teams))
	case <-time.After(100 * time.Millisecond):
	}
}

func (s *StorageSuite) TestUnsubscribeStopsDelivery() {
	sessionID := s.createSession()

	updates := make(chan []*model.Team, 16)
	unsubscribe, err := s.storage.SubscribeTeams(s.ctx, sessionID, func(teams []*model.Team) {
		updates <- teams
	})
	s.Require().NoError(err)

	<-updates
	unsubscribe()
	unsubscribe() // Safe to call twice

	_, err = s.storage.CreateTeam(s.ctx, sessionID, &model.Team{Name: "Swift Fox"})
	s.Require().NoError(err)

	select {
	case <-updates:
		s.FailNow("update delivered after unsubscribe")
	case <-time.After(100 * time.Millisecond):
	}
}
