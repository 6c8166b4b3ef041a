package sse

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/xaca/triviaboard-go/internal/dependencies/random"
	"github.com/xaca/triviaboard-go/internal/model"
	"github.com/xaca/triviaboard-go/internal/services/team"
	"github.com/xaca/triviaboard-go/internal/storage/memory"
	"github.com/xaca/triviaboard-go/internal/testutil"
)

type RelaySuite struct {
	suite.Suite
	storage     *memory.Storage
	teams       *team.Service
	manager     *HubManager
	broadcaster *Broadcaster
	relay       *Relay
	ctx         context.Context
}

func TestRelaySuite(t *testing.T) {
	suite.Run(t, new(RelaySuite))
}

func (s *RelaySuite) SetupTest() {
	s.storage = memory.New()
	s.teams = team.New(s.storage, random.New(), testutil.NopLogger())
	s.manager = NewHubManager(testutil.NopLogger())
	s.broadcaster = NewBroadcaster(s.manager, testutil.NopLogger())
	s.relay = NewRelay(s.teams, s.broadcaster, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *RelaySuite) TearDownTest() {
	s.relay.Close()
}

func (s *RelaySuite) createSession() model.SessionID {
	id, err := s.storage.CreateSession(s.ctx, &model.Session{
		Board:     "0,0,0,0,0;0,0,0,0,0;0,0,0,0,0;0,0,0,0,0;0,0,0,0,0",
		Status:    model.SessionStatusActive,
		CreatedAt: time.Now().UTC(),
	})
	s.Require().NoError(err)
	return id
}

func (s *RelaySuite) TestRelayPushesStoreChangesToClients() {
	sessionID := s.createSession()
	s.Require().NoError(s.teams.CreateTeams(s.ctx, sessionID, 1))

	hub := s.manager.GetOrCreateHub(sessionID)
	client := NewClient(hub, "host")
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	s.Require().NoError(s.relay.EnsureSession(sessionID))

	teams, _ := s.teams.ReadTeams(s.ctx, sessionID)
	s.Require().NoError(s.teams.UpdateTeamScore(s.ctx, sessionID, teams[0].ID, 300))

	s.Eventually(func() bool {
		select {
		case msg := <-client.send:
			return strings.HasPrefix(string(msg), "event: teams-update\n") &&
				strings.Contains(string(msg), `"score":300`)
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}

func (s *RelaySuite) TestEnsureSessionIsIdempotent() {
	sessionID := s.createSession()

	s.Require().NoError(s.relay.EnsureSession(sessionID))
	s.Require().NoError(s.relay.EnsureSession(sessionID))

	s.relay.mu.Lock()
	s.Len(s.relay.active, 1)
	s.relay.mu.Unlock()
}

func (s *RelaySuite) TestCloseReleasesSubscriptions() {
	sessionID := s.createSession()
	s.Require().NoError(s.relay.EnsureSession(sessionID))

	s.relay.Close()

	s.relay.mu.Lock()
	s.Empty(s.relay.active)
	s.relay.mu.Unlock()
}
