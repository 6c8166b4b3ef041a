package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/xaca/triviaboard-go/internal/dependencies/mocks"
	"github.com/xaca/triviaboard-go/internal/model"
	"github.com/xaca/triviaboard-go/internal/services/board"
	"github.com/xaca/triviaboard-go/internal/storage/memory"
	"github.com/xaca/triviaboard-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

// CreateSession tests

func (s *ServiceSuite) TestCreateSessionSeedsEmptyBoard() {
	id, err := s.service.CreateSession(s.ctx)
	s.Require().NoError(err)
	s.NotEmpty(id)

	session, err := s.service.GetSession(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(board.EmptyBoard(), session.Board)
}

func (s *ServiceSuite) TestCreateSessionIsActive() {
	id, err := s.service.CreateSession(s.ctx)
	s.Require().NoError(err)

	session, err := s.service.GetSession(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(model.SessionStatusActive, session.Status)
}

func (s *ServiceSuite) TestCreateSessionStampsCreationTime() {
	id, err := s.service.CreateSession(s.ctx)
	s.Require().NoError(err)

	session, err := s.service.GetSession(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), session.CreatedAt)
}

func (s *ServiceSuite) TestCreateSessionsHaveDistinctIDs() {
	first, err := s.service.CreateSession(s.ctx)
	s.Require().NoError(err)
	second, err := s.service.CreateSession(s.ctx)
	s.Require().NoError(err)

	s.NotEqual(first, second)
}

// GetSession tests

func (s *ServiceSuite) TestGetSessionNotFound() {
	_, err := s.service.GetSession(s.ctx, "missing")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

// ListSessionIDs tests

func (s *ServiceSuite) TestListSessionIDs() {
	first, _ := s.service.CreateSession(s.ctx)
	second, _ := s.service.CreateSession(s.ctx)

	ids, err := s.service.ListSessionIDs(s.ctx)
	s.Require().NoError(err)
	s.Len(ids, 2)
	s.Contains(ids, first)
	s.Contains(ids, second)
}

func (s *ServiceSuite) TestListSessionIDsEmpty() {
	ids, err := s.service.ListSessionIDs(s.ctx)
	s.Require().NoError(err)
	s.Empty(ids)
}
