package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/eternaldle/eternaldle-go/internal/dependencies/mocks"
	"github.com/eternaldle/eternaldle-go/internal/model"
	"github.com/eternaldle/eternaldle-go/internal/storage/memory"
	"github.com/eternaldle/eternaldle-go/internal/testutil"
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
	s.clock = mocks.NewMockClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestCreateMintsUniqueTokens() {
	first, err := s.service.Create(s.ctx)
	s.Require().NoError(err)
	second, err := s.service.Create(s.ctx)
	s.Require().NoError(err)

	s.NotEmpty(first.Token)
	s.NotEqual(first.Token, second.Token)
	s.Equal(s.clock.CurrentTime, first.CreatedAt)
}

func (s *ServiceSuite) TestCreatePersistsSession() {
	session, err := s.service.Create(s.ctx)
	s.Require().NoError(err)

	got, err := s.service.Get(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal(session.Token, got.Token)
}

func (s *ServiceSuite) TestGetMissingSession() {
	_, err := s.service.Get(s.ctx, "6e7f4dbb-13f7-4cb5-b0cf-9b67fca35f1b")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ServiceSuite) TestGetOrCreateWithExistingToken() {
	session, err := s.service.Create(s.ctx)
	s.Require().NoError(err)

	got, err := s.service.GetOrCreate(s.ctx, string(session.Token))
	s.Require().NoError(err)
	s.Equal(session.Token, got.Token)
}

func (s *ServiceSuite) TestGetOrCreateWithMalformedToken() {
	got, err := s.service.GetOrCreate(s.ctx, "not-a-uuid")
	s.Require().NoError(err)
	s.NotEmpty(got.Token)
	s.NotEqual(model.SessionToken("not-a-uuid"), got.Token)
}

func (s *ServiceSuite) TestGetOrCreateWithEmptyToken() {
	got, err := s.service.GetOrCreate(s.ctx, "")
	s.Require().NoError(err)
	s.NotEmpty(got.Token)
}

func (s *ServiceSuite) TestGetOrCreateWithExpiredToken() {
	// Well-formed but unknown to storage: treated as expired, new session
	got, err := s.service.GetOrCreate(s.ctx, "6e7f4dbb-13f7-4cb5-b0cf-9b67fca35f1b")
	s.Require().NoError(err)
	s.NotEqual(model.SessionToken("6e7f4dbb-13f7-4cb5-b0cf-9b67fca35f1b"), got.Token)
}

func (s *ServiceSuite) TestSaveStampsUpdatedAt() {
	session, err := s.service.Create(s.ctx)
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Hour)
	session.WonDate = "2026-08-30"
	s.Require().NoError(s.service.Save(s.ctx, session))

	got, err := s.service.Get(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal("2026-08-30", got.WonDate)
	s.Equal(s.clock.CurrentTime, got.UpdatedAt)
}

func (s *ServiceSuite) TestIsValidToken() {
	s.True(IsValidToken("6e7f4dbb-13f7-4cb5-b0cf-9b67fca35f1b"))
	s.False(IsValidToken(""))
	s.False(IsValidToken("garbage"))
}
