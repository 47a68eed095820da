package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/eternaldle/eternaldle-go/internal/model"
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

// Character tests

func (s *StorageSuite) TestSaveAndGetCharacter() {
	character := &model.Character{
		Name:        "Abigail",
		Gender:      "Female",
		Classes:     "Fighter",
		Range:       "Melee",
		HairColor:   "Gray",
		ReleaseYear: "2023",
		WeaponCount: 1,
	}
	err := s.storage.SaveCharacter(s.ctx, character)
	s.Require().NoError(err)

	got, err := s.storage.GetCharacter(s.ctx, "Abigail")
	s.Require().NoError(err)
	s.Equal(character, got)
}

func (s *StorageSuite) TestGetCharacterNotFound() {
	_, err := s.storage.GetCharacter(s.ctx, "Nobody")
	s.ErrorIs(err, model.ErrCharacterNotFound)
}

func (s *StorageSuite) TestGetCharacterReturnsCopy() {
	character := &model.Character{Name: "Adela", HairColor: "Black"}
	_ = s.storage.SaveCharacter(s.ctx, character)

	got, err := s.storage.GetCharacter(s.ctx, "Adela")
	s.Require().NoError(err)
	got.HairColor = "Green"

	again, err := s.storage.GetCharacter(s.ctx, "Adela")
	s.Require().NoError(err)
	s.Equal("Black", again.HairColor)
}

func (s *StorageSuite) TestListCharacters() {
	names := []string{"Abigail", "Adela", "Adina"}
	for _, name := range names {
		err := s.storage.SaveCharacter(s.ctx, &model.Character{Name: name})
		s.Require().NoError(err)
	}

	characters, err := s.storage.ListCharacters(s.ctx)
	s.Require().NoError(err)
	s.Len(characters, 3)

	listed := make([]string, 0, len(characters))
	for _, c := range characters {
		listed = append(listed, c.Name)
	}
	s.ElementsMatch(names, listed)
}

func (s *StorageSuite) TestListCharactersEmpty() {
	characters, err := s.storage.ListCharacters(s.ctx)
	s.Require().NoError(err)
	s.Empty(characters)
}

func (s *StorageSuite) TestSaveCharacterOverwritesByName() {
	_ = s.storage.SaveCharacter(s.ctx, &model.Character{Name: "Aya", WeaponCount: 2})
	_ = s.storage.SaveCharacter(s.ctx, &model.Character{Name: "Aya", WeaponCount: 3})

	got, err := s.storage.GetCharacter(s.ctx, "Aya")
	s.Require().NoError(err)
	s.Equal(3, got.WeaponCount)

	characters, err := s.storage.ListCharacters(s.ctx)
	s.Require().NoError(err)
	s.Len(characters, 1)
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	session := &model.GameSession{
		Token:        "token-1",
		SolutionDate: "2026-08-30",
		CreatedAt:    time.Now(),
	}
	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	got, err := s.storage.GetSession(s.ctx, "token-1")
	s.Require().NoError(err)
	s.Equal(session, got)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "missing")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	session := &model.GameSession{Token: "token-2"}
	_ = s.storage.SaveSession(s.ctx, session)

	err := s.storage.DeleteSession(s.ctx, "token-2")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "token-2")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSessionMissingIsNoop() {
	err := s.storage.DeleteSession(s.ctx, "never-existed")
	s.NoError(err)
}

// Daily counter tests

func (s *StorageSuite) TestDailyCountStartsAtZero() {
	count, err := s.storage.GetDailyCount(s.ctx, "2026-08-30")
	s.Require().NoError(err)
	s.Equal(int64(0), count)
}

func (s *StorageSuite) TestIncrementDailyCount() {
	count, err := s.storage.IncrementDailyCount(s.ctx, "2026-08-30", "Adela")
	s.Require().NoError(err)
	s.Equal(int64(1), count)

	count, err = s.storage.IncrementDailyCount(s.ctx, "2026-08-30", "Adela")
	s.Require().NoError(err)
	s.Equal(int64(2), count)

	count, err = s.storage.GetDailyCount(s.ctx, "2026-08-30")
	s.Require().NoError(err)
	s.Equal(int64(2), count)
}

func (s *StorageSuite) TestDailyCountsAreIndependentPerDate() {
	_, _ = s.storage.IncrementDailyCount(s.ctx, "2026-08-30", "Adela")
	_, _ = s.storage.IncrementDailyCount(s.ctx, "2026-08-30", "Adela")
	_, _ = s.storage.IncrementDailyCount(s.ctx, "2026-08-31", "Adina")

	count, err := s.storage.GetDailyCount(s.ctx, "2026-08-30")
	s.Require().NoError(err)
	s.Equal(int64(2), count)

	count, err = s.storage.GetDailyCount(s.ctx, "2026-08-31")
	s.Require().NoError(err)
	s.Equal(int64(1), count)
}
