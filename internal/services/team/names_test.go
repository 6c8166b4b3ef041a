package team

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/xaca/triviaboard-go/internal/dependencies/mocks"
	"github.com/xaca/triviaboard-go/internal/dependencies/random"
	"github.com/xaca/triviaboard-go/internal/model"
)

type NamesSuite struct {
	suite.Suite
}

func TestNamesSuite(t *testing.T) {
	suite.Run(t, new(NamesSuite))
}

func (s *NamesSuite) TestGenerateNameShape() {
	name := generateName(random.New())

	parts := strings.Split(name, " ")
	s.Require().Len(parts, 2)
	s.Contains(nameAdjectives, parts[0])
	s.Contains(nameNouns, parts[1])
}

func (s *NamesSuite) TestGenerateUniqueNamesAreDistinct() {
	names, err := generateUniqueNames(random.New(), 10)
	s.Require().NoError(err)
	s.Require().Len(names, 10)

	seen := make(map[string]bool)
	for _, name := range names {
		s.False(seen[name], "duplicate name %q", name)
		seen[name] = true
	}
}

func (s *NamesSuite) TestGenerateUniqueNamesRetriesCollisions() {
	rnd := mocks.NewMockRandom()
	// First two draws collide, third differs
	rnd.QueueIntn(0, 0, 0, 0, 1, 1)

	names, err := generateUniqueNames(rnd, 2)
	s.Require().NoError(err)
	s.Equal([]string{
		nameAdjectives[0] + " " + nameNouns[0],
		nameAdjectives[1] + " " + nameNouns[1],
	}, names)
}

func (s *NamesSuite) TestGenerateUniqueNamesCountExceedsSpace() {
	space := len(nameAdjectives) * len(nameNouns)

	_, err := generateUniqueNames(random.New(), space+1)
	s.ErrorIs(err, model.ErrNameSpaceExhausted)
}

func (s *NamesSuite) TestGenerateUniqueNamesBudgetExhausted() {
	// An exhausted mock always returns index 0, so every draw collides
	rnd := mocks.NewMockRandom()

	_, err := generateUniqueNames(rnd, 2)
	s.ErrorIs(err, model.ErrNameSpaceExhausted)
}
