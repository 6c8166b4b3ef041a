package board

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/xaca/triviaboard-go/internal/model"
)

type CodecSuite struct {
	suite.Suite
}

func TestCodecSuite(t *testing.T) {
	suite.Run(t, new(CodecSuite))
}

// EmptyBoard tests

func (s *CodecSuite) TestEmptyBoardShape() {
	s.Equal("0,0,0,0,0;0,0,0,0,0;0,0,0,0,0;0,0,0,0,0;0,0,0,0,0", EmptyBoard())
}

func (s *CodecSuite) TestEmptyBoardDecodesToNoAnsweredCells() {
	answered, err := DecodeBoard(EmptyBoard())
	s.Require().NoError(err)
	s.Empty(answered)
}

// DecodeBoard tests

func (s *CodecSuite) TestDecodeBoardSingleCell() {
	answered, err := DecodeBoard("0,0,0,0,0;0,0,0,0,0;0,0,0,1,0;0,0,0,0,0;0,0,0,0,0")
	s.Require().NoError(err)

	s.Len(answered, 1)
	s.True(answered[model.Position{Row: 2, Col: 3}])
}

func (s *CodecSuite) TestDecodeBoardMultipleCells() {
	answered, err := DecodeBoard("1,0,0,0,1;0,0,0,0,0;0,0,1,0,0;0,0,0,0,0;1,0,0,0,1")
	s.Require().NoError(err)

	s.Len(answered, 5)
	s.True(answered[model.Position{Row: 0, Col: 0}])
	s.True(answered[model.Position{Row: 0, Col: 4}])
	s.True(answered[model.Position{Row: 2, Col: 2}])
	s.True(answered[model.Position{Row: 4, Col: 0}])
	s.True(answered[model.Position{Row: 4, Col: 4}])
}

func (s *CodecSuite) TestDecodeBoardIgnoresUnknownTokens() {
	// Anything that isn't exactly "1" reads as not answered
	answered, err := DecodeBoard("2,x,,true,0;0,0,0,0,0;0,0,0,0,0;0,0,0,0,0;0,0,0,0,0")
	s.Require().NoError(err)
	s.Empty(answered)
}

func (s *CodecSuite) TestDecodeBoardTooFewRows() {
	_, err := DecodeBoard("0,0,0,0,0;0,0,0,0,0")
	s.ErrorIs(err, model.ErrMalformedBoard)
}

func (s *CodecSuite) TestDecodeBoardTooManyRows() {
	_, err := DecodeBoard("0,0,0,0,0;0,0,0,0,0;0,0,0,0,0;0,0,0,0,0;0,0,0,0,0;0,0,0,0,0")
	s.ErrorIs(err, model.ErrMalformedBoard)
}

func (s *CodecSuite) TestDecodeBoardShortRow() {
	_, err := DecodeBoard("0,0,0,0;0,0,0,0,0;0,0,0,0,0;0,0,0,0,0;0,0,0,0,0")
	s.ErrorIs(err, model.ErrMalformedBoard)
}

func (s *CodecSuite) TestDecodeBoardEmptyString() {
	_, err := DecodeBoard("")
	s.ErrorIs(err, model.ErrMalformedBoard)
}

// patchCell tests

func (s *CodecSuite) TestPatchCellSetsOnlyTargetCell() {
	patched, err := patchCell(EmptyBoard(), model.Position{Row: 2, Col: 3})
	s.Require().NoError(err)
	s.Equal("0,0,0,0,0;0,0,0,0,0;0,0,0,1,0;0,0,0,0,0;0,0,0,0,0", patched)
}

func (s *CodecSuite) TestPatchCellPreservesExistingCells() {
	first, err := patchCell(EmptyBoard(), model.Position{Row: 0, Col: 0})
	s.Require().NoError(err)

	second, err := patchCell(first, model.Position{Row: 4, Col: 4})
	s.Require().NoError(err)

	answered, err := DecodeBoard(second)
	s.Require().NoError(err)
	s.Len(answered, 2)
	s.True(answered[model.Position{Row: 0, Col: 0}])
	s.True(answered[model.Position{Row: 4, Col: 4}])
}

func (s *CodecSuite) TestPatchCellIdempotent() {
	once, err := patchCell(EmptyBoard(), model.Position{Row: 1, Col: 1})
	s.Require().NoError(err)

	twice, err := patchCell(once, model.Position{Row: 1, Col: 1})
	s.Require().NoError(err)

	s.Equal(once, twice)
}

func (s *CodecSuite) TestPatchCellMalformedBoard() {
	_, err := patchCell("garbage", model.Position{Row: 0, Col: 0})
	s.ErrorIs(err, model.ErrMalformedBoard)
}

func (s *CodecSuite) TestPatchDecodeRoundTrip() {
	// Every cell patched in turn survives an encode/decode cycle
	raw := EmptyBoard()
	var err error
	for row := 0; row < model.BoardSize; row++ {
		for col := 0; col < model.BoardSize; col++ {
			raw, err = patchCell(raw, model.Position{Row: row, Col: col})
			s.Require().NoError(err)
		}
	}

	answered, err := DecodeBoard(raw)
	s.Require().NoError(err)
	s.Len(answered, model.BoardSize*model.BoardSize)
}
