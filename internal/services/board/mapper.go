package board

import (
	"fmt"

	"github.com/xaca/triviaboard-go/internal/model"
)

// Mapper converts (category, points) pairs to board coordinates.
// Categories map to columns and point tiers to rows, both by their
// fixed position in the configured lists. Pure and deterministic.
type Mapper struct {
	categories  []string
	pointValues []int
}

// NewMapper creates a Mapper over the given category and point tier
// lists. Both lists must have exactly model.BoardSize entries.
func NewMapper(categories []string, pointValues []int) (*Mapper, error) {
	if len(categories) != model.BoardSize {
		return nil, fmt.Errorf("expected %d categories, got %d", model.BoardSize, len(categories))
	}
	if len(pointValues) != model.BoardSize {
		return nil, fmt.Errorf("expected %d point values, got %d", model.BoardSize, len(pointValues))
	}
	return &Mapper{
		categories:  categories,
		pointValues: pointValues,
	}, nil
}

// CoordinatesOf returns the zero-based board position for a category and
// point value. Unknown inputs are caller-contract violations and fail
// with ErrInvalidCategory or ErrInvalidPointValue.
func (m *Mapper) CoordinatesOf(category string, points int) (model.Position, error) {
	col := -1
	for i, c := range m.categories {
		if c == category {
			col = i
			break
		}
	}
	if col == -1 {
		return model.Position{}, fmt.Errorf("%w: %q", model.ErrInvalidCategory, category)
	}

	row := -1
	for i, p := range m.pointValues {
		if p == points {
			row = i
			break
		}
	}
	if row == -1 {
		return model.Position{}, fmt.Errorf("%w: %d", model.ErrInvalidPointValue, points)
	}

	return model.Position{Row: row, Col: col}, nil
}

// Categories returns the configured category labels in column order
func (m *Mapper) Categories() []string {
	out := make([]string, len(m.categories))
	copy(out, m.categories)
	return out
}

// PointValues returns the configured point tiers in row order
func (m *Mapper) PointValues() []int {
	out := make([]int, len(m.pointValues))
	copy(out, m.pointValues)
	return out
}
