package question

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/xaca/triviaboard-go/internal/model"
)

//go:embed questions.json
var catalogJSON []byte

// Question is one cell's content on the trivia board
type Question struct {
	Category string `json:"category"`
	Points   int    `json:"points"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// catalog is the on-disk shape of the embedded question set
type catalog struct {
	Categories  []string   `json:"categories"`
	PointValues []int      `json:"pointValues"`
	Questions   []Question `json:"questions"`
}

type cellKey struct {
	category string
	points   int
}

// Service serves the fixed question catalog. Question content
// management is out of scope; the set is embedded at build time.
type Service struct {
	categories  []string
	pointValues []int
	byCell      map[cellKey]*Question
	logger      *slog.Logger
}

// New parses the embedded catalog and indexes it by (category, points)
func New(logger *slog.Logger) (*Service, error) {
	var c catalog
	if err := json.Unmarshal(catalogJSON, &c); err != nil {
		return nil, fmt.Errorf("parsing question catalog: %w", err)
	}

	byCell := make(map[cellKey]*Question, len(c.Questions))
	for i := range c.Questions {
		q := &c.Questions[i]
		byCell[cellKey{q.Category, q.Points}] = q
	}

	s := &Service{
		categories:  c.Categories,
		pointValues: c.PointValues,
		byCell:      byCell,
		logger:      logger.With(slog.String("component", "question")),
	}
	s.logger.Info("question catalog loaded",
		slog.Int("categories", len(c.Categories)),
		slog.Int("questions", len(c.Questions)))
	return s, nil
}

// Categories returns the category labels in column order
func (s *Service) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// PointValues returns the point tiers in row order
func (s *Service) PointValues() []int {
	out := make([]int, len(s.pointValues))
	copy(out, s.pointValues)
	return out
}

// Lookup returns the question for one board cell
func (s *Service) Lookup(category string, points int) (*Question, error) {
	q, ok := s.byCell[cellKey{category, points}]
	if !ok {
		return nil, fmt.Errorf("%w: %s for %d", model.ErrQuestionNotFound, category, points)
	}
	return q, nil
}

// All returns every question, ordered by category column then point tier
func (s *Service) All() []*Question {
	out := make([]*Question, 0, len(s.byCell))
	for _, category := range s.categories {
		for _, points := range s.pointValues {
			if q, ok := s.byCell[cellKey{category, points}]; ok {
				out = append(out, q)
			}
		}
	}
	return out
}
