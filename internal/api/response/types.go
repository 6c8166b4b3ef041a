package response

import (
	"time"

	"github.com/xaca/triviaboard-go/internal/model"
	"github.com/xaca/triviaboard-go/internal/services/question"
)

// Session represents a game session in API responses
type Session struct {
	ID        string    `json:"id"`
	Board     string    `json:"board"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionFromModel converts a model.Session to a response Session
func SessionFromModel(s *model.Session) Session {
	return Session{
		ID:        string(s.ID),
		Board:     s.Board,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
	}
}

// SessionCreated is the response for session creation
type SessionCreated struct {
	ID string `json:"id"`
}

// SessionList is the response for listing sessions
type SessionList struct {
	IDs []string `json:"ids"`
}

// Cell represents one answered board position
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is the decoded answered-cell view of a session's board
type Board struct {
	Answered []Cell `json:"answered"`
}

// BoardFromPositions converts a decoded position set to a response
// Board, ordered row-major for stable output
func BoardFromPositions(answered map[model.Position]bool) Board {
	cells := make([]Cell, 0, len(answered))
	for row := 0; row < model.BoardSize; row++ {
		for col := 0; col < model.BoardSize; col++ {
			if answered[model.Position{Row: row, Col: col}] {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}
	return Board{Answered: cells}
}

// Team represents a team in API responses
type Team struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Score     int    `json:"score"`
	SessionID string `json:"partida_id"`
}

// TeamFromModel converts a model.Team to a response Team
func TeamFromModel(t *model.Team) Team {
	return Team{
		ID:        string(t.ID),
		Name:      t.Name,
		Score:     t.Score,
		SessionID: string(t.SessionID),
	}
}

// TeamList is the response for listing teams
type TeamList struct {
	Teams []Team `json:"teams"`
}

// TeamListFromModels converts a team slice
func TeamListFromModels(teams []*model.Team) TeamList {
	out := make([]Team, len(teams))
	for i, t := range teams {
		out[i] = TeamFromModel(t)
	}
	return TeamList{Teams: out}
}

// Question represents one board cell's content in API responses
type Question struct {
	Category string `json:"category"`
	Points   int    `json:"points"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QuestionFromCatalog converts a catalog question
func QuestionFromCatalog(q *question.Question) Question {
	return Question{
		Category: q.Category,
		Points:   q.Points,
		Question: q.Question,
		Answer:   q.Answer,
	}
}

// QuestionList is the response for the full catalog
type QuestionList struct {
	Categories  []string   `json:"categories"`
	PointValues []int      `json:"point_values"`
	Questions   []Question `json:"questions"`
}
