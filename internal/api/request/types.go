package request

// CreateTeams is the body for POST /sessions/{id}/teams
type CreateTeams struct {
	Count int `json:"count"`
}

// UpdateScore is the body for PUT /sessions/{id}/teams/{team_id}/score.
// The value is absolute, not a delta; the caller computes old score
// plus/minus the question value locally.
type UpdateScore struct {
	Score int `json:"score"`
}

// MarkAnswered is the body for POST /sessions/{id}/board/answered.
// A cell is addressed either by grid position or by its
// (category, points) pair; exactly one form must be present.
type MarkAnswered struct {
	Row *int `json:"row,omitempty"`
	Col *int `json:"col,omitempty"`

	Category *string `json:"category,omitempty"`
	Points   *int    `json:"points,omitempty"`
}

// ByPosition returns true if the request addresses the cell by grid
// position
func (m *MarkAnswered) ByPosition() bool {
	return m.Row != nil && m.Col != nil
}

// ByQuestion returns true if the request addresses the cell by category
// and point value
func (m *MarkAnswered) ByQuestion() bool {
	return m.Category != nil && m.Points != nil
}
