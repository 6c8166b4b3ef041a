package model

// Position identifies a cell on the question board
type Position struct {
	Row int `json:"row"` // 0-indexed from top, one row per point tier
	Col int `json:"col"` // 0-indexed from left, one column per category
}

// IsValid returns true if the position is within the fixed grid bounds
func (p Position) IsValid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}
