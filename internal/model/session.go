package model

import "time"

// SessionID uniquely identifies a game session ("partida")
type SessionID string

// SessionStatus represents the lifecycle state of a session
type SessionStatus string

const (
	// SessionStatusActive is the only status assigned in the current
	// lifecycle; no further transitions are defined
	SessionStatusActive SessionStatus = "active"
)

// BoardSize is the fixed dimension of the question grid
const BoardSize = 5

// Session represents one play-through of the trivia game
type Session struct {
	ID        SessionID     `json:"id"`
	Board     string        `json:"board"`
	Status    SessionStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}
