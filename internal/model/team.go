package model

// TeamID uniquely identifies a team within a session
type TeamID string

// Team represents one scoring group within a session.
// The store-assigned ID is duplicated into the record itself so clients
// can read it without knowing the store's primary key.
type Team struct {
	ID        TeamID    `json:"id"`
	Name      string    `json:"name"`
	Score     int       `json:"score"`
	SessionID SessionID `json:"partidaId"`
}
