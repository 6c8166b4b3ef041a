package redis

import (
	"fmt"
	"strings"

	"github.com/xaca/triviaboard-go/internal/model"
)

// Key prefix for all trivia-board data
const keyPrefix = "trivia"

// sessionKey returns the Redis key for a Session ("partida") document
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:partida:%s", keyPrefix, id)
}

// sessionIndexKey returns the Redis key for the SET of all session IDs
func sessionIndexKey() string {
	return fmt.Sprintf("%s:idx:partidas", keyPrefix)
}

// teamKey returns the Redis key for a Team document
func teamKey(sessionID model.SessionID, teamID model.TeamID) string {
	return fmt.Sprintf("%s:team:%s:%s", keyPrefix, sessionID, teamID)
}

// teamsForSessionIndexKey returns the Redis key for the SET of team keys
// under a session
func teamsForSessionIndexKey(sessionID model.SessionID) string {
	return fmt.Sprintf("%s:idx:teams_for_partida:%s", keyPrefix, sessionID)
}

// teamsChannel returns the pubsub channel notified on any team change
// under a session
func teamsChannel(sessionID model.SessionID) string {
	return fmt.Sprintf("%s:events:teams:%s", keyPrefix, sessionID)
}

// teamIDFromKey extracts the team ID from a full team key
func teamIDFromKey(key string, sessionID model.SessionID) model.TeamID {
	prefix := fmt.Sprintf("%s:team:%s:", keyPrefix, sessionID)
	return model.TeamID(strings.TrimPrefix(key, prefix))
}
