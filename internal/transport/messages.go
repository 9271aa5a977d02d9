package transport

// MessageType tags every frame exchanged with the game server.
type MessageType string

const (
	// MessageTypeGameResult is sent by the game server when a match ends.
	MessageTypeGameResult MessageType = "game_result"

	// MessageTypeLevelUp is pushed to the game server when a player levels up.
	MessageTypeLevelUp MessageType = "level_up"
)

// Envelope carries only the type tag of an incoming frame; the full frame is
// re-decoded once the tag is known. Frames with an unrecognized tag are
// ignored rather than treated as errors.
type Envelope struct {
	Type MessageType `json:"type"`
}

// GameResultMessage reports a finished match between two players.
type GameResultMessage struct {
	Type     MessageType `json:"type"`
	WinnerID int64       `json:"winner_id"`
	LoserID  int64       `json:"loser_id"`
}

// EventMessage pushes a progression event to the game server.
type EventMessage struct {
	Type MessageType            `json:"type"`
	Data map[string]interface{} `json:"data"`
}
