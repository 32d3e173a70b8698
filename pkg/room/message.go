package room

// Message is the format we expect from a connected client.
// Action names the operation; Subject carries the per-turn move
// (hit, stand, or double) when Action is "gameAction".
type Message struct {
	Action      string `json:"action"`
	Subject     string `json:"subject,omitempty"`
	RoomID      string `json:"roomId,omitempty"`
	PlayerName  string `json:"playerName,omitempty"`
	PlayerCount int    `json:"playerCount,omitempty"`
	Rounds      int    `json:"rounds,omitempty"`
	Timeout     int    `json:"timeout,omitempty"`
	Bet         int    `json:"bet,omitempty"`
}

// inbound action names
const (
	actionCreateRoom = "createRoom"
	actionJoinRoom   = "joinRoom"
	actionStartGame  = "startGame"
	actionPlaceBet   = "placeBet"
	actionGameAction = "gameAction"
)
