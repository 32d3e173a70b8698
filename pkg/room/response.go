package room

import "blackjack-server/pkg/blackjack"

type errorPayload struct {
	Message string `json:"message"`
}

// errorEvent builds the error response sent only to the offending client.
// Validation failures never reach the other room members.
func errorEvent(err error) blackjack.Event {
	return blackjack.Event{
		Name: "error",
		Data: errorPayload{Message: err.Error()},
	}
}

type roomCreatedPayload struct {
	RoomID  string      `json:"roomId"`
	Players interface{} `json:"players"`
}
