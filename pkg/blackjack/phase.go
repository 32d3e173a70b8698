package blackjack

import "encoding/json"

// Phase represents the room's current stage in the round lifecycle
type Phase int

// constants for Phase
const (
	PhaseWaiting Phase = iota
	PhaseBetting
	PhasePlaying
	PhaseDealerTurn
	PhaseRoundEnd
	PhaseGameEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseBetting:
		return "betting"
	case PhasePlaying:
		return "playing"
	case PhaseDealerTurn:
		return "dealer-turn"
	case PhaseRoundEnd:
		return "round-end"
	case PhaseGameEnd:
		return "game-end"
	}

	return ""
}

// MarshalJSON encodes JSON
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(p),
		Name: p.String(),
	})
}
