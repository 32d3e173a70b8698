package blackjack

// Action is a per-turn action a player can take
type Action string

// player turn actions
const (
	ActionHit    Action = "hit"
	ActionStand  Action = "stand"
	ActionDouble Action = "double"
)

// ActionFromString parses a client-supplied action name.
// An unrecognized name returns ErrInvalidAction.
func ActionFromString(s string) (Action, error) {
	switch Action(s) {
	case ActionHit, ActionStand, ActionDouble:
		return Action(s), nil
	}

	return "", ErrInvalidAction
}
