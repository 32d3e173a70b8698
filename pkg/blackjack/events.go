package blackjack

import "blackjack-server/pkg/deck"

// Event is an outbound message produced by the state machine.
// The transport layer decides how to deliver it: an empty To means the event
// is broadcast to every room member, otherwise it goes only to that player.
// Events are returned in the order the transitions occurred and must be
// delivered in that order.
type Event struct {
	To   string      `json:"-"`
	Name string      `json:"name"`
	Data interface{} `json:"data"`
}

func broadcast(name string, data interface{}) Event {
	return Event{Name: name, Data: data}
}

// outbound event names
const (
	eventPlayerJoined     = "playerJoined"
	eventGameStarted      = "gameStarted"
	eventBettingPhase     = "bettingPhase"
	eventBetPlaced        = "betPlaced"
	eventCardsDealt       = "cardsDealt"
	eventCardDrawn        = "cardDrawn"
	eventGameAction       = "gameAction"
	eventNextPlayer       = "nextPlayer"
	eventRevealDealerCard = "revealDealerCard"
	eventDealerCardDrawn  = "dealerCardDrawn"
	eventRoundEnd         = "roundEnd"
	eventGameEnd          = "gameEnd"
	eventPlayerLeft       = "playerLeft"
	eventGamePaused       = "gamePaused"
)

type playerJoinedPayload struct {
	Players []*playerView `json:"players"`
}

type gameStartedPayload struct {
	Settings           Settings      `json:"settings"`
	Players            []*playerView `json:"players"`
	Dealer             *dealerView   `json:"dealer"`
	CurrentPlayerIndex int           `json:"currentPlayerIndex"`
	CurrentRound       int           `json:"currentRound"`
	TotalRounds        int           `json:"totalRounds"`
	RoomID             string        `json:"roomId"`
}

type bettingPhasePayload struct {
	Players      []*playerView `json:"players"`
	CurrentRound int           `json:"currentRound"`
	TotalRounds  int           `json:"totalRounds"`
}

type betPlacedPayload struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Bet        int    `json:"bet"`
}

type cardsDealtPayload struct {
	Players            []*playerView `json:"players"`
	Dealer             *dealerView   `json:"dealer"`
	CurrentPlayerIndex int           `json:"currentPlayerIndex"`
}

type cardDrawnPayload struct {
	PlayerID string     `json:"playerId"`
	Card     *deck.Card `json:"card"`
}

type gameActionPayload struct {
	PlayerID string `json:"playerId"`
	Action   Action `json:"action"`
}

type nextPlayerPayload struct {
	CurrentPlayerIndex int    `json:"currentPlayerIndex"`
	PlayerID           string `json:"playerId"`
	Timeout            int    `json:"timeout"`
}

type revealDealerCardPayload struct {
	Card *deck.Card `json:"card"`
}

type dealerCardDrawnPayload struct {
	Card *deck.Card `json:"card"`
}

type roundResultView struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Hand     deck.Hand `json:"hand"`
	Value    int       `json:"value"`
	Result   Result    `json:"result"`
	Bet      int       `json:"bet"`
	Winnings int       `json:"winnings"`
	Credits  int       `json:"credits"`
}

type roundEndPayload struct {
	Dealer       *dealerView        `json:"dealer"`
	Players      []*roundResultView `json:"players"`
	CurrentRound int                `json:"currentRound"`
	TotalRounds  int                `json:"totalRounds"`
}

type standingView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Credits   int    `json:"credits"`
	RoundsWon int    `json:"roundsWon"`
}

type gameEndPayload struct {
	Players []*standingView `json:"players"`
}

type playerLeftPayload struct {
	PlayerID string        `json:"playerId"`
	Players  []*playerView `json:"players"`
}

type gamePausedPayload struct {
	Message string `json:"message"`
}
