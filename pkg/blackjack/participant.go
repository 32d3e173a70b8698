package blackjack

import (
	"blackjack-server/pkg/deck"
)

// StartingCredits is the credit balance every player begins with
const StartingCredits = 100

// Player is a seated participant. Identity is connection-scoped: the same
// person rejoining gets a brand-new Player.
type Player struct {
	ID   string
	Name string

	isHost    bool
	hand      deck.Hand
	credits   int
	bet       int
	roundsWon int
	acted     bool
	result    Result
	winnings  int
}

func newPlayer(id, name string, credits int) *Player {
	return &Player{
		ID:      id,
		Name:    name,
		hand:    make(deck.Hand, 0, 8),
		credits: credits,
	}
}

// IsHost returns true if the player is the room host
func (p *Player) IsHost() bool {
	return p.isHost
}

// Credits returns the player's current credit balance
func (p *Player) Credits() int {
	return p.credits
}

// Bet returns the player's bet for the current round
func (p *Player) Bet() int {
	return p.bet
}

// Hand returns a copy of the player's hand
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// HandValue returns the blackjack total of the player's hand
func (p *Player) HandValue() int {
	return p.hand.BlackjackValue()
}

func (p *Player) newRound() {
	p.bet = 0
	p.acted = false
	p.hand.Clear()
	p.result = ResultPending
	p.winnings = 0
}

type playerView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsHost    bool      `json:"isHost"`
	Credits   int       `json:"credits"`
	Bet       int       `json:"bet"`
	RoundsWon int       `json:"roundsWon"`
	Hand      deck.Hand `json:"hand"`
	Value     int       `json:"value"`
	HasActed  bool      `json:"hasActed"`
}

func (p *Player) view() *playerView {
	return &playerView{
		ID:        p.ID,
		Name:      p.Name,
		IsHost:    p.isHost,
		Credits:   p.credits,
		Bet:       p.bet,
		RoundsWon: p.roundsWon,
		Hand:      p.hand.Clone(),
		Value:     p.hand.BlackjackValue(),
		HasActed:  p.acted,
	}
}

// Dealer is the house hand. There is exactly one per game and it is reset,
// never removed, between rounds.
type Dealer struct {
	hand     deck.Hand
	revealed bool
}

func newDealer() *Dealer {
	return &Dealer{
		hand: make(deck.Hand, 0, 8),
	}
}

// Hand returns a copy of the dealer's hand
func (d *Dealer) Hand() deck.Hand {
	return d.hand.Clone()
}

// HandValue returns the blackjack total of the dealer's hand
func (d *Dealer) HandValue() int {
	return d.hand.BlackjackValue()
}

// Revealed returns true once the hole card has been revealed
func (d *Dealer) Revealed() bool {
	return d.revealed
}

func (d *Dealer) holeCard() *deck.Card {
	if len(d.hand) < 2 {
		return nil
	}

	return d.hand[1]
}

func (d *Dealer) newRound() {
	d.hand.Clear()
	d.revealed = false
}

type dealerView struct {
	Hand  deck.Hand `json:"hand"`
	Value int       `json:"value,omitempty"`
}

// view returns the dealer hand as the clients may see it. Until the hole
// card is revealed it appears as [up-card, null].
func (d *Dealer) view() *dealerView {
	if d.revealed {
		return &dealerView{
			Hand:  d.hand.Clone(),
			Value: d.hand.BlackjackValue(),
		}
	}

	if len(d.hand) == 0 {
		return &dealerView{Hand: deck.Hand{}}
	}

	return &dealerView{
		Hand: deck.Hand{d.hand.FirstCard(), nil},
	}
}
