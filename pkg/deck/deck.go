package deck

import (
	"errors"
	"math/rand"

	"blackjack-server/internal/rng"
)

// ErrEmptyDeck is an error when Draw() is attempted and there are no more cards.
// A single round of blackjack with at most seven participants can never exhaust
// the deck, so hitting this error means a logic bug upstream.
var ErrEmptyDeck = errors.New("the deck is empty")

// Deck represents a playing deck
type Deck struct {
	Cards []*Card `json:"cards"`
	seed  int64
	rng   *rand.Rand
}

// New returns a new, unshuffled deck of 52 cards.
// You must call the Shuffle() method before dealing.
func New() *Deck {
	d := &Deck{}
	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Reset rebuilds the full 52-card deck and shuffles it, reusing the
// previous seed's source if one was set.
func (d *Deck) Reset() {
	d.buildDeck()

	if d.rng != nil {
		d.fisherYates()
		return
	}

	d.Shuffle(0)
}

// SetSeed will set the seed.
// This should only be used by tests. Setting the seed is normally handled
// when you call Shuffle().
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed))
}

// Shuffle will shuffle the deck of cards using a backward-pass
// Fisher-Yates permutation.
// A seed of 0 means a crypto-derived seed is chosen for you.
func (d *Deck) Shuffle(seed int64) {
	// always shuffle from a full, ordered deck
	if len(d.Cards) != 52 {
		d.buildDeck()
	}

	if seed == 0 {
		seed = rng.Seed()
	}

	d.SetSeed(seed)
	d.fisherYates()
}

func (d *Deck) fisherYates() {
	for i := len(d.Cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Seed returns the seed used to shuffle the deck
func (d *Deck) Seed() int64 {
	return d.seed
}

// Draw removes and returns the last card in the deck.
// If there are no more cards, an ErrEmptyDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	n := len(d.Cards)
	if n == 0 {
		return nil, ErrEmptyDeck
	}

	card := d.Cards[n-1]
	d.Cards = d.Cards[:n-1]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
