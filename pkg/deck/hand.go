package deck

import "strings"

// target is the highest non-busting blackjack total
const target = 21

// Hand represents a collection of cards
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// Clear removes all cards from the hand
func (h *Hand) Clear() {
	*h = (*h)[:0]
}

// FirstCard returns the first card in the hand or nil if the hand is empty
func (h Hand) FirstCard() *Card {
	if len(h) == 0 {
		return nil
	}

	return h[0]
}

func (h Hand) String() string {
	cards := make([]string, len(h))
	for i, card := range h {
		cards[i] = card.String()
	}

	return strings.Join(cards, ",")
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

// BlackjackValue computes the blackjack total of the hand.
//
// Non-ace cards count face value with jacks, queens, and kings worth 10.
// Aces are then resolved one at a time: each counts 11 if that keeps the
// running total at or below 21, otherwise 1. The sequential rule means two
// aces always total 12; an earlier ace is never reinterpreted once a later
// ace is counted.
func (h Hand) BlackjackValue() int {
	value := 0
	aces := 0

	for _, card := range h {
		switch {
		case card.Rank == Ace:
			aces++
		case card.IsFace():
			value += 10
		default:
			value += card.Rank
		}
	}

	for i := 0; i < aces; i++ {
		if value+11 <= target {
			value += 11
		} else {
			value++
		}
	}

	return value
}

// Busted returns true if the hand's blackjack total exceeds 21
func (h Hand) Busted() bool {
	return h.BlackjackValue() > target
}
