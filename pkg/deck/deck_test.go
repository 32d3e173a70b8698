package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	d := New()
	a.Equal(52, d.CardsLeft())
	a.Equal(Card{Rank: 2, Suit: Clubs}, *d.Cards[0])
	a.Equal(Card{Rank: Ace, Suit: Spades}, *d.Cards[51])

	assertFullDeck(t, d.Cards)
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.Shuffle(1)
	a.Equal(int64(1), d.Seed())
	assertFullDeck(t, d.Cards)

	d2 := New()
	d2.Shuffle(1)
	for i := range d.Cards {
		a.True(d.Cards[i].Equal(d2.Cards[i]))
	}

	d2.Shuffle(2)
	assertFullDeck(t, d2.Cards)

	same := true
	for i := range d.Cards {
		if !d.Cards[i].Equal(d2.Cards[i]) {
			same = false
			break
		}
	}
	a.False(same)
}

func TestDeck_ShuffleRandomSeed(t *testing.T) {
	d := New()
	d.Shuffle(0)
	assert.NotEqual(t, int64(0), d.Seed())
	assertFullDeck(t, d.Cards)
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.Shuffle(1)

	a.True(d.CanDraw(52))
	a.False(d.CanDraw(53))

	// Draw pops from the tail
	last := d.Cards[51]
	card, err := d.Draw()
	a.NoError(err)
	a.True(last.Equal(card))

	for i := 0; i < 51; i++ {
		card, err := d.Draw()
		a.NotNil(card)
		a.NoError(err)
	}

	a.Equal(0, d.CardsLeft())

	card, err = d.Draw()
	a.Nil(card)
	a.Equal(ErrEmptyDeck, err)
}

func TestDeck_Reset(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.Shuffle(1)
	for i := 0; i < 10; i++ {
		_, err := d.Draw()
		a.NoError(err)
	}

	d.Reset()
	a.Equal(52, d.CardsLeft())
	assertFullDeck(t, d.Cards)
}

// assertFullDeck ensures every (rank, suit) pair appears exactly once
func assertFullDeck(t *testing.T, cards []*Card) {
	t.Helper()

	a := assert.New(t)
	a.Equal(52, len(cards))

	seen := make(map[Card]int)
	for _, card := range cards {
		seen[*card]++
	}

	a.Equal(52, len(seen))
	for card, count := range seen {
		a.Equal(1, count, "card %s", card.String())
	}
}
