package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_BlackjackValue(t *testing.T) {
	tests := []struct {
		cards string
		value int
	}{
		{"14s,14h", 12},
		{"14s,9h", 20},
		{"13s,12h", 20},
		{"14s,14h,14d", 13},
		{"10s,10h,2d", 22},
		{"14s,13h", 21},
		{"14s,14h,9d", 21},
		{"2c,3d,4h", 9},
		{"11c,12d,13h", 30},
		{"14c", 11},
		{"", 0},
	}

	for _, test := range tests {
		hand := Hand(CardsFromString(test.cards))
		assert.Equal(t, test.value, hand.BlackjackValue(), "hand %q", test.cards)
	}
}

func TestHand_Busted(t *testing.T) {
	a := assert.New(t)

	a.False(Hand(CardsFromString("10s,10h")).Busted())
	a.False(Hand(CardsFromString("14s,13h")).Busted())
	a.True(Hand(CardsFromString("10s,10h,2d")).Busted())
}

func TestHand_AddCardAndClear(t *testing.T) {
	a := assert.New(t)

	var hand Hand
	hand.AddCard(CardFromString("14s"))
	hand.AddCard(CardFromString("9h"))
	a.Equal(2, len(hand))
	a.Equal("A♠,9♡", hand.String())
	a.True(hand.FirstCard().Equal(CardFromString("14s")))

	clone := hand.Clone()
	hand.Clear()
	a.Equal(0, len(hand))
	a.Equal(2, len(clone))
}
