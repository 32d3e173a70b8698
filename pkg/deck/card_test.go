package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("A♠", CardFromString("14s").String())
	a.Equal("K♣", CardFromString("13c").String())
	a.Equal("Q♢", CardFromString("12d").String())
	a.Equal("J♡", CardFromString("11h").String())
	a.Equal("10♠", CardFromString("10s").String())
	a.Equal("2♣", CardFromString("2c").String())
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)

	a.True(CardFromString("14s").Equal(CardFromString("14s")))
	a.False(CardFromString("14s").Equal(CardFromString("14h")))
	a.False(CardFromString("14s").Equal(CardFromString("13s")))
}

func TestCard_IsFace(t *testing.T) {
	a := assert.New(t)

	a.True(CardFromString("11c").IsFace())
	a.True(CardFromString("13c").IsFace())
	a.False(CardFromString("14c").IsFace())
	a.False(CardFromString("10c").IsFace())
}

func TestCardFromString_Panics(t *testing.T) {
	assert.Panics(t, func() { CardFromString("x") })
	assert.Panics(t, func() { CardFromString("15s") })
	assert.Panics(t, func() { CardFromString("10x") })
}
