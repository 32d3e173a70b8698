package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	a := assert.New(t)

	_ = os.Unsetenv("BLACKJACK_TEST_KEY")
	a.Equal("fallback", Getenv("BLACKJACK_TEST_KEY", "fallback"))

	_ = os.Setenv("BLACKJACK_TEST_KEY", "value")
	defer func() { _ = os.Unsetenv("BLACKJACK_TEST_KEY") }()
	a.Equal("value", Getenv("BLACKJACK_TEST_KEY", "fallback"))
}
