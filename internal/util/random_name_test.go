package util

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomName(t *testing.T) {
	rx := regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+$`)
	for i := 0; i < 10; i++ {
		assert.Regexp(t, rx, RandomName())
	}
}
