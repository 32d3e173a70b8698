package token

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	a := assert.New(t)

	code, err := Generate(6)
	a.NoError(err)
	a.Regexp(regexp.MustCompile(`^[A-Z0-9]{6}$`), code)

	code2, err := Generate(6)
	a.NoError(err)
	a.NotEqual(code, code2)

	long, err := Generate(20)
	a.NoError(err)
	a.Len(long, 20)
}
