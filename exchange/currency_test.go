package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAcceptsSupportedCodes(t *testing.T) {
	for _, code := range All() {
		parsed, ok := Parse(string(code))
		assert.True(t, ok, "code %s", code)
		assert.Equal(t, code, parsed)
	}
}

func TestParseNormalizesInput(t *testing.T) {
	parsed, ok := Parse(" brl ")
	assert.True(t, ok)
	assert.Equal(t, BRL, parsed)
}

func TestParseRejectsUnknownCodes(t *testing.T) {
	for _, raw := range []string{"", "XXX", "REAL", "BR", "BRLUSD"} {
		_, ok := Parse(raw)
		assert.False(t, ok, "raw %q", raw)
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Real (BRL)", BRL.Label())
	assert.Equal(t, "Iene (JPY)", JPY.Label())
	assert.Equal(t, "ZZZ", Code("ZZZ").Label())
}
