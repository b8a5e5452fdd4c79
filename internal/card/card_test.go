package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		suit Suit
		rank Rank
	}{
		{Clubs, 1}, {Diamonds, 13}, {Hearts, 10}, {Spades, 7},
	} {
		c, err := New(tc.suit, tc.rank)
		require.NoError(t, err)

		parsed, err := Parse(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
}

func TestParseTokens(t *testing.T) {
	cases := map[string]Card{
		"S13": {Suit: Spades, Rank: 13},
		"H1":  {Suit: Hearts, Rank: 1},
		"D10": {Suit: Diamonds, Rank: 10},
		"C2":  {Suit: Clubs, Rank: 2},
	}
	for token, want := range cases {
		got, err := Parse(token)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, tok := range []string{"", "X", "S", "Z5", "S0", "S14", "SAA"} {
		_, err := Parse(tok)
		assert.Error(t, err, tok)
	}
}

func TestColor(t *testing.T) {
	assert.Equal(t, Red, Hearts.Color())
	assert.Equal(t, Red, Diamonds.Color())
	assert.Equal(t, Black, Clubs.Color())
	assert.Equal(t, Black, Spades.Color())
}

func TestNewRejectsOutOfRange(t *testing.T) {
	_, err := New(Clubs, 0)
	assert.Error(t, err)
	_, err = New(Clubs, 14)
	assert.Error(t, err)
}
