package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleDeterministic(t *testing.T) {
	t.Parallel()
	a := Shuffle(5742)
	b := Shuffle(5742)
	c := Shuffle(5743)

	assert.Equal(t, a, b, "same seed must give the same order")
	assert.NotEqual(t, a, c)
	assert.Equal(t, All, NewHand(a...), "a shuffle is a permutation")
}

func TestDeck(t *testing.T) {
	t.Parallel()
	deck := NewDeck(42)
	require.Equal(t, 52, deck.Remaining())

	var dealt Hand
	for i := 0; i < 52; i++ {
		c, ok := deck.Draw()
		require.True(t, ok)
		require.False(t, dealt.Contains(c), "dealt %s twice", c)
		dealt = dealt.Add(c)
	}
	assert.Equal(t, 0, deck.Remaining())

	c, ok := deck.Draw()
	assert.False(t, ok)
	assert.Equal(t, NoCard, c)
}

func TestStackedDeck(t *testing.T) {
	t.Parallel()
	order, err := ParseCards("KD QD JD")
	require.NoError(t, err)

	deck, err := NewStackedDeck(order)
	require.NoError(t, err)
	assert.Equal(t, 3, deck.Remaining())

	for _, want := range order {
		c, ok := deck.Draw()
		require.True(t, ok)
		assert.Equal(t, want, c)
	}
	assert.Equal(t, 0, deck.Remaining())

	_, err = NewStackedDeck([]Card{MustParseCard("AC"), MustParseCard("AC")})
	assert.Error(t, err)
	_, err = NewStackedDeck([]Card{NoCard})
	assert.Error(t, err)
}
