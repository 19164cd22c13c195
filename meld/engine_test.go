package meld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/ginrummy/cards"
	"github.com/lox/ginrummy/internal/randutil"
)

func mustHand(t *testing.T, s string) cards.Hand {
	t.Helper()
	h, err := cards.ParseHand(s)
	require.NoError(t, err)
	return h
}

func TestMeldsIncludeSubRuns(t *testing.T) {
	t.Parallel()
	hand := mustHand(t, "4S 5S 6S 7S KD")

	var got []string
	for _, m := range Default().Melds(hand) {
		got = append(got, m.String())
	}
	assert.ElementsMatch(t, []string{"[4S 5S 6S]", "[4S 5S 6S 7S]", "[5S 6S 7S]"}, got)
}

func TestMeldsRunsAndSets(t *testing.T) {
	t.Parallel()
	hand := mustHand(t, "7C 7H 7S 8C 9C")

	kinds := map[Kind]int{}
	for _, m := range Default().Melds(hand) {
		kinds[m.Kind()]++
	}
	assert.Equal(t, 1, kinds[Run])
	assert.Equal(t, 1, kinds[Set])
}

func TestThreeSetsOfLowCards(t *testing.T) {
	t.Parallel()
	hand := mustHand(t, "AC AH AS 2C 2H 2S 3C 3H 3S KD")
	c := Default()

	found := false
	for _, set := range c.MaximalMeldSets(hand) {
		if len(set) != 3 {
			continue
		}
		allSets := true
		for _, m := range set {
			allSets = allSets && m.Kind() == Set
		}
		if allSets {
			found = true
			assert.Equal(t, 10, Deadwood(hand, set))
		}
	}
	assert.True(t, found, "expected the three rank sets as a maximal meld set")

	best := c.BestMeldSets(hand)
	require.NotEmpty(t, best)
	for _, set := range best {
		assert.Equal(t, 10, Deadwood(hand, set))
	}
	assert.Equal(t, 10, c.MinDeadwood(hand))
}

func TestNoMelds(t *testing.T) {
	t.Parallel()
	hand := mustHand(t, "AC 3H 5S 7D 9C JH KS 2D 4C 6H")
	c := Default()

	assert.Empty(t, c.Melds(hand))
	assert.Equal(t, []MeldSet{{}}, c.MaximalMeldSets(hand))

	best := c.BestMeldSets(hand)
	require.Len(t, best, 1)
	assert.Empty(t, best[0])
	assert.Equal(t, 57, Deadwood(hand, best[0]))
	assert.Equal(t, hand.Points(), Deadwood(hand, nil))
}

func TestEmptyHand(t *testing.T) {
	t.Parallel()
	best := Default().BestMeldSets(0)
	require.Len(t, best, 1)
	assert.Equal(t, 0, Deadwood(0, best[0]))
}

func TestGinHand(t *testing.T) {
	t.Parallel()
	hand := mustHand(t, "AD AS AH AC 2C 3C 4C 4H 4D 4S")

	best := Default().BestMeldSets(hand)
	require.NotEmpty(t, best)
	for _, set := range best {
		assert.Equal(t, 0, Deadwood(hand, set), "set %s", set)
		assert.Equal(t, hand, set.Hand())
	}
}

func TestOverlappingRunAndSet(t *testing.T) {
	t.Parallel()
	// 5H is wanted by both the run and the set; only one may have it
	hand := mustHand(t, "3H 4H 5H 5C 5S KD")
	c := Default()

	for _, set := range c.MaximalMeldSets(hand) {
		assert.Len(t, set, 1, "set %s", set)
	}
	best := c.BestMeldSets(hand)
	require.Len(t, best, 1)
	assert.Equal(t, "[[5C 5H 5S]]", best[0].String())
	assert.Equal(t, 17, Deadwood(hand, best[0]))
}

// Properties checked over random hands: melds are disjoint and drawn from
// the hand, sets are maximal, best sets are minimal, and baseline deadwood
// matches the card values.
func TestMeldSetProperties(t *testing.T) {
	t.Parallel()
	c := Default()
	rng := randutil.New(20200101)

	for i := 0; i < 150; i++ {
		deck := cards.Shuffle(rng.Int64())
		hand := cards.NewHand(deck[:10+rng.IntN(2)]...)
		candidates := c.MeldBitstrings(hand)

		require.Equal(t, hand.Points(), Deadwood(hand, nil))
		require.Equal(t, Deadwood(hand, MeldSet{}), Deadwood(hand, nil))

		maximal := c.MaximalMeldSets(hand)
		require.NotEmpty(t, maximal)

		lowest := hand.Points()
		for _, set := range maximal {
			require.True(t, set.Disjoint(), "hand %s set %s", hand, set)
			union := set.Hand()
			require.True(t, hand.ContainsAll(union))
			for _, m := range set {
				require.True(t, c.IsMeld(m))
			}
			for _, m := range candidates {
				require.True(t, union.Overlaps(m), "hand %s: %s could extend %s", hand, m, set)
			}
			lowest = min(lowest, Deadwood(hand, set))
		}

		for _, set := range c.BestMeldSets(hand) {
			require.Equal(t, lowest, Deadwood(hand, set), "hand %s", hand)
		}
	}
}

func TestMaximalMeldSetsUnique(t *testing.T) {
	t.Parallel()
	hand := mustHand(t, "AC 2C 3C 4C 5C 5H 5S 5D 6D 7D")

	sets := Default().MaximalMeldSets(hand)
	require.NotEmpty(t, sets)

	names := map[string]bool{}
	for _, set := range sets {
		name := set.String()
		assert.False(t, names[name], "duplicate maximal set %s", name)
		names[name] = true
	}
}

func BenchmarkBestMeldSets(b *testing.B) {
	hand, _ := cards.ParseHand("AD AS AH AC 2C 3C 4C 4H 4D 4S")
	c := Default()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.BestMeldSets(hand)
	}
}
