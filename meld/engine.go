package meld

import (
	"math"

	"github.com/lox/ginrummy/cards"
)

// comboKey is a bitmask over candidate meld indices. It is comparable, so a
// combination of melds can be used directly as a map key whatever order its
// melds were added in.
type comboKey [(catalogSize + 63) / 64]uint64

func (k *comboKey) set(i int) {
	k[i/64] |= 1 << (i % 64)
}

func (k comboKey) indices() []int {
	var out []int
	for w, word := range k {
		for i := 0; i < 64; i++ {
			if word&(1<<i) != 0 {
				out = append(out, w*64+i)
			}
		}
	}
	return out
}

// MeldBitstrings returns the bitstring of every catalog meld contained in
// hand, including each sub-meld of a longer run.
func (c *Catalog) MeldBitstrings(hand cards.Hand) []cards.Hand {
	var out []cards.Hand
	for _, chain := range c.chains {
		for _, m := range chain {
			if !hand.ContainsAll(m) {
				break
			}
			out = append(out, m)
		}
	}
	return out
}

// Melds returns every catalog meld contained in hand.
func (c *Catalog) Melds(hand cards.Hand) []Meld {
	bitstrings := c.MeldBitstrings(hand)
	out := make([]Meld, len(bitstrings))
	for i, h := range bitstrings {
		out[i] = c.melds[h].Clone()
	}
	return out
}

// MaximalMeldSets returns every combination of pairwise-disjoint melds from
// hand to which no further meld of hand can be added.
//
// The search is breadth-first over combinations of candidate melds, starting
// from each single meld. A combination reached a second time through a
// different insertion order is skipped. A hand with no melds has exactly one
// maximal meld set: the empty one.
func (c *Catalog) MaximalMeldSets(hand cards.Hand) []MeldSet {
	candidates := c.MeldBitstrings(hand)
	if len(candidates) == 0 {
		return []MeldSet{{}}
	}

	type combo struct {
		key   comboKey
		union cards.Hand
	}

	visited := make(map[comboKey]struct{}, len(candidates))
	frontier := make([]combo, 0, len(candidates))
	for i, m := range candidates {
		var key comboKey
		key.set(i)
		visited[key] = struct{}{}
		frontier = append(frontier, combo{key: key, union: m})
	}

	var out []MeldSet
	for head := 0; head < len(frontier); head++ {
		cur := frontier[head]
		maximal := true
		for i, m := range candidates {
			// members of cur always overlap its union
			if cur.union.Overlaps(m) {
				continue
			}
			maximal = false
			next := cur.key
			next.set(i)
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			frontier = append(frontier, combo{key: next, union: cur.union | m})
		}
		if maximal {
			out = append(out, c.meldSet(cur.key, candidates))
		}
	}
	return out
}

func (c *Catalog) meldSet(key comboKey, candidates []cards.Hand) MeldSet {
	idx := key.indices()
	set := make(MeldSet, len(idx))
	for i, j := range idx {
		set[i] = c.melds[candidates[j]].Clone()
	}
	return set
}

// BestMeldSets returns the maximal meld sets of hand that leave the least
// deadwood. Ties are all returned, in search order.
func (c *Catalog) BestMeldSets(hand cards.Hand) []MeldSet {
	best := math.MaxInt
	var out []MeldSet
	for _, set := range c.MaximalMeldSets(hand) {
		dw := Deadwood(hand, set)
		switch {
		case dw < best:
			best = dw
			out = append(out[:0], set)
		case dw == best:
			out = append(out, set)
		}
	}
	return out
}

// MinDeadwood returns the least deadwood any meld set of hand can leave.
func (c *Catalog) MinDeadwood(hand cards.Hand) int {
	sets := c.BestMeldSets(hand)
	return Deadwood(hand, sets[0])
}

// BestMeldSets is Default().BestMeldSets.
func BestMeldSets(hand cards.Hand) []MeldSet {
	return Default().BestMeldSets(hand)
}

// MinDeadwood is Default().MinDeadwood.
func MinDeadwood(hand cards.Hand) int {
	return Default().MinDeadwood(hand)
}
