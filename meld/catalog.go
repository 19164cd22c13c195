package meld

import (
	"sync"

	"github.com/lox/ginrummy/cards"
)

const (
	// runs of length 3..13-start for each start rank, per suit
	runCount = cards.NumSuits * (cards.NumRanks - 2) * (cards.NumRanks - 1) / 2
	// four 3-card subsets plus the full set, per rank
	setCount = cards.NumRanks * (cards.NumSuits + 1)

	catalogSize = runCount + setCount
)

// Catalog is the immutable table of every legal meld.
//
// Besides the bitstring lookup it keeps melds grouped into chains in which
// each entry is a superset of the one before it (the runs starting at one
// rank of one suit, ordered by length). A hand that lacks one entry of a
// chain lacks every later entry too, so enumeration stops at the first miss.
type Catalog struct {
	melds  map[cards.Hand]Meld
	chains [][]cards.Hand
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog, building it on first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = NewCatalog()
	})
	return defaultCatalog
}

// NewCatalog builds a catalog. Prefer Default unless an isolated instance is needed.
func NewCatalog() *Catalog {
	c := &Catalog{
		melds:  make(map[cards.Hand]Meld, catalogSize),
		chains: make([][]cards.Hand, 0, cards.NumSuits*(cards.NumRanks-2)+setCount),
	}

	for suit := uint8(0); suit < cards.NumSuits; suit++ {
		for start := uint8(0); start < cards.NumRanks-2; start++ {
			run := Meld{cards.NewCard(start, suit), cards.NewCard(start+1, suit)}
			var chain []cards.Hand
			for rank := start + 2; rank < cards.NumRanks; rank++ {
				run = append(run, cards.NewCard(rank, suit))
				chain = append(chain, c.add(run))
			}
			c.chains = append(c.chains, chain)
		}
	}

	for rank := uint8(0); rank < cards.NumRanks; rank++ {
		// missing == NumSuits is the four-card set
		for missing := uint8(0); missing <= cards.NumSuits; missing++ {
			set := make(Meld, 0, cards.NumSuits)
			for suit := uint8(0); suit < cards.NumSuits; suit++ {
				if suit != missing {
					set = append(set, cards.NewCard(rank, suit))
				}
			}
			c.chains = append(c.chains, []cards.Hand{c.add(set)})
		}
	}

	return c
}

func (c *Catalog) add(m Meld) cards.Hand {
	h := m.Hand()
	c.melds[h] = m.Clone()
	return h
}

// Len returns the number of melds in the catalog.
func (c *Catalog) Len() int {
	return len(c.melds)
}

// Contains reports whether the bitstring is exactly one legal meld.
func (c *Catalog) Contains(h cards.Hand) bool {
	_, ok := c.melds[h]
	return ok
}

// Lookup returns the canonical card list for a meld bitstring.
func (c *Catalog) Lookup(h cards.Hand) (Meld, bool) {
	m, ok := c.melds[h]
	if !ok {
		return nil, false
	}
	return m.Clone(), true
}

// IsMeld reports whether m is a legal meld: distinct cards whose bitstring
// is in the catalog.
func (c *Catalog) IsMeld(m Meld) bool {
	h := m.Hand()
	return h.Len() == len(m) && c.Contains(h)
}

// CanLayOff reports whether appending card to m yields a legal meld.
func (c *Catalog) CanLayOff(m Meld, card cards.Card) bool {
	h := m.Hand()
	return card.Valid() && !h.Contains(card) && c.Contains(h.Add(card))
}

// Bitstrings returns every meld bitstring in chain order.
func (c *Catalog) Bitstrings() []cards.Hand {
	out := make([]cards.Hand, 0, len(c.melds))
	for _, chain := range c.chains {
		out = append(out, chain...)
	}
	return out
}
