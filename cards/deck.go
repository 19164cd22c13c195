package cards

import (
	"fmt"

	"github.com/lox/ginrummy/internal/randutil"
)

// Deck is an ordered stock of cards. The top of the deck is dealt first.
type Deck struct {
	cards [NumCards]Card
	size  int
	next  int
}

// Ordered returns all 52 cards in id order.
func Ordered() []Card {
	out := make([]Card, NumCards)
	for i := range out {
		out[i] = Card(i)
	}
	return out
}

// Shuffle returns a permutation of the 52 cards determined by seed.
// The same seed always produces the same order.
func Shuffle(seed int64) []Card {
	out := Ordered()
	rng := randutil.New(seed)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// NewDeck creates a full deck shuffled by seed.
func NewDeck(seed int64) *Deck {
	d, _ := NewStackedDeck(Shuffle(seed))
	return d
}

// NewStackedDeck creates a deck whose first card dealt is order[0]. The order
// may hold fewer than 52 cards but must not repeat a card.
func NewStackedDeck(order []Card) (*Deck, error) {
	if len(order) > NumCards {
		return nil, fmt.Errorf("stacked deck has %d cards", len(order))
	}
	d := &Deck{size: len(order)}
	var seen Hand
	for i, c := range order {
		if !c.Valid() {
			return nil, fmt.Errorf("stacked deck position %d: invalid card", i)
		}
		if seen.Contains(c) {
			return nil, fmt.Errorf("stacked deck position %d: duplicate card %s", i, c)
		}
		seen = seen.Add(c)
		d.cards[i] = c
	}
	return d, nil
}

// Draw removes and returns the top card. ok is false when the deck is empty.
func (d *Deck) Draw() (c Card, ok bool) {
	if d.next >= d.size {
		return NoCard, false
	}
	c = d.cards[d.next]
	d.next++
	return c, true
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return d.size - d.next
}
