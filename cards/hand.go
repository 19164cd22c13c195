package cards

import (
	"math/bits"
	"strings"
)

// Hand is a card-set bitstring: bit i is set iff the card with id i is present.
// Only the low 52 bits are used.
type Hand uint64

// All is the bitstring of the full deck.
const All Hand = 1<<NumCards - 1

// NewHand creates a bitstring from multiple cards
func NewHand(cs ...Card) Hand {
	var h Hand
	for _, c := range cs {
		h |= c.Bit()
	}
	return h
}

// ParseHand parses a whitespace separated list of card names into a bitstring.
func ParseHand(s string) (Hand, error) {
	cs, err := ParseCards(s)
	if err != nil {
		return 0, err
	}
	return NewHand(cs...), nil
}

// Add returns h with c added.
func (h Hand) Add(c Card) Hand {
	return h | c.Bit()
}

// Remove returns h with c removed.
func (h Hand) Remove(c Card) Hand {
	return h &^ c.Bit()
}

// Contains checks if the hand contains a specific card
func (h Hand) Contains(c Card) bool {
	return c.Valid() && h&c.Bit() != 0
}

// ContainsAll reports whether other is a subset of h.
func (h Hand) ContainsAll(other Hand) bool {
	return h&other == other
}

// Overlaps reports whether h and other share a card.
func (h Hand) Overlaps(other Hand) bool {
	return h&other != 0
}

// Len returns the number of cards in the hand
func (h Hand) Len() int {
	return bits.OnesCount64(uint64(h))
}

// Cards returns the cards of h in ascending id order.
func (h Hand) Cards() []Card {
	out := make([]Card, 0, h.Len())
	for rest := uint64(h & All); rest != 0; rest &= rest - 1 {
		out = append(out, Card(bits.TrailingZeros64(rest)))
	}
	return out
}

// Points returns the summed deadwood value of every card in h.
func (h Hand) Points() int {
	total := 0
	for rest := uint64(h & All); rest != 0; rest &= rest - 1 {
		total += Card(bits.TrailingZeros64(rest)).Points()
	}
	return total
}

// String lists the cards in id order, e.g. "AC 2C 3H".
func (h Hand) String() string {
	cs := h.Cards()
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.String()
	}
	return strings.Join(names, " ")
}
