// Package cards implements the 52-card model used by the meld engine and the
// game: cards identified by a small integer id, card-set bitstrings and
// seeded decks.
package cards

import (
	"fmt"
	"strings"
)

// Card identifies one of the 52 cards by id = suit*13 + rank.
// Two cards are the same card iff their ids are equal.
type Card uint8

// NoCard stands for a card whose identity is not known to the observer,
// e.g. the opponent's face-down draw.
const NoCard Card = 0xFF

// Suit constants, in id order. Suit colours alternate.
const (
	Clubs    uint8 = 0
	Hearts   uint8 = 1
	Spades   uint8 = 2
	Diamonds uint8 = 3
)

// Rank constants (0-12 for A-K)
const (
	Ace   uint8 = 0
	Two   uint8 = 1
	Three uint8 = 2
	Four  uint8 = 3
	Five  uint8 = 4
	Six   uint8 = 5
	Seven uint8 = 6
	Eight uint8 = 7
	Nine  uint8 = 8
	Ten   uint8 = 9
	Jack  uint8 = 10
	Queen uint8 = 11
	King  uint8 = 12
)

const (
	NumRanks = 13
	NumSuits = 4
	NumCards = NumRanks * NumSuits
)

const (
	rankNames = "A23456789TJQK"
	suitNames = "CHSD"
)

// NewCard returns the card with the given rank and suit.
func NewCard(rank, suit uint8) Card {
	if rank >= NumRanks || suit >= NumSuits {
		panic(fmt.Sprintf("cards: rank %d suit %d out of range", rank, suit))
	}
	return Card(suit*NumRanks + rank)
}

// FromID returns the card with the given id (0-51).
func FromID(id int) Card {
	if id < 0 || id >= NumCards {
		panic(fmt.Sprintf("cards: id %d out of range", id))
	}
	return Card(id)
}

// ID returns the card id (0-51).
func (c Card) ID() int {
	return int(c)
}

// Rank returns the rank of the card (0-12)
func (c Card) Rank() uint8 {
	return uint8(c) % NumRanks
}

// Suit returns the suit of the card (0-3)
func (c Card) Suit() uint8 {
	return uint8(c) / NumRanks
}

// Valid reports whether c is one of the 52 cards.
func (c Card) Valid() bool {
	return c < NumCards
}

// IsRed returns true for hearts and diamonds.
func (c Card) IsRed() bool {
	return c.Suit()%2 == 1
}

// Points returns the deadwood value of the card: A=1, 2-9 face value, T/J/Q/K=10.
func (c Card) Points() int {
	return min(int(c.Rank())+1, 10)
}

// Bit returns the singleton bitstring of the card.
func (c Card) Bit() Hand {
	return Hand(1) << c
}

// String returns the two letter name of the card, e.g. "AC", "TD".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return string(rankNames[c.Rank()]) + string(suitNames[c.Suit()])
}

// ParseCard parses a card name like "AC" or "td".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return NoCard, fmt.Errorf("invalid card string: %q", s)
	}

	rank := strings.IndexByte(rankNames, upper(s[0]))
	if rank < 0 {
		return NoCard, fmt.Errorf("invalid rank: %c", s[0])
	}
	suit := strings.IndexByte(suitNames, upper(s[1]))
	if suit < 0 {
		return NoCard, fmt.Errorf("invalid suit: %c", s[1])
	}

	return NewCard(uint8(rank), uint8(suit)), nil
}

// MustParseCard is like ParseCard but panics on error. Intended for tests
// and fixed tables.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCards parses a whitespace separated list of card names, preserving order.
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	out := make([]Card, 0, len(fields))
	seen := Hand(0)
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		if seen.Contains(c) {
			return nil, fmt.Errorf("duplicate card: %s", c)
		}
		seen = seen.Add(c)
		out = append(out, c)
	}
	return out, nil
}

// Format joins card names with spaces.
func Format(cs []Card) string {
	var b strings.Builder
	for i, c := range cs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	return b.String()
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
