// Package meld detects Gin Rummy melds.
//
// A Catalog holds every legal run and set over the 52 cards as a bitstring.
// It is built once and only read afterwards, so a single Catalog can be shared
// by any number of concurrent games.
//
// # Basic Usage
//
//	hand, _ := cards.ParseHand("AC AH AS 2C 2H 2S 3C 3H 3S KD")
//	for _, set := range meld.Default().BestMeldSets(hand) {
//	    fmt.Println(set, meld.Deadwood(hand, set))
//	}
package meld

import (
	"strings"

	"github.com/lox/ginrummy/cards"
)

// Kind distinguishes runs from sets.
type Kind uint8

const (
	Run Kind = iota // same suit, consecutive ranks
	Set             // same rank, distinct suits
)

func (k Kind) String() string {
	switch k {
	case Run:
		return "run"
	case Set:
		return "set"
	default:
		return "unknown"
	}
}

// Meld is an ordered list of cards. Whether it is legal is decided by a Catalog.
type Meld []cards.Card

// Hand returns the bitstring of the meld.
func (m Meld) Hand() cards.Hand {
	return cards.NewHand(m...)
}

// Kind reports Set when every card shares a rank, Run otherwise.
func (m Meld) Kind() Kind {
	if len(m) == 0 {
		return Run
	}
	for _, c := range m[1:] {
		if c.Rank() != m[0].Rank() {
			return Run
		}
	}
	return Set
}

// Points returns the deadwood value the meld would have if left unmelded.
func (m Meld) Points() int {
	return m.Hand().Points()
}

// Clone returns an independent copy of the meld.
func (m Meld) Clone() Meld {
	return append(Meld(nil), m...)
}

func (m Meld) String() string {
	return "[" + cards.Format(m) + "]"
}

// MeldSet is a list of melds. Melds in a set returned by a Catalog are
// pairwise card-disjoint.
type MeldSet []Meld

// Hand returns the union of all meld bitstrings.
func (s MeldSet) Hand() cards.Hand {
	var h cards.Hand
	for _, m := range s {
		h |= m.Hand()
	}
	return h
}

// Disjoint reports whether no card appears in two melds of the set.
func (s MeldSet) Disjoint() bool {
	var seen cards.Hand
	for _, m := range s {
		for _, c := range m {
			if seen.Contains(c) {
				return false
			}
			seen = seen.Add(c)
		}
	}
	return true
}

// Clone deep-copies the set so callers can extend melds (e.g. by layoffs)
// without touching the original.
func (s MeldSet) Clone() MeldSet {
	if s == nil {
		return nil
	}
	out := make(MeldSet, len(s))
	for i, m := range s {
		out[i] = m.Clone()
	}
	return out
}

func (s MeldSet) String() string {
	parts := make([]string, len(s))
	for i, m := range s {
		parts[i] = m.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Deadwood returns the point value of the cards of hand not covered by melds.
// With no melds it is the value of the whole hand.
func Deadwood(hand cards.Hand, melds MeldSet) int {
	return (hand &^ melds.Hand()).Points()
}
