// Package player provides reference Gin Rummy policies and adapters that
// implement game.Player.
package player

import (
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/ginrummy/cards"
	"github.com/lox/ginrummy/internal/game"
	"github.com/lox/ginrummy/meld"
)

// Strategy names accepted by New.
const (
	StrategySimple = "simple"
	StrategyRandom = "random"
)

// Strategies lists the names accepted by New.
func Strategies() []string {
	return []string{StrategySimple, StrategyRandom}
}

// Option configures a player created by New.
type Option func(*options)

type options struct {
	maxDeadwood int
}

// WithMaxDeadwood sets the most deadwood the player will knock with. It must
// match the rules the game is played with.
func WithMaxDeadwood(points int) Option {
	return func(o *options) {
		o.maxDeadwood = points
	}
}

// New creates a player for the named strategy.
func New(strategy string, rng *rand.Rand, logger *log.Logger, opts ...Option) (game.Player, error) {
	o := options{maxDeadwood: game.DefaultRules().MaxDeadwood}
	for _, opt := range opts {
		opt(&o)
	}

	switch strategy {
	case StrategySimple:
		p := NewSimple(rng, logger)
		p.maxDeadwood = o.maxDeadwood
		return p, nil
	case StrategyRandom:
		p := NewRandom(rng, logger)
		p.maxDeadwood = o.maxDeadwood
		return p, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want one of %v)", strategy, Strategies())
	}
}

// tracker mirrors the player's own hand from the game's notifications.
type tracker struct {
	game.BasePlayer

	seat            int
	hand            []cards.Card
	drawn           cards.Card
	faceUp          cards.Card
	opponentKnocked bool
}

func (t *tracker) StartGame(playerNum, _ int, dealt []cards.Card) {
	t.seat = playerNum
	t.hand = slices.Clone(dealt)
	t.drawn = cards.NoCard
	t.faceUp = cards.NoCard
	t.opponentKnocked = false
}

func (t *tracker) ReportDraw(playerNum int, drawn cards.Card) {
	if playerNum == t.seat {
		t.hand = append(t.hand, drawn)
		t.drawn = drawn
	}
}

func (t *tracker) ReportDiscard(playerNum int, discarded cards.Card) {
	if playerNum != t.seat {
		return
	}
	if i := slices.Index(t.hand, discarded); i >= 0 {
		t.hand = slices.Delete(t.hand, i, i+1)
	}
}

func (t *tracker) ReportFinalMelds(playerNum int, _ meld.MeldSet) {
	if playerNum != t.seat {
		t.opponentKnocked = true
	}
}

func (t *tracker) bitstring() cards.Hand {
	return cards.NewHand(t.hand...)
}

// tookFaceUp reports whether c is the card just taken from the discard pile.
func (t *tracker) tookFaceUp(c cards.Card) bool {
	return c == t.drawn && t.drawn == t.faceUp
}
