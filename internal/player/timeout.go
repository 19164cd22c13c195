package player

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/ginrummy/cards"
	"github.com/lox/ginrummy/internal/game"
	"github.com/lox/ginrummy/meld"
)

// Timeout bounds every call into a wrapped player. A player that misses a
// deadline is expired for the rest of the game: from then on it declines the
// face-up card, discards cards.NoCard (which forfeits) and never melds, and
// notifications are no longer delivered to it.
type Timeout struct {
	inner   game.Player
	clock   quartz.Clock
	limit   time.Duration
	logger  *log.Logger
	expired bool
}

// NewTimeout wraps inner so each call must return within limit on clock.
func NewTimeout(inner game.Player, limit time.Duration, clock quartz.Clock, logger *log.Logger) *Timeout {
	return &Timeout{
		inner:  inner,
		clock:  clock,
		limit:  limit,
		logger: logger.WithPrefix("timeout"),
	}
}

// Expired reports whether the wrapped player has missed a deadline.
func (t *Timeout) Expired() bool {
	return t.expired
}

// within runs fn on its own goroutine and returns its answer, or fallback if
// the clock fires first.
func within[T any](t *Timeout, call string, fallback T, fn func() T) T {
	if t.expired {
		return fallback
	}

	answer := make(chan T, 1)
	go func() {
		answer <- fn()
	}()

	timeoutFired := make(chan struct{})
	timer := t.clock.AfterFunc(t.limit, func() {
		close(timeoutFired)
	}, "player", call)
	defer timer.Stop()

	select {
	case v := <-answer:
		return v
	case <-timeoutFired:
		t.expired = true
		t.logger.Warn("Player timed out", "call", call, "limit", t.limit)
		return fallback
	}
}

func (t *Timeout) notify(call string, fn func()) {
	within(t, call, struct{}{}, func() struct{} {
		fn()
		return struct{}{}
	})
}

func (t *Timeout) StartGame(playerNum, startingPlayerNum int, dealt []cards.Card) {
	t.notify("StartGame", func() { t.inner.StartGame(playerNum, startingPlayerNum, dealt) })
}

func (t *Timeout) WillDrawFaceUpCard(faceUp cards.Card) bool {
	return within(t, "WillDrawFaceUpCard", false, func() bool {
		return t.inner.WillDrawFaceUpCard(faceUp)
	})
}

func (t *Timeout) ReportDraw(playerNum int, drawn cards.Card) {
	t.notify("ReportDraw", func() { t.inner.ReportDraw(playerNum, drawn) })
}

func (t *Timeout) Discard() cards.Card {
	return within(t, "Discard", cards.NoCard, t.inner.Discard)
}

func (t *Timeout) ReportDiscard(playerNum int, discarded cards.Card) {
	t.notify("ReportDiscard", func() { t.inner.ReportDiscard(playerNum, discarded) })
}

func (t *Timeout) FinalMelds() game.Declaration {
	return within(t, "FinalMelds", game.Continue(), t.inner.FinalMelds)
}

func (t *Timeout) ReportFinalMelds(playerNum int, melds meld.MeldSet) {
	t.notify("ReportFinalMelds", func() { t.inner.ReportFinalMelds(playerNum, melds) })
}

func (t *Timeout) ReportScores(scores [2]int) {
	t.notify("ReportScores", func() { t.inner.ReportScores(scores) })
}

func (t *Timeout) ReportLayoff(playerNum int, card cards.Card, target meld.Meld) {
	t.notify("ReportLayoff", func() { t.inner.ReportLayoff(playerNum, card, target) })
}

func (t *Timeout) ReportFinalHand(playerNum int, hand []cards.Card) {
	t.notify("ReportFinalHand", func() { t.inner.ReportFinalHand(playerNum, hand) })
}
