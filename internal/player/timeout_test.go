package player

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/ginrummy/cards"
	"github.com/lox/ginrummy/internal/game"
	"github.com/lox/ginrummy/internal/randutil"
)

// stuckPlayer never answers a decision until the test ends.
type stuckPlayer struct {
	game.BasePlayer
	release chan struct{}
	calls   atomic.Int32
}

func newStuckPlayer(t *testing.T) *stuckPlayer {
	p := &stuckPlayer{release: make(chan struct{})}
	t.Cleanup(func() { close(p.release) })
	return p
}

func (p *stuckPlayer) WillDrawFaceUpCard(cards.Card) bool {
	p.calls.Add(1)
	<-p.release
	return true
}

func (p *stuckPlayer) Discard() cards.Card {
	<-p.release
	return cards.MustParseCard("AC")
}

func (p *stuckPlayer) FinalMelds() game.Declaration {
	<-p.release
	return game.Knock(nil)
}

func TestTimeoutPassesThroughFastAnswers(t *testing.T) {
	t.Parallel()

	mockClock := quartz.NewMock(t)
	inner := NewSimple(randutil.New(1), quietLogger())
	p := NewTimeout(inner, time.Second, mockClock, quietLogger())

	p.StartGame(0, 0, mustCards(t, "AC 2C 3C 4H 5H 6H 7S 8S 9S KD"))
	assert.True(t, p.WillDrawFaceUpCard(cards.MustParseCard("TS")))
	p.ReportDraw(0, cards.MustParseCard("TS"))
	assert.Equal(t, cards.MustParseCard("KD"), p.Discard())
	p.ReportDiscard(0, cards.MustParseCard("KD"))

	d := p.FinalMelds()
	require.True(t, d.IsKnock())
	assert.Len(t, d.Melds(), 3)
	assert.False(t, p.Expired())
}

func TestTimeoutExpiresSlowPlayer(t *testing.T) {
	t.Parallel()

	inner := newStuckPlayer(t)
	p := NewTimeout(inner, 10*time.Millisecond, quartz.NewReal(), quietLogger())

	assert.False(t, p.WillDrawFaceUpCard(cards.MustParseCard("TS")), "falls back to a face-down draw")
	assert.True(t, p.Expired())

	// expired players answer at once without asking the wrapped player
	assert.Equal(t, cards.NoCard, p.Discard())
	assert.False(t, p.FinalMelds().IsKnock())
	assert.False(t, p.WillDrawFaceUpCard(cards.MustParseCard("TS")))
	assert.Equal(t, int32(1), inner.calls.Load())
}

func TestTimeoutForfeitsGame(t *testing.T) {
	t.Parallel()

	// seat 1 gets 2C 4C ... 7H from the unshuffled deck and no meld with 8H
	ordered, err := cards.NewStackedDeck(cards.Ordered())
	require.NoError(t, err)

	slow := NewTimeout(newStuckPlayer(t), 10*time.Millisecond, quartz.NewReal(), quietLogger())
	g := game.New(randutil.New(1), slow, NewSimple(randutil.New(2), quietLogger()),
		game.WithLogger(quietLogger()),
		game.WithStartingPlayer(0),
		game.WithDeckSource(func(int64) *cards.Deck { return ordered }),
	)

	res := g.Run()

	require.NotNil(t, res.Forfeit)
	assert.Equal(t, game.Forfeit{Player: 0, Reason: game.IllegalDiscard}, *res.Forfeit)
	assert.Equal(t, 1, res.Winner)
	assert.True(t, slow.Expired())
}
