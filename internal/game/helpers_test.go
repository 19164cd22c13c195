package game

import (
	"io"
	rand "math/rand/v2"
	"slices"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/lox/ginrummy/cards"
	"github.com/lox/ginrummy/meld"
)

type drawReport struct {
	player int
	card   cards.Card
}

// scriptedPlayer discards whatever it drew unless told otherwise, never takes
// the face-up card, and knocks with its best melds as soon as it legally can.
type scriptedPlayer struct {
	BasePlayer

	seat            int
	hand            []cards.Card
	hands           int
	drawn           cards.Card
	opponentKnocked bool

	knockFrom   int // first hand number in which the player may knock
	takeFaceUp  func(faceUp cards.Card) bool
	discards    []cards.Card
	discardsFor map[int][]cards.Card // per hand number, used before discards
	declare     func(p *scriptedPlayer) Declaration

	offers      []cards.Card
	draws       []drawReport
	finalMelds  map[int]meld.MeldSet
	layoffs     []string
	finalHands  map[int][]cards.Card
	scores      [2]int
	scoreCalls  int
	starts      []int
	discardSeen []cards.Card
}

func (p *scriptedPlayer) StartGame(playerNum, startingPlayerNum int, dealt []cards.Card) {
	p.seat = playerNum
	p.hand = dealt
	p.hands++
	p.drawn = cards.NoCard
	p.opponentKnocked = false
	p.finalMelds = map[int]meld.MeldSet{}
	p.finalHands = map[int][]cards.Card{}
	p.starts = append(p.starts, startingPlayerNum)
}

func (p *scriptedPlayer) WillDrawFaceUpCard(faceUp cards.Card) bool {
	p.offers = append(p.offers, faceUp)
	if p.takeFaceUp != nil {
		return p.takeFaceUp(faceUp)
	}
	return false
}

func (p *scriptedPlayer) ReportDraw(playerNum int, drawn cards.Card) {
	p.draws = append(p.draws, drawReport{playerNum, drawn})
	if playerNum == p.seat {
		p.hand = append(p.hand, drawn)
		p.drawn = drawn
	}
}

func (p *scriptedPlayer) Discard() cards.Card {
	if q := p.discardsFor[p.hands]; len(q) > 0 {
		p.discardsFor[p.hands] = q[1:]
		return q[0]
	}
	if len(p.discards) > 0 {
		c := p.discards[0]
		p.discards = p.discards[1:]
		return c
	}
	return p.drawn
}

func (p *scriptedPlayer) ReportDiscard(playerNum int, discarded cards.Card) {
	p.discardSeen = append(p.discardSeen, discarded)
	if playerNum == p.seat {
		if i := slices.Index(p.hand, discarded); i >= 0 {
			p.hand = slices.Delete(p.hand, i, i+1)
		}
	}
}

func (p *scriptedPlayer) FinalMelds() Declaration {
	if p.declare != nil {
		return p.declare(p)
	}
	hand := cards.NewHand(p.hand...)
	best := meld.BestMeldSets(hand)[0]
	if p.opponentKnocked {
		return Knock(best)
	}
	if p.hands >= p.knockFrom && meld.Deadwood(hand, best) <= 10 {
		return Knock(best)
	}
	return Continue()
}

func (p *scriptedPlayer) ReportFinalMelds(playerNum int, melds meld.MeldSet) {
	p.finalMelds[playerNum] = melds
	if playerNum != p.seat {
		p.opponentKnocked = true
	}
}

func (p *scriptedPlayer) ReportLayoff(playerNum int, card cards.Card, target meld.Meld) {
	p.layoffs = append(p.layoffs, card.String()+" on "+target.String())
}

func (p *scriptedPlayer) ReportFinalHand(playerNum int, hand []cards.Card) {
	p.finalHands[playerNum] = hand
}

func (p *scriptedPlayer) ReportScores(scores [2]int) {
	p.scores = scores
	p.scoreCalls++
}

func mustCards(t *testing.T, s string) []cards.Card {
	t.Helper()
	cs, err := cards.ParseCards(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return cs
}

func mustMelds(t *testing.T, melds ...string) meld.MeldSet {
	t.Helper()
	out := make(meld.MeldSet, 0, len(melds))
	for _, m := range melds {
		out = append(out, meld.Meld(mustCards(t, m)))
	}
	return out
}

// stackedDeck deals seat0 and seat1 alternately, turns faceUp, then leaves
// stock on top of the remaining cards in id order.
func stackedDeck(t *testing.T, seat0, seat1, faceUp, stock string) *cards.Deck {
	t.Helper()
	h0, h1 := mustCards(t, seat0), mustCards(t, seat1)
	if len(h0) != 10 || len(h1) != 10 {
		t.Fatalf("hands must hold 10 cards, got %d and %d", len(h0), len(h1))
	}

	order := make([]cards.Card, 0, cards.NumCards)
	for i := range h0 {
		order = append(order, h0[i], h1[i])
	}
	order = append(order, mustCards(t, faceUp)...)
	order = append(order, mustCards(t, stock)...)
	used := cards.NewHand(order...)
	for _, c := range cards.Ordered() {
		if !used.Contains(c) {
			order = append(order, c)
		}
	}

	d, err := cards.NewStackedDeck(order)
	if err != nil {
		t.Fatalf("stacked deck: %v", err)
	}
	return d
}

// deckSequence serves one deck per hand, in order.
func deckSequence(decks ...*cards.Deck) DeckSource {
	next := 0
	return func(int64) *cards.Deck {
		d := decks[next]
		next++
		return d
	}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// newTestGame seats p0 and p1 for a single scored hand: goal of one point,
// seat 0 starts.
func newTestGame(p0, p1 Player, opts ...Option) *Game {
	rules := DefaultRules()
	rules.GoalScore = 1
	base := []Option{
		WithRules(rules),
		WithStartingPlayer(0),
		WithLogger(quietLogger()),
	}
	return New(rand.New(rand.NewPCG(1, 2)), p0, p1, append(base, opts...)...)
}
