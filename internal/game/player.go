package game

import (
	"github.com/lox/ginrummy/cards"
	"github.com/lox/ginrummy/meld"
)

// Player is anything that can take a seat: a rule-based policy, a remote
// client behind an adapter, a scripted test double. The game calls these
// methods synchronously and waits for each answer; there is no timeout at
// this layer.
//
// Cards passed to a Player are copies; a Player may keep or modify them.
type Player interface {
	// StartGame is called at the start of every hand with the player's seat,
	// the seat that plays first and the ten dealt cards.
	StartGame(playerNum, startingPlayerNum int, dealt []cards.Card)

	// WillDrawFaceUpCard offers the top of the discard pile.
	WillDrawFaceUpCard(faceUp cards.Card) bool

	// ReportDraw tells every player who drew. drawn is cards.NoCard for an
	// observer of a face-down draw.
	ReportDraw(playerNum int, drawn cards.Card)

	// Discard asks the player who just drew for a card to discard. It must be
	// held and must not be the card just taken from the discard pile.
	Discard() cards.Card

	// ReportDiscard tells every player about a discard.
	ReportDiscard(playerNum int, discarded cards.Card)

	// FinalMelds asks the player whether to knock after discarding. After the
	// opponent has knocked it asks for the melds to lay down.
	FinalMelds() Declaration

	// ReportFinalMelds tells every player the melds a player laid down.
	ReportFinalMelds(playerNum int, melds meld.MeldSet)

	// ReportScores sends the cumulative scores, indexed by seat.
	ReportScores(scores [2]int)

	// ReportLayoff tells every player that playerNum laid card off onto
	// target, one of the knocker's melds (shown before the card is added).
	ReportLayoff(playerNum int, card cards.Card, target meld.Meld)

	// ReportFinalHand reveals a player's hand at the end of a hand.
	ReportFinalHand(playerNum int, hand []cards.Card)
}

// Declaration is a player's answer to FinalMelds: either keep playing or
// knock with a meld set (possibly empty).
type Declaration struct {
	knock bool
	melds meld.MeldSet
}

// Continue declines to knock.
func Continue() Declaration {
	return Declaration{}
}

// Knock ends play and lays down melds. An empty set is a legal knock when
// the whole hand is within the deadwood limit.
func Knock(melds meld.MeldSet) Declaration {
	return Declaration{knock: true, melds: melds}
}

// IsKnock reports whether the player knocked.
func (d Declaration) IsKnock() bool {
	return d.knock
}

// Melds returns the declared melds; nil for Continue.
func (d Declaration) Melds() meld.MeldSet {
	return d.melds
}

// BasePlayer implements every notification with a no-op so policies only
// need to implement the decisions they care about.
type BasePlayer struct{}

func (BasePlayer) StartGame(int, int, []cards.Card) {}
func (BasePlayer) ReportDraw(int, cards.Card) {}
func (BasePlayer) ReportDiscard(int, cards.Card) {}
func (BasePlayer) ReportFinalMelds(int, meld.MeldSet) {}
func (BasePlayer) ReportScores([2]int) {}
func (BasePlayer) ReportLayoff(int, cards.Card, meld.Meld) {}
func (BasePlayer) ReportFinalHand(int, []cards.Card) {}
