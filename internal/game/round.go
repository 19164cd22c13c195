package game

import (
	"slices"

	"github.com/lox/ginrummy/cards"
	"github.com/lox/ginrummy/meld"
)

// round drives one hand: deal, alternate draw/discard turns until a knock or
// until the stock is down to two cards, then validate, lay off and score.
type round struct {
	g        *Game
	number   int
	starter  int
	scores   *[2]int
	deck     *cards.Deck
	hands    [2][]cards.Card
	discards []cards.Card
}

func newRound(g *Game, number, starter int, scores *[2]int) *round {
	return &round{
		g:       g,
		number:  number,
		starter: starter,
		scores:  scores,
	}
}

func (r *round) narrate(msg string, keyvals ...interface{}) {
	r.g.narrate(msg, append([]interface{}{"hand", r.number}, keyvals...)...)
}

func (r *round) draw() cards.Card {
	c, ok := r.deck.Draw()
	if !ok {
		panic("deck exhausted")
	}
	return c
}

func (r *round) deal() {
	seed := r.g.rng.Int64()
	r.deck = r.g.decks(seed)

	size := r.g.rules.HandSize
	r.hands[0] = make([]cards.Card, 0, size+1)
	r.hands[1] = make([]cards.Card, 0, size+1)
	for i := 0; i < 2*size; i++ {
		r.hands[i%2] = append(r.hands[i%2], r.draw())
	}

	for seat, p := range r.g.players {
		p.StartGame(seat, r.starter, slices.Clone(r.hands[seat]))
		r.narrate("Dealt", "player", seat, "cards", cards.Format(r.hands[seat]))
	}
	r.narrate("Starts", "player", r.starter, "seed", seed)

	r.discards = []cards.Card{r.draw()}
	r.narrate("Initial face up card", "card", r.discards[0])
}

func (r *round) holds(seat int, c cards.Card) bool {
	return slices.Contains(r.hands[seat], c)
}

func (r *round) remove(seat int, c cards.Card) {
	i := slices.Index(r.hands[seat], c)
	r.hands[seat] = slices.Delete(r.hands[seat], i, i+1)
}

func (r *round) topDiscard() cards.Card {
	return r.discards[len(r.discards)-1]
}

func (r *round) popDiscard() cards.Card {
	c := r.topDiscard()
	r.discards = r.discards[:len(r.discards)-1]
	return c
}

// play runs the hand. A non-nil Forfeit means the game is over.
func (r *round) play() (HandResult, *Forfeit) {
	result := HandResult{
		Number:         r.number,
		StartingPlayer: r.starter,
		Knocker:        -1,
		Scorer:         -1,
	}

	r.deal()
	players := r.g.players
	firstFaceUp := r.topDiscard()

	cur := r.starter
	turn := 0
	var knock Declaration

	for r.deck.Remaining() > 2 {
		faceUp := r.topDiscard()
		openingCard := faceUp == firstFaceUp

		// The third offer of the untouched first face-up card is declined
		// automatically: the first player must draw face down.
		drawFaceUp := false
		if turn != 2 || !openingCard {
			drawFaceUp = players[cur].WillDrawFaceUpCard(faceUp)
		}

		if !drawFaceUp && turn < 2 && openingCard {
			// declining the opening card passes the turn without a draw
			r.narrate("Declines", "player", cur, "card", faceUp)
		} else {
			var drawn cards.Card
			if drawFaceUp {
				drawn = r.popDiscard()
			} else {
				drawn = r.draw()
			}
			for seat, p := range players {
				shown := cards.NoCard
				if seat == cur || drawFaceUp {
					shown = drawn
				}
				p.ReportDraw(cur, shown)
			}
			r.hands[cur] = append(r.hands[cur], drawn)
			r.narrate("Draws", "player", cur, "card", drawn, "faceUp", drawFaceUp)

			discard := players[cur].Discard()
			if !r.holds(cur, discard) || discard == faceUp {
				r.narrate("Illegal discard", "player", cur, "card", discard)
				return r.forfeit(result, cur, IllegalDiscard)
			}
			r.remove(cur, discard)
			for _, p := range players {
				p.ReportDiscard(cur, discard)
			}
			r.discards = append(r.discards, discard)
			r.narrate("Discards", "player", cur, "card", discard)
			if r.g.verbose {
				r.narrateHand(cur)
			}

			knock = players[cur].FinalMelds()
			if knock.IsKnock() {
				break
			}
		}

		turn++
		cur = 1 - cur
	}
	if !knock.IsKnock() {
		result.Turns = turn
		r.narrate("Draw pile reduced to two cards without knocking, hand cancelled")
		r.finish()
		return result, nil
	}

	result.Turns = turn + 1
	return r.settle(result, cur, knock.Melds())
}

// settle validates the knock, collects the opponent's melds, applies layoffs
// and scores the hand.
func (r *round) settle(result HandResult, knocker int, knockMelds meld.MeldSet) (HandResult, *Forfeit) {
	players := r.g.players
	rules := r.g.rules
	opponent := 1 - knocker
	result.Knocker = knocker

	unmelded, ok := r.checkMelds(knocker, knockMelds)
	if !ok {
		r.narrate("Illegal knock", "player", knocker, "melds", knockMelds)
		return r.forfeit(result, knocker, IllegalKnockMelds)
	}
	knockDeadwood := unmelded.Points()
	result.KnockerDeadwood = knockDeadwood
	if knockDeadwood > rules.MaxDeadwood {
		r.narrate("Knock over deadwood limit", "player", knocker, "deadwood", knockDeadwood)
		return r.forfeit(result, knocker, ExcessDeadwood)
	}

	for _, p := range players {
		p.ReportFinalMelds(knocker, knockMelds.Clone())
	}
	if knockDeadwood > 0 {
		r.narrate("Knocks", "player", knocker, "melds", knockMelds, "deadwood", knockDeadwood, "unmelded", unmelded)
	} else {
		r.narrate("Goes gin", "player", knocker, "melds", knockMelds)
	}

	// an opponent who declines to declare lays down nothing
	opponentMelds := players[opponent].FinalMelds().Melds()
	for _, p := range players {
		p.ReportFinalMelds(opponent, opponentMelds.Clone())
	}
	opponentUnmelded, ok := r.checkMelds(opponent, opponentMelds)
	if !ok {
		r.narrate("Illegal melds", "player", opponent, "melds", opponentMelds)
		return r.forfeit(result, opponent, IllegalOpponentMelds)
	}
	r.narrate("Melds", "player", opponent, "melds", opponentMelds)

	loose := opponentUnmelded.Cards()
	if knockDeadwood > 0 {
		targets := knockMelds.Clone()
		loose = layOff(r.g.catalog, targets, loose, func(card cards.Card, target meld.Meld) {
			result.Layoffs++
			r.narrate("Lays off", "player", opponent, "card", card, "meld", target)
			for _, p := range players {
				p.ReportLayoff(opponent, card, target.Clone())
			}
		})
	}
	opponentDeadwood := cards.NewHand(loose...).Points()
	result.OpponentDeadwood = opponentDeadwood
	r.narrate("Opponent deadwood", "player", opponent, "deadwood", opponentDeadwood, "cards", cards.Format(loose))

	outcome, scorer, points := rules.score(knocker, knockDeadwood, opponentDeadwood)
	r.scores[scorer] += points
	result.Outcome = outcome
	result.Scorer = scorer
	result.Points = points
	r.narrate("Scores", "player", scorer, "outcome", outcome, "points", points)

	r.finish()
	return result, nil
}

// checkMelds verifies that every meld is legal and drawn from seat's hand
// without reusing a card, returning the cards left unmelded.
func (r *round) checkMelds(seat int, melds meld.MeldSet) (cards.Hand, bool) {
	unmelded := cards.NewHand(r.hands[seat]...)
	for _, m := range melds {
		if !r.g.catalog.IsMeld(m) || !unmelded.ContainsAll(m.Hand()) {
			return unmelded, false
		}
		unmelded &^= m.Hand()
	}
	return unmelded, true
}

func (r *round) forfeit(result HandResult, seat int, reason ForfeitReason) (HandResult, *Forfeit) {
	result.Outcome = Forfeited
	return result, &Forfeit{Player: seat, Reason: reason}
}

// finish reveals both hands and the scores to both players.
func (r *round) finish() {
	for _, p := range r.g.players {
		for seat := range r.hands {
			p.ReportFinalHand(seat, slices.Clone(r.hands[seat]))
		}
	}
	r.narrate("Score", "player0", r.scores[0], "player1", r.scores[1])
	for _, p := range r.g.players {
		p.ReportScores(*r.scores)
	}
}

func (r *round) narrateHand(seat int) {
	hand := cards.NewHand(r.hands[seat]...)
	best := r.g.catalog.BestMeldSets(hand)
	r.narrate("Holds", "player", seat, "melds", best[0], "deadwood", meld.Deadwood(hand, best[0]),
		"unmelded", hand&^best[0].Hand())
}
