package game

import (
	"slices"

	"github.com/lox/ginrummy/cards"
	"github.com/lox/ginrummy/meld"
)

// score decides a knocked hand from the knocker's deadwood and the
// opponent's deadwood after layoffs. It returns the outcome, the seat that
// scores and the points awarded.
func (r Rules) score(knocker, knockDeadwood, opponentDeadwood int) (Outcome, int, int) {
	switch {
	case knockDeadwood == 0:
		return GinWin, knocker, r.GinBonus + opponentDeadwood
	case knockDeadwood < opponentDeadwood:
		return KnockWin, knocker, opponentDeadwood - knockDeadwood
	default:
		return Undercut, 1 - knocker, r.UndercutBonus + knockDeadwood - opponentDeadwood
	}
}

// layOff greedily attaches loose cards to targets until nothing more fits.
// Cards are tried in ascending order against melds in declared order; after
// every layoff the scan starts over, since an extended run may accept a card
// that was rejected before. report sees each target before the card is added.
// targets is extended in place; the cards still loose are returned.
func layOff(c *meld.Catalog, targets meld.MeldSet, loose []cards.Card, report func(cards.Card, meld.Meld)) []cards.Card {
	loose = slices.Clone(loose)
	slices.Sort(loose)

	for {
		placed := false
	scan:
		for i, card := range loose {
			for j, m := range targets {
				if !c.CanLayOff(m, card) {
					continue
				}
				if report != nil {
					report(card, m)
				}
				targets[j] = append(m.Clone(), card)
				loose = slices.Delete(loose, i, i+1)
				placed = true
				break scan
			}
		}
		if !placed {
			return loose
		}
	}
}
