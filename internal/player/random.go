package player

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/ginrummy/cards"
	"github.com/lox/ginrummy/internal/game"
	"github.com/lox/ginrummy/meld"
)

// Random takes the face-up card on a coin flip, discards any legal card and
// knocks whenever its best deadwood allows.
type Random struct {
	tracker

	rng         *rand.Rand
	logger      *log.Logger
	maxDeadwood int
}

// NewRandom creates a Random player.
func NewRandom(rng *rand.Rand, logger *log.Logger) *Random {
	return &Random{
		rng:         rng,
		logger:      logger.WithPrefix("random"),
		maxDeadwood: game.DefaultRules().MaxDeadwood,
	}
}

func (r *Random) WillDrawFaceUpCard(faceUp cards.Card) bool {
	r.faceUp = faceUp
	return r.rng.IntN(2) == 0
}

func (r *Random) Discard() cards.Card {
	legal := make([]cards.Card, 0, len(r.hand))
	for _, c := range r.hand {
		if !r.tookFaceUp(c) {
			legal = append(legal, c)
		}
	}
	c := legal[r.rng.IntN(len(legal))]
	r.logger.Debug("Random discard", "seat", r.seat, "card", c)
	return c
}

func (r *Random) FinalMelds() game.Declaration {
	hand := r.bitstring()
	best := meld.BestMeldSets(hand)
	melds := best[r.rng.IntN(len(best))]
	if !r.opponentKnocked && meld.Deadwood(hand, melds) > r.maxDeadwood {
		return game.Continue()
	}
	return game.Knock(melds)
}
