package player

import (
	rand "math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/ginrummy/cards"
	"github.com/lox/ginrummy/internal/game"
	"github.com/lox/ginrummy/meld"
)

// Simple plays the reference policy: take the face-up card only when it
// joins a meld, discard whatever leaves the least deadwood, and knock as soon
// as the rules allow. Ties are broken at random.
type Simple struct {
	tracker

	rng         *rand.Rand
	logger      *log.Logger
	maxDeadwood int
	// draw/discard pairs already played this hand, never repeated
	drawDiscards []cards.Hand
}

// NewSimple creates a Simple player.
func NewSimple(rng *rand.Rand, logger *log.Logger) *Simple {
	return &Simple{
		rng:         rng,
		logger:      logger.WithPrefix("simple"),
		maxDeadwood: game.DefaultRules().MaxDeadwood,
	}
}

func (s *Simple) StartGame(playerNum, startingPlayerNum int, dealt []cards.Card) {
	s.tracker.StartGame(playerNum, startingPlayerNum, dealt)
	s.drawDiscards = s.drawDiscards[:0]
}

func (s *Simple) WillDrawFaceUpCard(faceUp cards.Card) bool {
	s.faceUp = faceUp
	hand := s.bitstring().Add(faceUp)
	for _, m := range meld.Default().MeldBitstrings(hand) {
		if m.Contains(faceUp) {
			s.logger.Debug("Taking face-up card", "seat", s.seat, "card", faceUp)
			return true
		}
	}
	return false
}

func (s *Simple) Discard() cards.Card {
	candidates := s.discardCandidates(true)
	if len(candidates) == 0 {
		candidates = s.discardCandidates(false)
	}
	discard := candidates[s.rng.IntN(len(candidates))]
	s.drawDiscards = append(s.drawDiscards, cards.NewHand(s.drawn, discard))
	return discard
}

// discardCandidates returns the legal discards leaving the least deadwood.
func (s *Simple) discardCandidates(avoidRepeats bool) []cards.Card {
	held := s.bitstring()
	lowest := -1
	var candidates []cards.Card
	for _, c := range s.hand {
		if s.tookFaceUp(c) {
			continue
		}
		if avoidRepeats && slices.Contains(s.drawDiscards, cards.NewHand(s.drawn, c)) {
			continue
		}
		deadwood := meld.MinDeadwood(held.Remove(c))
		switch {
		case lowest < 0 || deadwood < lowest:
			lowest = deadwood
			candidates = append(candidates[:0], c)
		case deadwood == lowest:
			candidates = append(candidates, c)
		}
	}
	return candidates
}

func (s *Simple) FinalMelds() game.Declaration {
	hand := s.bitstring()
	best := meld.BestMeldSets(hand)
	melds := best[s.rng.IntN(len(best))]
	if !s.opponentKnocked && meld.Deadwood(hand, melds) > s.maxDeadwood {
		return game.Continue()
	}
	return game.Knock(melds)
}
