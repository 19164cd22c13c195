package game

import "fmt"

// Outcome is how a hand ended.
type Outcome uint8

const (
	Cancelled Outcome = iota // stock ran down to two cards without a knock
	KnockWin                 // knocker had less deadwood than the opponent
	GinWin                   // knocker had no deadwood
	Undercut                 // opponent had no more deadwood than the knocker
	Forfeited                // a player broke the rules and lost the game
)

func (o Outcome) String() string {
	switch o {
	case Cancelled:
		return "cancelled"
	case KnockWin:
		return "knock"
	case GinWin:
		return "gin"
	case Undercut:
		return "undercut"
	case Forfeited:
		return "forfeit"
	default:
		return "unknown"
	}
}

// ForfeitReason names the rule a forfeiting player broke.
type ForfeitReason uint8

const (
	IllegalDiscard ForfeitReason = iota + 1
	IllegalKnockMelds
	ExcessDeadwood
	IllegalOpponentMelds
)

func (r ForfeitReason) String() string {
	switch r {
	case IllegalDiscard:
		return "illegal discard"
	case IllegalKnockMelds:
		return "illegal knock melds"
	case ExcessDeadwood:
		return "knocked with too much deadwood"
	case IllegalOpponentMelds:
		return "illegal melds after knock"
	default:
		return "unknown"
	}
}

// Forfeit records a rule violation that ended the game.
type Forfeit struct {
	Player int
	Reason ForfeitReason
}

func (f Forfeit) String() string {
	return fmt.Sprintf("player %d forfeits: %s", f.Player, f.Reason)
}

// HandResult summarises one hand.
type HandResult struct {
	Number           int
	StartingPlayer   int
	Outcome          Outcome
	Turns            int
	Knocker          int // -1 when nobody knocked
	KnockerDeadwood  int
	OpponentDeadwood int // after layoffs
	Layoffs          int
	Scorer           int // -1 when nobody scored
	Points           int
}

// Result is the outcome of a whole game.
type Result struct {
	Winner  int
	Scores  [2]int
	Hands   []HandResult
	Forfeit *Forfeit
}

// Loser returns the seat that did not win.
func (r Result) Loser() int {
	return 1 - r.Winner
}
