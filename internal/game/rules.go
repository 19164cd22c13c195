package game

import "fmt"

// Rules holds the scoring constants. North American scoring is the default.
type Rules struct {
	GoalScore     int // first to reach this wins the game
	GinBonus      int
	UndercutBonus int
	MaxDeadwood   int // most deadwood a player may knock with
	HandSize      int
}

// DefaultRules returns the standard rules: 100 to win, 25 point gin and
// undercut bonuses, knock on 10 or less.
func DefaultRules() Rules {
	return Rules{
		GoalScore:     100,
		GinBonus:      25,
		UndercutBonus: 25,
		MaxDeadwood:   10,
		HandSize:      10,
	}
}

// Validate checks that the rules describe a playable game.
func (r Rules) Validate() error {
	if r.GoalScore <= 0 {
		return fmt.Errorf("goal score must be positive, got %d", r.GoalScore)
	}
	if r.GinBonus < 0 || r.UndercutBonus < 0 {
		return fmt.Errorf("bonuses must not be negative")
	}
	if r.MaxDeadwood < 0 {
		return fmt.Errorf("max deadwood must not be negative, got %d", r.MaxDeadwood)
	}
	// two hands plus the first face-up card plus the two cards that end a hand
	if r.HandSize < 1 || 2*r.HandSize+3 > 52 {
		return fmt.Errorf("hand size %d does not fit in one deck", r.HandSize)
	}
	return nil
}
