package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/ginrummy/internal/game"
)

// GameResult is one finished game seen from the tracked player's seat.
type GameResult struct {
	Seed   int64 // RNG seed for this game (for replay)
	Seat   int   // tracked player's seat (0 or 1)
	Result game.Result
}

// SeatStats tracks games played from one seat
type SeatStats struct {
	Games int
	Wins  int
}

// Statistics accumulates match results for one tracked player against its
// opponent. Margins are in game points: tracked score minus opponent score.
type Statistics struct {
	Games      int
	Wins       int
	SumMargin  float64
	SumMargin2 float64   // Sum of squares for variance calculation
	Margins    []float64 // Store all margins for median/percentile calculation

	// Hand analytics across both players
	Hands     int
	Turns     int
	Knocks    int // Hands won by a knock with deadwood
	Gins      int
	Undercuts int
	Cancelled int
	Layoffs   int

	// Hands scored by the tracked player, by outcome
	KnocksWon    int
	GinsWon      int
	UndercutsWon int

	// Forfeits end the game, so they are counted per game
	Forfeits    int
	OwnForfeits int // Forfeits committed by the tracked player

	Seats [2]SeatStats
}

// Add incorporates a finished game into the statistics
func (s *Statistics) Add(r GameResult) {
	res := r.Result
	won := res.Winner == r.Seat
	margin := float64(res.Scores[r.Seat] - res.Scores[1-r.Seat])

	s.Games++
	s.SumMargin += margin
	s.SumMargin2 += margin * margin
	s.Margins = append(s.Margins, margin)
	s.Seats[r.Seat].Games++
	if won {
		s.Wins++
		s.Seats[r.Seat].Wins++
	}

	if res.Forfeit != nil {
		s.Forfeits++
		if res.Forfeit.Player == r.Seat {
			s.OwnForfeits++
		}
	}

	for _, h := range res.Hands {
		s.Hands++
		s.Turns += h.Turns
		s.Layoffs += h.Layoffs
		mine := h.Scorer == r.Seat

		switch h.Outcome {
		case game.KnockWin:
			s.Knocks++
			if mine {
				s.KnocksWon++
			}
		case game.GinWin:
			s.Gins++
			if mine {
				s.GinsWon++
			}
		case game.Undercut:
			s.Undercuts++
			if mine {
				s.UndercutsWon++
			}
		case game.Cancelled:
			s.Cancelled++
		}
	}
}

// WinRate returns the fraction of games won by the tracked player
func (s *Statistics) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// WinRateStdError returns the binomial standard error of the win rate
func (s *Statistics) WinRateStdError() float64 {
	if s.Games == 0 {
		return 0
	}
	p := s.WinRate()
	return math.Sqrt(p * (1 - p) / float64(s.Games))
}

// WinRateCI95 returns the 95% confidence interval for the win rate
func (s *Statistics) WinRateCI95() (float64, float64) {
	p := s.WinRate()
	margin := 1.96 * s.WinRateStdError()
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// SeatWinRate returns the win rate from one seat
func (s *Statistics) SeatWinRate(seat int) float64 {
	st := s.Seats[seat]
	if st.Games == 0 {
		return 0
	}
	return float64(st.Wins) / float64(st.Games)
}

// Mean returns the arithmetic mean point margin per game
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumMargin / float64(s.Games)
}

// Variance returns the sample variance of the point margins
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumMargin2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of the point margins
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean margin
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean margin
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median point margin
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the margin at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Margins) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Margins))
	copy(sorted, s.Margins)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// HandsPerGame returns the average number of hands dealt per game
func (s *Statistics) HandsPerGame() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Hands) / float64(s.Games)
}

// Validate performs consistency checks on the accumulated data
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}

	if len(s.Margins) != s.Games {
		return fmt.Errorf("margins length (%d) does not match games count (%d)",
			len(s.Margins), s.Games)
	}

	if s.Wins > s.Games {
		return fmt.Errorf("wins (%d) exceed games (%d)", s.Wins, s.Games)
	}

	if seats := s.Seats[0].Games + s.Seats[1].Games; seats != s.Games {
		return fmt.Errorf("seat games total (%d) does not match games (%d)", seats, s.Games)
	}
	if seatWins := s.Seats[0].Wins + s.Seats[1].Wins; seatWins != s.Wins {
		return fmt.Errorf("seat wins total (%d) does not match wins (%d)", seatWins, s.Wins)
	}

	// every hand ends scored, cancelled or in the forfeit that ends its game
	if counted := s.Knocks + s.Gins + s.Undercuts + s.Cancelled + s.Forfeits; counted != s.Hands {
		return fmt.Errorf("hand outcomes (%d) do not match hands (%d)", counted, s.Hands)
	}

	if s.KnocksWon > s.Knocks || s.GinsWon > s.Gins || s.UndercutsWon > s.Undercuts {
		return fmt.Errorf("scored hands exceed hand outcomes")
	}

	if s.OwnForfeits > s.Forfeits {
		return fmt.Errorf("own forfeits (%d) exceed forfeits (%d)", s.OwnForfeits, s.Forfeits)
	}

	return nil
}
