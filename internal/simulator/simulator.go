// Package simulator plays batches of independent games in parallel and
// collects match statistics for the first configured player.
package simulator

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/ginrummy/internal/fileutil"
	"github.com/lox/ginrummy/internal/game"
	"github.com/lox/ginrummy/internal/gameid"
	"github.com/lox/ginrummy/internal/player"
	"github.com/lox/ginrummy/internal/randutil"
	"github.com/lox/ginrummy/internal/statistics"
)

// Seat configures one side of the match.
type Seat struct {
	Label    string
	Strategy string
}

// Config holds configuration for running simulations
type Config struct {
	Games   int
	Players [2]Seat // statistics are kept for Players[0]
	Seed    int64
	Workers int
	// Timeout bounds a whole game; exceeding it aborts the run as a hang.
	Timeout time.Duration
	// DecisionTimeout bounds each player call; a slow player forfeits.
	DecisionTimeout time.Duration
	// Duplicate replays every seed with the seats swapped.
	Duplicate bool
	Rules     game.Rules
	Clock     quartz.Clock
	Logger    *log.Logger
}

// Record is one finished game.
type Record struct {
	ID     string
	Seed   int64
	Seats  [2]string // labels by seat
	Seat   int       // seat of the tracked player
	Result game.Result
}

// Report is the outcome of a simulation run.
type Report struct {
	Stats   *statistics.Statistics
	Records []Record
}

// Simulator runs Gin Rummy matches
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.Rules == (game.Rules{}) {
		config.Rules = game.DefaultRules()
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return &Simulator{config: config, logger: config.Logger.WithPrefix("simulator")}
}

type job struct {
	seed int64
	seat int // tracked player's seat
}

func (s *Simulator) jobs() []job {
	jobs := make([]job, 0, s.config.Games*2)
	for i := 0; i < s.config.Games; i++ {
		seed := s.config.Seed + int64(i)
		if s.config.Duplicate {
			jobs = append(jobs, job{seed, 0}, job{seed, 1})
			continue
		}
		// alternate seats to cancel out any seat bias
		jobs = append(jobs, job{seed, i % 2})
	}
	return jobs
}

// Run plays every game and returns the collected records and statistics.
// Records are in job order regardless of the number of workers.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	for _, p := range s.config.Players {
		if !slices.Contains(player.Strategies(), p.Strategy) {
			return nil, fmt.Errorf("player %q: unknown strategy %q", p.Label, p.Strategy)
		}
	}
	if err := s.config.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	jobs := s.jobs()
	records := make([]Record, len(jobs))
	ids := gameid.NewGenerator(randutil.New(s.config.Seed), func() time.Time { return s.config.Clock.Now() })
	for i := range records {
		records[i].ID = ids.Generate()
	}

	s.logger.Info("Starting simulation",
		"games", len(jobs),
		"workers", s.config.Workers,
		"duplicate", s.config.Duplicate,
		"seed", s.config.Seed)
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := s.playWithTimeout(ctx, j)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i, j.seed, err)
			}
			rec := &records[i]
			rec.Seed = j.seed
			rec.Seat = j.seat
			rec.Seats[j.seat] = s.config.Players[0].Label
			rec.Seats[1-j.seat] = s.config.Players[1].Label
			rec.Result = res
			s.logger.Debug("Game finished", "id", rec.ID, "seed", j.seed, "winner", rec.Seats[res.Winner], "scores", res.Scores)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, rec := range records {
		stats.Add(statistics.GameResult{Seed: rec.Seed, Seat: rec.Seat, Result: rec.Result})
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Info("Simulation complete",
		"games", stats.Games,
		"winRate", stats.WinRate(),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return &Report{Stats: stats, Records: records}, nil
}

// playWithTimeout runs a single game with hang protection
func (s *Simulator) playWithTimeout(ctx context.Context, j job) (game.Result, error) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	resultCh := make(chan game.Result, 1)
	go func() {
		resultCh <- s.play(j)
	}()

	select {
	case res := <-resultCh:
		return res, nil
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			return game.Result{}, fmt.Errorf("game timed out after %v (seat %d)", s.config.Timeout, j.seat)
		}
		return game.Result{}, ctx.Err()
	}
}

// play runs one game. The game RNG depends only on the seed, so a duplicate
// pair sees the same deals with the seats swapped.
func (s *Simulator) play(j job) game.Result {
	playerRng := randutil.New(^j.seed)
	var seats [2]game.Player
	for i, cfg := range s.config.Players {
		seat := i
		if j.seat == 1 {
			seat = 1 - i
		}
		// strategies were checked in Run
		p, _ := player.New(cfg.Strategy, randutil.Fork(playerRng), s.logger.With("label", cfg.Label),
			player.WithMaxDeadwood(s.config.Rules.MaxDeadwood))
		if s.config.DecisionTimeout > 0 {
			p = player.NewTimeout(p, s.config.DecisionTimeout, s.config.Clock, s.logger)
		}
		seats[seat] = p
	}

	g := game.New(randutil.New(j.seed), seats[0], seats[1],
		game.WithRules(s.config.Rules),
		game.WithLogger(s.logger),
	)
	return g.Run()
}

var csvHeader = []string{
	"game_id", "seed", "seat0", "seat1", "winner", "score0", "score1", "hands", "forfeit",
}

// WriteCSV writes one row per game.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range records {
		res := rec.Result
		forfeit := ""
		if res.Forfeit != nil {
			forfeit = res.Forfeit.String()
		}
		row := []string{
			rec.ID,
			strconv.FormatInt(rec.Seed, 10),
			rec.Seats[0],
			rec.Seats[1],
			rec.Seats[res.Winner],
			strconv.Itoa(res.Scores[0]),
			strconv.Itoa(res.Scores[1]),
			strconv.Itoa(len(res.Hands)),
			forfeit,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes records to path atomically.
func SaveCSV(path string, records []Record) error {
	if err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return WriteCSV(w, records)
	}); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
