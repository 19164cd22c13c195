package game

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/ginrummy/meld"
)

// Game plays hands between two players until one reaches the goal score.
// A Game owns its hands, discard pile and scores; only the meld catalog is
// shared, so separate Games may run in parallel.
type Game struct {
	players [2]Player
	rules   Rules
	rng     *rand.Rand
	catalog *meld.Catalog
	logger  *log.Logger
	decks   DeckSource
	starter int
	verbose bool
}

// New creates a game between p0 (seat 0) and p1 (seat 1).
// The RNG is required: it seeds every shuffle and, unless WithStartingPlayer
// is given, picks who starts.
func New(rng *rand.Rand, p0, p1 Player, opts ...Option) *Game {
	if rng == nil {
		panic("rng is required for game creation")
	}
	if p0 == nil || p1 == nil {
		panic("two players are required")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.rules.Validate(); err != nil {
		panic("invalid rules: " + err.Error())
	}
	if cfg.startingPlayer < -1 || cfg.startingPlayer > 1 {
		panic("starting player out of range")
	}

	return &Game{
		players: [2]Player{p0, p1},
		rules:   cfg.rules,
		rng:     rng,
		catalog: cfg.catalog,
		logger:  cfg.logger.WithPrefix("gin"),
		decks:   cfg.decks,
		starter: cfg.startingPlayer,
		verbose: cfg.verbose,
	}
}

// SetVerbose toggles narration of every draw, discard, knock and score at
// info level. When off, the same lines are logged at debug level.
func (g *Game) SetVerbose(verbose bool) {
	g.verbose = verbose
}

// Rules returns the rules the game is played with.
func (g *Game) Rules() Rules {
	return g.rules
}

// Play plays a full game and returns the winning seat (0 or 1).
func (g *Game) Play() int {
	return g.Run().Winner
}

// Run plays a full game and returns the detailed result. A rule violation
// ends the game at once with the other player as winner.
func (g *Game) Run() Result {
	var res Result

	starter := g.starter
	if starter < 0 {
		starter = g.rng.IntN(2)
	}

	for number := 1; res.Scores[0] < g.rules.GoalScore && res.Scores[1] < g.rules.GoalScore; number++ {
		r := newRound(g, number, starter, &res.Scores)
		hand, forfeit := r.play()
		res.Hands = append(res.Hands, hand)

		if forfeit != nil {
			g.narrate("Forfeit", "player", forfeit.Player, "reason", forfeit.Reason)
			res.Forfeit = forfeit
			res.Winner = 1 - forfeit.Player
			return res
		}

		// a cancelled hand is replayed by the same starter
		if hand.Outcome != Cancelled {
			starter = 1 - starter
		}
	}

	if res.Scores[0] >= g.rules.GoalScore {
		res.Winner = 0
	} else {
		res.Winner = 1
	}
	g.narrate("Game over", "winner", res.Winner, "scores", res.Scores)
	return res
}

func (g *Game) narrate(msg string, keyvals ...interface{}) {
	if g.verbose {
		g.logger.Info(msg, keyvals...)
	} else {
		g.logger.Debug(msg, keyvals...)
	}
}
