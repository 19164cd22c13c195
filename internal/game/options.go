package game

import (
	"github.com/charmbracelet/log"

	"github.com/lox/ginrummy/cards"
	"github.com/lox/ginrummy/meld"
)

// Option configures a Game during creation.
type Option func(*gameConfig)

// DeckSource produces the deck for one hand from the hand's shuffle seed.
type DeckSource func(seed int64) *cards.Deck

type gameConfig struct {
	rules          Rules
	logger         *log.Logger
	catalog        *meld.Catalog
	decks          DeckSource
	startingPlayer int // -1 picks at random
	verbose        bool
}

func defaultConfig() *gameConfig {
	return &gameConfig{
		rules:          DefaultRules(),
		logger:         log.Default(),
		catalog:        meld.Default(),
		decks:          cards.NewDeck,
		startingPlayer: -1,
	}
}

// WithRules overrides the default scoring rules.
func WithRules(rules Rules) Option {
	return func(c *gameConfig) {
		c.rules = rules
	}
}

// WithLogger sets the logger used for narration and diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(c *gameConfig) {
		c.logger = logger
	}
}

// WithCatalog sets the meld catalog used as the rules oracle.
// Default is meld.Default().
func WithCatalog(catalog *meld.Catalog) Option {
	return func(c *gameConfig) {
		c.catalog = catalog
	}
}

// WithDeckSource replaces the seeded shuffle, e.g. with stacked decks for
// tests or replays.
func WithDeckSource(decks DeckSource) Option {
	return func(c *gameConfig) {
		c.decks = decks
	}
}

// WithStartingPlayer fixes who plays first in the first hand instead of
// drawing it from the RNG.
func WithStartingPlayer(seat int) Option {
	return func(c *gameConfig) {
		c.startingPlayer = seat
	}
}

// WithVerbose turns narration on from the start.
func WithVerbose(verbose bool) Option {
	return func(c *gameConfig) {
		c.verbose = verbose
	}
}
