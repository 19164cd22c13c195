// Package game implements the Gin Rummy round state machine.
//
// The main type is Game, which seats two Players and plays hands until one
// of them reaches the goal score. Each hand is dealt from a seeded shuffle,
// played out in alternating draw/discard turns, and ends either with a knock
// (validated, laid off and scored) or with a cancelled hand once the stock is
// down to two cards. A player who breaks a rule forfeits the whole game.
//
// # Basic Usage
//
//	rng := randutil.New(42)
//	g := game.New(rng, p0, p1, game.WithLogger(logger))
//	res := g.Run()
//	fmt.Println(res.Winner, res.Scores)
//
// # Deterministic Testing
//
// The RNG passed to New seeds every shuffle, so a fixed seed replays the same
// game. WithDeckSource replaces the shuffle entirely, e.g. with stacked decks
// built by cards.NewStackedDeck:
//
//	g := game.New(rng, p0, p1,
//		game.WithStartingPlayer(0),
//		game.WithDeckSource(func(int64) *cards.Deck { return deck }),
//	)
//
// # Players
//
// Player is the only surface a policy implements. The game calls it
// synchronously and never times out; wrap slow players at the adapter
// boundary instead. Embed BasePlayer to ignore notifications.
package game
