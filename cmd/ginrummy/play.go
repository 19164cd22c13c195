package main

import (
	"fmt"

	"github.com/lox/ginrummy/internal/game"
	"github.com/lox/ginrummy/internal/player"
	"github.com/lox/ginrummy/internal/randutil"
)

type PlayCmd struct {
	Players []string `arg:"" optional:"" help:"Strategies for seat 0 and seat 1" default:"simple,random"`
	Seed    int64    `help:"Random seed (0 picks a fresh one)"`
	Goal    int      `help:"Points needed to win the game" default:"100"`
	Starter int      `help:"Seat that starts the first hand (-1 for random)" default:"-1"`
	Quiet   bool     `short:"q" help:"Only print the result"`
}

func (c *PlayCmd) Run(cli *CLI) error {
	if len(c.Players) != 2 {
		return fmt.Errorf("need exactly two strategies, got %d", len(c.Players))
	}
	if c.Starter < -1 || c.Starter > 1 {
		return fmt.Errorf("starter must be 0, 1 or -1, got %d", c.Starter)
	}
	logger, err := newLogger(cli.LogLevel)
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = randutil.FreshSeed()
	}
	rng := randutil.New(seed)

	rules := game.DefaultRules()
	rules.GoalScore = c.Goal
	if err := rules.Validate(); err != nil {
		return err
	}

	var seats [2]game.Player
	for i, strategy := range c.Players {
		p, err := player.New(strategy, randutil.Fork(rng), logger.WithPrefix(fmt.Sprintf("seat%d", i)),
			player.WithMaxDeadwood(rules.MaxDeadwood))
		if err != nil {
			return err
		}
		seats[i] = p
	}

	g := game.New(rng, seats[0], seats[1],
		game.WithRules(rules),
		game.WithLogger(logger),
		game.WithStartingPlayer(c.Starter),
		game.WithVerbose(!c.Quiet),
	)
	res := g.Run()

	fmt.Println(headerStyle.Render("Game over"))
	fmt.Println(row("Seed", seed))
	fmt.Println(row("Winner", winStyle.Render(fmt.Sprintf("seat %d (%s)", res.Winner, c.Players[res.Winner]))))
	fmt.Println(row("Scores", fmt.Sprintf("%d - %d", res.Scores[0], res.Scores[1])))
	fmt.Println(row("Hands", len(res.Hands)))
	if res.Forfeit != nil {
		fmt.Println(row("Forfeit", warnStyle.Render(res.Forfeit.String())))
	}
	return nil
}
