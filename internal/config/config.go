// Package config loads simulation settings from HCL files.
package config

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/ginrummy/internal/game"
	"github.com/lox/ginrummy/internal/player"
	"github.com/lox/ginrummy/internal/simulator"
)

// Config represents a complete simulation configuration
type Config struct {
	LogLevel   string              `hcl:"log_level,optional"`
	Output     string              `hcl:"output,optional"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Players    []PlayerConfig      `hcl:"player,block"`
	Rules      *RulesConfig        `hcl:"rules,block"`
}

// SimulationSettings controls the batch run
type SimulationSettings struct {
	Games           int    `hcl:"games,optional"`
	Seed            int64  `hcl:"seed,optional"`
	Workers         int    `hcl:"workers,optional"`
	Timeout         string `hcl:"timeout,optional"`
	DecisionTimeout string `hcl:"decision_timeout,optional"`
	Duplicate       bool   `hcl:"duplicate,optional"`
}

// PlayerConfig seats one strategy under a label
type PlayerConfig struct {
	Label    string `hcl:"label,label"`
	Strategy string `hcl:"strategy"`
}

// RulesConfig overrides the scoring constants. Unset attributes keep the
// default; an explicit zero is kept, e.g. max_deadwood = 0 for gin only.
type RulesConfig struct {
	GoalScore     *int `hcl:"goal_score,optional"`
	GinBonus      *int `hcl:"gin_bonus,optional"`
	UndercutBonus *int `hcl:"undercut_bonus,optional"`
	MaxDeadwood   *int `hcl:"max_deadwood,optional"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Simulation: &SimulationSettings{
			Games:   1000,
			Workers: 4,
			Timeout: "30s",
		},
		Players: []PlayerConfig{
			{Label: "simple", Strategy: player.StrategySimple},
			{Label: "random", Strategy: player.StrategyRandom},
		},
		Rules: &RulesConfig{},
	}
}

// Load loads configuration from an HCL file. A missing file yields Default.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file)
}

// Parse decodes configuration from HCL source.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file)
}

func decode(file *hcl.File) (*Config, error) {
	var config Config
	if diags := gohcl.DecodeBody(file.Body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	config.applyDefaults()
	return &config, nil
}

// applyDefaults fills in anything the file left out
func (c *Config) applyDefaults() {
	def := Default()

	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}

	if c.Simulation == nil {
		c.Simulation = def.Simulation
	} else {
		if c.Simulation.Games == 0 {
			c.Simulation.Games = def.Simulation.Games
		}
		if c.Simulation.Workers == 0 {
			c.Simulation.Workers = def.Simulation.Workers
		}
		if c.Simulation.Timeout == "" {
			c.Simulation.Timeout = def.Simulation.Timeout
		}
	}

	if len(c.Players) == 0 {
		c.Players = def.Players
	}

	if c.Rules == nil {
		c.Rules = def.Rules
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}

	sim := c.Simulation
	if sim.Games <= 0 {
		return fmt.Errorf("simulation: games must be positive, got %d", sim.Games)
	}
	if sim.Workers <= 0 {
		return fmt.Errorf("simulation: workers must be positive, got %d", sim.Workers)
	}
	if _, err := parseDuration(sim.Timeout); err != nil {
		return fmt.Errorf("simulation: timeout: %w", err)
	}
	if _, err := parseDuration(sim.DecisionTimeout); err != nil {
		return fmt.Errorf("simulation: decision_timeout: %w", err)
	}

	if len(c.Players) != 2 {
		return fmt.Errorf("exactly two players must be configured, got %d", len(c.Players))
	}
	if c.Players[0].Label == c.Players[1].Label {
		return fmt.Errorf("player labels must differ, both are %q", c.Players[0].Label)
	}
	for _, p := range c.Players {
		if !slices.Contains(player.Strategies(), p.Strategy) {
			return fmt.Errorf("player %s: invalid strategy %s", p.Label, p.Strategy)
		}
	}

	if err := c.GameRules().Validate(); err != nil {
		return fmt.Errorf("rules: %w", err)
	}
	return nil
}

// GameRules returns the configured scoring rules
func (c *Config) GameRules() game.Rules {
	rules := game.DefaultRules()
	if c.Rules == nil {
		return rules
	}
	override(&rules.GoalScore, c.Rules.GoalScore)
	override(&rules.GinBonus, c.Rules.GinBonus)
	override(&rules.UndercutBonus, c.Rules.UndercutBonus)
	override(&rules.MaxDeadwood, c.Rules.MaxDeadwood)
	return rules
}

func override(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// Simulator builds the simulator configuration. Call Validate first.
func (c *Config) Simulator(logger *log.Logger) simulator.Config {
	timeout, _ := parseDuration(c.Simulation.Timeout)
	decisionTimeout, _ := parseDuration(c.Simulation.DecisionTimeout)
	return simulator.Config{
		Games: c.Simulation.Games,
		Players: [2]simulator.Seat{
			{Label: c.Players[0].Label, Strategy: c.Players[0].Strategy},
			{Label: c.Players[1].Label, Strategy: c.Players[1].Strategy},
		},
		Seed:            c.Simulation.Seed,
		Workers:         c.Simulation.Workers,
		Timeout:         timeout,
		DecisionTimeout: decisionTimeout,
		Duplicate:       c.Simulation.Duplicate,
		Rules:           c.GameRules(),
		Logger:          logger,
	}
}

// parseDuration accepts "" as zero, meaning no limit
func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must not be negative: %s", s)
	}
	return d, nil
}
