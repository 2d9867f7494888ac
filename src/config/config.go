package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/integrii/flaggy"

	"lifegame/src/runner"
	"lifegame/src/universe"
)

//Config holds everything the lifegame command can be configured with
//environment variables provide the defaults, flags override them
type Config struct {
	Width       int           `env:"LIFE_WIDTH"`
	Height      int           `env:"LIFE_HEIGHT"`
	Interval    time.Duration `env:"LIFE_INTERVAL"`
	MaxSteps    int           `env:"LIFE_MAX_STEPS"`
	Seed        int64         `env:"LIFE_SEED"`
	Template    string        `env:"LIFE_TEMPLATE"`
	Random      bool          `env:"LIFE_RANDOM"`
	Interactive bool
	Window      bool
}

//Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		Width:    runner.DefWidth,
		Height:   runner.DefHeight,
		Interval: runner.DefSimulationInterval,
		MaxSteps: runner.DefMaxSteps,
		Seed:     42,
		Template: "sample",
	}
}

//ParseEnv loads configuration from environment variables
func ParseEnv(target *Config) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

//Bind attaches the configuration to the parser's flags
func (c *Config) Bind(p *flaggy.Parser) {
	p.Int(&c.Width, "x", "width", "Width of a simulation field")
	p.Int(&c.Height, "y", "height", "Height of a simulation field")
	p.Duration(&c.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	p.Int(&c.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps, 0 means no limit")
	p.Bool(&c.Interactive, "n", "interactive", "Start interactive mode")
	p.Bool(&c.Random, "r", "random", "Settle with random data")
	p.Int64(&c.Seed, "", "seed", "Seed for the random data")
	p.String(&c.Template, "t", "template", "Template to settle ["+strings.Join(universe.TemplateNames(), "|")+"], empty for the default pattern")
	p.Bool(&c.Window, "g", "window", "Render into a window (needs the ebiten build tag)")
}

//Load builds the configuration from the environment and the command line arguments
func Load(args []string) (Config, error) {
	c := Default()
	if err := ParseEnv(&c); err != nil {
		return c, err
	}
	p := flaggy.NewParser("lifegame")
	p.Description = "\"The Life\" game simulation"
	p.ShowHelpOnUnexpected = true
	c.Bind(p)
	if err := p.ParseArgs(args); err != nil {
		return c, fmt.Errorf("parse flags: %w", err)
	}
	return c, nil
}

//UniverseOptions translates the seeding part of the configuration
func (c Config) UniverseOptions() ([]universe.Option, error) {
	var opts []universe.Option
	if c.Random {
		return append(opts, universe.WithSeed(universe.RandomSeed(c.Seed))), nil
	}
	if c.Template == "" {
		return opts, nil
	}
	t, err := universe.TemplateByName(c.Template)
	if err != nil {
		return nil, err
	}
	return append(opts, universe.WithSeed(universe.EmptySeed), universe.WithTemplate(t)), nil
}

//RunnerOptions translates the pacing part of the configuration
func (c Config) RunnerOptions() *runner.Options {
	return &runner.Options{
		Width:    c.Width,
		Height:   c.Height,
		Interval: c.Interval,
		MaxSteps: c.MaxSteps,
		Advanced: map[string]interface{}{
			"Seed":     c.Seed,
			"Template": c.Template,
			"Random":   c.Random,
		},
	}
}
