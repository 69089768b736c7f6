// Package config holds the referee configuration: game parameters, the
// actor read timeout, and logging, loaded through viper so a config file,
// ARBITRO_* environment variables, and command-line flags all feed the same
// keys.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete arbitro configuration.
type Config struct {
	Run      RunConfig      `mapstructure:"run"`
	Actor    ActorConfig    `mapstructure:"actor"`
	Dilemma  DilemmaConfig  `mapstructure:"dilemma"`
	TugOfWar TugOfWarConfig `mapstructure:"tugofwar"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// RunConfig controls round execution.
type RunConfig struct {
	// Iters is the number of iterations played per round.
	Iters int `mapstructure:"iters"`
}

// ActorConfig controls the subprocess actor channel.
type ActorConfig struct {
	// ReadTimeoutMs bounds a single read from a player's stdout, in
	// milliseconds. A player that takes longer to answer forfeits the round.
	ReadTimeoutMs int `mapstructure:"read_timeout_ms"`
}

// DilemmaConfig holds the Prisoner's Dilemma payoff matrix.
type DilemmaConfig struct {
	// BothDefect is each player's payoff when both defect.
	BothDefect int `mapstructure:"both_defect"`
	// BetrayerReward is the defector's payoff when the other cooperates;
	// the cooperator gets 0.
	BetrayerReward int `mapstructure:"betrayer_reward"`
	// BothCooperate is each player's payoff when both cooperate.
	BothCooperate int `mapstructure:"both_cooperate"`
}

// TugOfWarConfig holds the Tug of War parameters.
type TugOfWarConfig struct {
	// Energy is each side's starting energy budget.
	Energy uint `mapstructure:"energy"`
}

// LoggingConfig controls the structured trace output.
type LoggingConfig struct {
	// Level is the minimum level written to stderr (DEBUG, INFO, WARN,
	// ERROR). The -v flag forces DEBUG.
	Level string `mapstructure:"level"`
}

// Default returns a Config with sensible default values. The game defaults
// match the classic parameterization: payoffs (1, 10, 5) and 100 energy.
func Default() *Config {
	return &Config{
		Run: RunConfig{
			Iters: 10,
		},
		Actor: ActorConfig{
			ReadTimeoutMs: 200,
		},
		Dilemma: DilemmaConfig{
			BothDefect:     1,
			BetrayerReward: 10,
			BothCooperate:  5,
		},
		TugOfWar: TugOfWarConfig{
			Energy: 100,
		},
		Logging: LoggingConfig{
			Level: "INFO",
		},
	}
}

// SetDefaults registers all default values with viper so they are available
// even without a config file.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("run.iters", defaults.Run.Iters)

	viper.SetDefault("actor.read_timeout_ms", defaults.Actor.ReadTimeoutMs)

	viper.SetDefault("dilemma.both_defect", defaults.Dilemma.BothDefect)
	viper.SetDefault("dilemma.betrayer_reward", defaults.Dilemma.BetrayerReward)
	viper.SetDefault("dilemma.both_cooperate", defaults.Dilemma.BothCooperate)

	viper.SetDefault("tugofwar.energy", defaults.TugOfWar.Energy)

	viper.SetDefault("logging.level", defaults.Logging.Level)
}

// Load reads the configuration from viper into a Config struct and
// validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values the referee cannot run with.
func (c *Config) Validate() error {
	if c.Run.Iters < 0 {
		return fmt.Errorf("run.iters must be non-negative, got %d", c.Run.Iters)
	}
	if c.Actor.ReadTimeoutMs <= 0 {
		return fmt.Errorf("actor.read_timeout_ms must be positive, got %d", c.Actor.ReadTimeoutMs)
	}
	return nil
}

// ConfigDir returns the path to the user's config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "arbitro")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".arbitro"
	}
	return filepath.Join(home, ".config", "arbitro")
}
