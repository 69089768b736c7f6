// Package cmd implements the arbitro command-line interface. The commands
// are thin glue: they translate flags and configuration into actor channels,
// a game, and a round driver, then map the outcome to an exit code.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Iron-Ham/arbitro/internal/actor"
	"github.com/Iron-Ham/arbitro/internal/config"
	"github.com/Iron-Ham/arbitro/internal/game"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Exit codes reported to the shell. Left and right failures are distinct so
// tournament scripts can tell which program misbehaved without parsing
// stderr.
const (
	exitOK         = 0
	exitErrorLeft  = 1
	exitErrorRight = 2
	exitErrorSpawn = 3
)

var rootCmd = &cobra.Command{
	Use:   "arbitro",
	Short: "Referee for iterated two-player games between external programs",
	Long: `Arbitro referees iterated two-player games. Each player is an external
program spoken to over a newline-delimited protocol on its stdin/stdout;
arbitro sequences the exchanges, scores every iteration, and reports the
final score pair or which side broke the protocol.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCode(err)
	}
	return exitOK
}

// exitCode maps a run failure to the shell-visible code: which side caused
// it, or that a player program could not even be started.
func exitCode(err error) int {
	if errors.Is(err, actor.ErrSpawn) || errors.Is(err, actor.ErrScriptNotFound) {
		return exitErrorSpawn
	}

	var side *game.SideError
	if errors.As(err, &side) {
		if side.Side == game.SideRight {
			return exitErrorRight
		}
		return exitErrorLeft
	}

	return exitErrorLeft
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/arbitro/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/arbitro")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("ARBITRO")
	// Replace dots with underscores for nested keys in env vars
	// e.g., ARBITRO_ACTOR_READ_TIMEOUT_MS for actor.read_timeout_ms
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
