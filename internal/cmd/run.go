package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/Iron-Ham/arbitro/internal/actor"
	"github.com/Iron-Ham/arbitro/internal/config"
	"github.com/Iron-Ham/arbitro/internal/game"
	"github.com/Iron-Ham/arbitro/internal/logging"
	"github.com/Iron-Ham/arbitro/internal/match"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runCmd = &cobra.Command{
	Use:   "run <game> <left-program> <right-program>",
	Short: "Referee one round between two player programs",
	Long: `Run one round of the named game between two player programs.

Both programs are spawned with their stdin/stdout connected to arbitro.
On success the final scores are printed as "<left> <right>" and arbitro
exits 0. A failure caused by the left player exits 1, by the right player
exits 2, and a player program that cannot be started exits 3.`,
	Args: cobra.ExactArgs(3),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntP("iters", "i", 10, "number of iterations per round")
	runCmd.Flags().Int("timeout", 200, "per-read player timeout in milliseconds")
	runCmd.Flags().BoolP("verbose", "v", false, "log the per-iteration trace to stderr")
	_ = viper.BindPFlag("run.iters", runCmd.Flags().Lookup("iters"))
	_ = viper.BindPFlag("actor.read_timeout_ms", runCmd.Flags().Lookup("timeout"))
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level := logging.ParseLevel(cfg.Logging.Level)
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = logging.LevelDebug
	}
	log := logging.New(cmd.ErrOrStderr(), level)

	g, err := buildGame(args[0], cfg)
	if err != nil {
		return err
	}

	timeout := time.Duration(cfg.Actor.ReadTimeoutMs) * time.Millisecond

	left, err := actor.NewWithTimeout(timeout, args[1])
	if err != nil {
		return fmt.Errorf("failed to init left player: %w", err)
	}
	defer left.Close()

	right, err := actor.NewWithTimeout(timeout, args[2])
	if err != nil {
		return fmt.Errorf("failed to init right player: %w", err)
	}
	defer right.Close()

	res, err := match.New(log).Play(g, left, right, cfg.Run.Iters)
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), res)
	return nil
}

// buildGame constructs the named game from its configured parameters.
func buildGame(name string, cfg *config.Config) (game.Game, error) {
	switch name {
	case "dilemma":
		return game.NewDilemma(
			game.Score(cfg.Dilemma.BothDefect),
			game.Score(cfg.Dilemma.BetrayerReward),
			game.Score(cfg.Dilemma.BothCooperate),
		), nil
	case "tug_of_war":
		return game.NewTugOfWar(game.Energy(cfg.TugOfWar.Energy)), nil
	default:
		return nil, fmt.Errorf("unknown game %q, expected one of [dilemma, tug_of_war]", name)
	}
}

var winnerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

// printResult writes the final scores as "<left> <right>". The winning score
// is highlighted only when stdout is a terminal, so scripted callers always
// see the plain two-token line.
func printResult(w io.Writer, res match.Result) {
	left := strconv.Itoa(int(res.Left))
	right := strconv.Itoa(int(res.Right))

	if isatty.IsTerminal(os.Stdout.Fd()) {
		switch {
		case res.Left > res.Right:
			left = winnerStyle.Render(left)
		case res.Right > res.Left:
			right = winnerStyle.Render(right)
		}
	}

	fmt.Fprintf(w, "%s %s\n", left, right)
}
