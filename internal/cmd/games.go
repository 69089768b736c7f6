package cmd

import (
	"fmt"

	"github.com/Iron-Ham/arbitro/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List the built-in games",
	RunE:  runGames,
}

func init() {
	rootCmd.AddCommand(gamesCmd)
}

var (
	gameNameStyle = lipgloss.NewStyle().Bold(true)
	gameDescStyle = lipgloss.NewStyle().Faint(true)
)

func runGames(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, gameNameStyle.Render("dilemma"))
	fmt.Fprintln(out, gameDescStyle.Render(fmt.Sprintf(
		"  iterated Prisoner's Dilemma — payoffs: both defect %d, betrayal %d, both cooperate %d",
		cfg.Dilemma.BothDefect, cfg.Dilemma.BetrayerReward, cfg.Dilemma.BothCooperate)))

	fmt.Fprintln(out, gameNameStyle.Render("tug_of_war"))
	fmt.Fprintln(out, gameDescStyle.Render(fmt.Sprintf(
		"  energy bidding over a fixed budget — starting energy: %d per side",
		cfg.TugOfWar.Energy)))

	return nil
}
