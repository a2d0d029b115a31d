// wyrm is a terminal snake arcade with three game variants.
//
// Usage:
//
//	wyrm list              - List available games
//	wyrm play <game>       - Play a game
//	wyrm menu              - Start menu to pick games interactively
//	wyrm serve             - Start SSH server for remote play
//	wyrm scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.wyrm/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/wyrm-arcade/wyrm/internal/games/caterpillar"
	_ "github.com/wyrm-arcade/wyrm/internal/games/explodo"
	_ "github.com/wyrm-arcade/wyrm/internal/games/snake"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wyrm",
	Short: "Wyrm - Snake arcade for your terminal",
	Long: `Wyrm is a terminal snake arcade with three variants: the classic
grid snake, a caterpillar that bursts apples into sparks, and Explodo,
where some of the food is armed with a fuse.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  wyrm list
  wyrm play explodo
  wyrm menu
  wyrm serve --ssh :2222
  wyrm scores explodo`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wyrm/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
