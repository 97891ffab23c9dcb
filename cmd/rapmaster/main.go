// rapmaster is a terminal life simulator about clawing your way from
// open mics to rap legend status.
//
// Usage:
//
//	rapmaster play               - Start or continue a career
//	rapmaster career             - Show a save slot summary
//	rapmaster saves              - List save slots
//	rapmaster serve              - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>     - Save database path (default: ~/.rapmaster/saves.db)
//	--seed <value>  - RNG seed for a reproducible career
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rapmaster",
	Short: "RapMaster - Build a rap career in your terminal",
	Long: `RapMaster is a terminal life simulator: record tracks, drop albums,
play shows and grind your way from Rookie Musician to Rap Legend.

Available commands:
  play     - Start or continue a career
  career   - Show a save slot summary
  saves    - List save slots
  serve    - Start SSH server for remote play

Examples:
  rapmaster play
  rapmaster play --slot 2 --difficulty grind
  rapmaster career --slot 1
  rapmaster saves
  rapmaster serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rapmaster/saves.db", "Path to save database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(careerCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(serveCmd)
}
