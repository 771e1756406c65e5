// blob is a 2D platformer: steer a blob across platforms, dodge falling
// blocks and reach the goal.
//
// Usage:
//
//	blob play                - Play in the terminal
//	blob window              - Play in a desktop window
//	blob levels              - List the levels in a level file
//	blob stats               - Browse completed runs
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible obstacle wraps
//	--db <path>        - Set run log path (default: ~/.blob/runs.db)
//	--levels <path>    - Load levels from a JSON or YAML file
//	--level <n>        - Start at level n (1-based)
//	--watch            - Reload the level file when it changes
//	--config <path>    - Tuning YAML
//	--difficulty <p>   - Obstacle speed preset: easy, normal, hard
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLevels     string
	flagLevel      int
	flagWatch      bool
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blob",
	Short: "Blob Platformer - a tiny platformer for terminal and desktop",
	Long: `Blob Platformer moves a round blob across platforms while blocks
fall from the sky. Reach the goal platform to finish a level.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  levels   - List levels and data warnings
  stats    - Browse completed runs

Examples:
  blob play
  blob play --levels ./my-levels.yaml --watch
  blob window --level 2 --seed 42
  blob stats`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blob/runs.db", "Path to run log database")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Level file (.json, .yaml); empty uses the built-in levels")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", 1, "Level to start at (1-based)")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload the level file when it changes")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log debug events such as respawns")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(statsCmd)
}
