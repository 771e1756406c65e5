package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blob-arcade/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start the blob platformer in a desktop window sized to the level.

Controls:
  A/D, Left/Right  - Move (held)
  Space/W/Up       - Jump
  R or button      - Restart (after winning)
  N                - Next level
  P/Esc            - Pause
  F1               - Toggle frame statistics
  Q                - Quit

Examples:
  blob window
  blob window --scale 2
  blob window --levels ./levels.json --watch`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window pixels per level pixel")
}

func runWindow(cmd *cobra.Command, args []string) {
	s, err := openSession(os.Stderr, 0, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := window.Run(window.Options{
		Game:       s.game,
		Store:      s.store,
		Watcher:    s.watcher,
		Logger:     s.logger,
		Runtime:    s.runtime,
		StartLevel: startLevel(),
		Scale:      flagScale,
	})

	s.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
