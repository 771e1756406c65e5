package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blob-arcade/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the blob platformer in the terminal.

Controls:
  A/D, Left/Right  - Move
  Space/W/Up       - Jump
  R                - Restart (after winning)
  N                - Next level
  P/Esc            - Pause
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Terminals report key presses but not releases, so a direction stays held
for a few ticks after each press (input.hold_ticks in the tuning file).

Examples:
  blob play
  blob play --level 3 --difficulty hard
  blob play --levels ./levels.yaml --watch --log-file blob.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// The terminal belongs to the game, so logs go to --log-file or nowhere.
	s, err := openSession(io.Discard, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(tui.Options{
		Game:       s.game,
		Store:      s.store,
		Watcher:    s.watcher,
		Logger:     s.logger,
		Runtime:    s.runtime,
		StartLevel: startLevel(),
		HoldTicks:  s.cfg.Input.HoldTicks,
	})

	s.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
