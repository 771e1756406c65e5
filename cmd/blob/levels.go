package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blob-arcade/internal/config"
	"github.com/vovakirdan/blob-arcade/internal/games/blob"
	"github.com/vovakirdan/blob-arcade/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels and data warnings",
	Long: `Shows every level in the level file (or the built-in pack) with its
field size, platform and obstacle counts, and any warnings raised while
reading it.

Examples:
  blob levels
  blob levels --levels ./my-levels.yaml`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	src, err := levels.LoadOrDefault(flagLevels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadBlob(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Levels from %s\n", src.Origin)
	fmt.Println()

	if src.Len() == 0 {
		fmt.Println("No levels found.")
	} else {
		maxNameLen := 4 // "Name" header
		for _, name := range src.Names() {
			if len(name) > maxNameLen {
				maxNameLen = len(name)
			}
		}

		fmt.Printf("  %-3s  %-*s  %-9s  %-9s  %s\n", "#", maxNameLen, "Name", "Field", "Platforms", "Obstacles")
		fmt.Printf("  %-3s  %-*s  %-9s  %-9s  %s\n", "-", maxNameLen, "----", "-----", "---------", "---------")

		var levelWarnings []string
		for i := 0; i < src.Len(); i++ {
			lvl := blob.NewLevel(src.Level(i), i, flagSeed, cfg)
			field := fmt.Sprintf("%.0fx%.0f", lvl.Field.W, lvl.Field.H)
			fmt.Printf("  %-3d  %-*s  %-9s  %-9d  %d\n", i+1, maxNameLen, lvl.Name, field, len(lvl.Platforms), len(lvl.Obstacles))
			for _, w := range lvl.Warnings {
				levelWarnings = append(levelWarnings, fmt.Sprintf("%s: %s", lvl.Name, w))
			}
		}
		src.Warnings = append(src.Warnings, levelWarnings...)
	}

	if len(src.Warnings) > 0 {
		fmt.Println()
		fmt.Println("Warnings:")
		for _, w := range src.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}

	fmt.Println()
	fmt.Println("Run 'blob play --level <n>' to start at a level.")
}
