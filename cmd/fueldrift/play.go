package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/RainerBlessing/fuel-drift/internal/config"
	"github.com/RainerBlessing/fuel-drift/internal/core"
	"github.com/RainerBlessing/fuel-drift/internal/platform/tui"
	"github.com/RainerBlessing/fuel-drift/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly the cave",
	Long: `Start a Fuel Drift session in the current terminal.

Controls:
  Arrows     - Thrust (up/down/brake/accelerate)
  W / S      - Tractor beam up / down
  P/Esc      - Pause
  Enter      - Start / retry
  B          - Back to menu (paused or game over)
  Q/Ctrl+C   - Quit

Up, down and forward thrust burn fuel; braking is free. Collect fuel
depots from the cave walls to keep flying.

Examples:
  fueldrift play
  fueldrift play --seed 42
  fueldrift play --config ./my-tuning.yaml`,
	Run: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size; fall back to a conservative default
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(gameCfg, store, runtime)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
