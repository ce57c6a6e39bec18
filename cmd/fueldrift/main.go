// fueldrift is a side-scrolling cave flyer for the terminal.
//
// Usage:
//
//	fueldrift play              - Fly the cave
//	fueldrift scores            - Show the run history
//	fueldrift serve             - Start SSH server for remote play
//	fueldrift headless          - Run a scripted simulation without a UI
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible caves
//	--db <path>     - Set database path (default: ~/.fueldrift/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   uint32
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fueldrift",
	Short: "Fuel Drift - Fly a cave and manage your fuel, in your terminal",
	Long: `Fuel Drift is a terminal game: pilot a craft through an endlessly
scrolling cave, burn fuel carefully, and pull fuel depots off the walls
with your tractor beam.

Available commands:
  play      - Fly the cave
  scores    - View the run history
  serve     - Start SSH server for remote play
  headless  - Run a scripted simulation without a UI

Examples:
  fueldrift play
  fueldrift play --seed 42
  fueldrift scores
  fueldrift serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Uint32Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fueldrift/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(headlessCmd)
}
