// ghouls is a side-scrolling arcade platformer.
//
// Usage:
//
//	ghouls play [level]   - Open the game window
//	ghouls sim [level]    - Run a headless autopilot and print a summary
//	ghouls levels         - List the registered levels
//
// Global flags:
//
//	--config <path>     - Tuning overrides (default search: ~/.ghouls, ./configs)
//	--levels <dir>      - Directory of Tiled .tmx maps added to the built-in levels
//	--log-level <name>  - debug, info, warn or error
//	--seed <value>      - RNG seed for reproducible runs (0 = time based)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/level"
	"github.com/automoto/ghouls-n-orcs/logging"
)

var logger = logging.New("ghouls")

var (
	flagConfig   string
	flagLevels   string
	flagLogLevel string
	flagSeed     uint64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ghouls",
	Short: "Ghouls 'n Orcs - a side-scrolling arcade platformer",
	Long: `Ghouls 'n Orcs is a side-scrolling platformer: armor that breaks,
thrown weapons and a warlord waiting at the end of the graveyard.

Examples:
  ghouls play
  ghouls play crypt --debug
  ghouls sim --seconds 60 --seed 7
  ghouls levels --levels ./maps`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a tuning config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of .tmx level maps")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelsCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	if err := logging.SetLevel(flagLogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	source, err := cfg.Load(flagConfig)
	if err != nil {
		return err
	}
	if source != "" {
		logger.Info("config loaded", "path", source)
	}

	if flagSeed == 0 {
		flagSeed = uint64(time.Now().UnixNano())
	}
	return nil
}

// loadRegistry returns the built-in levels plus any maps under --levels.
func loadRegistry() (*level.Registry, error) {
	r, err := level.Builtin()
	if err != nil {
		return nil, err
	}
	if flagLevels == "" {
		return r, nil
	}
	if err := r.LoadTMXDir(os.DirFS(flagLevels), "."); err != nil {
		return nil, fmt.Errorf("load levels from %s: %w", flagLevels, err)
	}
	return r, nil
}
