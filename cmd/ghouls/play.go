package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/automoto/ghouls-n-orcs/runner"
)

var (
	flagSounds string
	flagVolume float64
	flagDebug  bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Open the game window",
	Long: `Open the game window at the configured start level, or at [level].

Controls:
  A/D, Left/Right     - Move
  Space/W/Up          - Jump (release early for a short hop)
  J/Z                 - Throw the equipped weapon
  K/X                 - Heavy attack
  L/Shift             - Roll
  Q/E                 - Cycle weapons
  P/Esc               - Pause
  R/Enter             - Continue after game over or victory

Examples:
  ghouls play
  ghouls play crypt
  ghouls play --sounds ./sfx --volume 0.5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSounds, "sounds", "", "Directory of <sound>.ogg or .wav files")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.8, "Sound volume from 0 to 1")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Draw hurtboxes and hitboxes")
}

func runPlay(cmd *cobra.Command, args []string) error {
	r, err := loadRegistry()
	if err != nil {
		return err
	}

	opts := runner.Options{
		Registry: r,
		Seed:     flagSeed,
		Volume:   flagVolume,
		Debug:    flagDebug,
	}
	if len(args) == 1 {
		opts.Level = args[0]
	}
	if flagSounds != "" {
		opts.Sounds = os.DirFS(flagSounds)
	}
	return runner.Run(opts)
}
