// umbra is a small real-time game about walking a lit level without a map:
// each light casts a line-of-sight polygon against the level's walls, and
// the player has to reach every goal.
//
// Usage:
//
//	umbra                 - Play the built-in level
//	umbra --level l.yaml  - Play a custom level
//	umbra check <l.yaml>  - Validate a level file
package main

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"chosenoffset.com/umbra/internal/game"
	"chosenoffset.com/umbra/internal/level"
	"chosenoffset.com/umbra/internal/render/ebiten"
)

var (
	flagLevel  string
	flagTPS    int
	flagWidth  int
	flagHeight int
)

var log = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: true,
	Prefix:          "umbra",
})

var rootCmd = &cobra.Command{
	Use:   "umbra",
	Short: "A shadow-casting line-of-sight game",
	Long: `umbra is a 2D game built around dynamic shadow casting: every light
computes its visibility polygon against the level's wall segments each frame.

Controls:
  Arrow keys - Move the player
  WASD       - Move the light
  Esc        - Back to menu / quit`,
	RunE: runPlay,
}

var checkCmd = &cobra.Command{
	Use:   "check <level.yaml>",
	Short: "Validate a level file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Path to a level YAML file (default: built-in level)")
	rootCmd.Flags().IntVar(&flagTPS, "tps", 144, "Tick rate of the game loop")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "Window width in pixels (default: level width)")
	rootCmd.Flags().IntVar(&flagHeight, "height", 0, "Window height in pixels (default: level height)")
	rootCmd.AddCommand(checkCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	lvl, err := level.Load(flagLevel)
	if err != nil {
		return err
	}
	log.Info("loaded level", "name", lvl.Name,
		"size", []float64{lvl.Width, lvl.Height},
		"walls", len(lvl.Obstacles), "lights", len(lvl.Lights), "goals", len(lvl.Goals))

	renderer := ebiten.NewRenderer()
	input := ebiten.NewInputManager()
	engine := ebiten.NewEngine()

	// The window can be scaled independently; the logical resolution stays
	// the level size via Game.Layout.
	width, height := flagWidth, flagHeight
	if width <= 0 {
		width = int(lvl.Width)
	}
	if height <= 0 {
		height = int(lvl.Height)
	}
	engine.SetWindowSize(width, height)
	engine.SetWindowTitle("umbra")
	engine.SetTPS(flagTPS)

	g := game.New(lvl, renderer, input, engine)

	log.Info("starting game loop", "tps", flagTPS)
	return engine.RunGame(g)
}

func runCheck(cmd *cobra.Command, args []string) error {
	lvl, err := level.Load(args[0])
	if err != nil {
		return err
	}
	log.Info("level OK", "name", lvl.Name,
		"walls", len(lvl.Obstacles), "lights", len(lvl.Lights), "goals", len(lvl.Goals))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("fatal", "err", err)
		os.Exit(1)
	}
}
