// Command hillside-gl runs the platformer in a window at native resolution.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/hillside/audio"
	"github.com/lixenwraith/hillside/config"
	"github.com/lixenwraith/hillside/engine"
	"github.com/lixenwraith/hillside/level"
	"github.com/lixenwraith/hillside/logging"
)

func main() {
	fs := pflag.NewFlagSet("hillside-gl", pflag.ExitOnError)
	configPath := fs.String("config", "", "config file (json, toml or yaml)")
	scale := fs.Int("scale", 3, "window scale factor")
	config.RegisterFlags(fs)
	fs.Parse(os.Args[1:])

	if err := run(*configPath, *scale, fs); err != nil {
		fmt.Fprintf(os.Stderr, "hillside-gl: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, scale int, fs *pflag.FlagSet) error {
	if err := config.BindFlags(fs); err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// The window does not own the terminal, debug logs may go to stderr
	logOpts := cfg.LoggingOptions()
	logOpts.Console = true
	log, logCloser, err := logging.Setup(logOpts)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	lvl, err := level.Generate(cfg.LevelConfig())
	if err != nil {
		return fmt.Errorf("generate level: %w", err)
	}
	world := engine.NewWorld(lvl, cfg.EngineConfig(), log)

	sound := audio.NewSoundManager(cfg.AudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
	} else {
		defer sound.Cleanup()
		world.AddCueListener(sound)
	}

	game := newGame(world, cfg.Screen.Width, cfg.Screen.Height)

	ebiten.SetWindowSize(cfg.Screen.Width*scale, cfg.Screen.Height*scale)
	ebiten.SetWindowTitle("Hillside")
	ebiten.SetTPS(cfg.FrameRate)

	err = ebiten.RunGame(game)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	log.Info().Uint64("frames", world.Frame()).Msg("session ended")
	return err
}
