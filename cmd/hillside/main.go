// Command hillside runs the platformer in a terminal.
//
// With --headless it simulates a fixed number of frames from an input script
// and prints the final state checksum instead of opening the screen.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/hillside/audio"
	"github.com/lixenwraith/hillside/config"
	"github.com/lixenwraith/hillside/core"
	"github.com/lixenwraith/hillside/engine"
	"github.com/lixenwraith/hillside/heightmap"
	"github.com/lixenwraith/hillside/input"
	"github.com/lixenwraith/hillside/level"
	"github.com/lixenwraith/hillside/logging"
	"github.com/lixenwraith/hillside/parameter"
	"github.com/lixenwraith/hillside/render"
)

type options struct {
	configPath string
	headless   bool
	frames     int
	script     string
	status     bool
}

func main() {
	// Panic recovery: the screen must be released even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	var opts options
	fs := pflag.NewFlagSet("hillside", pflag.ExitOnError)
	fs.StringVar(&opts.configPath, "config", "", "config file (json, toml or yaml)")
	fs.BoolVar(&opts.headless, "headless", false, "simulate without a screen and print the state checksum")
	fs.IntVar(&opts.frames, "frames", 600, "frames to simulate in headless mode")
	fs.StringVar(&opts.script, "script", "R*600", "input script for headless mode, e.g. \"R*60 RA R*30 .*10\"")
	fs.BoolVar(&opts.status, "status", true, "show the status line")
	config.RegisterFlags(fs)
	fs.Parse(os.Args[1:])

	if err := run(opts, fs); err != nil {
		fmt.Fprintf(os.Stderr, "hillside: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, fs *pflag.FlagSet) error {
	if err := config.BindFlags(fs); err != nil {
		return err
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	logOpts := cfg.LoggingOptions()
	logOpts.Console = opts.headless
	log, logCloser, err := logging.Setup(logOpts)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	world, err := buildWorld(cfg, log)
	if err != nil {
		return err
	}

	if opts.headless {
		return runHeadless(world, opts, os.Stdout)
	}
	return runTerminal(world, cfg, opts, log)
}

// buildWorld generates the level, applies a collision override and places the actors
func buildWorld(cfg *config.Config, log zerolog.Logger) (*engine.World, error) {
	lvl, err := level.Generate(cfg.LevelConfig())
	if err != nil {
		return nil, fmt.Errorf("generate level: %w", err)
	}

	if path := cfg.Level.CollisionMap; path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open collision map: %w", err)
		}
		cm, err := heightmap.DecodeJSON(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if err := lvl.UseCollision(cm); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		log.Info().Str("path", path).Int("profiles", lvl.Heights.ProfileCount()).Msg("collision map loaded")
	}

	return engine.NewWorld(lvl, cfg.EngineConfig(), log), nil
}

func runHeadless(world *engine.World, opts options, out io.Writer) error {
	script, err := input.ParseScript(opts.script)
	if err != nil {
		return err
	}
	world.Run(script, opts.frames)

	p := world.Player
	fmt.Fprintf(out, "frames=%d x=%.3f y=%.3f anim=%s checksum=%016x\n",
		world.Frame(), p.PosX.Float(), p.PosY.Float(), p.Animation(), world.Checksum())
	return nil
}

func runTerminal(world *engine.World, cfg *config.Config, opts options, log zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.RegisterTerminal(screen)
	defer func() {
		core.RegisterTerminal(nil)
		screen.Fini()
	}()

	// Non-fatal: the game runs silent without a sound device
	sound := audio.NewSoundManager(cfg.AudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
	} else {
		defer sound.Cleanup()
		world.AddCueListener(sound)
	}

	renderer := render.NewTerminalRenderer(screen, cfg.Screen.Width, cfg.Screen.Height)
	renderer.SetStatus(opts.status)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	latch := input.NewHoldLatch(parameter.KeyHoldFrames)
	keys := input.DefaultKeyTable()

	core.Go(func() {
		for {
			ev := screen.PollEvent()
			switch ev := ev.(type) {
			case nil:
				// Screen finalized
				return
			case *tcell.EventKey:
				buttons, quit := keys.Lookup(ev)
				if quit {
					cancel()
					return
				}
				latch.Press(buttons)
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	})

	scheduler := engine.NewScheduler(world, cfg.FrameInterval(), log)
	scheduler.OnFrame(renderer.Draw)

	err = scheduler.Run(ctx, latch)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	log.Info().Uint64("frames", world.Frame()).Msg("session ended")
	return err
}
