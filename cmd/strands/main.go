package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/strands/audio"
	"github.com/lixenwraith/strands/bench"
	"github.com/lixenwraith/strands/config"
	"github.com/lixenwraith/strands/core"
	"github.com/lixenwraith/strands/engine"
	"github.com/lixenwraith/strands/parameter"
	"github.com/lixenwraith/strands/render"
	"github.com/lixenwraith/strands/terminal"
)

func main() {
	// Panic recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flags := config.NewFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Resolve(os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "strands: %v\n", err)
		os.Exit(2)
	}

	if flags.WriteConfig != "" {
		if err := config.Save(flags.WriteConfig, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "strands: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", flags.WriteConfig)
		return
	}

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	if flags.Bench != "" {
		err = runBench(cfg, flags.Bench)
	} else {
		err = run(cfg)
	}
	if err != nil {
		log.Printf("strands: %v", err)
		fmt.Fprintf(os.Stderr, "strands: %v\n", err)
		os.Exit(1)
	}
}

func runBench(cfg config.Config, profileArg string) error {
	profile, err := bench.ParseProfile(profileArg)
	if err != nil {
		return err
	}
	report, err := bench.Run(cfg, profile, parameter.BenchCols, parameter.BenchRows)
	if err != nil {
		return err
	}
	fmt.Println(report.Render())
	return nil
}

// run owns the terminal until the user quits or the event stream closes
func run(cfg config.Config) error {
	screen, err := terminal.New()
	if err != nil {
		return err
	}
	core.RegisterTerminal(screen)
	defer screen.Fini()

	scene := engine.NewScene(cfg.Scene())

	sound := audio.NewEngine(cfg.AudioConfig())
	if err := sound.Start(); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	} else if sound.IsRunning() {
		scene.SetPluckSink(sound)
		defer sound.Stop()
	}

	pxCol, pxRow := cfg.Display.PixelsPerColumn, cfg.Display.PixelsPerRow
	cols, rows := screen.Size()
	canvas := render.NewCanvas(cols, rows, pxCol, pxRow)
	clock := engine.NewFrameClock(engine.NewTimeProvider())
	showHUD := cfg.Display.ShowHUD

	ticker := time.NewTicker(cfg.FrameInterval())
	defer ticker.Stop()
	events := screen.Events()

	log.Printf("strands: running %dx%d cells at %d fps", cols, rows, cfg.Display.FrameRate)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			action := terminal.Translate(ev, pxCol, pxRow)
			switch action.Type {
			case terminal.ActionPointer:
				scene.MovePointer(action.X, action.Y, clock.Timestamp())
			case terminal.ActionResize:
				// Scene notices the new surface size on the next tick and resets
				canvas.Resize(action.Cols, action.Rows)
				screen.Sync()
			case terminal.ActionMoreStrands:
				scene.SetStrandCount(scene.StrandCount() + parameter.StrandCountStep)
			case terminal.ActionFewerStrands:
				scene.SetStrandCount(scene.StrandCount() - parameter.StrandCountStep)
			case terminal.ActionToggleHUD:
				showHUD = !showHUD
			case terminal.ActionToggleMute:
				sound.ToggleMute()
			case terminal.ActionQuit:
				return nil
			}

		case <-ticker.C:
			scene.Tick(clock.Timestamp(), canvas)
			hud := ""
			if showHUD {
				hud = formatHUD(scene.Stats(), sound.IsRunning(), sound.IsMuted())
			}
			screen.Present(canvas, hud)
		}
	}
}
