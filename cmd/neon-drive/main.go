package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/neon-drive/audio"
	"github.com/lixenwraith/neon-drive/constants"
	"github.com/lixenwraith/neon-drive/engine"
	"github.com/lixenwraith/neon-drive/input"
	"github.com/lixenwraith/neon-drive/render"
	"github.com/lixenwraith/neon-drive/stream"
	"github.com/lixenwraith/neon-drive/systems"
)

var (
	debugFlag        = flag.Bool("debug", false, "Write logs to logs/neon-drive.log")
	seedFlag         = flag.Int64("seed", 0, "Random seed for spawning (0 = time based)")
	muteFlag         = flag.Bool("mute", false, "Start with audio muted")
	streamAddrFlag   = flag.String("stream", "", "Serve the snapshot stream on this address, e.g. :8080")
	streamFormatFlag = flag.String("stream-format", "json", "Snapshot stream encoding: json, msgpack")
	fpsFlag          = flag.Int("fps", 0, "Frames per second, one simulation tick per frame (0 = default)")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "neon-drive: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func run() error {
	format, err := stream.ParseFormat(*streamFormatFlag)
	if err != nil {
		return err
	}

	interval := constants.FrameUpdateInterval
	if *fpsFlag > 0 {
		interval = time.Second / time.Duration(*fpsFlag)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	screen.EnableFocus()
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mNEON-DRIVE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	// Audio is optional; the game runs silent without a device
	sound := audio.NewSoundManager()
	sound.SetMuted(*muteFlag)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
	}

	var hub *stream.Hub
	if *streamAddrFlag != "" {
		hub = stream.NewHub(format)
		srv, _, err := stream.Listen(*streamAddrFlag, hub)
		if err != nil {
			// Spectators are optional as well
			log.Printf("snapshot stream disabled: %v", err)
			hub = nil
		} else {
			defer srv.Close()
			defer hub.Close()
		}
	}

	clock := engine.NewMonotonicTimeProvider()
	game := engine.NewGame(clock, *seedFlag)
	systems.Install(game)

	renderer := render.NewTerminalRenderer(screen)
	controls := input.NewControls()

	handler := input.NewHandler(controls, clock)
	handler.OnMute = func() { sound.ToggleMute() }
	handler.OnResize = screen.Sync

	quit := make(chan struct{})
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		handler.Run(screen, func() { close(quit) })
	}()

	frameTicker := time.NewTicker(interval)
	defer frameTicker.Stop()

	log.Printf("neon-drive running at %v per frame, seed %d", interval, *seedFlag)

	for {
		select {
		case <-quit:
			return nil
		case <-frameTicker.C:
			snap := game.Tick(controls.Drain(clock.Now()))
			renderer.RenderFrame(snap, sound.IsMuted())
			sound.Follow(snap)
			if hub != nil {
				if err := hub.Broadcast(snap); err != nil {
					log.Printf("stream broadcast: %v", err)
				}
			}
		}
	}
}
