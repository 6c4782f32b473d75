package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sfxpool/audio"
	"github.com/lixenwraith/sfxpool/constant"
	"github.com/lixenwraith/sfxpool/service"
)

var (
	channelsFlag = flag.Int("channels", 0, "Number of mixer channels (default from SFXPOOL_CHANNELS or 8)")
	dirFlag      = flag.String("dir", "", "Sound directory (default from SFXPOOL_SOUND_DIR or Assets/Sounds)")
	headlessFlag = flag.Bool("headless", false, "Run without an audio device")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/soundboard.log")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg := audio.LoadConfig()
	if *channelsFlag > 0 {
		cfg.Channels = *channelsFlag
	}
	if *dirFlag != "" {
		cfg.SoundDir = *dirFlag
	}
	if *headlessFlag {
		cfg.Headless = true
	}

	audioSvc := service.NewAudioService()
	screenSvc := newScreenService()

	hub := service.NewHub()
	hub.Register(audioSvc, cfg)
	hub.Register(screenSvc)

	if err := hub.InitAll(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := hub.StartAll(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer hub.StopAll()

	// Panic Recovery: Ensure terminal is reset and the device closed even if the board crashes
	defer recoverCrash(hub, os.Exit)

	run(screenSvc.screen, newBoard(audioSvc.System()))
}

// recoverCrash must be deferred directly; deferred StopAll is skipped by exit
func recoverCrash(hub *service.Hub, exit func(int)) {
	if r := recover(); r != nil {
		hub.StopAll()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mSOUNDBOARD CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		exit(1)
	}
}

func run(screen tcell.Screen, b *board) {
	frameTicker := time.NewTicker(constant.FrameUpdateInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	b.draw(screen)
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !b.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-frameTicker.C:
			if b.sys != nil {
				b.sys.Update(constant.FrameUpdateInterval)
			}
			b.draw(screen)
		}
	}
}
