package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/liberty-quiz/audio"
	"github.com/lixenwraith/liberty-quiz/config"
	"github.com/lixenwraith/liberty-quiz/engine"
	"github.com/lixenwraith/liberty-quiz/logging"
	"github.com/lixenwraith/liberty-quiz/parameter"
	"github.com/lixenwraith/liberty-quiz/quiz"
	"github.com/lixenwraith/liberty-quiz/render"
)

var (
	debugFlag  = flag.Bool("debug", false, "write a debug log to the log directory")
	seedFlag   = flag.Uint64("seed", 0, "random seed for shuffling and fireworks, 0 is random")
	fpsFlag    = flag.Int("fps", int(time.Second/parameter.FrameUpdateInterval), "frame rate")
	muteFlag   = flag.Bool("mute", false, "start with audio muted")
	configFlag = flag.String("config", "./config", "directory holding config.yaml")
	envFlag    = flag.String("env", ".env", "optional dotenv file")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "liberty-quiz: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(*envFlag); err != nil {
		return err
	}
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}

	log, logFile, err := logging.Setup(cfg.Debug, cfg.LogDir, cfg.LogLevel)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	bank, err := loadBank(cfg.Quiz.BankPath)
	if err != nil {
		return err
	}
	log.Info().Int("questions", len(bank)).Str("path", cfg.Quiz.BankPath).Msg("question bank loaded")

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic recovery: restore the terminal before the stack goes to stderr
	defer func() {
		if r := recover(); r != nil {
			crash(screen, log, "LIBERTY-QUIZ CRASHED", r)
		}
	}()

	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))

	player := startAudio(cfg, log)
	defer player.Close()

	a, err := newApp(cfg, screen, player, engine.NewMonotonicTimeProvider(), log, bank)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go pollInput(ctx, screen, log, a.events)

	ticker := time.NewTicker(cfg.FrameInterval())
	defer ticker.Stop()

	loop := engine.NewFrameLoop(ticker.C, a.step)
	err = loop.Run(ctx)
	log.Info().Uint64("frames", loop.FrameNumber()).Err(err).Msg("frame loop stopped")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// applyFlags overrides config with flags given explicitly on the command line
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "fps":
			cfg.FPS = *fpsFlag
		case "mute":
			cfg.Audio.Mute = *muteFlag
		}
	})
}

func loadBank(path string) ([]quiz.Question, error) {
	if path == "" {
		return quiz.LoadBank()
	}
	return quiz.LoadBankFile(path)
}

// startAudio opens the speaker, a missing device falls back to a silent player
func startAudio(cfg *config.Config, log zerolog.Logger) audio.Player {
	acfg := audio.DefaultConfig()
	acfg.MasterVolume = cfg.Audio.Volume

	var player audio.Player
	sp := audio.NewSpeakerPlayer(acfg)
	if err := sp.Start(); err != nil {
		log.Warn().Err(err).Msg("audio start failed, continuing without audio")
		player = &audio.NopPlayer{}
	} else {
		player = sp
	}
	player.SetMuted(cfg.Audio.Mute)
	return player
}

// pollInput forwards terminal events to the frame loop until the screen is finalized
func pollInput(ctx context.Context, screen tcell.Screen, log zerolog.Logger, events chan<- tcell.Event) {
	defer func() {
		if r := recover(); r != nil {
			crash(screen, log, "EVENT POLLER CRASHED", r)
		}
	}()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func crash(screen tcell.Screen, log zerolog.Logger, title string, r any) {
	stack := debug.Stack()
	screen.Fini()
	log.Error().Interface("panic", r).Bytes("stack", stack).Msg(title)

	// \r\n in case the terminal is still in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s: %v\x1b[0m\r\n", title, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", stack)
	os.Exit(1)
}
