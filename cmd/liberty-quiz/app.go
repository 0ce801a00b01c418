package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/liberty-quiz/audio"
	"github.com/lixenwraith/liberty-quiz/config"
	"github.com/lixenwraith/liberty-quiz/engine"
	"github.com/lixenwraith/liberty-quiz/firework"
	"github.com/lixenwraith/liberty-quiz/input"
	"github.com/lixenwraith/liberty-quiz/parameter"
	"github.com/lixenwraith/liberty-quiz/quiz"
	"github.com/lixenwraith/liberty-quiz/render"
	"github.com/lixenwraith/liberty-quiz/render/renderers"
	"github.com/lixenwraith/liberty-quiz/status"
)

// app wires quiz, simulation, audio and rendering; every field is owned by the frame loop goroutine
type app struct {
	log    zerolog.Logger
	screen tcell.Screen
	player audio.Player
	events chan tcell.Event

	sched  *engine.Scheduler
	canvas *render.Canvas
	sim    *firework.Simulation
	ctrl   *quiz.Controller
	cursor *input.Cursor
	hud    *renderers.HUDRenderer
	orch   *render.RenderOrchestrator
	fps    *engine.FPSMeter

	frame     uint64
	lastIndex int

	emitters  *atomic.Int64
	particles *atomic.Int64
	launched  *atomic.Int64
	bursts    *atomic.Int64
	frames    *atomic.Int64
	fpsValue  *status.AtomicFloat
}

func newApp(cfg *config.Config, screen tcell.Screen, player audio.Player, clock engine.TimeProvider, log zerolog.Logger, bank []quiz.Question) (*app, error) {
	palette, err := render.ParsePalette(cfg.Fireworks.Palette)
	if err != nil {
		return nil, fmt.Errorf("fireworks palette: %w", err)
	}

	reg := status.NewRegistry()
	a := &app{
		log:       log,
		screen:    screen,
		player:    player,
		events:    make(chan tcell.Event, parameter.InputQueueSize),
		sched:     engine.NewScheduler(),
		cursor:    &input.Cursor{},
		fps:       engine.NewFPSMeter(parameter.FPSSampleWindow),
		emitters:  reg.Ints.Get(status.KeyEmitters),
		particles: reg.Ints.Get(status.KeyParticles),
		launched:  reg.Ints.Get(status.KeyLaunched),
		bursts:    reg.Ints.Get(status.KeyBursts),
		frames:    reg.Ints.Get(status.KeyFrames),
		fpsValue:  reg.Floats.Get(status.KeyFPS),
	}

	rnd := firework.NewRandom(cfg.Seed)
	trail := render.MustParseColor(parameter.TrailColor)
	w, h := screen.Size()
	a.canvas = render.NewCanvas(w, h, render.DefaultPixelSize, trail)

	a.sim = firework.NewSimulation(a.canvas, rnd, firework.Options{
		SpawnInterval: cfg.Fireworks.SpawnInterval,
		Palette:       palette,
		TrailColor:    trail,
		TrailAlpha:    cfg.Fireworks.TrailAlpha,
		Hooks: firework.Hooks{
			OnLaunch: func(*firework.Emitter) {
				a.launched.Add(1)
				a.playIfVisible(audio.SoundLaunch)
			},
			OnBurst: func(*firework.Emitter) {
				a.bursts.Add(1)
				a.playIfVisible(audio.SoundBurst)
			},
		},
	})

	a.ctrl = quiz.New(bank, rnd, a.sched, clock, quiz.Options{
		CorrectDelay: cfg.Quiz.CorrectDelay,
		WrongDelay:   cfg.Quiz.WrongDelay,
		Hooks: quiz.Hooks{
			OnAnswer: func(correct bool) {
				if correct {
					a.player.Play(audio.SoundCorrect)
				} else {
					a.player.Play(audio.SoundWrong)
				}
				a.log.Debug().Int("question", a.ctrl.Index()+1).Bool("correct", correct).Msg("answer graded")
			},
			OnVisibility: func(visible bool) {
				a.log.Debug().Bool("visible", visible).Msg("fireworks visibility")
			},
			OnFinish: func(score, total int) {
				a.log.Info().Int("score", score).Int("total", total).Msg("quiz finished")
			},
		},
	})

	a.hud = renderers.NewHUDRenderer(reg, player.Muted)
	a.orch = render.NewRenderOrchestrator(screen)
	a.orch.Register(renderers.NewBackgroundRenderer(), render.PriorityBackground)
	a.orch.Register(renderers.NewFireworksRenderer(a.canvas, a.ctrl.FireworksVisible), render.PriorityParticle)
	a.orch.Register(renderers.NewQuizPanelRenderer(a.ctrl, a.cursor), render.PriorityUI)
	a.orch.Register(a.hud, render.PriorityDebug)

	a.ctrl.Start()
	return a, nil
}

func (a *app) playIfVisible(s audio.SoundType) {
	if a.ctrl.FireworksVisible() {
		a.player.Play(s)
	}
}

// step runs one frame: input, due timers, simulation, metrics, render
// Returns false once the user asked to quit
func (a *app) step(now time.Time) bool {
	for {
		select {
		case ev := <-a.events:
			if !a.handleEvent(ev) {
				return false
			}
			continue
		default:
		}
		break
	}

	a.sched.Fire(now)
	a.syncCursor()

	a.sim.Step(now)

	a.frame++
	a.frames.Store(int64(a.frame))
	a.emitters.Store(int64(len(a.sim.Emitters())))
	a.particles.Store(int64(a.sim.ParticleCount()))
	a.fpsValue.Store(a.fps.Tick(now))

	w, h := a.screen.Size()
	a.orch.RenderFrame(render.RenderContext{Now: now, FrameNumber: a.frame, Width: w, Height: h})
	return true
}

// syncCursor moves the highlight back to the first answer whenever a new question appears
func (a *app) syncCursor() {
	if idx := a.ctrl.Index(); idx != a.lastIndex {
		a.cursor.Reset()
		a.lastIndex = idx
	}
}

// handleEvent applies one terminal event, returns false to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.canvas.Resize(w, h)
		a.orch.Resize()
		a.log.Debug().Int("cols", w).Int("rows", h).Msg("resize")
		return true
	case *tcell.EventKey:
		return a.handleAction(input.MapKey(ev))
	}
	return true
}

func (a *app) handleAction(act input.Action) bool {
	switch act.Intent {
	case input.IntentQuit:
		return false
	case input.IntentSelect:
		if q, ok := a.ctrl.Current(); ok && a.ctrl.Select(act.Index) {
			a.cursor.Set(act.Index, len(q.Answers))
		}
	case input.IntentCursorUp, input.IntentCursorDown:
		if q, ok := a.ctrl.Current(); ok && a.ctrl.Phase() == quiz.PhaseAsking {
			delta := 1
			if act.Intent == input.IntentCursorUp {
				delta = -1
			}
			a.cursor.Move(delta, len(q.Answers))
		}
	case input.IntentConfirm:
		switch a.ctrl.Phase() {
		case quiz.PhaseAsking:
			a.ctrl.Select(a.cursor.Pos())
		case quiz.PhaseFinal:
			a.replay()
		}
	case input.IntentReplay:
		a.replay()
	case input.IntentToggleMute:
		a.player.SetMuted(!a.player.Muted())
	case input.IntentToggleHUD:
		a.hud.Toggle()
	case input.IntentLaunch:
		if a.ctrl.FireworksVisible() {
			a.sim.LaunchRandom()
		}
	}
	return true
}

func (a *app) replay() {
	if a.ctrl.Replay() {
		a.cursor.Reset()
		a.lastIndex = 0
		a.log.Debug().Msg("replay")
	}
}
