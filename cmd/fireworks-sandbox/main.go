package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/liberty-quiz/audio"
	"github.com/lixenwraith/liberty-quiz/engine"
	"github.com/lixenwraith/liberty-quiz/firework"
	"github.com/lixenwraith/liberty-quiz/input"
	"github.com/lixenwraith/liberty-quiz/parameter"
	"github.com/lixenwraith/liberty-quiz/render"
	"github.com/lixenwraith/liberty-quiz/render/renderers"
	"github.com/lixenwraith/liberty-quiz/status"
)

var (
	seedFlag = flag.Uint64("seed", 0, "random seed, 0 is random")
	muteFlag = flag.Bool("mute", false, "start with audio muted")
)

// Control is one tunable shown in the bottom-left panel
type Control struct {
	Name     string
	Value    *float64
	Min, Max float64
	Step     float64
}

// sandbox runs the simulation without the quiz, always visible
type sandbox struct {
	screen   tcell.Screen
	canvas   *render.Canvas
	sim      *firework.Simulation
	player   audio.Player
	hud      *renderers.HUDRenderer
	orch     *render.RenderOrchestrator
	fps      *engine.FPSMeter
	registry *status.Registry

	intervalMs float64
	trailAlpha float64
	controls   []Control
	selected   int
	frame      uint64
}

func newSandbox(screen tcell.Screen, player audio.Player, seed uint64) *sandbox {
	reg := status.NewRegistry()
	sb := &sandbox{
		screen:     screen,
		player:     player,
		registry:   reg,
		fps:        engine.NewFPSMeter(parameter.FPSSampleWindow),
		intervalMs: float64(parameter.SpawnInterval / time.Millisecond),
		trailAlpha: parameter.TrailAlpha,
	}

	w, h := screen.Size()
	opts := firework.DefaultOptions()
	sb.canvas = render.NewCanvas(w, h, render.DefaultPixelSize, opts.TrailColor)

	launched := reg.Ints.Get(status.KeyLaunched)
	bursts := reg.Ints.Get(status.KeyBursts)
	opts.Hooks = firework.Hooks{
		OnLaunch: func(*firework.Emitter) {
			launched.Add(1)
			player.Play(audio.SoundLaunch)
		},
		OnBurst: func(*firework.Emitter) {
			bursts.Add(1)
			player.Play(audio.SoundBurst)
		},
	}
	sb.sim = firework.NewSimulation(sb.canvas, firework.NewRandom(seed), opts)

	sb.controls = []Control{
		{"Interval ms", &sb.intervalMs, 50, 3000, 50},
		{"Trail alpha", &sb.trailAlpha, 0.02, 1.0, 0.02},
	}

	sb.hud = renderers.NewHUDRenderer(reg, player.Muted)
	sb.hud.Toggle()
	sb.orch = render.NewRenderOrchestrator(screen)
	sb.orch.Register(renderers.NewFireworksRenderer(sb.canvas, nil), render.PriorityParticle)
	sb.orch.Register(sb, render.PriorityUI)
	sb.orch.Register(sb.hud, render.PriorityDebug)
	return sb
}

// adjust moves the selected control by dir steps and pushes it into the simulation
func (sb *sandbox) adjust(dir float64) {
	c := &sb.controls[sb.selected]
	*c.Value = min(max(*c.Value+dir*c.Step, c.Min), c.Max)

	opts := sb.sim.Options()
	opts.SpawnInterval = time.Duration(sb.intervalMs) * time.Millisecond
	opts.TrailAlpha = sb.trailAlpha
	sb.sim.SetOptions(opts)
}

func (sb *sandbox) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		sb.adjust(-1)
		return true
	case tcell.KeyRight:
		sb.adjust(1)
		return true
	}

	act := input.MapKey(ev)
	switch act.Intent {
	case input.IntentQuit:
		return false
	case input.IntentCursorUp:
		sb.selected = (sb.selected + len(sb.controls) - 1) % len(sb.controls)
	case input.IntentCursorDown:
		sb.selected = (sb.selected + 1) % len(sb.controls)
	case input.IntentLaunch:
		sb.sim.LaunchRandom()
	case input.IntentReset:
		sb.sim.Reset()
		sb.canvas.Clear()
	case input.IntentToggleMute:
		sb.player.SetMuted(!sb.player.Muted())
	case input.IntentToggleHUD:
		sb.hud.Toggle()
	}
	return true
}

func (sb *sandbox) step(now time.Time, events <-chan tcell.Event) bool {
drainInput:
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				sb.canvas.Resize(w, h)
				sb.orch.Resize()
			case *tcell.EventKey:
				if !sb.handleKey(ev) {
					return false
				}
			}
		default:
			break drainInput
		}
	}

	sb.sim.Step(now)

	sb.frame++
	sb.registry.Ints.Get(status.KeyFrames).Store(int64(sb.frame))
	sb.registry.Ints.Get(status.KeyEmitters).Store(int64(len(sb.sim.Emitters())))
	sb.registry.Ints.Get(status.KeyParticles).Store(int64(sb.sim.ParticleCount()))
	sb.registry.Floats.Get(status.KeyFPS).Store(sb.fps.Tick(now))

	w, h := sb.screen.Size()
	sb.orch.RenderFrame(render.RenderContext{Now: now, FrameNumber: sb.frame, Width: w, Height: h})
	return true
}

// Render draws the controls panel, implementing render.SystemRenderer
func (sb *sandbox) Render(ctx render.RenderContext, screen render.Screen) {
	fg := tcell.StyleDefault.Foreground(render.RgbPanelDim).Background(tcell.ColorBlack)
	sel := tcell.StyleDefault.Foreground(render.RgbPanelTitle).Background(tcell.ColorBlack)

	lines := []string{parameter.SandboxHint, "[↑↓] Select  [←→] Adjust", ""}
	for i, c := range sb.controls {
		marker := "  "
		if i == sb.selected {
			marker = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%-12s %.2f", marker, c.Name, *c.Value))
	}

	startY := ctx.Height - len(lines) - 1
	for i, line := range lines {
		y := startY + i
		if y < 0 || y >= ctx.Height {
			continue
		}
		style := fg
		if i-3 == sb.selected {
			style = sel
		}
		x := 1
		for _, r := range line {
			if x >= ctx.Width {
				break
			}
			screen.SetContent(x, y, r, nil, style)
			x++
		}
	}
}

func startInputReader(screen tcell.Screen) <-chan tcell.Event {
	ch := make(chan tcell.Event, parameter.InputQueueSize)
	go func() {
		defer close(ch)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			ch <- ev
		}
	}()
	return ch
}

func main() {
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	var player audio.Player = &audio.NopPlayer{}
	sp := audio.NewSpeakerPlayer(nil)
	if err := sp.Start(); err == nil {
		player = sp
	}
	defer player.Close()
	player.SetMuted(*muteFlag)

	sb := newSandbox(screen, player, *seedFlag)
	events := startInputReader(screen)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	loop := engine.NewFrameLoop(ticker.C, func(now time.Time) bool {
		return sb.step(now, events)
	})
	_ = loop.Run(ctx)
}
