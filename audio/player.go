package audio

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/liberty-quiz/parameter"
)

// ErrClosed is returned when starting a player that was already closed
var ErrClosed = errors.New("audio player closed")

// Player plays fire-and-forget sound effects
type Player interface {
	Play(s SoundType)
	SetMuted(muted bool)
	Muted() bool
	Close()
}

// NopPlayer drops every sound, used when no audio device is available
type NopPlayer struct {
	muted atomic.Bool
}

func (p *NopPlayer) Play(SoundType)      {}
func (p *NopPlayer) SetMuted(muted bool) { p.muted.Store(muted) }
func (p *NopPlayer) Muted() bool         { return p.muted.Load() }
func (p *NopPlayer) Close()              {}

// SpeakerPlayer streams effects through the beep speaker
// All effects share one mixer; the speaker goroutine drains it
type SpeakerPlayer struct {
	mu      sync.Mutex
	cfg     *Config
	mixer   *beep.Mixer
	started bool
	closed  bool
	muted   atomic.Bool
}

// NewSpeakerPlayer creates an unstarted player, nil cfg uses DefaultConfig
func NewSpeakerPlayer(cfg *Config) *SpeakerPlayer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SpeakerPlayer{cfg: cfg, mixer: &beep.Mixer{}}
}

// Start opens the audio device, calling it again is a no-op
func (p *SpeakerPlayer) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}
	if p.started {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Play queues a new instance of s on the mixer, dropped when muted or not started
func (p *SpeakerPlayer) Play(s SoundType) {
	if p.muted.Load() {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}

	st := NewSound(s, p.cfg)
	if st == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

// SetMuted silences new effects; muting also cuts what is playing
func (p *SpeakerPlayer) SetMuted(muted bool) {
	p.muted.Store(muted)
	if !muted {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
}

// Muted reports the mute flag
func (p *SpeakerPlayer) Muted() bool {
	return p.muted.Load()
}

// Active returns the number of effects still streaming
func (p *SpeakerPlayer) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.mixer.Len()
}

// Close stops playback and releases the device
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	if !p.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.started = false
}
