package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/liberty-quiz/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave, sweeping linearly from freqStart to freqEnd
type oscillator struct {
	freqStart float64
	freqEnd   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
	noise     *rand.Rand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator whose frequency glides from start to end over the duration
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freqStart: start,
		freqEnd:   end,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
		noise:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freqStart + (o.freqEnd-o.freqStart)*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release ramps to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	releaseStart   int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		releaseStart:   att + sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= e.releaseStart {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume maps a linear gain onto beep's log2 volume, zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateLaunchSound generates a rising square chirp for a shell leaving the ground
func CreateLaunchSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(parameter.LaunchSoundFreqStart, parameter.LaunchSoundFreqEnd, parameter.LaunchSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.LaunchSoundDuration, parameter.LaunchSoundAttack, parameter.LaunchSoundRelease, rate)
	return newVolume(shaped, cfg.gain(SoundLaunch))
}

// CreateBurstSound generates a noise crack over a low thump
func CreateBurstSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.BurstSoundDuration, WaveNoise, rate)
	crack := NewEnvelope(noise, parameter.BurstSoundDuration, parameter.BurstSoundAttack, parameter.BurstSoundRelease, rate)

	low := NewSweep(120, 50, parameter.BurstSoundDuration, WaveSine, rate)
	thump := NewEnvelope(low, parameter.BurstSoundDuration, parameter.BurstSoundAttack, parameter.BurstSoundRelease, rate)

	mixed := beep.Mix(newVolume(crack, 0.6), newVolume(thump, 0.4))
	return newVolume(mixed, cfg.gain(SoundBurst))
}

// CreateCorrectSound generates a two-note chime (B5, E6)
func CreateCorrectSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(987.77, parameter.CorrectSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.CorrectSoundNote1Duration, parameter.CorrectSoundAttack, parameter.CorrectSoundNote1Release, rate)

	n2 := NewOscillator(1318.51, parameter.CorrectSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.CorrectSoundNote2Duration, parameter.CorrectSoundAttack, parameter.CorrectSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.gain(SoundCorrect))
}

// CreateWrongSound generates a low saw buzz
func CreateWrongSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(110.0, parameter.WrongSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.WrongSoundDuration, parameter.WrongSoundAttack, parameter.WrongSoundRelease, rate)
	return newVolume(shaped, cfg.gain(SoundWrong))
}

// NewSound returns a fresh streamer for s, nil for an unknown type
func NewSound(s SoundType, cfg *Config) beep.Streamer {
	switch s {
	case SoundLaunch:
		return CreateLaunchSound(cfg)
	case SoundBurst:
		return CreateBurstSound(cfg)
	case SoundCorrect:
		return CreateCorrectSound(cfg)
	case SoundWrong:
		return CreateWrongSound(cfg)
	}
	return nil
}
