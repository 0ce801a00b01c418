package audio

import (
	"fmt"

	"github.com/lixenwraith/liberty-quiz/parameter"
)

// SoundType identifies a sound effect
type SoundType int

const (
	SoundLaunch  SoundType = iota // Shell leaves the ground
	SoundBurst                    // Shell explodes
	SoundCorrect                  // Answer graded correct
	SoundWrong                    // Answer graded wrong
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundLaunch:
		return "launch"
	case SoundBurst:
		return "burst"
	case SoundCorrect:
		return "correct"
	case SoundWrong:
		return "wrong"
	}
	return fmt.Sprintf("sound(%d)", int(s))
}

// Config holds sample rate and per-effect gain
type Config struct {
	SampleRate   int
	MasterVolume float64
	Volumes      [soundTypeCount]float64
}

// DefaultConfig returns the default mix; fireworks sit below answer feedback
func DefaultConfig() *Config {
	return &Config{
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.DefaultMasterVolume,
		Volumes: [soundTypeCount]float64{
			SoundLaunch:  0.25,
			SoundBurst:   0.4,
			SoundCorrect: 0.8,
			SoundWrong:   0.6,
		},
	}
}

// gain returns the effective volume for s
func (c *Config) gain(s SoundType) float64 {
	if s < 0 || s >= soundTypeCount {
		return 0
	}
	return c.Volumes[s] * c.MasterVolume
}
