package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultMasterVolume is applied to every effect (0.0-1.0)
	DefaultMasterVolume = 0.5
)

// Launch Sound: rising square chirp
const (
	LaunchSoundDuration  = 180 * time.Millisecond
	LaunchSoundAttack    = 20 * time.Millisecond
	LaunchSoundRelease   = 120 * time.Millisecond
	LaunchSoundFreqStart = 300.0
	LaunchSoundFreqEnd   = 900.0
)

// Burst Sound: noise crack
const (
	BurstSoundDuration = 350 * time.Millisecond
	BurstSoundAttack   = 5 * time.Millisecond
	BurstSoundRelease  = 300 * time.Millisecond
)

// Correct Sound: two-note chime (B5, E6)
const (
	CorrectSoundNote1Duration = 90 * time.Millisecond
	CorrectSoundNote2Duration = 220 * time.Millisecond
	CorrectSoundAttack        = 5 * time.Millisecond
	CorrectSoundNote1Release  = 40 * time.Millisecond
	CorrectSoundNote2Release  = 180 * time.Millisecond
)

// Wrong Sound: low saw buzz
const (
	WrongSoundDuration = 250 * time.Millisecond
	WrongSoundAttack   = 10 * time.Millisecond
	WrongSoundRelease  = 80 * time.Millisecond
)
