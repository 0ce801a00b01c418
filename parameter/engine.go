package parameter

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MinFrameRate and MaxFrameRate bound the -fps flag and config value
	MinFrameRate = 10
	MaxFrameRate = 240

	// InputQueueSize is the buffered capacity between the poller goroutine and the frame loop
	InputQueueSize = 256

	// FPSSampleWindow is the period over which the HUD frame rate is averaged
	FPSSampleWindow = time.Second
)
