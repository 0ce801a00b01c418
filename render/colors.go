package render

import "github.com/gdamore/tcell/v2"

// UI colors, tuned for a dark terminal background
var (
	RgbBackground = tcell.NewRGBColor(14, 18, 40) // Navy night sky

	RgbPanelText   = tcell.NewRGBColor(235, 235, 240) // Near white
	RgbPanelDim    = tcell.NewRGBColor(140, 145, 170) // Muted slate for counters and hints
	RgbPanelTitle  = tcell.NewRGBColor(255, 215, 90)  // Gold headline
	RgbCursorBg    = tcell.NewRGBColor(50, 60, 110)   // Highlighted answer row
	RgbCorrectBg   = tcell.NewRGBColor(0, 140, 60)    // Graded correct
	RgbWrongBg     = tcell.NewRGBColor(170, 30, 40)   // Graded wrong
	RgbResultGood  = tcell.NewRGBColor(90, 230, 120)  // Correct feedback line
	RgbResultBad   = tcell.NewRGBColor(255, 100, 100) // Incorrect feedback line
	RgbHUDText     = tcell.NewRGBColor(100, 220, 150) // Metric values
	RgbAudioMuted  = tcell.NewRGBColor(255, 80, 80)   // Mute indicator
	RgbAudioActive = tcell.NewRGBColor(80, 200, 80)   // Sound on indicator
)
