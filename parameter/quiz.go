package parameter

import "time"

// Quiz Flow Timing
const (
	// CorrectAdvanceDelay is the pause on a correct answer before the next question
	CorrectAdvanceDelay = 3 * time.Second
	// WrongFinishDelay is the pause on a wrong answer before the final score
	WrongFinishDelay = 2 * time.Second
)

// Result and final score text
const (
	ResultCorrectText   = "Correct! 🇺🇸"
	ResultIncorrectText = "Incorrect! 🙁"
	FinalScoreFormat    = "You scored %d out of %d!"
	FinalLineFormat     = "Final Score: %d / %d"
	ReplayHint          = "[R] Replay   [Q] Quit"
)
