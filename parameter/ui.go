package parameter

// Quiz Panel Layout
const (
	// PanelMaxWidth caps the text column on wide terminals
	PanelMaxWidth = 72

	// PanelSideMargin is kept free on each side on narrow terminals
	PanelSideMargin = 2

	// AnswerIndent offsets answer labels inside their highlighted row
	AnswerIndent = 2
)

// Panel Text
const (
	QuestionCounterFormat = "Question %d / %d"
	AnswerLabelFormat     = "%d. %s"
	CursorMarker          = "▸ "
	AnswerHint            = "[1-4] Answer   [↑↓ Enter] Choose   [M] Mute   [H] HUD   [Q] Quit"
	SandboxHint           = "[Space] Launch   [X] Reset   [M] Mute   [H] HUD   [Q] Quit"
)

// HUD
const (
	HUDTitle     = "── stats ──"
	AudioOnText  = "audio: on"
	AudioOffText = "audio: muted"
)
