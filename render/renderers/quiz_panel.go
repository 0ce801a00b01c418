package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/liberty-quiz/input"
	"github.com/lixenwraith/liberty-quiz/parameter"
	"github.com/lixenwraith/liberty-quiz/quiz"
	"github.com/lixenwraith/liberty-quiz/render"
)

// panelLine is one row of the quiz panel
// Rows with fill paint their background across the panel and are left-aligned
type panelLine struct {
	text  string
	style tcell.Style
	fill  bool
}

// QuizPanelRenderer draws the current question, answers, feedback and the final score
type QuizPanelRenderer struct {
	ctrl   *quiz.Controller
	cursor *input.Cursor
	base   tcell.Style
}

// NewQuizPanelRenderer creates the panel for ctrl, cursor marks the highlighted answer
func NewQuizPanelRenderer(ctrl *quiz.Controller, cursor *input.Cursor) *QuizPanelRenderer {
	return &QuizPanelRenderer{
		ctrl:   ctrl,
		cursor: cursor,
		base:   tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbPanelText),
	}
}

// panelWidth returns the text column width for a terminal of w cells
func panelWidth(w int) int {
	return max(min(w-2*parameter.PanelSideMargin, parameter.PanelMaxWidth), 1)
}

// Render implements SystemRenderer
func (r *QuizPanelRenderer) Render(ctx render.RenderContext, screen render.Screen) {
	width := panelWidth(ctx.Width)
	x0 := (ctx.Width - width) / 2
	lines := r.layout(width)
	top := max((ctx.Height-1-len(lines))/2, 0)

	for i, l := range lines {
		y := top + i
		if l.fill {
			fillRow(screen, x0, x0+width, y, l.style)
			drawText(screen, x0, y, l.text, l.style)
			continue
		}
		drawCentered(screen, x0, width, y, l.text, l.style)
	}

	if r.ctrl.Phase() != quiz.PhaseFinal && ctx.Height > 0 {
		drawCentered(screen, 0, ctx.Width, ctx.Height-1, parameter.AnswerHint, r.base.Foreground(render.RgbPanelDim))
	}
}

// layout builds the panel rows for the current quiz phase
func (r *QuizPanelRenderer) layout(width int) []panelLine {
	dim := r.base.Foreground(render.RgbPanelDim)

	switch r.ctrl.Phase() {
	case quiz.PhaseFinal:
		headline, score := r.ctrl.FinalText()
		return []panelLine{
			{text: headline, style: r.base.Foreground(render.RgbPanelTitle).Bold(true)},
			{},
			{text: score, style: r.base},
			{},
			{text: parameter.ReplayHint, style: dim},
		}
	case quiz.PhaseIdle:
		return nil
	}

	q, ok := r.ctrl.Current()
	if !ok {
		return nil
	}

	lines := []panelLine{
		{text: fmt.Sprintf(parameter.QuestionCounterFormat, r.ctrl.Index()+1, r.ctrl.Total()), style: dim},
		{},
	}
	for _, s := range wrap(q.Text, width) {
		lines = append(lines, panelLine{text: s, style: r.base.Bold(true)})
	}
	lines = append(lines, panelLine{})

	for i, a := range q.Answers {
		lines = append(lines, r.answerLine(i, a, width))
	}

	if res := r.ctrl.ResultText(); res != "" {
		color := render.RgbResultBad
		if r.ctrl.LastCorrect() {
			color = render.RgbResultGood
		}
		lines = append(lines, panelLine{}, panelLine{text: res, style: r.base.Foreground(color).Bold(true)})
	}
	return lines
}

func (r *QuizPanelRenderer) answerLine(i int, a quiz.Answer, width int) panelLine {
	indent := "  "
	style := r.base
	asking := r.ctrl.Phase() == quiz.PhaseAsking

	switch {
	case !asking && i == r.ctrl.Selected():
		if r.ctrl.LastCorrect() {
			style = style.Background(render.RgbCorrectBg)
		} else {
			style = style.Background(render.RgbWrongBg)
		}
	case asking && i == r.cursor.Pos():
		indent = parameter.CursorMarker
		style = style.Background(render.RgbCursorBg)
	}

	label := runewidth.Truncate(fmt.Sprintf(parameter.AnswerLabelFormat, i+1, a.Text), width-parameter.AnswerIndent, "…")
	return panelLine{text: indent + label, style: style, fill: true}
}
