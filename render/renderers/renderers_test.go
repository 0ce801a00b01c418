package renderers

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/liberty-quiz/engine"
	"github.com/lixenwraith/liberty-quiz/input"
	"github.com/lixenwraith/liberty-quiz/parameter"
	"github.com/lixenwraith/liberty-quiz/quiz"
	"github.com/lixenwraith/liberty-quiz/render"
	"github.com/lixenwraith/liberty-quiz/status"
)

const screenW, screenH = 80, 20

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Simulation screen init: %v", err)
	}
	s.SetSize(screenW, screenH)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

// findRow returns the first row containing sub, or -1
func findRow(s tcell.SimulationScreen, sub string) int {
	_, h := s.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(s, y), sub) {
			return y
		}
	}
	return -1
}

type keepOrder struct{}

func (keepOrder) IntN(n int) int { return n - 1 }

type quizFixture struct {
	clock  *engine.MockTimeProvider
	sched  *engine.Scheduler
	ctrl   *quiz.Controller
	cursor *input.Cursor
	panel  *QuizPanelRenderer
}

func newQuizFixture() *quizFixture {
	bank := []quiz.Question{
		{Text: "What is the capital of the United States?", Answers: []quiz.Answer{
			{Text: "New York"}, {Text: "Washington D.C.", Correct: true},
		}},
		{Text: "Which is the largest state by area?", Answers: []quiz.Answer{
			{Text: "Alaska", Correct: true}, {Text: "Texas"},
		}},
	}
	f := &quizFixture{
		clock:  engine.NewMockTimeProvider(time.Unix(0, 0)),
		sched:  engine.NewScheduler(),
		cursor: &input.Cursor{},
	}
	f.ctrl = quiz.New(bank, keepOrder{}, f.sched, f.clock, quiz.Options{})
	f.panel = NewQuizPanelRenderer(f.ctrl, f.cursor)
	f.ctrl.Start()
	return f
}

func (f *quizFixture) render(s tcell.SimulationScreen) {
	s.Clear()
	f.panel.Render(render.RenderContext{Width: screenW, Height: screenH}, s)
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"Fits", "Which state", 20, []string{"Which state"}},
		{"Breaks on spaces", "Which state has the longest coastline", 15, []string{"Which state has", "the longest", "coastline"}},
		{"Long word truncated", "Wrangell–St.Elias", 8, []string{"Wrangel…"}},
		{"Collapses spaces", "  a   b  ", 10, []string{"a b"}},
		{"Zero width", "anything", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrap(tt.text, tt.width); !slices.Equal(got, tt.want) {
				t.Errorf("wrap = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQuizPanelAsking(t *testing.T) {
	s := newSimScreen(t)
	f := newQuizFixture()
	f.render(s)

	if findRow(s, "Question 1 / 2") < 0 {
		t.Error("Counter not drawn")
	}
	if findRow(s, "What is the capital") < 0 {
		t.Error("Question text not drawn")
	}
	first := findRow(s, "1. New York")
	second := findRow(s, "2. Washington D.C.")
	if first < 0 || second != first+1 {
		t.Fatalf("Answers misplaced: rows %d and %d", first, second)
	}
	if !strings.Contains(rowText(s, first), parameter.CursorMarker) {
		t.Error("Cursor marker missing on first answer")
	}
	if findRow(s, "[Q] Quit") != screenH-1 {
		t.Error("Key hint not on the last row")
	}

	f.cursor.Move(1, 2)
	f.render(s)
	if !strings.Contains(rowText(s, second), parameter.CursorMarker) {
		t.Error("Cursor marker did not follow the cursor")
	}
}

func TestQuizPanelFeedbackColors(t *testing.T) {
	s := newSimScreen(t)
	f := newQuizFixture()
	f.ctrl.Select(0)
	f.render(s)

	row := findRow(s, "1. New York")
	if row < 0 {
		t.Fatal("Selected answer not drawn")
	}
	_, _, style, _ := s.GetContent((screenW-panelWidth(screenW))/2, row)
	if _, bg, _ := style.Decompose(); bg != render.RgbWrongBg {
		t.Errorf("Wrong answer row bg = %v, want %v", bg, render.RgbWrongBg)
	}
	if findRow(s, "Incorrect!") < 0 {
		t.Error("Feedback line missing")
	}
}

func TestQuizPanelCorrectFeedback(t *testing.T) {
	s := newSimScreen(t)
	f := newQuizFixture()
	f.ctrl.Select(1)
	f.render(s)

	row := findRow(s, "2. Washington D.C.")
	_, _, style, _ := s.GetContent((screenW-panelWidth(screenW))/2, row)
	if _, bg, _ := style.Decompose(); bg != render.RgbCorrectBg {
		t.Errorf("Correct answer row bg = %v, want %v", bg, render.RgbCorrectBg)
	}
	if findRow(s, "Correct!") < 0 {
		t.Error("Feedback line missing")
	}
}

func TestQuizPanelFinal(t *testing.T) {
	s := newSimScreen(t)
	f := newQuizFixture()
	f.ctrl.Select(0)
	f.sched.Fire(f.clock.Advance(parameter.WrongFinishDelay))
	f.render(s)

	if findRow(s, "You scored 0 out of 2!") < 0 {
		t.Error("Final headline missing")
	}
	if findRow(s, "Final Score: 0 / 2") < 0 {
		t.Error("Final score line missing")
	}
	if findRow(s, "[R] Replay") < 0 {
		t.Error("Replay hint missing")
	}
	if findRow(s, "Question") >= 0 {
		t.Error("Question counter drawn on the final screen")
	}
}

func TestQuizPanelNarrowScreen(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Simulation screen init: %v", err)
	}
	defer s.Fini()
	s.SetSize(6, 3)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Panel panicked on a tiny screen: %v", r)
		}
	}()
	f := newQuizFixture()
	f.panel.Render(render.RenderContext{Width: 6, Height: 3}, s)
}

func TestFireworksRendererVisibility(t *testing.T) {
	visible := false
	r := NewFireworksRenderer(render.NewCanvas(4, 2, render.DefaultPixelSize, render.RGBBlack), func() bool { return visible })
	if r.IsVisible() {
		t.Error("Expected hidden")
	}
	visible = true
	if !r.IsVisible() {
		t.Error("Expected visible")
	}
	if !NewFireworksRenderer(nil, nil).IsVisible() {
		t.Error("Nil visibility func should mean always visible")
	}

	s := newSimScreen(t)
	r.Render(render.RenderContext{Width: screenW, Height: screenH}, s)
	if got, _, _, _ := s.GetContent(3, 1); got != render.HalfBlock {
		t.Errorf("Canvas not presented, got %q", got)
	}
}

func TestHUDRenderer(t *testing.T) {
	reg := status.NewRegistry()
	reg.Ints.Get(status.KeyEmitters).Store(3)
	reg.Floats.Get(status.KeyFPS).Store(60)
	muted := true
	hud := NewHUDRenderer(reg, func() bool { return muted })

	if hud.IsVisible() {
		t.Error("HUD should start hidden")
	}
	hud.Toggle()
	if !hud.IsVisible() {
		t.Error("Toggle did not show HUD")
	}

	want := []string{parameter.HUDTitle, "engine.fps: 60.0", "fireworks.emitters: 3", parameter.AudioOffText}
	if got := hud.Lines(); !slices.Equal(got, want) {
		t.Errorf("Lines = %q, want %q", got, want)
	}

	s := newSimScreen(t)
	hud.Render(render.RenderContext{Width: screenW, Height: screenH}, s)
	if findRow(s, "fireworks.emitters: 3") != 2 {
		t.Error("Metric row misplaced")
	}
}

func TestBackgroundRenderer(t *testing.T) {
	s := newSimScreen(t)
	NewBackgroundRenderer().Render(render.RenderContext{Width: screenW, Height: screenH}, s)
	_, _, style, _ := s.GetContent(screenW-1, screenH-1)
	if _, bg, _ := style.Decompose(); bg != render.RgbBackground {
		t.Errorf("Background = %v, want %v", bg, render.RgbBackground)
	}
}
