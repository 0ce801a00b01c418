package quiz

import (
	"fmt"
	"time"

	"github.com/lixenwraith/liberty-quiz/engine"
	"github.com/lixenwraith/liberty-quiz/parameter"
)

// Phase is the quiz flow state
type Phase int

const (
	PhaseIdle     Phase = iota // before the first Start
	PhaseAsking                // waiting for an answer
	PhaseFeedback              // answer shown, timer pending
	PhaseFinal                 // final score shown
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAsking:
		return "asking"
	case PhaseFeedback:
		return "feedback"
	case PhaseFinal:
		return "final"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Random is the shuffle source, *rand.Rand satisfies it
type Random interface {
	IntN(n int) int
}

// Hooks are optional callbacks invoked synchronously on state changes
type Hooks struct {
	// OnVisibility reports every fireworks show/hide decision
	OnVisibility func(visible bool)
	// OnAnswer runs after an answer was graded
	OnAnswer func(correct bool)
	// OnFinish runs when the final score is shown
	OnFinish func(score, total int)
}

// Options configure the flow delays, zero values use parameter defaults
type Options struct {
	CorrectDelay time.Duration
	WrongDelay   time.Duration
	Hooks        Hooks
}

// Controller runs the quiz: shuffling, grading, delayed transitions and the fireworks toggle
// Delays are scheduled on the shared Scheduler and run from the frame loop
type Controller struct {
	bank  []Question
	rnd   Random
	sched *engine.Scheduler
	clock engine.TimeProvider
	opts  Options

	questions   []Question
	index       int
	score       int
	phase       Phase
	selected    int
	lastCorrect bool
	visible     bool
	pending     engine.TimerID
}

// New creates a controller in PhaseIdle, call Start to begin
func New(bank []Question, rnd Random, sched *engine.Scheduler, clock engine.TimeProvider, opts Options) *Controller {
	if opts.CorrectDelay <= 0 {
		opts.CorrectDelay = parameter.CorrectAdvanceDelay
	}
	if opts.WrongDelay <= 0 {
		opts.WrongDelay = parameter.WrongFinishDelay
	}
	return &Controller{
		bank:     bank,
		rnd:      rnd,
		sched:    sched,
		clock:    clock,
		opts:     opts,
		selected: -1,
	}
}

// Start shuffles questions and answers and shows the first question
func (c *Controller) Start() {
	c.cancelPending()

	c.questions = make([]Question, len(c.bank))
	for i, q := range c.bank {
		c.questions[i] = q.clone()
	}
	shuffle(c.rnd, c.questions)
	for i := range c.questions {
		shuffle(c.rnd, c.questions[i].Answers)
	}

	c.index = 0
	c.score = 0
	c.lastCorrect = false
	c.setVisible(false)

	if len(c.questions) == 0 {
		c.Finish()
		return
	}
	c.showQuestion()
}

// Select grades answer i of the current question
// Ignored outside PhaseAsking or for an out-of-range index, returns whether it was accepted
func (c *Controller) Select(i int) bool {
	if c.phase != PhaseAsking {
		return false
	}
	q := &c.questions[c.index]
	if i < 0 || i >= len(q.Answers) {
		return false
	}

	c.selected = i
	c.lastCorrect = q.Answers[i].Correct
	c.phase = PhaseFeedback

	now := c.clock.Now()
	if c.lastCorrect {
		c.score++
		c.pending = c.sched.After(now, c.opts.CorrectDelay, c.Next)
	} else {
		// A miss ends the run
		c.pending = c.sched.After(now, c.opts.WrongDelay, c.Finish)
	}

	if c.opts.Hooks.OnAnswer != nil {
		c.opts.Hooks.OnAnswer(c.lastCorrect)
	}
	return true
}

// Next moves to the following question or finishes when none remain
func (c *Controller) Next() {
	c.pending = 0
	c.index++
	if c.index < len(c.questions) {
		c.showQuestion()
		return
	}
	c.Finish()
}

// Finish shows the final score; fireworks are visible iff every question was answered correctly
// An empty run never celebrates
func (c *Controller) Finish() {
	c.pending = 0
	c.phase = PhaseFinal
	c.selected = -1
	total := len(c.questions)
	c.setVisible(total > 0 && c.score == total)

	if c.opts.Hooks.OnFinish != nil {
		c.opts.Hooks.OnFinish(c.score, total)
	}
}

// Replay restarts from the final screen, returns false in any other phase
func (c *Controller) Replay() bool {
	if c.phase != PhaseFinal {
		return false
	}
	c.Start()
	return true
}

func (c *Controller) showQuestion() {
	c.phase = PhaseAsking
	c.selected = -1
	c.setVisible(false)
}

func (c *Controller) setVisible(v bool) {
	c.visible = v
	if c.opts.Hooks.OnVisibility != nil {
		c.opts.Hooks.OnVisibility(v)
	}
}

func (c *Controller) cancelPending() {
	if c.pending != 0 {
		c.sched.Cancel(c.pending)
		c.pending = 0
	}
}

// shuffle is an in-place Fisher-Yates pass
func shuffle[T any](rnd Random, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rnd.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Phase returns the current flow state
func (c *Controller) Phase() Phase { return c.phase }

// Score returns the number of correct answers so far
func (c *Controller) Score() int { return c.score }

// Total returns the number of questions in the run
func (c *Controller) Total() int { return len(c.questions) }

// Index returns the zero-based position of the current question
func (c *Controller) Index() int { return c.index }

// Selected returns the answer picked for the current question, -1 if none
func (c *Controller) Selected() int { return c.selected }

// LastCorrect reports whether the most recent answer was correct
func (c *Controller) LastCorrect() bool { return c.lastCorrect }

// FireworksVisible reports the celebration visibility flag
func (c *Controller) FireworksVisible() bool { return c.visible }

// Current returns the question on screen, false outside Asking/Feedback
func (c *Controller) Current() (Question, bool) {
	if c.phase != PhaseAsking && c.phase != PhaseFeedback {
		return Question{}, false
	}
	return c.questions[c.index], true
}

// ResultText returns the feedback line, empty outside PhaseFeedback
func (c *Controller) ResultText() string {
	if c.phase != PhaseFeedback {
		return ""
	}
	if c.lastCorrect {
		return parameter.ResultCorrectText
	}
	return parameter.ResultIncorrectText
}

// FinalText returns the headline and score line shown on the final screen
func (c *Controller) FinalText() (headline, line string) {
	total := len(c.questions)
	return fmt.Sprintf(parameter.FinalScoreFormat, c.score, total),
		fmt.Sprintf(parameter.FinalLineFormat, c.score, total)
}
