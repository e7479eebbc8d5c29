package quiz

import (
	"errors"
	"maps"
)

var (
	ErrUnanswered        = errors.New("current question has no answer")
	ErrUnknownOption     = errors.New("option does not belong to the current question")
	ErrInvalidTransition = errors.New("quiz cannot move there from its current stage")
	ErrNotFinished       = errors.New("quiz has not reached the result")
	ErrInvalidState      = errors.New("quiz state does not fit the question bank")
)

type Stage string

const (
	StageIntro    Stage = "intro"
	StageQuestion Stage = "question"
	StageResult   Stage = "result"
)

// allowedTransitions is the stage diagram. Moves between questions stay in
// StageQuestion and are checked by Next and Back.
var allowedTransitions = map[Stage][]Stage{
	StageIntro:    {StageQuestion},
	StageQuestion: {StageQuestion, StageResult, StageIntro},
	StageResult:   {StageQuestion, StageIntro},
}

func canTransition(from, to Stage) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// State is the serialisable progress of one quiz run. Step 0 is the intro,
// steps 1..N are questions and N+1 is the result.
type State struct {
	Step    int     `json:"step"`
	Answers Answers `json:"answers"`
}

// Flow drives a single user through a question bank. It is not safe for
// concurrent use; callers own one Flow per run.
type Flow struct {
	questions []Question
	state     State
}

func NewFlow(questions []Question) *Flow {
	return &Flow{questions: questions, state: State{Answers: Answers{}}}
}

// RestoreFlow resumes a run from a saved State.
func RestoreFlow(questions []Question, state State) (*Flow, error) {
	if state.Step < 0 || state.Step > len(questions)+1 {
		return nil, ErrInvalidState
	}
	answers := make(Answers, len(state.Answers))
	maps.Copy(answers, state.Answers)
	return &Flow{questions: questions, state: State{Step: state.Step, Answers: answers}}, nil
}

// State returns a copy of the current progress.
func (f *Flow) State() State {
	return State{Step: f.state.Step, Answers: f.Answers()}
}

func (f *Flow) Answers() Answers {
	out := make(Answers, len(f.state.Answers))
	maps.Copy(out, f.state.Answers)
	return out
}

func (f *Flow) Step() int { return f.state.Step }

func (f *Flow) TotalSteps() int { return len(f.questions) }

func (f *Flow) Stage() Stage {
	switch {
	case f.state.Step == 0:
		return StageIntro
	case f.state.Step > len(f.questions):
		return StageResult
	default:
		return StageQuestion
	}
}

// Current returns the question on screen, if any.
func (f *Flow) Current() (Question, bool) {
	if f.Stage() != StageQuestion {
		return Question{}, false
	}
	return f.questions[f.state.Step-1], true
}

// CanAdvance reports whether Next would succeed.
func (f *Flow) CanAdvance() bool {
	q, ok := f.Current()
	if !ok {
		return f.Stage() == StageIntro
	}
	_, answered := q.Option(f.state.Answers[q.ID])
	return answered
}

func (f *Flow) moveTo(step int) error {
	from := f.Stage()
	prev := f.state.Step
	f.state.Step = step
	if !canTransition(from, f.Stage()) {
		f.state.Step = prev
		return ErrInvalidTransition
	}
	return nil
}

// Start leaves the intro for the first question.
func (f *Flow) Start() error {
	if f.Stage() != StageIntro {
		return ErrInvalidTransition
	}
	return f.moveTo(1)
}

// Answer records value for the current question, replacing any earlier
// choice.
func (f *Flow) Answer(value string) error {
	q, ok := f.Current()
	if !ok {
		return ErrInvalidTransition
	}
	if _, ok := q.Option(value); !ok {
		return ErrUnknownOption
	}
	f.state.Answers[q.ID] = value
	return nil
}

// Next advances one step. A question without an answer keeps the flow where
// it is and returns ErrUnanswered.
func (f *Flow) Next() error {
	switch f.Stage() {
	case StageIntro:
		return f.Start()
	case StageQuestion:
		if !f.CanAdvance() {
			return ErrUnanswered
		}
		return f.moveTo(f.state.Step + 1)
	default:
		return ErrInvalidTransition
	}
}

// Back returns to the previous question, keeping every answer. It does
// nothing on the first question or outside the questions.
func (f *Flow) Back() error {
	if f.Stage() != StageQuestion || f.state.Step <= 1 {
		return nil
	}
	return f.moveTo(f.state.Step - 1)
}

// Redo restarts from the first question with no answers.
func (f *Flow) Redo() error {
	if f.Stage() != StageResult {
		return ErrInvalidTransition
	}
	if err := f.moveTo(1); err != nil {
		return err
	}
	f.state.Answers = Answers{}
	return nil
}

// Close abandons the run and returns to the intro with no answers.
func (f *Flow) Close() {
	f.state = State{Answers: Answers{}}
}

// Result is the resolved profile once the last question has been passed.
func (f *Flow) Result() (ProfileKey, error) {
	if f.Stage() != StageResult {
		return "", ErrNotFinished
	}
	return ResolveProfile(f.state.Answers, f.questions), nil
}

// Scores tallies the answers recorded so far.
func (f *Flow) Scores() Scores {
	return Tally(f.state.Answers, f.questions)
}
