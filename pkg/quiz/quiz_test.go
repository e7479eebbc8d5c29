package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bank builds n questions, each offering one option per profile with the
// value "<profile>".
func bank(n int) []Question {
	qs := make([]Question, 0, n)
	for i := 1; i <= n; i++ {
		q := Question{ID: "q" + string(rune('0'+i)), Title: "question"}
		for _, k := range TieBreakOrder {
			q.Options = append(q.Options, Option{Value: string(k), Label: string(k), Profile: k})
		}
		qs = append(qs, q)
	}
	return qs
}

func TestResolveProfile(t *testing.T) {
	questions := bank(7)

	tests := []struct {
		name    string
		answers Answers
		want    ProfileKey
	}{
		{name: "empty answers", answers: Answers{}, want: ProfileConsciente},
		{name: "nil answers", answers: nil, want: ProfileConsciente},
		{name: "social ties radical", answers: Answers{"q1": "social", "q2": "radical"}, want: ProfileSocial},
		{name: "radical ties solo", answers: Answers{"q1": "solo", "q2": "radical"}, want: ProfileRadical},
		{name: "consciente wins every tie", answers: Answers{"q1": "solo", "q2": "radical", "q3": "social", "q4": "consciente"}, want: ProfileConsciente},
		{name: "majority beats priority", answers: Answers{"q1": "solo", "q2": "solo", "q3": "consciente"}, want: ProfileSolo},
		{
			name: "all radical",
			answers: Answers{
				"q1": "radical", "q2": "radical", "q3": "radical", "q4": "radical",
				"q5": "radical", "q6": "radical", "q7": "radical",
			},
			want: ProfileRadical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveProfile(tt.answers, questions))
		})
	}
}

func TestResolveProfileIgnoresUnknownInput(t *testing.T) {
	questions := bank(3)
	base := Answers{"q1": "solo", "q2": "solo"}
	noisy := Answers{"q1": "solo", "q2": "solo", "q9": "consciente", "q3": "not-an-option"}

	assert.Equal(t, ResolveProfile(base, questions), ResolveProfile(noisy, questions))
	assert.Equal(t, Tally(base, questions), Tally(noisy, questions))
}

func TestTallyCountsEveryProfile(t *testing.T) {
	scores := Tally(Answers{"q1": "social", "q2": "social", "q3": "solo"}, bank(3))
	assert.Equal(t, Scores{ProfileSocial: 2, ProfileSolo: 1, ProfileRadical: 0, ProfileConsciente: 0}, scores)
}

func TestValidateBank(t *testing.T) {
	require.NoError(t, ValidateBank(bank(2)))

	tests := []struct {
		name      string
		questions []Question
	}{
		{name: "empty", questions: nil},
		{name: "one option", questions: []Question{{ID: "q1", Options: []Option{{Value: "a", Profile: ProfileSolo}}}}},
		{name: "duplicate id", questions: append(bank(1), bank(1)...)},
		{name: "unknown profile", questions: []Question{{ID: "q1", Options: []Option{
			{Value: "a", Profile: ProfileSolo}, {Value: "b", Profile: "nomad"},
		}}}},
		{name: "duplicate value", questions: []Question{{ID: "q1", Options: []Option{
			{Value: "a", Profile: ProfileSolo}, {Value: "a", Profile: ProfileSocial},
		}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateBank(tt.questions), ErrInvalidBank)
		})
	}
}

func TestFlowHappyPath(t *testing.T) {
	f := NewFlow(bank(3))
	assert.Equal(t, StageIntro, f.Stage())
	assert.True(t, f.CanAdvance())

	require.NoError(t, f.Start())
	assert.Equal(t, 1, f.Step())

	for i := 0; i < 3; i++ {
		require.NoError(t, f.Answer("radical"))
		require.NoError(t, f.Next())
	}
	assert.Equal(t, StageResult, f.Stage())

	got, err := f.Result()
	require.NoError(t, err)
	assert.Equal(t, ProfileRadical, got)
}

func TestFlowRejectsAdvanceWithoutAnswer(t *testing.T) {
	f := NewFlow(bank(2))
	require.NoError(t, f.Start())

	assert.False(t, f.CanAdvance())
	assert.ErrorIs(t, f.Next(), ErrUnanswered)
	assert.Equal(t, 1, f.Step())

	assert.ErrorIs(t, f.Answer("nope"), ErrUnknownOption)
	assert.ErrorIs(t, f.Next(), ErrUnanswered)
}

func TestFlowBackKeepsAnswers(t *testing.T) {
	f := NewFlow(bank(3))
	require.NoError(t, f.Start())
	require.NoError(t, f.Answer("solo"))
	require.NoError(t, f.Next())
	require.NoError(t, f.Answer("social"))

	require.NoError(t, f.Back())
	assert.Equal(t, 1, f.Step())
	assert.Equal(t, Answers{"q1": "solo", "q2": "social"}, f.Answers())
	assert.True(t, f.CanAdvance())

	require.NoError(t, f.Back())
	assert.Equal(t, 1, f.Step(), "back on the first question stays put")

	require.NoError(t, f.Next())
	assert.Equal(t, 2, f.Step())
	assert.True(t, f.CanAdvance(), "answer survived going back")
}

func TestFlowRedoAndClose(t *testing.T) {
	f := NewFlow(bank(1))
	require.NoError(t, f.Start())
	require.NoError(t, f.Answer("solo"))
	require.NoError(t, f.Next())

	assert.ErrorIs(t, f.Next(), ErrInvalidTransition)

	require.NoError(t, f.Redo())
	assert.Equal(t, 1, f.Step())
	assert.Empty(t, f.Answers())

	assert.ErrorIs(t, f.Redo(), ErrInvalidTransition)
	_, err := f.Result()
	assert.ErrorIs(t, err, ErrNotFinished)

	require.NoError(t, f.Answer("social"))
	f.Close()
	assert.Equal(t, StageIntro, f.Stage())
	assert.Empty(t, f.Answers())
}

func TestFlowStartOnlyFromIntro(t *testing.T) {
	f := NewFlow(bank(2))
	require.NoError(t, f.Next(), "next from intro starts the quiz")
	assert.ErrorIs(t, f.Start(), ErrInvalidTransition)
	assert.ErrorIs(t, NewFlow(bank(1)).Answer("solo"), ErrInvalidTransition)
}

func TestRestoreFlow(t *testing.T) {
	questions := bank(2)
	saved := State{Step: 2, Answers: Answers{"q1": "solo"}}

	f, err := RestoreFlow(questions, saved)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Step())

	require.NoError(t, f.Answer("consciente"))
	assert.Equal(t, Answers{"q1": "solo"}, saved.Answers, "restored flow must not alias the saved answers")
	assert.Equal(t, Answers{"q1": "solo", "q2": "consciente"}, f.State().Answers)

	_, err = RestoreFlow(questions, State{Step: 4})
	assert.ErrorIs(t, err, ErrInvalidState)
	_, err = RestoreFlow(questions, State{Step: -1})
	assert.ErrorIs(t, err, ErrInvalidState)
}
