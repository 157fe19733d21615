package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildViewInitial(t *testing.T) {
	v := BuildView(NewSession())
	assert.Equal(t, PhaseInitial, v.Phase)
	assert.Nil(t, v.Answering)
	assert.Nil(t, v.Feedback)
	assert.Nil(t, v.Finished)
	assert.Empty(t, v.Jump)
}

func TestBuildViewAnsweringFiltersEmptyOptions(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Load([]Question{
		{Question: "Pick", Options: []string{"X", "", "Y"}, Answer: "Y"},
	}))

	v := BuildView(s)
	require.NotNil(t, v.Answering)
	assert.Equal(t, []string{"X", "Y"}, v.Answering.Options)
	assert.Equal(t, 1, v.Answering.Position)
	assert.Equal(t, 1, v.Answering.Total)
	assert.False(t, v.Answering.HasPreselection)
	assert.Equal(t, -1, v.Answering.PreselectedIndex())
}

func TestBuildViewJumpPrefillsPreviousAnswer(t *testing.T) {
	s := loaded(t, threeQuestions())
	require.NoError(t, s.SubmitAnswer("C1"))
	require.NoError(t, s.Advance())

	require.NoError(t, s.JumpTo(0))
	v := BuildView(s)
	require.NotNil(t, v.Answering)
	assert.True(t, v.Answering.HasPreselection)
	assert.Equal(t, "C1", v.Answering.Preselected)
	assert.Equal(t, 2, v.Answering.PreselectedIndex())

	require.NoError(t, s.JumpTo(2))
	v = BuildView(s)
	assert.False(t, v.Answering.HasPreselection)
	assert.Empty(t, v.Answering.Preselected)
}

func TestBuildViewFeedback(t *testing.T) {
	s := loaded(t, threeQuestions())
	require.NoError(t, s.SubmitAnswer("B1"))

	v := BuildView(s)
	require.NotNil(t, v.Feedback)
	assert.False(t, v.Feedback.Correct)
	assert.Equal(t, "B1", v.Feedback.Submitted)
	assert.Equal(t, 1, v.Feedback.SubmittedIndex())
	assert.Equal(t, "A1", v.Feedback.CorrectAnswer)
	assert.Equal(t, 0, v.Feedback.CorrectIndex())
	assert.False(t, v.Feedback.IsLast)
	assert.Equal(t, LabelNext, v.Feedback.ContinueLabel)

	require.Len(t, v.Jump, 3)
	assert.True(t, v.Jump[0].Current)
	assert.True(t, v.Jump[0].Answered)
	assert.False(t, v.Jump[1].Answered)
}

func TestBuildViewFeedbackLastQuestion(t *testing.T) {
	s := loaded(t, threeQuestions())
	require.NoError(t, s.JumpTo(2))
	require.NoError(t, s.SubmitAnswer("C3"))

	v := BuildView(s)
	require.NotNil(t, v.Feedback)
	assert.True(t, v.Feedback.Correct)
	assert.True(t, v.Feedback.IsLast)
	assert.Equal(t, LabelFinish, v.Feedback.ContinueLabel)
}

// Three questions: Q1 right, Q2 wrong, jump back to Q1 (pre-filled), then
// continue through Q2 and Q3 without changes.
func TestScenarioJumpBackAndFinish(t *testing.T) {
	s := loaded(t, threeQuestions())

	require.NoError(t, s.SubmitAnswer("A1"))
	require.NoError(t, s.Advance())
	require.NoError(t, s.SubmitAnswer("A2"))

	require.NoError(t, s.JumpTo(0))
	v := BuildView(s)
	require.NotNil(t, v.Answering)
	assert.Equal(t, "A1", v.Answering.Preselected)

	require.NoError(t, s.SubmitAnswer(v.Answering.Preselected))
	require.NoError(t, s.Advance())

	v = BuildView(s)
	require.Equal(t, "A2", v.Answering.Preselected)
	require.NoError(t, s.SubmitAnswer(v.Answering.Preselected))
	require.NoError(t, s.Advance())

	require.NoError(t, s.SubmitAnswer("A3"))
	require.NoError(t, s.Advance())

	score, err := s.Score()
	require.NoError(t, err)
	assert.Equal(t, 1, score)

	v = BuildView(s)
	require.NotNil(t, v.Finished)
	assert.Equal(t, 1, v.Finished.Score)
	assert.Equal(t, 3, v.Finished.Total)

	q2 := v.Finished.Review[1]
	assert.Equal(t, 2, q2.Number)
	assert.False(t, q2.Correct)
	assert.Equal(t, "A2", q2.Given)
	assert.Equal(t, "B2", q2.CorrectAnswer)
}

func TestReviewMarksUnanswered(t *testing.T) {
	s := loaded(t, threeQuestions())
	require.NoError(t, s.JumpTo(2))
	require.NoError(t, s.SubmitAnswer("C3"))
	require.NoError(t, s.Advance())

	items, err := Review(s)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.False(t, items[0].Answered)
	assert.Equal(t, NotAnswered, items[0].Given)
	assert.False(t, items[0].Correct)
	assert.True(t, items[2].Correct)
}

func TestReviewBeforeFinishRejected(t *testing.T) {
	_, err := Review(loaded(t, threeQuestions()))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
