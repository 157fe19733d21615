package quiz

// NotAnswered is shown in the review for questions with no submission.
const NotAnswered = "Not Answered"

// Continue action labels for the feedback view.
const (
	LabelNext   = "Next Question"
	LabelFinish = "Finish Quiz"
)

// View is the render-ready projection of a session. Exactly one of the
// phase-specific fields is set, matching Phase. Initial has none.
type View struct {
	Phase     Phase
	Answering *AnsweringView
	Feedback  *FeedbackView
	Finished  *FinishedView

	// Jump lists every question for the navigation control. Populated in
	// PhaseAnswering and PhaseFeedback only.
	Jump []JumpEntry
}

// AnsweringView is shown while the user picks a choice.
type AnsweringView struct {
	Position int // 1-based
	Total    int
	Answered int
	Question string
	Options  []string // empty options filtered out

	// Preselected is the earlier submission for this question, when it is
	// still one of the visible options.
	Preselected     string
	HasPreselection bool
}

// PreselectedIndex returns the index of the pre-selection in Options, or -1.
func (v AnsweringView) PreselectedIndex() int {
	if !v.HasPreselection {
		return -1
	}
	return indexOf(v.Options, v.Preselected)
}

// FeedbackView is shown after a submission.
type FeedbackView struct {
	Position      int
	Total         int
	Question      string
	Options       []string
	Submitted     string
	Correct       bool
	CorrectAnswer string
	IsLast        bool
	ContinueLabel string
}

// SubmittedIndex returns the index of the submitted choice in Options, or -1.
func (v FeedbackView) SubmittedIndex() int {
	return indexOf(v.Options, v.Submitted)
}

// CorrectIndex returns the index of the correct answer in Options, or -1.
func (v FeedbackView) CorrectIndex() int {
	return indexOf(v.Options, v.CorrectAnswer)
}

// FinishedView carries the final score and the per-question review.
type FinishedView struct {
	Score  int
	Total  int
	Review []ReviewItem
}

// ReviewItem compares the user's answer with the correct one.
type ReviewItem struct {
	Number        int // 1-based
	Question      string
	Given         string // NotAnswered when Answered is false
	Answered      bool
	Correct       bool
	CorrectAnswer string
}

// JumpEntry is one question in the navigation control.
type JumpEntry struct {
	Index    int // 0-based, the argument for JumpTo
	Current  bool
	Answered bool
}

// BuildView projects the session into a view for its current phase.
func BuildView(s *Session) View {
	v := View{Phase: s.phase}

	switch s.phase {
	case PhaseAnswering:
		q := s.questions[s.current]
		av := &AnsweringView{
			Position: s.current + 1,
			Total:    len(s.questions),
			Answered: len(s.answers),
			Question: q.Question,
			Options:  q.VisibleOptions(),
		}
		if prev, ok := s.answers[s.current]; ok && indexOf(av.Options, prev) >= 0 {
			av.Preselected = prev
			av.HasPreselection = true
		}
		v.Answering = av
		v.Jump = s.jumpEntries()

	case PhaseFeedback:
		q := s.questions[s.current]
		submitted := s.answers[s.current]
		label := LabelNext
		if s.IsLast() {
			label = LabelFinish
		}
		v.Feedback = &FeedbackView{
			Position:      s.current + 1,
			Total:         len(s.questions),
			Question:      q.Question,
			Options:       q.VisibleOptions(),
			Submitted:     submitted,
			Correct:       q.IsCorrect(submitted),
			CorrectAnswer: q.Answer,
			IsLast:        s.IsLast(),
			ContinueLabel: label,
		}
		v.Jump = s.jumpEntries()

	case PhaseFinished:
		review, _ := Review(s)
		v.Finished = &FinishedView{
			Score:  s.correctCount(),
			Total:  len(s.questions),
			Review: review,
		}
	}

	return v
}

// Review lists every question in order with the user's final answer.
// Valid only in PhaseFinished.
func Review(s *Session) ([]ReviewItem, error) {
	if s.phase != PhaseFinished {
		return nil, &TransitionError{Op: "review", Phase: s.phase}
	}
	items := make([]ReviewItem, 0, len(s.questions))
	for i, q := range s.questions {
		given, ok := s.answers[i]
		item := ReviewItem{
			Number:        i + 1,
			Question:      q.Question,
			Given:         given,
			Answered:      ok,
			Correct:       ok && q.IsCorrect(given),
			CorrectAnswer: q.Answer,
		}
		if !ok {
			item.Given = NotAnswered
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *Session) jumpEntries() []JumpEntry {
	entries := make([]JumpEntry, len(s.questions))
	for i := range s.questions {
		_, answered := s.answers[i]
		entries[i] = JumpEntry{
			Index:    i,
			Current:  i == s.current,
			Answered: answered,
		}
	}
	return entries
}

func indexOf(options []string, v string) int {
	for i, opt := range options {
		if opt == v {
			return i
		}
	}
	return -1
}
