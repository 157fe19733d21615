package quiz

import (
	"github.com/google/uuid"
)

// Session tracks a single quiz attempt. It is owned by one caller and is not
// safe for concurrent use. A rejected transition leaves the session unchanged.
type Session struct {
	id        string
	phase     Phase
	questions []Question
	current   int
	answers   map[int]string
}

// NewSession returns an empty session in PhaseInitial.
func NewSession() *Session {
	return &Session{
		phase:   PhaseInitial,
		answers: make(map[int]string),
	}
}

// Load installs questions and starts the attempt at the first question.
// Valid only from PhaseInitial. The questions are copied, so later changes
// to the caller's slice do not affect the session.
func (s *Session) Load(questions []Question) error {
	if s.phase != PhaseInitial {
		return &TransitionError{Op: "load", Phase: s.phase}
	}
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	qs := make([]Question, len(questions))
	for i, q := range questions {
		qs[i] = Question{
			Question: q.Question,
			Options:  append([]string(nil), q.Options...),
			Answer:   q.Answer,
		}
	}

	s.id = uuid.NewString()
	s.questions = qs
	s.current = 0
	s.answers = make(map[int]string)
	s.phase = PhaseAnswering
	return nil
}

// SubmitAnswer records choice for the current question, replacing any
// earlier submission, and moves to PhaseFeedback.
func (s *Session) SubmitAnswer(choice string) error {
	if s.phase != PhaseAnswering {
		return &TransitionError{Op: "submit", Phase: s.phase}
	}
	if !s.questions[s.current].HasOption(choice) {
		return ErrInvalidChoice
	}
	s.answers[s.current] = choice
	s.phase = PhaseFeedback
	return nil
}

// Advance acknowledges feedback. It moves to the next question, or to
// PhaseFinished after the last one. This is the only way to finish.
func (s *Session) Advance() error {
	if s.phase != PhaseFeedback {
		return &TransitionError{Op: "advance", Phase: s.phase}
	}
	if s.current+1 < len(s.questions) {
		s.current++
		s.phase = PhaseAnswering
		return nil
	}
	s.phase = PhaseFinished
	return nil
}

// JumpTo moves to question index and always returns to PhaseAnswering,
// even when that question was already answered.
func (s *Session) JumpTo(index int) error {
	if s.phase != PhaseAnswering && s.phase != PhaseFeedback {
		return &TransitionError{Op: "jump", Phase: s.phase}
	}
	if index < 0 || index >= len(s.questions) {
		return ErrIndexOutOfRange
	}
	s.current = index
	s.phase = PhaseAnswering
	return nil
}

// Reset discards the attempt. The receiver should not be used afterwards.
func (s *Session) Reset() *Session {
	return NewSession()
}

// Score counts exact matches between the final answers and the canonical
// answers. It is recomputed on every call and only reported once finished.
func (s *Session) Score() (int, error) {
	if s.phase != PhaseFinished {
		return 0, &TransitionError{Op: "score", Phase: s.phase}
	}
	return s.correctCount(), nil
}

func (s *Session) correctCount() int {
	n := 0
	for i, q := range s.questions {
		if given, ok := s.answers[i]; ok && q.IsCorrect(given) {
			n++
		}
	}
	return n
}

// ID returns the attempt id assigned by Load, or "" before loading.
func (s *Session) ID() string { return s.id }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Len returns the number of loaded questions.
func (s *Session) Len() int { return len(s.questions) }

// CurrentIndex returns the 0-based position. It is meaningful only after Load.
func (s *Session) CurrentIndex() int { return s.current }

// Current returns the question at the current position.
func (s *Session) Current() (Question, bool) {
	if s.phase == PhaseInitial || len(s.questions) == 0 {
		return Question{}, false
	}
	return s.questions[s.current], true
}

// QuestionAt returns the question at index i.
func (s *Session) QuestionAt(i int) (Question, bool) {
	if i < 0 || i >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[i], true
}

// AnswerFor returns the most recent submission for question i.
func (s *Session) AnswerFor(i int) (string, bool) {
	a, ok := s.answers[i]
	return a, ok
}

// AnsweredCount returns how many distinct questions have a submission.
func (s *Session) AnsweredCount() int { return len(s.answers) }

// IsLast reports whether the current question is the final one.
func (s *Session) IsLast() bool {
	return len(s.questions) > 0 && s.current == len(s.questions)-1
}
