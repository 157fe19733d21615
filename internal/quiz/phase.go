package quiz

// Phase is the discrete stage of a quiz attempt.
type Phase int

const (
	PhaseInitial   Phase = iota // No questions loaded
	PhaseAnswering              // Waiting for a choice on the current question
	PhaseFeedback               // Showing the result of the last submission
	PhaseFinished               // Last feedback acknowledged; score available
)

func (p Phase) String() string {
	switch p {
	case PhaseInitial:
		return "initial"
	case PhaseAnswering:
		return "answering"
	case PhaseFeedback:
		return "feedback"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}
