package quiz

// Question is a normalized multiple-choice record ready for a session.
type Question struct {
	// Question is the prompt with any leading "12." marker removed.
	Question string `json:"question" yaml:"question"`

	// Options holds the candidate answers in source order, markers removed.
	// Duplicates and empty strings are tolerated; views filter empties.
	Options []string `json:"options" yaml:"options"`

	// Answer equals exactly one element of Options.
	Answer string `json:"answer" yaml:"answer"`
}

// HasOption reports whether choice is one of the question's visible
// options. Empty options are never a valid choice.
func (q Question) HasOption(choice string) bool {
	if choice == "" {
		return false
	}
	for _, opt := range q.Options {
		if opt == choice {
			return true
		}
	}
	return false
}

// IsCorrect reports whether choice matches the canonical answer exactly.
func (q Question) IsCorrect(choice string) bool {
	return choice == q.Answer
}

// VisibleOptions returns the options with empty strings removed, in order.
func (q Question) VisibleOptions() []string {
	out := make([]string, 0, len(q.Options))
	for _, opt := range q.Options {
		if opt != "" {
			out = append(out, opt)
		}
	}
	return out
}
