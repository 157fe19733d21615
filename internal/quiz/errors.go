package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned when an operation is not permitted
	// in the session's current phase.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrNoQuestions is returned by Load when given an empty question list.
	ErrNoQuestions = errors.New("no valid questions")

	// ErrInvalidChoice is returned when a submitted choice is not one of the
	// current question's options.
	ErrInvalidChoice = errors.New("choice is not an option of the current question")

	// ErrIndexOutOfRange is returned by JumpTo for an index outside the quiz.
	ErrIndexOutOfRange = errors.New("question index out of range")
)

// TransitionError records which operation was rejected and in which phase.
type TransitionError struct {
	Op    string
	Phase Phase
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s not allowed in %s phase", e.Op, e.Phase)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }
