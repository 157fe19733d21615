package quiz

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	qz "github.com/keedam/preloadquiz/internal/quiz"
	"github.com/keedam/preloadquiz/internal/router"
	"github.com/keedam/preloadquiz/internal/screen"
	"github.com/keedam/preloadquiz/internal/screens/results"
	"github.com/keedam/preloadquiz/internal/ui/components"
	"github.com/keedam/preloadquiz/internal/ui/layout"
)

// QuizScreen drives a loaded session through the Answering and Feedback
// phases. When the session finishes it replaces itself with the results.
type QuizScreen struct {
	session *qz.Session
	title   string
	logger  *zap.Logger

	view    qz.View
	choices components.MultiChoice

	jumping bool
	jump    components.TextInput
	errMsg  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for a session that has already been loaded.
func New(session *qz.Session, title string, logger *zap.Logger) *QuizScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &QuizScreen{
		session: session,
		title:   title,
		logger:  logger.With(zap.String("attempt_id", session.ID())),
	}
	s.sync()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return s.title
}

// Status shows the current position in the header.
func (s *QuizScreen) Status() string {
	switch {
	case s.view.Answering != nil:
		return progressLabel(s.view.Answering.Position, s.view.Answering.Total)
	case s.view.Feedback != nil:
		return progressLabel(s.view.Feedback.Position, s.view.Feedback.Total)
	}
	return ""
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.jumping {
		return []layout.KeyHint{
			{Key: "0-9", Description: "Question number"},
			{Key: "Enter", Description: "Go"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.view.Feedback != nil {
		return []layout.KeyHint{
			{Key: "any key", Description: s.view.Feedback.ContinueLabel},
			{Key: "g", Description: "Go to question"},
			{Key: "Esc", Description: "Quit quiz"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-9", Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Submit"},
		{Key: "g", Description: "Go to question"},
		{Key: "Esc", Description: "Quit quiz"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ChoiceMsg:
		return s.handleChoice(msg)

	case tea.KeyPressMsg:
		if s.jumping {
			return s.handleJumpKey(msg)
		}
		return s.handleKey(msg)
	}

	if s.jumping {
		var cmd tea.Cmd
		s.jump, cmd = s.jump.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.logger.Info("quiz abandoned", zap.Int("answered", s.session.AnsweredCount()))
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "g":
		return s.openJump()
	}

	if s.session.Phase() == qz.PhaseFeedback {
		return s.advance()
	}

	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	return s, cmd
}

func (s *QuizScreen) handleChoice(msg components.ChoiceMsg) (screen.Screen, tea.Cmd) {
	if msg.Index < 0 || msg.Index >= len(s.choices.Options) {
		return s, nil
	}
	choice := s.choices.Options[msg.Index]
	if err := s.session.SubmitAnswer(choice); err != nil {
		s.rejected("submit", err)
		return s, nil
	}
	s.errMsg = ""
	s.sync()
	return s, nil
}

func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	if err := s.session.Advance(); err != nil {
		s.rejected("advance", err)
		return s, nil
	}
	if s.session.Phase() == qz.PhaseFinished {
		score, _ := s.session.Score()
		s.logger.Info("quiz finished", zap.Int("score", score), zap.Int("questions", s.session.Len()))
		next := results.New(s.session, s.title, s.logger)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	s.sync()
	return s, nil
}

func (s *QuizScreen) openJump() (screen.Screen, tea.Cmd) {
	s.jumping = true
	s.jump = components.NewTextInput("Go to question: ", "1", true, 4)
	return s, s.jump.Init()
}

func (s *QuizScreen) handleJumpKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.jumping = false
		return s, nil
	case "enter":
		n, err := s.jump.NumericValue()
		if err != nil {
			s.jump.Reject()
			return s, nil
		}
		if err := s.session.JumpTo(n - 1); err != nil {
			s.rejected("jump", err)
			s.jump.Reject()
			return s, nil
		}
		s.jumping = false
		s.sync()
		return s, nil
	}

	var cmd tea.Cmd
	s.jump, cmd = s.jump.Update(msg)
	return s, cmd
}

// sync rebuilds the view model and option list after a transition.
func (s *QuizScreen) sync() {
	s.view = qz.BuildView(s.session)
	switch {
	case s.view.Answering != nil:
		av := s.view.Answering
		s.choices = components.NewMultiChoice(av.Options, av.PreselectedIndex())
	case s.view.Feedback != nil:
		fv := s.view.Feedback
		s.choices = components.NewMultiChoice(fv.Options, -1).Lock(fv.SubmittedIndex(), fv.CorrectIndex())
	}
}

func (s *QuizScreen) rejected(op string, err error) {
	if errors.Is(err, qz.ErrInvalidTransition) {
		s.logger.Debug("transition rejected", zap.String("op", op), zap.Error(err))
		return
	}
	s.errMsg = err.Error()
	s.logger.Debug("input rejected", zap.String("op", op), zap.Error(err))
}
