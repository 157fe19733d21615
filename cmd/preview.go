package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/keedam/preloadquiz/internal/normalize"
	"github.com/keedam/preloadquiz/internal/quiz"
	"github.com/keedam/preloadquiz/internal/source"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Play a quiz in plain line mode, or dump its normalized records",
	Long: `Play a quiz on stdin/stdout without the full-screen interface.

Type an option number to answer, press Enter (or n) to continue after
feedback, "j <k>" to jump to question k and "q" to quit. With --dump the
normalized questions and the skipped records are printed as JSON instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Bool("dump", false, "Print normalized questions and skipped records as JSON")
}

func runPreview(cmd *cobra.Command, args []string) error {
	dump, _ := cmd.Flags().GetBool("dump")

	d, closeFn, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	questions, report, err := source.Load(args[0], d.normalizer)
	if dump {
		return dumpReport(cmd.OutOrStdout(), questions, report, err)
	}
	if err != nil {
		return fmt.Errorf("load quiz: %w", err)
	}

	session := quiz.NewSession()
	if err := session.Load(questions); err != nil {
		return fmt.Errorf("start quiz: %w", err)
	}
	d.logger.Info("quiz started",
		zap.String("attempt_id", session.ID()),
		zap.String("source", args[0]),
		zap.Int("questions", report.Kept),
		zap.Int("dropped", len(report.Dropped)),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d questions (%d skipped)\n\n", args[0], report.Kept, len(report.Dropped))
	return runLineQuiz(cmd.InOrStdin(), out, session)
}

type dumpedRecord struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

func dumpReport(w io.Writer, questions []quiz.Question, report normalize.Report, loadErr error) error {
	if loadErr != nil && !errors.Is(loadErr, source.ErrEmptyResult) {
		return fmt.Errorf("load quiz: %w", loadErr)
	}
	dropped := make([]dumpedRecord, len(report.Dropped))
	for i, m := range report.Dropped {
		dropped[i] = dumpedRecord{Index: m.Index, Reason: m.Err.Error()}
	}
	if questions == nil {
		questions = []quiz.Question{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(struct {
		Source    string          `json:"source"`
		Total     int             `json:"total"`
		Questions []quiz.Question `json:"questions"`
		Skipped   []dumpedRecord  `json:"skipped"`
	}{report.Source, report.Total, questions, dropped})
}

// runLineQuiz plays session to completion on a line-oriented terminal.
// It returns nil when input ends or the user quits early.
func runLineQuiz(in io.Reader, out io.Writer, s *quiz.Session) error {
	scanner := bufio.NewScanner(in)

	for {
		v := quiz.BuildView(s)

		switch v.Phase {
		case quiz.PhaseAnswering:
			av := v.Answering
			fmt.Fprintf(out, "── Question %d/%d (%d answered) ──\n", av.Position, av.Total, av.Answered)
			fmt.Fprintln(out, av.Question)
			for i, opt := range av.Options {
				fmt.Fprintf(out, "  %d) %s\n", i+1, opt)
			}
			if av.HasPreselection {
				fmt.Fprintf(out, "Previous answer: %s\n", av.Preselected)
			}
			fmt.Fprintf(out, "\nYour answer (1-%d, j <k> to jump, q to quit): ", len(av.Options))

		case quiz.PhaseFeedback:
			fv := v.Feedback
			if fv.Correct {
				fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
			} else {
				fmt.Fprintf(out, "\033[31m✗ Incorrect!\033[0m The correct answer was: %s\n", fv.CorrectAnswer)
			}
			fmt.Fprintf(out, "[Enter] %s, j <k> to jump: ", fv.ContinueLabel)

		case quiz.PhaseFinished:
			printResults(out, v.Finished)
			return nil

		default:
			return fmt.Errorf("line quiz: session not loaded")
		}

		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "q" {
			fmt.Fprintln(out, "(quit)")
			return nil
		}
		if err := applyLine(s, v, line); err != nil {
			fmt.Fprintf(out, "%v\n", err)
		}
		fmt.Fprintln(out)
	}
}

// applyLine turns one line of input into a session transition.
func applyLine(s *quiz.Session, v quiz.View, line string) error {
	if rest, ok := strings.CutPrefix(line, "j"); ok && rest != "" {
		k, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return fmt.Errorf("not a question number: %q", strings.TrimSpace(rest))
		}
		if err := s.JumpTo(k - 1); err != nil {
			return fmt.Errorf("cannot jump to %d: %w", k, err)
		}
		return nil
	}

	switch v.Phase {
	case quiz.PhaseFeedback:
		if line == "" || line == "n" {
			return s.Advance()
		}
		return fmt.Errorf("press Enter to continue")

	case quiz.PhaseAnswering:
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(v.Answering.Options) {
			return fmt.Errorf("please enter a number between 1 and %d", len(v.Answering.Options))
		}
		return s.SubmitAnswer(v.Answering.Options[n-1])
	}
	return nil
}

func printResults(out io.Writer, f *quiz.FinishedView) {
	fmt.Fprintf(out, "── Your score: %d out of %d ──\n\n", f.Score, f.Total)
	for _, it := range f.Review {
		mark := "✗"
		if it.Correct {
			mark = "✓"
		}
		fmt.Fprintf(out, "%s %d. %s\n", mark, it.Number, it.Question)
		fmt.Fprintf(out, "    Your answer: %s\n", it.Given)
		if !it.Correct {
			fmt.Fprintf(out, "    Correct answer: %s\n", it.CorrectAnswer)
		}
	}
}
