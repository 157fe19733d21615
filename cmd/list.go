package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/keedam/preloadquiz/internal/source"
)

const nameColumn = 40

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List quiz files in the quiz directory with usable and skipped counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, closeFn, err := setup(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		entries, err := source.List(d.cfg.QuizDir, d.cfg.Extensions)
		if err != nil {
			return fmt.Errorf("list quizzes: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintf(out, "No quiz files found in %s\n", d.cfg.QuizDir)
			return nil
		}

		fmt.Fprintf(out, "%s  %8s  %8s  %s\n", fitColumn("File", nameColumn), "Usable", "Skipped", "Status")
		fmt.Fprintln(out, strings.Repeat("─", 80))

		for _, e := range entries {
			_, report, err := source.Load(e.Path, d.normalizer)
			status := "ok"
			switch {
			case errors.Is(err, source.ErrEmptyResult):
				status = "no valid questions"
			case err != nil:
				status = "error: " + err.Error()
			}
			fmt.Fprintf(out, "%s  %8d  %8d  %s\n", fitColumn(e.Name, nameColumn), report.Kept, len(report.Dropped), status)
		}

		fmt.Fprintf(out, "\n%d quiz files\n", len(entries))
		return nil
	},
}

// fitColumn truncates s to width terminal cells, marking the cut with
// "...", and pads it with spaces to exactly width cells.
func fitColumn(s string, width int) string {
	s = ansi.Truncate(s, width, "...")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
