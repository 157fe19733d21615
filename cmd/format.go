package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/keedam/preloadquiz/internal/reformat"
	"github.com/keedam/preloadquiz/internal/source"
)

var formatCmd = &cobra.Command{
	Use:   "format <input.json>",
	Short: `Rewrite question, option and answer markers as "<token>. <text>"`,
	Long: `Read a JSON array of question records and rewrite the leading markers
("12 text", "b)text", "12.. text") into the canonical "12. text" / "b. text"
form. Output is 2-space indented JSON with keys in question, options, answer
order, written to stdout or to --output.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := readRecords(args[0])
		if err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")
		return writeRecords(cmd, output, reformat.Canonical(records))
	},
}

func init() {
	formatCmd.Flags().StringP("output", "o", "", "Write the reformatted JSON to this file instead of stdout")
}

func readRecords(path string) ([]reformat.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &source.NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	records, err := reformat.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// writeRecords writes to output, or to the command's stdout when output is
// empty. A success line is printed only for file output.
func writeRecords(cmd *cobra.Command, output string, records []reformat.Record) error {
	if output == "" {
		return reformat.Write(cmd.OutOrStdout(), records)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := writeAndClose(f, records); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Success! The data has been reformatted and saved to '%s'\n", output)
	return nil
}

func writeAndClose(f io.WriteCloser, records []reformat.Record) error {
	if err := reformat.Write(f, records); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
