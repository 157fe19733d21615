package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keedam/preloadquiz/internal/reformat"
)

var checkCmd = &cobra.Command{
	Use:   "check <input.json>",
	Short: "Report missing question numbers, then reformat like format",
	Long: `Collect the leading number of every question and report the numbers
missing between the smallest and the largest. When --output is given the
records are also reformatted and written there.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := readRecords(args[0])
		if err != nil {
			return err
		}

		missing, ok, err := reformat.MissingNumbers(records)
		if err != nil {
			return fmt.Errorf("check %s: %w", args[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), reformat.FormatMissing(missing, ok))

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			return nil
		}
		return writeRecords(cmd, output, reformat.Canonical(records))
	},
}

func init() {
	checkCmd.Flags().StringP("output", "o", "", "Also write the reformatted JSON to this file")
}
