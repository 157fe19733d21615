package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "preloadquiz",
	Short: "Terminal quiz runner for preloaded question files",
	Long: `preloadquiz runs multiple-choice quizzes from JSON or YAML question files.

Question numbers and option letters are cleaned up on load, records that
cannot be matched to an answer are skipped, and the quiz is played one
question at a time with immediate feedback and a final review.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default: ./config.yaml or $XDG_CONFIG_HOME/preloadquiz/config.yaml)")
	pf.String("dir", "", "Directory containing quiz files (overrides PRELOADQUIZ_QUIZ_DIR)")
	pf.String("log-file", "", "Log destination: a path, stderr or stdout")
	pf.String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}
