package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/keedam/preloadquiz/internal/source"
)

var playCmd = &cobra.Command{
	Use:   "play <file>",
	Short: "Start a quiz from one file, skipping the picker",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkSource(args[0]); err != nil {
			return fmt.Errorf("play: %w", err)
		}
		return runApp(cmd, args[0])
	},
}

// checkSource reports a missing file as *source.NotFoundError. Other stat
// failures, such as permission errors, are returned as they are.
func checkSource(path string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &source.NotFoundError{Path: path}
	case err != nil:
		return fmt.Errorf("stat quiz source: %w", err)
	case info.IsDir():
		return fmt.Errorf("%s is a directory, not a quiz file", path)
	}
	return nil
}
