package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/keedam/preloadquiz/internal/app"
	"github.com/keedam/preloadquiz/internal/config"
	"github.com/keedam/preloadquiz/internal/logging"
	"github.com/keedam/preloadquiz/internal/normalize"
)

// deps are the shared collaborators every command builds from config.
type deps struct {
	cfg        *config.Config
	logger     *zap.Logger
	normalizer *normalize.Normalizer
}

// setup loads configuration, honouring the persistent flags, and builds
// the logger and normalizer. The caller must call close.
func setup(cmd *cobra.Command) (*deps, func(), error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	d := &deps{
		cfg:        cfg,
		logger:     logger,
		normalizer: normalize.New(logger),
	}
	return d, func() { _ = logger.Sync() }, nil
}

// runApp builds dependencies and launches the TUI, optionally starting
// straight into file.
func runApp(cmd *cobra.Command, file string) error {
	d, closeFn, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	d.logger.Info("starting", zap.String("quiz_dir", d.cfg.QuizDir), zap.String("version", version))

	return app.Run(app.Options{
		QuizDir:    d.cfg.QuizDir,
		Extensions: d.cfg.Extensions,
		Logger:     d.logger,
		Normalizer: d.normalizer,
		File:       file,
	})
}
