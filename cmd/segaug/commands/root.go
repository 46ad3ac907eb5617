package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/segaug/config"
	"github.com/katalvlaran/segaug/internal/logging"
)

var (
	cfgPath  string
	seed     uint64
	logLevel string
	logJSON  bool

	cfg config.Config
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRoot().ExecuteContext(ctx)
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "segaug",
		Short:        "Paired geometric augmentation for segmentation datasets",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.Load(cfgPath); err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-json") {
				cfg.LogJSON = logJSON
			}
			return logging.Configure(cmd.ErrOrStderr(), logging.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON})
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "YAML config file")
	root.PersistentFlags().Uint64Var(&seed, "seed", 1, "random seed")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	root.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log as JSON")

	root.AddCommand(affineCmd(), elasticCmd(), batchCmd(), boxCmd())
	return root
}
