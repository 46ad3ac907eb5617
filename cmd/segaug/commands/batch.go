package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/segaug/config"
	"github.com/katalvlaran/segaug/internal/batch"
	"github.com/katalvlaran/segaug/internal/telemetry"
)

// batch: augment every image/label pair of two directories.
func batchCmd() *cobra.Command {
	var (
		images, labels, out string
		mode, metricsAddr   string
		copies, workers     int
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Augment directories of image/label pairs in parallel",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("mode") {
				cfg.Mode = config.Mode(mode)
			}
			if flags.Changed("copies") {
				cfg.Batch.Copies = copies
			}
			if flags.Changed("workers") {
				cfg.Batch.Workers = workers
			}
			if flags.Changed("metrics-addr") {
				cfg.MetricsAddr = metricsAddr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			pairs, err := batch.Discover(images, labels)
			if err != nil {
				return err
			}
			opts := batch.FromConfig(cfg, out)
			if cfg.MetricsAddr != "" {
				opts.Metrics = telemetry.NewMetrics()
				opts.Metrics.Expose(cmd.Context(), cfg.MetricsAddr)
			}
			rep, err := batch.Run(cmd.Context(), pairs, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d samples, %d written, %d redraws\n", rep.Samples, rep.Written, rep.Redraws)
			return nil
		},
	}
	cmd.Flags().StringVar(&images, "images", "", "directory of input images")
	cmd.Flags().StringVar(&labels, "labels", "", "directory of labels (matched by file stem)")
	cmd.Flags().StringVar(&out, "out", "", "output directory")
	cmd.Flags().StringVar(&mode, "mode", string(config.ModeAffine), "affine|elastic")
	cmd.Flags().IntVar(&copies, "copies", 1, "augmented copies per pair")
	cmd.Flags().IntVar(&workers, "workers", 4, "concurrent pairs")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve /metrics on this address (e.g. :9100)")
	for _, f := range []string{"images", "labels", "out"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}
