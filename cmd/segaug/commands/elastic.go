package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/segaug/config"
	"github.com/katalvlaran/segaug/internal/batch"
)

// elastic: one random smooth flow field warping an image and its label.
func elasticCmd() *cobra.Command {
	var (
		pf               pairFlags
		sigma, intensity float64
		kernelSize       int
	)
	cmd := &cobra.Command{
		Use:   "elastic",
		Short: "Apply one random elastic deformation to an image/label pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := &cfg.Elastic
			flags := cmd.Flags()
			if flags.Changed("sigma") {
				e.Sigma = sigma
			}
			if flags.Changed("intensity") {
				e.Intensity = intensity
			}
			if flags.Changed("kernel-size") {
				e.KernelSize = kernelSize
			}
			cfg.Mode = config.ModeElastic
			if err := cfg.Validate(); err != nil {
				return err
			}

			return pf.run(batch.FromConfig(cfg, ""))
		},
	}
	pf.register(cmd)
	cmd.Flags().Float64Var(&sigma, "sigma", 4, "Gaussian smoothing width (elasticity)")
	cmd.Flags().Float64Var(&intensity, "intensity", 8, "max displacement in pixels")
	cmd.Flags().IntVar(&kernelSize, "kernel-size", 0, "smoothing window (0 = 2*ceil(sigma)+1)")
	return cmd
}
