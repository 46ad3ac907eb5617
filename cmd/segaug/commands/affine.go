package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/segaug/config"
	"github.com/katalvlaran/segaug/internal/batch"
)

// affine: one random affine draw applied to an image and its label.
func affineCmd() *cobra.Command {
	var (
		pf               pairFlags
		rotation, shear  float64
		zoomMin, zoomMax float64
		flipLR, flipUD   float64
		fill, labelFill  float64
	)
	cmd := &cobra.Command{
		Use:   "affine",
		Short: "Apply one random affine transform to an image/label pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := &cfg.Affine
			flags := cmd.Flags()
			if flags.Changed("rotation") {
				a.RotationMin, a.RotationMax = -rotation, rotation
			}
			if flags.Changed("shear") {
				a.ShearMin, a.ShearMax = -shear, shear
			}
			if flags.Changed("zoom-min") {
				a.ZoomMin = zoomMin
			}
			if flags.Changed("zoom-max") {
				a.ZoomMax = zoomMax
			}
			if flags.Changed("flip-lr") {
				a.RateFlipLR = flipLR
			}
			if flags.Changed("flip-ud") {
				a.RateFlipUD = flipUD
			}
			if flags.Changed("fill") {
				a.FillValue = fill
			}
			if flags.Changed("label-fill") {
				a.LabelFillValue = labelFill
			}
			cfg.Mode = config.ModeAffine
			if err := cfg.Validate(); err != nil {
				return err
			}

			return pf.run(batch.FromConfig(cfg, ""))
		},
	}
	pf.register(cmd)
	cmd.Flags().Float64Var(&rotation, "rotation", 0, "max |rotation| in radians")
	cmd.Flags().Float64Var(&shear, "shear", 0, "max |shear|")
	cmd.Flags().Float64Var(&zoomMin, "zoom-min", 1, "min zoom factor")
	cmd.Flags().Float64Var(&zoomMax, "zoom-max", 1, "max zoom factor")
	cmd.Flags().Float64Var(&flipLR, "flip-lr", 0, "left/right flip rate in [0,1]")
	cmd.Flags().Float64Var(&flipUD, "flip-ud", 0, "up/down flip rate in [0,1]")
	cmd.Flags().Float64Var(&fill, "fill", 0, "image fill value outside the source")
	cmd.Flags().Float64Var(&labelFill, "label-fill", 0, "label fill value outside the source")
	return cmd
}
