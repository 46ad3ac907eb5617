package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/segaug/imageio"
	"github.com/katalvlaran/segaug/mask"
)

// box: print the normalised bounding box of a binary mask.
func boxCmd() *cobra.Command {
	var (
		label      string
		margin     float64
		components bool
		diagonal   bool
	)
	cmd := &cobra.Command{
		Use:   "box",
		Short: "Print the [ymin xmin ymax xmax] box of a binary mask",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := imageio.Load16(label) // widening keeps nonzero pixels nonzero
			if err != nil {
				return err
			}
			if !components {
				b, err := mask.LooseBox(m, margin)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), b)
				return nil
			}

			conn := mask.Conn4
			if diagonal {
				conn = mask.Conn8
			}
			boxes, err := mask.ComponentBoxes(m, conn)
			if err != nil {
				return err
			}
			for _, b := range boxes {
				fmt.Fprintln(cmd.OutOrStdout(), b)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "single-channel mask")
	cmd.Flags().Float64Var(&margin, "margin", 0, "margin added per side, relative to height/width")
	cmd.Flags().BoolVar(&components, "components", false, "one tight box per connected region")
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "with --components, join diagonal neighbours")
	_ = cmd.MarkFlagRequired("label")
	return cmd
}
