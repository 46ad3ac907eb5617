package commands

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/segaug/internal/batch"
	"github.com/katalvlaran/segaug/internal/logging"
)

// pairFlags are the in/out paths shared by affine and elastic.
type pairFlags struct {
	image, label       string
	outImage, outLabel string
}

func (p *pairFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.image, "image", "", "input image")
	cmd.Flags().StringVar(&p.label, "label", "", "input label (same height/width)")
	cmd.Flags().StringVar(&p.outImage, "out-image", "", "output image (format from extension)")
	cmd.Flags().StringVar(&p.outLabel, "out-label", "", "output label (format from extension)")
	for _, f := range []string{"image", "label", "out-image", "out-label"} {
		_ = cmd.MarkFlagRequired(f)
	}
}

// run augments the pair with opts and saves both outputs. Each input is
// read at its own bit depth.
func (p *pairFlags) run(opts batch.Options) error {
	name := strings.TrimSuffix(filepath.Base(p.image), filepath.Ext(p.image))
	pair := batch.Pair{Name: name, Image: p.image, Label: p.label}
	redraws, err := batch.AugmentFiles(pair, 0, opts, p.outImage, p.outLabel)
	if err != nil {
		return err
	}
	logging.With("cli").Info("augmented", "mode", opts.Mode, "image", p.image, "seed", opts.Seed, "redraws", redraws)

	return nil
}
