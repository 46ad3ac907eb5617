// Package batch augments whole directories of image/label pairs in parallel.
//
// Every (sample, copy) gets its own random source seeded from BLAKE2b(seed,
// name, copy), so the output does not depend on the worker count or on the
// order in which samples finish.
package batch

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/segaug"
	"github.com/katalvlaran/segaug/affine"
	"github.com/katalvlaran/segaug/config"
	"github.com/katalvlaran/segaug/imageio"
	"github.com/katalvlaran/segaug/internal/logging"
	"github.com/katalvlaran/segaug/internal/telemetry"
	"github.com/katalvlaran/segaug/tensor"
)

var (
	// ErrNoPairs indicates that no image had a matching label.
	ErrNoPairs = errors.New("batch: no image/label pairs")

	// ErrTooManyRedraws indicates MaxRedraws consecutive singular draws.
	ErrTooManyRedraws = errors.New("batch: too many singular redraws")
)

// Pair names one sample: an image file and its label file.
type Pair struct {
	Name  string // file stem shared by both files
	Image string
	Label string
}

// Options configures Run. Zero Workers or Copies are treated as 1.
type Options struct {
	Mode       config.Mode
	Seed       uint64
	Ranges     segaug.AffineRanges
	Elastic    segaug.ElasticParams
	Workers    int
	Copies     int
	MaxRedraws int
	OutDir     string

	Metrics *telemetry.Metrics // optional
	Logger  *slog.Logger       // optional, defaults to logging.With("batch")
}

// FromConfig builds Options from a loaded configuration.
func FromConfig(cfg config.Config, outDir string) Options {
	return Options{
		Mode:       cfg.Mode,
		Seed:       cfg.Seed,
		Ranges:     cfg.Affine.Ranges(),
		Elastic:    cfg.Elastic.Params(),
		Workers:    cfg.Batch.Workers,
		Copies:     cfg.Batch.Copies,
		MaxRedraws: cfg.Batch.MaxRedraws,
		OutDir:     outDir,
	}
}

// Report summarises a finished Run.
type Report struct {
	Samples int   // pairs processed
	Written int   // augmented pairs written
	Redraws int64 // singular affine draws retried
}

// Discover pairs every file in imageDir with the file of the same stem in
// labelDir. Images without a label are skipped with a warning. The result is
// sorted by name.
func Discover(imageDir, labelDir string) ([]Pair, error) {
	labels, err := stems(labelDir)
	if err != nil {
		return nil, err
	}
	images, err := stems(imageDir)
	if err != nil {
		return nil, err
	}

	pairs := make([]Pair, 0, len(images))
	for name, img := range images {
		lbl, ok := labels[name]
		if !ok {
			logging.With("batch").Warn("image without label, skipped", "image", img)
			continue
		}
		pairs = append(pairs, Pair{Name: name, Image: img, Label: lbl})
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%s, %s: %w", imageDir, labelDir, ErrNoPairs)
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Name < pairs[j].Name })

	return pairs, nil
}

// stems maps file stem to path for the regular files of dir with a known
// image extension.
func stems(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := imageio.FormatFor(e.Name()); err != nil {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		out[name] = filepath.Join(dir, e.Name())
	}

	return out, nil
}

// SampleSource returns the random source for copy n of sample name.
func SampleSource(seed uint64, name string, n int) *rand.Rand {
	var key [8]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	h, _ := blake2b.New256(key[:]) // keys up to 64 bytes never fail
	h.Write([]byte(name))
	var idx [8]byte
	binary.LittleEndian.PutUint64(idx[:], uint64(n))
	h.Write(idx[:])
	sum := h.Sum(nil)

	return rand.New(rand.NewPCG(binary.LittleEndian.Uint64(sum[:8]), binary.LittleEndian.Uint64(sum[8:16])))
}

// Run augments every pair Copies times and writes the results under
// OutDir/images and OutDir/labels as <name>_<copy>.png. It stops at the first
// error and cancels the remaining work.
func Run(ctx context.Context, pairs []Pair, opts Options) (Report, error) {
	if opts.Mode != config.ModeAffine && opts.Mode != config.ModeElastic {
		return Report{}, fmt.Errorf("batch: mode %q: %w", opts.Mode, config.ErrInvalidConfig)
	}
	if err := opts.Ranges.Validate(); err != nil {
		return Report{}, fmt.Errorf("batch: %w", err)
	}
	if opts.Mode == config.ModeElastic {
		if err := opts.Elastic.Validate(); err != nil {
			return Report{}, fmt.Errorf("batch: %w", err)
		}
	}
	log := opts.Logger
	if log == nil {
		log = logging.With("batch")
	}
	imgDir := filepath.Join(opts.OutDir, "images")
	lblDir := filepath.Join(opts.OutDir, "labels")
	for _, d := range []string{imgDir, lblDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return Report{}, fmt.Errorf("batch: %w", err)
		}
	}

	var (
		written atomic.Int64
		redraws atomic.Int64
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))
	for _, p := range pairs {
		for n := 0; n < max(opts.Copies, 1); n++ {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				start := time.Now()
				r, err := augmentFile(p, n, opts, imgDir, lblDir)
				redraws.Add(int64(r))
				if opts.Metrics != nil {
					opts.Metrics.Redraws.Add(float64(r))
					opts.Metrics.Observe(string(opts.Mode), start, err)
				}
				if err != nil {
					log.Error("augment failed", "sample", p.Name, "copy", n, "err", err)
					return fmt.Errorf("batch: %s copy %d: %w", p.Name, n, err)
				}
				written.Add(1)
				log.Debug("augmented", "sample", p.Name, "copy", n, "redraws", r, "took", time.Since(start))
				return nil
			})
		}
	}
	err := g.Wait()
	rep := Report{Samples: len(pairs), Written: int(written.Load()), Redraws: redraws.Load()}
	if err != nil {
		return rep, err
	}
	log.Info("batch done", "samples", rep.Samples, "written", rep.Written, "redraws", rep.Redraws)

	return rep, nil
}

// augmentFile augments copy n of p into imgDir and lblDir as
// <name>_<n>.png.
func augmentFile(p Pair, n int, opts Options, imgDir, lblDir string) (int, error) {
	out := fmt.Sprintf("%s_%d.png", p.Name, n)

	return AugmentFiles(p, n, opts, filepath.Join(imgDir, out), filepath.Join(lblDir, out))
}

// AugmentFiles loads one pair, augments copy n of it and writes the results
// to outImage and outLabel. Each file is read at its own bit depth, so
// 16-bit labels keep their class IDs and are written back as 16-bit. It
// returns the number of singular redraws.
func AugmentFiles(p Pair, n int, opts Options, outImage, outLabel string) (int, error) {
	imgDepth, err := imageio.Depth(p.Image)
	if err != nil {
		return 0, err
	}
	lblDepth, err := imageio.Depth(p.Label)
	if err != nil {
		return 0, err
	}
	rng := SampleSource(opts.Seed, p.Name, n)

	switch {
	case imgDepth == imageio.Depth16 && lblDepth == imageio.Depth16:
		return process(rng, imageio.Load16, imageio.Load16, p, opts, outImage, outLabel)
	case imgDepth == imageio.Depth16:
		return process(rng, imageio.Load16, imageio.Load, p, opts, outImage, outLabel)
	case lblDepth == imageio.Depth16:
		return process(rng, imageio.Load, imageio.Load16, p, opts, outImage, outLabel)
	default:
		return process(rng, imageio.Load, imageio.Load, p, opts, outImage, outLabel)
	}
}

func process[I, L tensor.Number](
	rng segaug.Source,
	loadImg func(string) (*tensor.Image[I], error),
	loadLbl func(string) (*tensor.Image[L], error),
	p Pair, opts Options, outImage, outLabel string,
) (int, error) {
	img, err := loadImg(p.Image)
	if err != nil {
		return 0, err
	}
	lbl, err := loadLbl(p.Label)
	if err != nil {
		return 0, err
	}

	outImg, outLbl, redraws, err := Augment(rng, img, lbl, opts)
	if err != nil {
		return redraws, err
	}
	if err = imageio.Save(outImage, outImg); err != nil {
		return redraws, err
	}

	return redraws, imageio.Save(outLabel, outLbl)
}

// Augment applies the configured mode to one pair. In affine mode a draw
// whose matrix is singular is discarded and redrawn up to MaxRedraws times;
// the number of redraws is returned.
func Augment[I, L tensor.Number](rng segaug.Source, img *tensor.Image[I], lbl *tensor.Image[L], opts Options) (*tensor.Image[I], *tensor.Image[L], int, error) {
	if opts.Mode == config.ModeElastic {
		outImg, outLbl, err := segaug.ElasticDeformation(rng, img, lbl, opts.Elastic)
		return outImg, outLbl, 0, err
	}

	for redraws := 0; ; redraws++ {
		p := segaug.DrawAffineParams(rng, opts.Ranges)
		outImg, outLbl, err := segaug.ApplyAffine(img, lbl, p, opts.Ranges.FillValue, opts.Ranges.LabelFillValue)
		switch {
		case err == nil:
			return outImg, outLbl, redraws, nil
		case !errors.Is(err, affine.ErrSingularMatrix):
			return nil, nil, redraws, err
		case redraws >= opts.MaxRedraws:
			return nil, nil, redraws, fmt.Errorf("%w: %w", ErrTooManyRedraws, err)
		}
	}
}
