// Package segaug applies one randomly drawn geometric augmentation to an
// image and its pixel-wise label at the same time, so the label still
// describes the image pixel for pixel afterwards.
//
// 🚀 What is paired augmentation?
//
//	Segmentation training needs the image and its mask to move together.
//	segaug draws the random parameters exactly once per call, keeps them in
//	an explicit value (AffineParams, or a Flow for elastic mode) and feeds
//	that same value to the image and to the label transform.
//
// ✨ Modes:
//   - Affine: flips (left/right, up/down), rotation, shear and anisotropic
//     zoom, resampled by inverse coordinate mapping with a fill-value border.
//   - Elastic: a smooth random displacement field, resampled with bilinear
//     interpolation and clamp-to-edge borders.
//
// ⚙️ Usage:
//
//	rng := rand.New(rand.NewPCG(seed, 0))
//	ranges := segaug.DefaultAffineRanges()
//	ranges.RotationMin, ranges.RotationMax = -0.3, 0.3
//	ranges.RateFlipLR = 0.5
//	img2, lbl2, err := segaug.RandomAffine(rng, img, lbl, ranges)
//
//	img3, lbl3, err := segaug.ElasticDeformation(rng, img, lbl, segaug.ElasticParams{Sigma: 3, Intensity: 10})
//
// Under the hood:
//
//	tensor/   HWC image container, coordinate grids, flips, validators
//	affine/   matrix builders, inverse, coordinate mapping, scatter resampling
//	elastic/  Gaussian-smoothed flow fields, bilinear warping
//	mask/     bounding boxes of binary labels
//	config/   YAML + env configuration
//	imageio/  image files to tensors and back
//
// Concurrency: every function is pure. The random Source is the only shared
// state; give each goroutine its own.
package segaug
