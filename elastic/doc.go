// Package elastic generates smooth random displacement fields and warps HWC
// images by them with bilinear interpolation.
//
// 🚀 What is an elastic deformation?
//
//	Every pixel gets its own small displacement (Δrow, Δcol). The field is
//	built from independent uniform noise in [-1,1], smoothed with a Gaussian
//	so neighbouring pixels move together, and scaled by an intensity. The
//	image is then resampled at (row−Δrow, col−Δcol).
//
// ✨ Key properties:
//   - the smoothing kernel is normalised and non-negative, so every
//     displacement satisfies |v| ≤ intensity;
//   - the field depends only on the supplied random source, so a seeded
//     source reproduces it exactly;
//   - a zero field reproduces the input exactly, for every dtype.
//
// Boundary policy:
//
//	Clamp-to-edge. Query points outside the image read the nearest edge
//	sample; the same policy applies to images and labels. Noise smoothing
//	pads by reflection (edge sample not repeated).
//
// ⚙️ Usage:
//
//	flow, err := elastic.RandomFlow(rng, h, w, 3, 10)
//	warped, err := elastic.Warp(img, flow)
//
// Errors:
//   - ErrInvalidSigma, ErrInvalidIntensity, ErrNonFiniteFlow
//   - tensor.ErrBadShape, tensor.ErrShapeMismatch
package elastic
