// Package affine builds 3×3 transform matrices and resamples HWC images
// under them with inverse coordinate mapping.
//
// 🚀 What does it do?
//
//	For every destination pixel (row, col, ch) the resampler asks "where did
//	this pixel come from?": it centres the coordinate on the image midpoint,
//	applies the inverse of the transform, moves it back and truncates it to
//	an integer source index. Destination pixels whose source falls outside
//	the image are dropped (the trim step) and keep the fill value.
//
// ✨ Matrices
//
//	Shear(k)        [[1,k,0],[k,1,0],[0,0,1]]
//	Rotation(θ)     [[cos θ,-sin θ,0],[sin θ,cos θ,0],[0,0,1]]
//	Zoom(zh, zw)    diag(zh, zw, 1)
//	Compose(r,s,z)  r·s·z (zoom first, rotation last)
//
// The third axis of the (row, col, channel) vector is the channel index; all
// builders leave it untouched, so channels never mix.
//
// ⚙️ Usage:
//
//	m := affine.Compose(affine.Rotation(0.2), affine.Shear(0.05), affine.Zoom(1.1, 0.9))
//	pairs, err := affine.TransformCoords(h, w, c, m)
//	out, err := affine.Resample(img, pairs, 0)
//
// Errors:
//   - ErrSingularMatrix: determinant within SingularEpsilon of zero.
//   - ErrNaNInf:         non-finite parameters or entries.
//   - ErrPairLength:     malformed CoordinatePair.
//   - tensor.ErrInvalidRank / tensor.ErrOutOfRange from the image side.
package affine
