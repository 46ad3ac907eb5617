// Package tensor provides the dense HWC image container and the coordinate
// utilities shared by the augmentation packages.
//
// An Image[T] stores height×width×channels samples of a numeric type T in a
// flat, row-major slice (channel fastest):
//
//	index(row, col, ch) = (row*W + col)*C + ch
//
// Images are treated as values: every operation in this module returns a new
// Image and never mutates its inputs.
//
// Coordinate utilities:
//
//   - ShapeToHW: height/width from an HW, HWC or BHWC shape.
//   - EnumerateCoordinates: the full (row, col, channel) grid in row-major order.
//   - CoordinatePair: parallel source/destination coordinate lists used by
//     scatter-based resampling.
//
// Errors:
//
//   - ErrInvalidRank, ErrShapeMismatch, ErrBadShape, ErrOutOfRange, ErrDataLength.
package tensor
