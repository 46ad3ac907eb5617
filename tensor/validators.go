// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//  - Single source of truth for the rank and alignment guards used by the
//    resampler, the warper and the paired coordinator.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    add their own context and callers can still match with errors.Is.

package tensor

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRank3 ensures s is an HWC shape with positive dimensions.
//
// Errors: ErrInvalidRank if rank != 3, ErrBadShape on non-positive dims.
// Complexity: O(1).
func ValidateRank3(s Shape) error {
	if len(s) != 3 {
		return validatorErrorf("ValidateRank3", fmt.Errorf("rank %d (want HWC): %w", len(s), ErrInvalidRank))
	}
	for _, d := range s {
		if d <= 0 {
			return validatorErrorf("ValidateRank3", ErrBadShape)
		}
	}

	return nil
}

// ValidateSameHW ensures two shapes agree on height and width. Channel counts
// may differ (an RGB image and its single-channel label are aligned).
//
// Implementation: assumes both shapes were accepted by ShapeToHW's rank rules.
// Errors: ErrInvalidRank via ShapeToHW, ErrShapeMismatch on disagreement.
// Complexity: O(1).
func ValidateSameHW(a, b Shape) error {
	ah, aw, err := ShapeToHW(a)
	if err != nil {
		return validatorErrorf("ValidateSameHW", err)
	}
	bh, bw, err := ShapeToHW(b)
	if err != nil {
		return validatorErrorf("ValidateSameHW", err)
	}
	if ah != bh || aw != bw {
		return validatorErrorf("ValidateSameHW",
			fmt.Errorf("%dx%d vs %dx%d: %w", ah, aw, bh, bw, ErrShapeMismatch))
	}

	return nil
}

// ValidateImage ensures img is non-nil and has a valid HWC shape.
//
// Errors: ErrNilImage, then ValidateRank3's errors.
// Complexity: O(1).
func ValidateImage[T Number](img *Image[T]) error {
	if img == nil {
		return validatorErrorf("ValidateImage", ErrNilImage)
	}
	if err := ValidateRank3(img.Shape()); err != nil {
		return validatorErrorf("ValidateImage", err)
	}

	return nil
}
