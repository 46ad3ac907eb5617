// SPDX-License-Identifier: MIT

package tensor

import "fmt"

// Shape is a tensor shape: HW (rank 2), HWC (rank 3) or BHWC (rank 4).
type Shape []int

// Rank returns len(s).
func (s Shape) Rank() int { return len(s) }

// Coord is a (row, col, channel) index triple.
type Coord [3]int

// CoordinatePair holds two parallel coordinate lists: Source[i] is the pixel
// to read and Destination[i] is the pixel to write.
// Invariant: len(Source) == len(Destination).
type CoordinatePair struct {
	Source      []Coord
	Destination []Coord
}

// Len returns the number of pairs.
func (p CoordinatePair) Len() int { return len(p.Destination) }

// ShapeToHW extracts (height, width) from an HW, HWC or BHWC shape.
// Implementation:
//   - rank 2: (s[0], s[1])
//   - rank 3: (s[0], s[1])
//   - rank 4: (s[1], s[2]), the leading axis is the batch
//
// Errors:
//   - ErrInvalidRank for any other rank.
//
// Complexity: O(1).
func ShapeToHW(s Shape) (h, w int, err error) {
	switch len(s) {
	case 2, 3:
		return s[0], s[1], nil
	case 4:
		return s[1], s[2], nil
	default:
		return 0, 0, fmt.Errorf("ShapeToHW: rank %d (want 2, 3 or 4): %w", len(s), ErrInvalidRank)
	}
}

// EnumerateCoordinates returns every (row, col, channel) triple of an h×w×c
// grid exactly once, in row-major order with the channel varying fastest.
// Position i of the result therefore addresses flat index i of an Image of the
// same shape.
//
// Errors:
//   - ErrBadShape when any dimension is non-positive.
//
// Complexity: O(h*w*c) time and memory.
func EnumerateCoordinates(h, w, c int) ([]Coord, error) {
	if h <= 0 || w <= 0 || c <= 0 {
		return nil, fmt.Errorf("EnumerateCoordinates(%d,%d,%d): %w", h, w, c, ErrBadShape)
	}

	coords := make([]Coord, 0, h*w*c)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			for ch := 0; ch < c; ch++ {
				coords = append(coords, Coord{row, col, ch})
			}
		}
	}

	return coords, nil
}

// IdentityPairs returns a CoordinatePair whose Source and Destination are
// both the full grid of an h×w×c image.
func IdentityPairs(h, w, c int) (CoordinatePair, error) {
	grid, err := EnumerateCoordinates(h, w, c)
	if err != nil {
		return CoordinatePair{}, err
	}
	src := make([]Coord, len(grid))
	copy(src, grid)

	return CoordinatePair{Source: src, Destination: grid}, nil
}
