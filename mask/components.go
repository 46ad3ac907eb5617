package mask

import (
	"fmt"

	"github.com/katalvlaran/segaug/tensor"
)

// Connectivity selects which neighbours join two active pixels into one
// object.
type Connectivity int

const (
	// Conn4 joins orthogonal neighbours (N, E, S, W).
	Conn4 Connectivity = iota
	// Conn8 also joins diagonal neighbours.
	Conn8
)

var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// Component is one connected region of active pixels.
type Component struct {
	Pixels []int // flat row-major indices (row*W + col), in BFS order
	Box    Box   // normalised tight box of the region
}

// Components labels the connected regions of positive pixels in m.
// Regions are returned in the order of their first pixel in row-major scan.
// An all-zero mask yields an empty slice and no error.
//
// Errors: tensor.ErrNilImage / ErrBadShape from validation,
// tensor.ErrInvalidRank for multi-channel input.
//
// Complexity: O(H*W*d) time with d = 4 or 8, O(H*W) memory.
func Components[T tensor.Number](m *tensor.Image[T], conn Connectivity) ([]Component, error) {
	if err := tensor.ValidateImage(m); err != nil {
		return nil, fmt.Errorf("Components: %w", err)
	}
	if m.Channels() != 1 {
		return nil, fmt.Errorf("Components: %d channels, want 1: %w", m.Channels(), tensor.ErrInvalidRank)
	}
	offsets := offsets4
	if conn == Conn8 {
		offsets = offsets8
	}

	h, w := m.Height(), m.Width()
	data := m.Data()
	seen := make([]bool, h*w)
	var comps []Component
	for i0, v := range data {
		if v <= 0 || seen[i0] {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		minR, minC, maxR, maxC := h, w, -1, -1
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ur, uc := u/w, u%w
			minR, maxR = min(minR, ur), max(maxR, ur)
			minC, maxC = min(minC, uc), max(maxC, uc)
			for _, d := range offsets {
				vr, vc := ur+d[0], uc+d[1]
				if vr < 0 || vr >= h || vc < 0 || vc >= w {
					continue
				}
				vi := vr*w + vc
				if !seen[vi] && data[vi] > 0 {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, Component{
			Pixels: queue,
			Box: Box{
				YMin: normalise(minR, h),
				XMin: normalise(minC, w),
				YMax: normalise(maxR, h),
				XMax: normalise(maxC, w),
			},
		})
	}

	return comps, nil
}

// ComponentBoxes returns one tight box per connected region of m.
func ComponentBoxes[T tensor.Number](m *tensor.Image[T], conn Connectivity) ([]Box, error) {
	comps, err := Components(m, conn)
	if err != nil {
		return nil, err
	}
	boxes := make([]Box, len(comps))
	for i, c := range comps {
		boxes[i] = c.Box
	}

	return boxes, nil
}
