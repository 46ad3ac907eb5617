package mask_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segaug/mask"
	"github.com/katalvlaran/segaug/tensor"
)

func grid(t *testing.T, rows ...[]uint8) *tensor.Image[uint8] {
	t.Helper()
	var data []uint8
	for _, r := range rows {
		data = append(data, r...)
	}
	m, err := tensor.FromSlice(len(rows), len(rows[0]), 1, data)
	require.NoError(t, err)

	return m
}

func sizes(comps []mask.Component) []int {
	out := make([]int, len(comps))
	for i, c := range comps {
		out[i] = len(c.Pixels)
	}
	sort.Ints(out)

	return out
}

func TestComponents_Conn4(t *testing.T) {
	m := grid(t,
		[]uint8{0, 1, 1, 0},
		[]uint8{1, 1, 0, 0},
		[]uint8{0, 0, 1, 1},
	)
	comps, err := mask.Components(m, mask.Conn4)
	require.NoError(t, err)
	require.Equal(t, []int{2, 4}, sizes(comps))

	// First region found is the one containing (0,1).
	require.Equal(t, mask.Box{YMin: 0, XMin: 0, YMax: 0.5, XMax: 2.0 / 3}, comps[0].Box)
	require.Equal(t, mask.Box{YMin: 1, XMin: 2.0 / 3, YMax: 1, XMax: 1}, comps[1].Box)
}

func TestComponents_Diagonal(t *testing.T) {
	m := grid(t,
		[]uint8{1, 0, 0, 0, 1},
		[]uint8{0, 1, 0, 1, 0},
		[]uint8{0, 0, 1, 0, 0},
		[]uint8{0, 1, 0, 1, 0},
		[]uint8{1, 0, 0, 0, 1},
	)
	c4, err := mask.Components(m, mask.Conn4)
	require.NoError(t, err)
	require.Len(t, c4, 9)

	c8, err := mask.Components(m, mask.Conn8)
	require.NoError(t, err)
	require.Equal(t, []int{9}, sizes(c8))
	require.Equal(t, mask.Box{YMin: 0, XMin: 0, YMax: 1, XMax: 1}, c8[0].Box)
}

func TestComponentBoxes_EmptyAndErrors(t *testing.T) {
	empty, err := tensor.New[uint8](3, 3, 1)
	require.NoError(t, err)
	boxes, err := mask.ComponentBoxes(empty, mask.Conn8)
	require.NoError(t, err)
	require.Empty(t, boxes)

	rgb, err := tensor.New[uint8](3, 3, 3)
	require.NoError(t, err)
	_, err = mask.ComponentBoxes(rgb, mask.Conn4)
	require.ErrorIs(t, err, tensor.ErrInvalidRank)
}

func TestComponentBoxes_SingleRegionMatchesTightBox(t *testing.T) {
	m := rectMask(t, 32, 40, 3, 7, 20, 30)
	boxes, err := mask.ComponentBoxes(m, mask.Conn4)
	require.NoError(t, err)
	require.Len(t, boxes, 1)
	tight, err := mask.TightBox(m)
	require.NoError(t, err)
	require.Equal(t, tight, boxes[0])
}
