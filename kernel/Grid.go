package kernel

import (
	"fmt"

	"gorgonia.org/tensor"

	"github.com/samuelfneumann/gnpengine/utils/tensorutils"
)

// grid is a dense N-dimensional accumulator backed by a gorgonia
// tensor.Dense buffer. It exists to satisfy design note §9's
// "multi-dimensional dynamic arrays... implement as contiguous backing
// buffers indexed by computed strides" — tensor.Dense supplies the
// contiguous buffer, grid supplies the typed stride accessors the
// original raw-pointer arrays relied on.
type grid struct {
	t       *tensor.Dense
	dims    []int
	strides []int
	data    []float64
}

// newGrid allocates a grid with the given dimensions, zero-initialized.
func newGrid(dims ...int) *grid {
	size := 1
	for _, d := range dims {
		size *= d
	}

	backing := make([]float64, size)
	t := tensor.New(tensor.WithShape(dims...), tensor.WithBacking(backing))

	strides := make([]int, len(dims))
	acc := 1
	for i := len(dims) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= dims[i]
	}

	return &grid{t: t, dims: dims, strides: strides, data: backing}
}

func (g *grid) index(coords []int) int {
	idx := 0
	for d, c := range coords {
		idx += c * g.strides[d]
	}
	return idx
}

// Get returns the value stored at coords.
func (g *grid) Get(coords ...int) float64 {
	return g.data[g.index(coords)]
}

// Set stores v at coords.
func (g *grid) Set(v float64, coords ...int) {
	g.data[g.index(coords)] = v
}

// Add accumulates delta onto the value stored at coords.
func (g *grid) Add(delta float64, coords ...int) {
	g.data[g.index(coords)] += delta
}

// Fill sets every element to v.
func (g *grid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Row slices out every trailing-dimension value for the fixed leading
// coordinates i, k, using the tensor package's own Slice machinery
// (tensorutils.Slice) rather than manual stride arithmetic — the
// grid-wide accumulation loops index coords directly for speed, but a
// single per-chain row is small enough that going through tensor.Dense's
// Slice is the more natural read path.
func (g *grid) Row(i, k int) ([]float64, error) {
	view, err := g.t.Slice(tensorutils.NewSlice(i, i+1, 1), tensorutils.NewSlice(k, k+1, 1))
	if err != nil {
		return nil, err
	}
	row, ok := view.Data().([]float64)
	if !ok {
		return nil, fmt.Errorf("kernel: unexpected tensor row type %T", view.Data())
	}
	return row, nil
}
