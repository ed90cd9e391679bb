// Package tile implements the deterministic rule that maps an r x c matrix
// onto an R x C grid of near-equal-size tiles, plus the extract/place
// helpers kernels and the matmul driver use to move data between a full
// matrix and a single worker's tile.
package tile

import "github.com/luxfi/meshsim/internal/matrix"

// SubmatrixDim names one worker's tile of a larger matrix.
type SubmatrixDim struct {
	StartRow, StartCol int
	Height, Width      int
}

// PartitionAxis splits an axis of the given length across n workers: the
// first length%n entries get ceil(length/n), the rest get floor(length/n).
// This single formula also produces the length==0 and n>length degenerate
// cases (all-zero, and trailing zero-length tiles) with no special casing.
func PartitionAxis(length, n int) []int {
	base := length / n
	rem := length % n
	lens := make([]int, n)
	for i := range lens {
		if i < rem {
			lens[i] = base + 1
		} else {
			lens[i] = base
		}
	}
	return lens
}

// prefixSums returns the cumulative offsets for a slice of lengths: out[i]
// is the sum of lens[:i].
func prefixSums(lens []int) []int {
	out := make([]int, len(lens))
	sum := 0
	for i, l := range lens {
		out[i] = sum
		sum += l
	}
	return out
}

// BuildTiles returns the R*C SubmatrixDims covering a rows x cols matrix, in
// row-major order by worker index so that cell (i,j) is at index i*C+j.
func BuildTiles(rows, cols, R, C int) []SubmatrixDim {
	rowLens := PartitionAxis(rows, R)
	colLens := PartitionAxis(cols, C)
	rowStarts := prefixSums(rowLens)
	colStarts := prefixSums(colLens)

	dims := make([]SubmatrixDim, R*C)
	for i := 0; i < R; i++ {
		for j := 0; j < C; j++ {
			dims[i*C+j] = SubmatrixDim{
				StartRow: rowStarts[i],
				StartCol: colStarts[j],
				Height:   rowLens[i],
				Width:    colLens[j],
			}
		}
	}
	return dims
}

// Extract copies the SubmatrixDim's region of m out into its own Matrix.
func Extract[T any](m *matrix.Matrix[T], dim SubmatrixDim) *matrix.Matrix[T] {
	out := matrix.New[T](dim.Height, dim.Width)
	for i := 0; i < dim.Height; i++ {
		for j := 0; j < dim.Width; j++ {
			out.Set(i, j, m.At(dim.StartRow+i, dim.StartCol+j))
		}
	}
	return out
}

// Place splats a worker's tile result back into the SubmatrixDim's region
// of dest.
func Place[T any](dest *matrix.Matrix[T], dim SubmatrixDim, tile *matrix.Matrix[T]) {
	for i := 0; i < dim.Height; i++ {
		for j := 0; j < dim.Width; j++ {
			dest.Set(dim.StartRow+i, dim.StartCol+j, tile.At(i, j))
		}
	}
}
