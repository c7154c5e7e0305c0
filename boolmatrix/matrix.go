// Package boolmatrix implements row-compressed boolean matrix primitives:
// sum, product, Kronecker product, stacking, identity, row access, and an
// in-place row-OR, all under boolean (OR/AND) semiring semantics. It is
// the algebraic substrate automaton.Automaton and the rpq/cfpq engines
// are built on.
//
// Storage mirrors the CSR layout lvlath/graph/matrix uses for its
// (dense) AdjacencyMatrix, specialised to a sparse, boolean
// representation: each row is a sorted slice of the columns holding a
// `true` entry.
package boolmatrix

import "sort"

// Matrix is an immutable-shape, mutable-content boolean matrix in
// row-compressed form: the unexported data[i] holds the sorted column
// indices where row i is true.
type Matrix struct {
	Rows, Cols int
	data       [][]int32 // data[i] = sorted set of j with M[i][j] == true
}

// New returns an all-false Matrix of the given shape.
func New(rows, cols int) *Matrix {
	return &Matrix{Rows: rows, Cols: cols, data: make([][]int32, rows)}
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	m := New(n, n)
	for i := 0; i < n; i++ {
		m.data[i] = []int32{int32(i)}
	}
	return m
}

// Get reports M[i][j].
func (m *Matrix) Get(i, j int) bool {
	row := m.data[i]
	k := sort.Search(len(row), func(k int) bool { return row[k] >= int32(j) })
	return k < len(row) && row[k] == int32(j)
}

// Set sets M[i][j] = true. Lazily allocates the row.
func (m *Matrix) Set(i, j int) {
	row := m.data[i]
	k := sort.Search(len(row), func(k int) bool { return row[k] >= int32(j) })
	if k < len(row) && row[k] == int32(j) {
		return
	}
	row = append(row, 0)
	copy(row[k+1:], row[k:])
	row[k] = int32(j)
	m.data[i] = row
}

// NNZ returns the number of true entries; used as the monotone fixpoint
// sentinel by every closure/iteration loop built on this package.
func (m *Matrix) NNZ() int {
	n := 0
	for _, row := range m.data {
		n += len(row)
	}
	return n
}

// GetRow returns the 1×Cols boolean vector for row i, as a fresh Matrix so
// callers can feed it back into row-oriented operations.
func (m *Matrix) GetRow(i int) *Matrix {
	out := New(1, m.Cols)
	if len(m.data[i]) > 0 {
		row := make([]int32, len(m.data[i]))
		copy(row, m.data[i])
		out.data[0] = row
	}
	return out
}

// OrRowInto ORs src's row 0 into this matrix's row i in place.
func (m *Matrix) OrRowInto(i int, src *Matrix) {
	for _, j := range src.data[0] {
		m.Set(i, int(j))
	}
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := New(m.Rows, m.Cols)
	for i, row := range m.data {
		if len(row) == 0 {
			continue
		}
		cp := make([]int32, len(row))
		copy(cp, row)
		out.data[i] = cp
	}
	return out
}

// Sum returns the elementwise OR of a and b. Panics on shape mismatch.
func Sum(a, b *Matrix) *Matrix {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		panic("boolmatrix: Sum shape mismatch")
	}
	out := a.Clone()
	for i, row := range b.data {
		for _, j := range row {
			out.Set(i, int(j))
		}
	}
	return out
}

// Product returns the boolean matrix product a @ b (AND/OR semiring).
// Panics if a.Cols != b.Rows.
func Product(a, b *Matrix) *Matrix {
	if a.Cols != b.Rows {
		panic("boolmatrix: Product shape mismatch")
	}
	out := New(a.Rows, b.Cols)
	for i, row := range a.data {
		if len(row) == 0 {
			continue
		}
		seen := make(map[int32]struct{})
		for _, k := range row {
			for _, j := range b.data[k] {
				seen[j] = struct{}{}
			}
		}
		if len(seen) == 0 {
			continue
		}
		cols := make([]int32, 0, len(seen))
		for j := range seen {
			cols = append(cols, j)
		}
		sort.Slice(cols, func(x, y int) bool { return cols[x] < cols[y] })
		out.data[i] = cols
	}
	return out
}

// Kron returns the Kronecker product a ⊗ b, of shape
// (a.Rows*b.Rows) × (a.Cols*b.Cols), with index(i,k) = i*b.Rows+k.
func Kron(a, b *Matrix) *Matrix {
	out := New(a.Rows*b.Rows, a.Cols*b.Cols)
	for i, arow := range a.data {
		if len(arow) == 0 {
			continue
		}
		for k := 0; k < b.Rows; k++ {
			brow := b.data[k]
			if len(brow) == 0 {
				continue
			}
			outRow := out.data[i*b.Rows+k]
			for _, j := range arow {
				for _, l := range brow {
					outRow = append(outRow, j*int32(b.Cols)+l)
				}
			}
			sort.Slice(outRow, func(x, y int) bool { return outRow[x] < outRow[y] })
			out.data[i*b.Rows+k] = outRow
		}
	}
	return out
}

// HStack concatenates a and b horizontally: result is a.Rows × (a.Cols+b.Cols),
// requires a.Rows == b.Rows.
func HStack(a, b *Matrix) *Matrix {
	if a.Rows != b.Rows {
		panic("boolmatrix: HStack row mismatch")
	}
	out := New(a.Rows, a.Cols+b.Cols)
	for i := 0; i < a.Rows; i++ {
		var row []int32
		row = append(row, a.data[i]...)
		for _, j := range b.data[i] {
			row = append(row, j+int32(a.Cols))
		}
		out.data[i] = row
	}
	return out
}

// VStack concatenates a and b vertically: result is (a.Rows+b.Rows) × a.Cols,
// requires a.Cols == b.Cols.
func VStack(a, b *Matrix) *Matrix {
	if a.Cols != b.Cols {
		panic("boolmatrix: VStack col mismatch")
	}
	out := New(a.Rows+b.Rows, a.Cols)
	for i := 0; i < a.Rows; i++ {
		out.data[i] = append([]int32(nil), a.data[i]...)
	}
	for i := 0; i < b.Rows; i++ {
		out.data[a.Rows+i] = append([]int32(nil), b.data[i]...)
	}
	return out
}

// Block builds the (ar+br)×(ac+bc) block-diagonal matrix
// [[a, 0], [0, b]], used by automaton.DirectSum.
func Block(a, b *Matrix) *Matrix {
	top := HStack(a, New(a.Rows, b.Cols))
	bottom := HStack(New(b.Rows, a.Cols), b)
	return VStack(top, bottom)
}

// NonEmptyRows returns the row indices that have at least one true entry.
func (m *Matrix) NonEmptyRows() []int {
	var out []int
	for i, row := range m.data {
		if len(row) > 0 {
			out = append(out, i)
		}
	}
	return out
}

// Entries yields every (i, j) pair with M[i][j] == true, in row-major order.
func (m *Matrix) Entries() [][2]int {
	var out [][2]int
	for i, row := range m.data {
		for _, j := range row {
			out = append(out, [2]int{i, int(j)})
		}
	}
	return out
}

// Transpose returns the Cols×Rows matrix M^T.
func (m *Matrix) Transpose() *Matrix {
	out := New(m.Cols, m.Rows)
	for i, row := range m.data {
		for _, j := range row {
			out.Set(int(j), i)
		}
	}
	return out
}

// Equal reports whether a and b have the same shape and the same set of
// true entries.
func Equal(a, b *Matrix) bool {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return false
	}
	for i := range a.data {
		if len(a.data[i]) != len(b.data[i]) {
			return false
		}
		for k, j := range a.data[i] {
			if b.data[i][k] != j {
				return false
			}
		}
	}
	return true
}

// ColumnUnion ORs every row of m together into a single 1×Cols vector.
func (m *Matrix) ColumnUnion() *Matrix {
	out := New(1, m.Cols)
	for _, row := range m.data {
		for _, j := range row {
			out.Set(0, int(j))
		}
	}
	return out
}
