package boolmatrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetGetNNZ(t *testing.T) {
	m := New(3, 3)
	require.Equal(t, 0, m.NNZ())
	m.Set(0, 1)
	m.Set(0, 1) // idempotent
	m.Set(2, 2)
	require.Equal(t, 2, m.NNZ())
	require.True(t, m.Get(0, 1))
	require.False(t, m.Get(1, 1))
}

func TestIdentity(t *testing.T) {
	m := Identity(3)
	require.Equal(t, 3, m.NNZ())
	for i := 0; i < 3; i++ {
		require.True(t, m.Get(i, i))
	}
}

func TestSum(t *testing.T) {
	a := New(2, 2)
	a.Set(0, 0)
	b := New(2, 2)
	b.Set(0, 0)
	b.Set(1, 1)
	s := Sum(a, b)
	require.Equal(t, 2, s.NNZ())
	require.True(t, s.Get(0, 0))
	require.True(t, s.Get(1, 1))
}

func TestProduct(t *testing.T) {
	// path 0->1->2 as boolean matmul
	a := New(3, 3)
	a.Set(0, 1)
	b := New(3, 3)
	b.Set(1, 2)
	p := Product(a, b)
	require.True(t, p.Get(0, 2))
	require.Equal(t, 1, p.NNZ())
}

func TestKron(t *testing.T) {
	a := New(2, 2)
	a.Set(0, 1)
	b := New(2, 2)
	b.Set(1, 0)
	k := Kron(a, b)
	require.Equal(t, 4, k.Rows)
	require.Equal(t, 4, k.Cols)
	// index(0,1) in a, index(1,0) in b => row 0*2+1=1, col 1*2+0=2
	require.True(t, k.Get(1, 2))
	require.Equal(t, 1, k.NNZ())
}

func TestHStackVStack(t *testing.T) {
	a := New(2, 2)
	a.Set(0, 0)
	b := New(2, 3)
	b.Set(1, 2)
	h := HStack(a, b)
	require.Equal(t, 2, h.Rows)
	require.Equal(t, 5, h.Cols)
	require.True(t, h.Get(0, 0))
	require.True(t, h.Get(1, 4))

	v := VStack(a, Identity(2))
	require.Equal(t, 4, v.Rows)
	require.True(t, v.Get(2, 0))
	require.True(t, v.Get(3, 1))
}

func TestBlock(t *testing.T) {
	a := Identity(2)
	b := Identity(3)
	blk := Block(a, b)
	require.Equal(t, 5, blk.Rows)
	require.Equal(t, 5, blk.Cols)
	require.Equal(t, 5, blk.NNZ())
	require.True(t, blk.Get(0, 0))
	require.True(t, blk.Get(4, 4))
	require.False(t, blk.Get(0, 2))
}

func TestGetRowOrRowInto(t *testing.T) {
	m := New(2, 3)
	m.Set(0, 0)
	m.Set(0, 2)
	row := m.GetRow(0)
	require.Equal(t, 1, row.Rows)
	require.True(t, row.Get(0, 0))

	target := New(2, 3)
	target.OrRowInto(1, row)
	require.True(t, target.Get(1, 0))
	require.True(t, target.Get(1, 2))
}

func TestEntriesAndNonEmptyRows(t *testing.T) {
	m := New(2, 2)
	m.Set(1, 0)
	require.Equal(t, []int{1}, m.NonEmptyRows())
	require.Equal(t, [][2]int{{1, 0}}, m.Entries())
}

func TestTranspose(t *testing.T) {
	m := New(2, 3)
	m.Set(0, 1)
	m.Set(1, 2)
	tr := m.Transpose()
	require.Equal(t, 3, tr.Rows)
	require.Equal(t, 2, tr.Cols)
	require.True(t, tr.Get(1, 0))
	require.True(t, tr.Get(2, 1))
	require.Equal(t, 2, tr.NNZ())
}

func TestEqual(t *testing.T) {
	a := New(2, 2)
	a.Set(0, 1)
	b := New(2, 2)
	b.Set(0, 1)
	require.True(t, Equal(a, b))
	b.Set(1, 1)
	require.False(t, Equal(a, b))
}

func TestColumnUnion(t *testing.T) {
	m := New(2, 3)
	m.Set(0, 1)
	m.Set(1, 2)
	v := m.ColumnUnion()
	require.Equal(t, 1, v.Rows)
	require.True(t, v.Get(0, 1))
	require.True(t, v.Get(0, 2))
	require.False(t, v.Get(0, 0))
}
