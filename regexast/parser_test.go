package regexast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLiteral(t *testing.T) {
	e, err := Parse("a")
	require.NoError(t, err)
	require.Equal(t, Lit{Token: "a"}, e)
}

func TestParseConcatUnionStar(t *testing.T) {
	e, err := Parse("a* | b")
	require.NoError(t, err)
	u, ok := e.(Union)
	require.True(t, ok)
	require.Len(t, u.Operands, 2)
	require.Equal(t, Star{Operand: Lit{Token: "a"}}, u.Operands[0])
	require.Equal(t, Lit{Token: "b"}, u.Operands[1])
}

func TestParseGrouping(t *testing.T) {
	e, err := Parse("(a b)*")
	require.NoError(t, err)
	st, ok := e.(Star)
	require.True(t, ok)
	c, ok := st.Operand.(Concat)
	require.True(t, ok)
	require.Len(t, c.Operands, 2)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse("(a")
	require.ErrorIs(t, err, ErrMalformedRegex)

	_, err = Parse("* a")
	require.ErrorIs(t, err, ErrMalformedRegex)

	_, err = Parse("a)")
	require.ErrorIs(t, err, ErrMalformedRegex)
}
