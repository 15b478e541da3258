package gf

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustField(t *testing.T, p int64) Field {
	t.Helper()
	f, err := New(big.NewInt(p))
	require.NoError(t, err)
	return f
}

func TestArithmeticReducesIntoRange(t *testing.T) {
	f := mustField(t, 101)

	require.Equal(t, big.NewInt(3), f.Add(big.NewInt(100), big.NewInt(4)))
	require.Equal(t, big.NewInt(99), f.Sub(big.NewInt(2), big.NewInt(4)))
	require.Equal(t, big.NewInt(100), f.Mul(big.NewInt(10), big.NewInt(10)))
	require.Equal(t, big.NewInt(1), f.Neg(big.NewInt(100)))
}

func TestInvRoundTrips(t *testing.T) {
	f := mustField(t, 101)

	for x := int64(1); x < 101; x++ {
		inv, err := f.Inv(big.NewInt(x))
		require.NoError(t, err)
		require.Equal(t, big.NewInt(1), f.Mul(big.NewInt(x), inv))
	}
}

func TestInvZeroNotInvertible(t *testing.T) {
	f := mustField(t, 101)

	_, err := f.Inv(big.NewInt(0))
	require.ErrorIs(t, err, ErrNotInvertible)
}

func TestInvCompositeModulus(t *testing.T) {
	// 6 and 9 share a factor of 3 with modulus 9: inverse does not exist.
	f := mustField(t, 9)

	_, err := f.Inv(big.NewInt(6))
	require.ErrorIs(t, err, ErrNotInvertible)

	// 2 is coprime to 9 and does invert.
	inv, err := f.Inv(big.NewInt(2))
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1), f.Mul(big.NewInt(2), inv))
}

func TestNewRejectsNonPositiveModulus(t *testing.T) {
	_, err := New(big.NewInt(0))
	require.Error(t, err)

	_, err = New(big.NewInt(-5))
	require.Error(t, err)
}

func TestDiv(t *testing.T) {
	f := mustField(t, 101)

	q, err := f.Div(big.NewInt(10), big.NewInt(5))
	require.NoError(t, err)
	require.Equal(t, big.NewInt(2), q)

	_, err = f.Div(big.NewInt(10), big.NewInt(0))
	require.ErrorIs(t, err, ErrNotInvertible)
}
