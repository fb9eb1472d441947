package calc_test

import (
	"math/big"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zephyrtronium/bigfloat"

	"github.com/zephyrtronium/calc"
)

// oracleprec is the precision of reference computations.
const oracleprec = 256

func bigf(x float64) *big.Float {
	return new(big.Float).SetPrec(oracleprec).SetFloat64(x)
}

func TestExpAccuracy(t *testing.T) {
	for _, x := range []float64{0.5, 1, 2.5, 10, 0.125, 20} {
		src := "exp(" + strconv.FormatFloat(x, 'g', -1, 64) + ")"
		r, err := calc.Eval(src)
		require.NoError(t, err, "evaluating %q", src)
		want, _ := bigfloat.Exp(bigf(0), bigf(x)).Float64()
		assert.InEpsilon(t, want, r, 1e-15, "evaluating %q", src)
	}
	// Negative arguments go through unary minus.
	r, err := calc.Eval("exp(-3)")
	require.NoError(t, err)
	want, _ := bigfloat.Exp(bigf(0), bigf(-3)).Float64()
	assert.InEpsilon(t, want, r, 1e-15)
}

func TestPowAccuracy(t *testing.T) {
	cases := []struct {
		x, y float64
	}{
		{2, 0.5},
		{10, 2.5},
		{1.5, 3},
		{3, 0.25},
		{7, 1.125},
		{0.5, 10},
	}
	for _, c := range cases {
		src := strconv.FormatFloat(c.x, 'g', -1, 64) + "^" + strconv.FormatFloat(c.y, 'g', -1, 64)
		r, err := calc.Eval(src)
		require.NoError(t, err, "evaluating %q", src)
		want, _ := bigfloat.Pow(bigf(0), bigf(c.x), bigf(c.y)).Float64()
		assert.InEpsilon(t, want, r, 1e-15, "evaluating %q", src)
	}
}

func TestPowRightAssocAccuracy(t *testing.T) {
	// 2^0.5^2 is 2^(0.5^2) = 2^0.25.
	r, err := calc.Eval("2^0.5^2")
	require.NoError(t, err)
	want, _ := bigfloat.Pow(bigf(0), bigf(2), bigf(0.25)).Float64()
	assert.InEpsilon(t, want, r, 1e-15)
}
