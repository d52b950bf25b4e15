package dec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = Context{Prec: 48, MaxDigits: 4096}

func mustParse(t *testing.T, s string) Dec {
	t.Helper()
	d, err := Parse(s)
	require.NoError(t, err, "parse %q", s)
	return d
}

func TestParseAndString(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"3", "3"},
		{"+3", "3"},
		{"-3", "-3"},
		{"3.50", "3.5"},
		{"0.0", "0"},
		{".5", "0.5"},
		{"-0.25", "-0.25"},
		{"1_000.5", "1000.5"},
		{"000042", "42"},
		{"0.0001", "0.0001"},
	} {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, mustParse(t, tc.in).String())
		})
	}

	for _, bad := range []string{"", ".", "-", "1.2.3", "12a", "1-2"} {
		t.Run("bad "+bad, func(t *testing.T) {
			_, err := Parse(bad)
			assert.Error(t, err)
		})
	}
}

func TestEqualNormalizes(t *testing.T) {
	assert.True(t, mustParse(t, "1.50").Equal(mustParse(t, "1.5")))
	assert.True(t, mustParse(t, "0.0").Equal(Dec{}))
	assert.False(t, mustParse(t, "1.5").Equal(mustParse(t, "1.51")))
}

func TestExactArithmetic(t *testing.T) {
	add := func(a, b string) string {
		d, err := ctx.Add(mustParse(t, a), mustParse(t, b))
		require.NoError(t, err)
		return d.String()
	}
	sub := func(a, b string) string {
		d, err := ctx.Sub(mustParse(t, a), mustParse(t, b))
		require.NoError(t, err)
		return d.String()
	}
	mul := func(a, b string) string {
		d, err := ctx.Mul(mustParse(t, a), mustParse(t, b))
		require.NoError(t, err)
		return d.String()
	}

	assert.Equal(t, "3.75", add("1.5", "2.25"))
	assert.Equal(t, "0.3", add("0.1", "0.2"), "decimal addition is exact")
	assert.Equal(t, "-1", sub("1", "2"))
	assert.Equal(t, "3", mul("1.5", "2"))
	assert.Equal(t, "456790119.3", mul("123456789", "3.7"))
	assert.Equal(t, "0", mul("0", "123.45"))
}

func TestQuo(t *testing.T) {
	c := Context{Prec: 8}
	quo := func(a, b string) (string, error) {
		d, err := c.Quo(mustParse(t, a), mustParse(t, b))
		return d.String(), err
	}

	got, err := quo("1", "8")
	require.NoError(t, err)
	assert.Equal(t, "0.125", got)

	got, err = quo("1", "3")
	require.NoError(t, err)
	assert.Equal(t, "0.33333333", got)

	got, err = quo("2", "3")
	require.NoError(t, err)
	assert.Equal(t, "0.66666667", got, "rounds half-up at the working precision")

	got, err = quo("10", "2")
	require.NoError(t, err)
	assert.Equal(t, "5", got)

	_, err = quo("5", "0")
	assert.ErrorIs(t, err, ErrDivZero)
}

func TestMulQuoRoundTrip(t *testing.T) {
	a, b := mustParse(t, "123456789"), mustParse(t, "3.7")
	prod, err := ctx.Mul(a, b)
	require.NoError(t, err)
	back, err := ctx.Quo(prod, b)
	require.NoError(t, err)
	assert.True(t, back.Equal(a), "got %v", back)
}

func TestPow(t *testing.T) {
	pow := func(a, b string) (string, error) {
		d, err := ctx.Pow(mustParse(t, a), mustParse(t, b))
		return d.String(), err
	}

	got, err := pow("2", "10")
	require.NoError(t, err)
	assert.Equal(t, "1024", got)

	got, err = pow("10", "40")
	require.NoError(t, err)
	assert.Equal(t, "1"+strings.Repeat("0", 40), got)

	got, err = pow("7", "0")
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	got, err = pow("2", "-2")
	require.NoError(t, err)
	assert.Equal(t, "0.25", got)

	got, err = pow("9", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "3", got)

	got, err = pow("2.25", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "1.5", got)

	got, err = pow("2", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "1.414213562373095048", got[:20])

	got, err = pow("0", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "0", got)

	_, err = pow("-2", "0.5")
	assert.ErrorIs(t, err, ErrDomain)

	_, err = pow("0", "-1")
	assert.ErrorIs(t, err, ErrDivZero)
}

func TestPrecisionCeiling(t *testing.T) {
	c := Context{Prec: 8, MaxDigits: 10}

	_, err := c.Mul(mustParse(t, "12345"), mustParse(t, "1234567"))
	assert.ErrorIs(t, err, ErrPrecision)

	_, err = c.Pow(mustParse(t, "99999"), mustParse(t, "3"))
	assert.ErrorIs(t, err, ErrPrecision)

	got, err := c.Mul(mustParse(t, "99"), mustParse(t, "999"))
	require.NoError(t, err)
	assert.Equal(t, "98901", got.String())

	wide := Context{Prec: 48, MaxDigits: 4096}
	_, err = wide.Pow(mustParse(t, "9"), mustParse(t, "6561"))
	assert.ErrorIs(t, err, ErrPrecision, "9^6561 has over six thousand digits")

	_, err = wide.Pow(mustParse(t, "10"), mustParse(t, "1000000.5"))
	assert.ErrorIs(t, err, ErrPrecision, "rejected before building the coefficient")
}

func TestScaleCeiling(t *testing.T) {
	c := Context{Prec: 48, MaxDigits: 64}

	d := mustParse(t, "0.1")
	var err error
	for i := 0; i < 6; i++ {
		d, err = c.Mul(d, d)
		require.NoError(t, err, "squaring %d", i+1)
	}
	assert.Equal(t, "0."+strings.Repeat("0", 63)+"1", d.String())

	_, err = c.Mul(d, d)
	assert.ErrorIs(t, err, ErrPrecision, "decimal places may not outgrow the ceiling")

	small := Context{Prec: 8, MaxDigits: 4}
	_, err = small.Mul(mustParse(t, "0.001"), mustParse(t, "0.001"))
	assert.ErrorIs(t, err, ErrPrecision)
}

func TestRound(t *testing.T) {
	c := Context{Prec: 2}
	assert.Equal(t, "1000", c.Round(mustParse(t, "999")).String(), "carry on round-up")
	assert.Equal(t, "0.033", c.Round(mustParse(t, "0.033333")).String())
	assert.Equal(t, "12", c.Round(mustParse(t, "12")).String())
	assert.Equal(t, "-0.67", c.Round(mustParse(t, "-0.666")).String())
}

func TestConstants(t *testing.T) {
	pi := ctx.Pi()
	assert.Equal(t, "3.14159265358979323846264338327950288419716939938", pi.String())
	assert.LessOrEqual(t, pi.Digits(), 48)

	e := ctx.E()
	assert.Equal(t, "2.7182818284590452353602874713526624977572470937", e.String())
}

func TestIntegerConversions(t *testing.T) {
	n, ok := mustParse(t, "42").Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(42), n)

	_, ok = mustParse(t, "4.2").Int64()
	assert.False(t, ok)

	assert.True(t, mustParse(t, "42").IsInt())
	assert.True(t, mustParse(t, "42.0").IsInt(), "normalization trims the zero fraction")
	assert.False(t, mustParse(t, "4.2").IsInt())
}

func TestCmpSignNegAbs(t *testing.T) {
	assert.Negative(t, mustParse(t, "2").Cmp(mustParse(t, "10")))
	assert.Positive(t, mustParse(t, "-1").Cmp(mustParse(t, "-2")))
	assert.Zero(t, mustParse(t, "1.50").Cmp(mustParse(t, "1.5")))

	assert.Equal(t, "-1.5", mustParse(t, "1.5").Neg().String())
	assert.Equal(t, "1.5", mustParse(t, "-1.5").Abs().String())
	assert.Equal(t, -1, mustParse(t, "-3").Sign())
	assert.Equal(t, 0, Dec{}.Sign())
}
