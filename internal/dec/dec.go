// Package dec implements signed arbitrary-precision decimal numbers: an
// integer coefficient scaled down by a power of ten. Addition, subtraction,
// and multiplication are exact; division and exponentiation round half-up to
// a Context's working precision. Every operation is bounded by the Context's
// digit budget so that runaway growth fails rather than allocates.
package dec

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrDivZero is returned when a divisor is exactly zero.
	ErrDivZero = errors.New("division by zero")

	// ErrPrecision is returned when a result would exceed the digit budget.
	ErrPrecision = errors.New("precision exceeded")

	// ErrDomain is returned for operations outside their domain, like raising
	// a negative number to a fractional power.
	ErrDomain = errors.New("invalid domain")
)

// A Dec is a decimal number coef × 10^-scale with scale >= 0.
// The zero Dec is the number 0. Dec values are immutable once created;
// operations always build fresh values.
type Dec struct {
	coef  big.Int
	scale int
}

// Context carries the working precision that inexact operations (Quo and
// fractional Pow) round to, and the digit ceiling that bounds every result:
// neither a result's coefficient digits nor its decimal places may exceed
// MaxDigits.
type Context struct {
	Prec      int
	MaxDigits int
}

// Parse reads a decimal literal: an optional sign, a digit run, and an
// optional fraction. Underscores are permitted as digit separators.
func Parse(s string) (Dec, error) {
	lit := strings.ReplaceAll(s, "_", "")
	neg := false
	if len(lit) > 0 && (lit[0] == '+' || lit[0] == '-') {
		neg = lit[0] == '-'
		lit = lit[1:]
	}
	intPart, fracPart := lit, ""
	if i := strings.IndexByte(lit, '.'); i >= 0 {
		intPart, fracPart = lit[:i], lit[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return Dec{}, fmt.Errorf("invalid number literal %q", s)
	}
	for _, r := range intPart + fracPart {
		if r < '0' || r > '9' {
			return Dec{}, fmt.Errorf("invalid number literal %q", s)
		}
	}
	var d Dec
	d.coef.SetString(intPart+fracPart, 10)
	d.scale = len(fracPart)
	if neg {
		d.coef.Neg(&d.coef)
	}
	d.normalize()
	return d, nil
}

// FromInt64 converts an int64 to a Dec.
func FromInt64(n int64) Dec {
	var d Dec
	d.coef.SetInt64(n)
	return d
}

func (d *Dec) normalize() {
	if d.coef.Sign() == 0 {
		d.scale = 0
		return
	}
	var q, r big.Int
	for d.scale > 0 {
		q.QuoRem(&d.coef, ten, &r)
		if r.Sign() != 0 {
			break
		}
		d.coef.Set(&q)
		d.scale--
	}
}

func (d Dec) String() string {
	digits := new(big.Int).Abs(&d.coef).Text(10)
	var sb strings.Builder
	if d.coef.Sign() < 0 {
		sb.WriteByte('-')
	}
	switch {
	case d.scale == 0:
		sb.WriteString(digits)
	case len(digits) <= d.scale:
		sb.WriteString("0.")
		sb.WriteString(strings.Repeat("0", d.scale-len(digits)))
		sb.WriteString(digits)
	default:
		sb.WriteString(digits[:len(digits)-d.scale])
		sb.WriteByte('.')
		sb.WriteString(digits[len(digits)-d.scale:])
	}
	return sb.String()
}

// Sign returns -1, 0, or 1 by the sign of d.
func (d Dec) Sign() int { return d.coef.Sign() }

// IsZero reports whether d is exactly zero.
func (d Dec) IsZero() bool { return d.coef.Sign() == 0 }

// IsInt reports whether d has no fractional part.
func (d Dec) IsInt() bool { return d.scale == 0 }

// Int64 returns d as an int64 when it is an integer that fits.
func (d Dec) Int64() (int64, bool) {
	if !d.IsInt() || !d.coef.IsInt64() {
		return 0, false
	}
	return d.coef.Int64(), true
}

// Cmp compares x and y numerically.
func (x Dec) Cmp(y Dec) int {
	a, b, _ := align(x, y)
	return a.Cmp(b)
}

// Equal reports whether x and y are the same number. Since every constructor
// normalizes (trailing zero digits trimmed), this coincides with comparing
// the normalized (sign, digits, scale) triples.
func (x Dec) Equal(y Dec) bool {
	return x.scale == y.scale && x.coef.Cmp(&y.coef) == 0
}

// Digits returns the number of decimal digits in d's coefficient.
func (d Dec) Digits() int { return numDigits(&d.coef) }

// Neg returns -d.
func (d Dec) Neg() Dec {
	var out Dec
	out.coef.Neg(&d.coef)
	out.scale = d.scale
	return out
}

// Abs returns |d|.
func (d Dec) Abs() Dec {
	var out Dec
	out.coef.Abs(&d.coef)
	out.scale = d.scale
	return out
}

// Add returns x + y exactly.
func (c Context) Add(x, y Dec) (Dec, error) {
	a, b, scale := align(x, y)
	var out Dec
	out.coef.Add(a, b)
	out.scale = scale
	out.normalize()
	return c.check(out)
}

// Sub returns x - y exactly.
func (c Context) Sub(x, y Dec) (Dec, error) {
	a, b, scale := align(x, y)
	var out Dec
	out.coef.Sub(a, b)
	out.scale = scale
	out.normalize()
	return c.check(out)
}

// Mul returns x * y exactly.
func (c Context) Mul(x, y Dec) (Dec, error) {
	// reject before allocating a product that cannot fit the budget
	if c.MaxDigits > 0 && !x.IsZero() && !y.IsZero() &&
		numDigits(&x.coef)+numDigits(&y.coef)-1 > c.MaxDigits {
		return Dec{}, ErrPrecision
	}
	var out Dec
	out.coef.Mul(&x.coef, &y.coef)
	out.scale = x.scale + y.scale
	out.normalize()
	return c.check(out)
}

// Quo returns x / y rounded half-up to c.Prec significant digits.
// Fails with ErrDivZero when y is zero.
func (c Context) Quo(x, y Dec) (Dec, error) {
	if y.IsZero() {
		return Dec{}, ErrDivZero
	}
	if x.IsZero() {
		return Dec{}, nil
	}
	// shift the dividend so the integer quotient carries two guard digits
	// beyond the working precision
	shift := c.Prec + 2 + numDigits(&y.coef) - numDigits(&x.coef)
	if shift < 0 {
		shift = 0
	}
	num := new(big.Int).Mul(&x.coef, pow10(shift))
	var out Dec
	out.coef.Quo(num, &y.coef)
	out.scale = x.scale + shift - y.scale
	if out.scale < 0 {
		out.coef.Mul(&out.coef, pow10(-out.scale))
		out.scale = 0
	}
	out = roundSig(out, c.Prec)
	return c.check(out)
}

// Round returns d rounded half-up to c.Prec significant digits.
func (c Context) Round(d Dec) Dec { return roundSig(d, c.Prec) }

// Pow returns x ^ y. Non-negative integer exponents are computed exactly by
// repeated multiplication, bounded by the digit budget; negative and
// fractional exponents round to the working precision like Quo does.
func (c Context) Pow(x, y Dec) (Dec, error) {
	if e, ok := y.Int64(); ok {
		if e >= 0 {
			return c.powInt(x, e)
		}
		if x.IsZero() {
			return Dec{}, ErrDivZero
		}
		p, err := c.powInt(x, -e)
		if err != nil {
			return Dec{}, err
		}
		return c.Quo(FromInt64(1), p)
	}
	if y.IsInt() {
		// an integer exponent too large for int64 cannot produce a
		// representable result for any base with |x| != 1
		return Dec{}, ErrPrecision
	}
	switch {
	case x.Sign() < 0:
		return Dec{}, ErrDomain
	case x.IsZero():
		if y.Sign() < 0 {
			return Dec{}, ErrDivZero
		}
		return Dec{}, nil
	}
	return c.floatPow(x, y)
}

func (c Context) powInt(x Dec, e int64) (Dec, error) {
	out, base := FromInt64(1), x
	var err error
	for e > 0 {
		if e&1 == 1 {
			if out, err = c.Mul(out, base); err != nil {
				return Dec{}, err
			}
		}
		if e >>= 1; e > 0 {
			if base, err = c.Mul(base, base); err != nil {
				return Dec{}, err
			}
		}
	}
	return out, nil
}

// check bounds a result's representation: coefficient digits and decimal
// places are both capped by MaxDigits, so a tiny coefficient cannot hide an
// unbounded fraction (0.1 squared k times is one digit over a 2^k scale).
func (c Context) check(d Dec) (Dec, error) {
	if c.MaxDigits > 0 && (numDigits(&d.coef) > c.MaxDigits || d.scale > c.MaxDigits) {
		return Dec{}, ErrPrecision
	}
	return d, nil
}

func align(x, y Dec) (a, b *big.Int, scale int) {
	switch {
	case x.scale == y.scale:
		return &x.coef, &y.coef, x.scale
	case x.scale < y.scale:
		return new(big.Int).Mul(&x.coef, pow10(y.scale-x.scale)), &y.coef, y.scale
	default:
		return &x.coef, new(big.Int).Mul(&y.coef, pow10(x.scale-y.scale)), x.scale
	}
}

func roundSig(d Dec, prec int) Dec {
	n := numDigits(&d.coef)
	if prec <= 0 || n <= prec {
		return d
	}
	drop := n - prec
	pow := pow10(drop)
	var out Dec
	var rem big.Int
	out.coef.QuoRem(&d.coef, pow, &rem)
	rem.Abs(&rem).Lsh(&rem, 1)
	if rem.Cmp(pow) >= 0 {
		if d.coef.Sign() < 0 {
			out.coef.Sub(&out.coef, one)
		} else {
			out.coef.Add(&out.coef, one)
		}
	}
	out.scale = d.scale - drop
	if out.scale < 0 {
		out.coef.Mul(&out.coef, pow10(-out.scale))
		out.scale = 0
	}
	out.normalize()
	return out
}

func numDigits(x *big.Int) int {
	s := x.Text(10)
	if s[0] == '-' {
		return len(s) - 1
	}
	return len(s)
}

var (
	one = big.NewInt(1)
	ten = big.NewInt(10)
)

func pow10(n int) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}
