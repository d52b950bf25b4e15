package dec

import (
	"math/big"
	"strings"
)

// floatPow computes x^y for positive x and fractional y as exp(y·ln x) on
// big.Float scratch values carrying guard bits past the working precision,
// then rounds back into a Dec.
func (c Context) floatPow(x, y Dec) (Dec, error) {
	prec := floatPrecBits(c.Prec)
	z := new(big.Float).SetPrec(prec).Mul(y.bigFloat(prec), bfLog(x.bigFloat(prec), prec))
	return c.fromFloat(bfExp(z, prec))
}

// floatPrecBits converts a decimal digit count to binary precision with
// headroom for series truncation and repeated squaring.
func floatPrecBits(digits int) uint {
	return uint(digits*10/3) + 64
}

func (d Dec) bigFloat(prec uint) *big.Float {
	f := new(big.Float).SetPrec(prec).SetInt(&d.coef)
	if d.scale > 0 {
		f.Quo(f, new(big.Float).SetPrec(prec).SetInt(pow10(d.scale)))
	}
	return f
}

// fromFloat converts f back to a Dec rounded to the working precision.
func (c Context) fromFloat(f *big.Float) (Dec, error) {
	if f.Sign() == 0 {
		return Dec{}, nil
	}
	text := f.Text('e', c.Prec+2)
	mant, exp := text, 0
	if i := strings.IndexByte(text, 'e'); i >= 0 {
		mant, exp = text[:i], parseExp(text[i+1:])
	}
	// reject before materializing a coefficient that cannot fit the budget
	if c.MaxDigits > 0 && exp > c.MaxDigits {
		return Dec{}, ErrPrecision
	}
	d, err := Parse(mant)
	if err != nil {
		return Dec{}, err
	}
	d = d.shift10(exp)
	return c.check(c.Round(d))
}

func parseExp(s string) int {
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		n = -n
	}
	return n
}

// shift10 returns d × 10^n.
func (d Dec) shift10(n int) Dec {
	var out Dec
	out.coef.Set(&d.coef)
	out.scale = d.scale - n
	if out.scale < 0 {
		out.coef.Mul(&out.coef, pow10(-out.scale))
		out.scale = 0
	}
	out.normalize()
	return out
}

// bfLog computes the natural logarithm of positive x: x is split as m·2^k
// with m in [1/2, 1), so ln x = k·ln 2 + 2·atanh((m-1)/(m+1)), and the atanh
// argument stays small enough for the series to converge quickly.
func bfLog(x *big.Float, prec uint) *big.Float {
	m := new(big.Float).SetPrec(prec)
	k := x.MantExp(m)

	oneF := new(big.Float).SetPrec(prec).SetInt64(1)
	num := new(big.Float).SetPrec(prec).Sub(m, oneF)
	den := new(big.Float).SetPrec(prec).Add(m, oneF)
	out := bfAtanh(num.Quo(num, den), prec)
	out.Mul(out, new(big.Float).SetPrec(prec).SetInt64(2))

	if k != 0 {
		kLn2 := new(big.Float).SetPrec(prec).SetInt64(int64(k))
		out.Add(out, kLn2.Mul(kLn2, bfLn2(prec)))
	}
	return out
}

// bfLn2 computes ln 2 = 2·atanh(1/3).
func bfLn2(prec uint) *big.Float {
	t := new(big.Float).SetPrec(prec).SetInt64(1)
	t.Quo(t, new(big.Float).SetPrec(prec).SetInt64(3))
	out := bfAtanh(t, prec)
	return out.Mul(out, new(big.Float).SetPrec(prec).SetInt64(2))
}

// bfAtanh sums t + t³/3 + t⁵/5 + … for |t| < 1.
func bfAtanh(t *big.Float, prec uint) *big.Float {
	sum := new(big.Float).SetPrec(prec).Set(t)
	t2 := new(big.Float).SetPrec(prec).Mul(t, t)
	term := new(big.Float).SetPrec(prec).Set(t)
	q := new(big.Float).SetPrec(prec)
	for n := int64(3); ; n += 2 {
		term.Mul(term, t2)
		q.Quo(term, new(big.Float).SetPrec(prec).SetInt64(n))
		if q.Sign() == 0 {
			break
		}
		sum.Add(sum, q)
		if q.MantExp(nil)+int(prec) < sum.MantExp(nil) {
			break
		}
	}
	return sum
}

// bfExp computes e^z by halving z until it is small, summing the Taylor
// series, and squaring the sum back up.
func bfExp(z *big.Float, prec uint) *big.Float {
	work := prec + 64

	r := new(big.Float).SetPrec(work)
	e := z.MantExp(r)
	halvings := 0
	if z.Sign() != 0 && e > -1 {
		halvings = e + 1
	}
	r.SetMantExp(r, e-halvings)

	sum := new(big.Float).SetPrec(work).SetInt64(1)
	term := new(big.Float).SetPrec(work).SetInt64(1)
	q := new(big.Float).SetPrec(work)
	for n := int64(1); ; n++ {
		term.Mul(term, r)
		term.Quo(term, q.SetInt64(n))
		if term.Sign() == 0 {
			break
		}
		sum.Add(sum, term)
		if term.MantExp(nil)+int(work) < sum.MantExp(nil) {
			break
		}
	}

	for i := 0; i < halvings; i++ {
		sum.Mul(sum, sum)
	}
	return sum.SetPrec(prec)
}

const (
	piDigits = "3.1415926535897932384626433832795028841971693993751" +
		"0582097494459230781640628620899862803482534211706798214808651328230664"
	eDigits = "2.7182818284590452353602874713526624977572470936999" +
		"5957496696762772407663035354759457138217852516642742746639193200305992"
)

// Pi returns π rounded to the working precision.
func (c Context) Pi() Dec {
	d, _ := Parse(piDigits)
	return c.Round(d)
}

// E returns Euler's number rounded to the working precision.
func (c Context) E() Dec {
	d, _ := Parse(eDigits)
	return c.Round(d)
}
