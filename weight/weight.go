package weight

import (
	"errors"
	"math/big"
)

// Sentinel errors for the weight algebra.
var (
	// ErrDivisionByZero indicates a Div call with a zero divisor.
	ErrDivisionByZero = errors.New("weight: division by zero")

	// ErrBadEncoding indicates an encoded rational that cannot be parsed.
	ErrBadEncoding = errors.New("weight: bad rational encoding")
)

// W is an exact signed rational. The zero value of W is the number zero, so
// W values are usable without explicit construction.
//
// W is an immutable value type: every operation returns a fresh value and
// never mutates its receiver or arguments. Internally the numerator and
// denominator are kept reduced with denominator > 0 (big.Rat invariants).
type W struct {
	r *big.Rat // nil means exactly zero
}

// Zero returns the additive identity.
func Zero() W { return W{} }

// One returns the multiplicative identity.
func One() W { return FromInt(1) }

// FromInt converts a signed integer to W.
func FromInt(n int64) W {
	if n == 0 {
		return W{}
	}

	return W{r: new(big.Rat).SetInt64(n)}
}

// FromFrac builds the reduced rational n/d. Returns ErrDivisionByZero when
// d == 0.
func FromFrac(n, d int64) (W, error) {
	if d == 0 {
		return W{}, ErrDivisionByZero
	}
	if n == 0 {
		return W{}, nil
	}

	return W{r: new(big.Rat).SetFrac64(n, d)}, nil
}

// rat returns the receiver as a non-nil *big.Rat without exposing internals.
func (w W) rat() *big.Rat {
	if w.r == nil {
		return new(big.Rat)
	}

	return w.r
}

// Add returns w + o.
func (w W) Add(o W) W {
	if w.r == nil {
		return o
	}
	if o.r == nil {
		return w
	}
	sum := new(big.Rat).Add(w.r, o.r)
	if sum.Sign() == 0 {
		return W{}
	}

	return W{r: sum}
}

// Sub returns w − o.
func (w W) Sub(o W) W { return w.Add(o.Neg()) }

// Neg returns −w.
func (w W) Neg() W {
	if w.r == nil {
		return W{}
	}

	return W{r: new(big.Rat).Neg(w.r)}
}

// Mul returns w × o.
func (w W) Mul(o W) W {
	if w.r == nil || o.r == nil {
		return W{}
	}

	return W{r: new(big.Rat).Mul(w.r, o.r)}
}

// MulInt returns w × n. Rates in the solver are small integers, so this is
// the hot-path multiplication.
func (w W) MulInt(n int64) W {
	if w.r == nil || n == 0 {
		return W{}
	}

	return W{r: new(big.Rat).Mul(w.r, new(big.Rat).SetInt64(n))}
}

// Div returns w ÷ o, or ErrDivisionByZero when o is zero.
func (w W) Div(o W) (W, error) {
	if o.r == nil {
		return W{}, ErrDivisionByZero
	}
	if w.r == nil {
		return W{}, nil
	}

	return W{r: new(big.Rat).Quo(w.r, o.r)}, nil
}

// DivInt returns w ÷ n, or ErrDivisionByZero when n == 0.
func (w W) DivInt(n int64) (W, error) { return w.Div(FromInt(n)) }

// Cmp compares w and o: −1 if w < o, 0 if equal, +1 if w > o.
func (w W) Cmp(o W) int { return w.rat().Cmp(o.rat()) }

// Sign reports −1, 0 or +1 according to the sign of w.
func (w W) Sign() int {
	if w.r == nil {
		return 0
	}

	return w.r.Sign()
}

// IsZero reports whether w is exactly zero.
func (w W) IsZero() bool { return w.Sign() == 0 }

// Equal reports exact equality.
func (w W) Equal(o W) bool { return w.Cmp(o) == 0 }

// Float64 returns the nearest float64 approximation of w.
func (w W) Float64() float64 {
	f, _ := w.rat().Float64()

	return f
}

// Numer returns the reduced numerator as a fresh big.Int.
func (w W) Numer() *big.Int { return new(big.Int).Set(w.rat().Num()) }

// Denom returns the reduced denominator (always positive) as a fresh big.Int.
func (w W) Denom() *big.Int { return new(big.Int).Set(w.rat().Denom()) }

// IsInt reports whether w has denominator 1.
func (w W) IsInt() bool { return w.rat().IsInt() }

// String renders w as "numer" or "numer/denom".
func (w W) String() string {
	if w.IsInt() {
		return w.rat().Num().String()
	}

	return w.rat().RatString()
}
