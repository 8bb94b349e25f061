// Package exact converts float64 values into their exact decimal expansions.
//
// Every finite binary floating-point number is m*2^e for integers m and e,
// and for a negative e, 2^e = 5^-e * 10^e, so its decimal expansion is finite.
package exact

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/avdva/floatbits/format"
)

const (
	mantBits = 52
	expMask  = 1<<11 - 1
	bias     = 1023
)

var (
	errNotFinite = fmt.Errorf("not a finite number")
	five         = big.NewInt(5)
)

// FromFloat64 returns the exact decimal value of v.
// Returns an error for NaNs and infinities.
// Negative zero becomes zero, as decimals have no signed zeros.
func FromFloat64(v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, errNotFinite
	}
	b := math.Float64bits(v)
	e := int(b >> mantBits & expMask)
	m := b & (1<<mantBits - 1)
	if e == 0 { // subnormal, no implicit bit
		e = 1
	} else {
		m |= 1 << mantBits
	}
	e -= bias + mantBits
	mant := new(big.Int).SetUint64(m)
	if math.Signbit(v) {
		mant.Neg(mant)
	}
	if e >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(e)), 0), nil
	}
	pow := new(big.Int).Exp(five, big.NewInt(int64(-e)), nil)
	return decimal.NewFromBigInt(mant.Mul(mant, pow), int32(e)), nil
}

// String returns the exact decimal expansion of v without trailing zeros.
// Unlike FromFloat64, it keeps the sign of a negative zero.
// NaNs and infinities are formatted as "NaN", "+Inf", and "-Inf".
func String(v float64) string {
	d, err := FromFloat64(v)
	if err != nil {
		return format.Value(v)
	}
	if d.IsZero() && math.Signbit(v) {
		return "-0"
	}
	return d.String()
}
