package floatbits

import (
	"fmt"
	"math"

	"github.com/avdva/floatbits/internal/mathutil"
)

// Class is a category of an encoded value.
type Class int

const (
	// ClassZero is a zero exponent and a zero significand.
	ClassZero Class = iota
	// ClassSubnormal is a zero exponent and a non-zero significand.
	ClassSubnormal
	// ClassNormal is an exponent, which is neither zero nor all ones.
	ClassNormal
	// ClassInfinite is an all-ones exponent and a zero significand.
	ClassInfinite
	// ClassNaN is an all-ones exponent and a non-zero significand.
	ClassNaN
)

// String returns the name of a class.
func (c Class) String() string {
	switch c {
	case ClassZero:
		return "zero"
	case ClassSubnormal:
		return "subnormal"
	case ClassNormal:
		return "normal"
	case ClassInfinite:
		return "infinite"
	case ClassNaN:
		return "nan"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Components are raw and interpreted parts of a bit field.
type Components struct {
	Sign bool
	// RawExponent is the exponent field as an unsigned integer.
	RawExponent uint64
	// RawSignificand is the significand field as an unsigned integer.
	RawSignificand uint64
	// Bias is 2^(e-1)-1 for an e-bit exponent.
	Bias int
	// Exponent is the unbiased exponent: RawExponent-Bias for normal numbers,
	// 1-Bias for zeros and subnormals, and 0 for infinities and NaNs.
	Exponent int
	Class    Class
}

// Components returns raw fields of f and their interpretation.
func (f *BitField) Components() Components {
	c := Components{
		Sign:           f.sign,
		RawExponent:    mathutil.FromBits[uint64](f.exponent),
		RawSignificand: mathutil.FromBits[uint64](f.significand),
		Bias:           int(mathutil.Bias(len(f.exponent))),
	}
	switch {
	case c.RawExponent == mathutil.Mask(len(f.exponent)):
		c.Class = ClassInfinite
		if c.RawSignificand != 0 {
			c.Class = ClassNaN
		}
	case c.RawExponent == 0:
		c.Class = ClassZero
		if c.RawSignificand != 0 {
			c.Class = ClassSubnormal
		}
		c.Exponent = 1 - c.Bias
	default:
		c.Class = ClassNormal
		c.Exponent = int(c.RawExponent) - c.Bias
	}
	return c
}

// Class returns the category of the encoded value.
func (f *BitField) Class() Class {
	return f.Components().Class
}

// Float64bits returns the bit field widened to the float64 layout.
//
// An all-ones exponent becomes the all-ones float64 exponent, a zero exponent stays zero,
// and any other exponent is rebiased from 2^(e-1)-1 to 1023.
// Significand bits are placed at the top of the 52-bit significand, the rest are zeros.
//
// A zero exponent is not rescaled, so for e < 11 a subnormal field
// is widened into a float64 subnormal with the same leading significand bits,
// which is not the exact value of an e-bit subnormal.
func (f *BitField) Float64bits() uint64 {
	c := f.Components()
	var exp uint64
	switch c.Class {
	case ClassInfinite, ClassNaN:
		exp = expMask
	case ClassNormal:
		exp = c.RawExponent - uint64(c.Bias) + binary64Bias
	}
	sig := c.RawSignificand << uint(MaxSignificandBits-len(f.significand))
	return pack(c.Sign, exp, sig)
}

// pack builds a float64 bit pattern from the sign, an 11-bit exponent and a 52-bit significand.
func pack(sign bool, exp, sig uint64) uint64 {
	var result uint64
	if sign {
		result = signMask
	}
	return result | (exp&expMask)<<expShift | sig&sigMask
}

// Float64 is a shortcut for Decode(f).
func (f *BitField) Float64() float64 {
	return Decode(f)
}

// Decode returns the float64 value encoded by f.
// Every bit pattern decodes to some value, including infinities and NaNs.
func Decode(f *BitField) float64 {
	return math.Float64frombits(f.Float64bits())
}
