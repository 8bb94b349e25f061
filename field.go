// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package floatbits implements a binary floating-point bit field with configurable
// exponent and significand widths, and decodes its contents into a float64.
//
// A bit field consists of three regions:
//   0 1         e e+1                        e+s
//   _|__________|___________________________|
//   s eeeeeeeeeee mmmmmmmmmmmmmmmmmmmmmmmmmmm
//
// Bits are addressed by a flat index across sign, exponent and significand,
// most significant bit first within every region.
// BitField is not safe for concurrent use.
package floatbits

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/avdva/floatbits/internal/mathutil"
)

var (
	errRange = fmt.Errorf("value out of range")
)

// Region is a role of a bit in a bit field.
type Region int

const (
	// RegionSign is the single sign bit.
	RegionSign Region = iota
	// RegionExponent contains biased exponent bits.
	RegionExponent
	// RegionSignificand contains significand bits without the implicit leading bit.
	RegionSignificand
)

// String returns the name of a region.
func (r Region) String() string {
	switch r {
	case RegionSign:
		return "sign"
	case RegionExponent:
		return "exponent"
	case RegionSignificand:
		return "significand"
	default:
		return fmt.Sprintf("Region(%d)", int(r))
	}
}

// BitField is a sign bit, an exponent and a significand of a floating-point number.
// The zero value is not usable, use New* functions to create a bit field.
type BitField struct {
	sign        bool
	exponent    []bool
	significand []bool
}

// New returns a bit field with given widths, all bits are zero.
// Returns an error, if expBits is out of [1, 11] or sigBits is out of [1, 52].
func New(expBits, sigBits int) (*BitField, error) {
	return NewFromLayout(Layout{ExponentBits: expBits, SignificandBits: sigBits})
}

// NewFromLayout returns a zero bit field for the given layout.
func NewFromLayout(l Layout) (*BitField, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("bad layout %s: %w", l, errRange)
	}
	return &BitField{
		exponent:    make([]bool, l.ExponentBits),
		significand: make([]bool, l.SignificandBits),
	}, nil
}

// MustNew is like New, but panics on error.
func MustNew(expBits, sigBits int) *BitField {
	f, err := New(expBits, sigBits)
	if err != nil {
		panic(err)
	}
	return f
}

// NewBinary64 returns a zero bit field with the widths of a float64.
func NewBinary64() *BitField {
	return MustNew(Binary64.ExponentBits, Binary64.SignificandBits)
}

// ResizeExponent sets the number of exponent bits.
// Existing bits below the new width are kept, new bits are zero, truncated bits are lost.
// n is clamped to [MinExponentBits, MaxExponentBits].
func (f *BitField) ResizeExponent(n int) {
	f.exponent = mathutil.Resize(f.exponent, mathutil.Clamp(n, MinExponentBits, MaxExponentBits))
}

// ResizeSignificand sets the number of significand bits.
// Existing bits below the new width are kept, new bits are zero, truncated bits are lost.
// n is clamped to [MinSignificandBits, MaxSignificandBits].
func (f *BitField) ResizeSignificand(n int) {
	f.significand = mathutil.Resize(f.significand, mathutil.Clamp(n, MinSignificandBits, MaxSignificandBits))
}

// SetLayout resizes both exponent and significand.
func (f *BitField) SetLayout(l Layout) {
	f.ResizeExponent(l.ExponentBits)
	f.ResizeSignificand(l.SignificandBits)
}

// ToggleBit flips the bit at a flat index. Out of range indices are ignored.
func (f *BitField) ToggleBit(idx int) {
	if p := f.bitPtr(idx); p != nil {
		*p = !*p
	}
}

// SetBit sets the bit at a flat index. Out of range indices are ignored.
func (f *BitField) SetBit(idx int, v bool) {
	if p := f.bitPtr(idx); p != nil {
		*p = v
	}
}

// Bit returns the bit at a flat index.
// ok is false if idx is out of range.
func (f *BitField) Bit(idx int) (v, ok bool) {
	if p := f.bitPtr(idx); p != nil {
		return *p, true
	}
	return false, false
}

// RegionOf returns the region, to which the bit at a flat index belongs.
func (f *BitField) RegionOf(idx int) (Region, bool) {
	r, _, ok := f.locate(idx)
	return r, ok
}

// locate converts a flat index into a region and an offset inside it.
// The sign is at 0, the exponent starts at 1, and the significand at 1+len(exponent).
func (f *BitField) locate(idx int) (r Region, offset int, ok bool) {
	sigStart := 1 + len(f.exponent)
	switch {
	case idx < 0 || idx >= sigStart+len(f.significand):
		return 0, 0, false
	case idx == 0:
		return RegionSign, 0, true
	case idx < sigStart:
		return RegionExponent, idx - 1, true
	default:
		return RegionSignificand, idx - sigStart, true
	}
}

func (f *BitField) bitPtr(idx int) *bool {
	r, offset, ok := f.locate(idx)
	if !ok {
		return nil
	}
	switch r {
	case RegionSign:
		return &f.sign
	case RegionExponent:
		return &f.exponent[offset]
	default:
		return &f.significand[offset]
	}
}

// Sign returns true for a negative sign.
func (f *BitField) Sign() bool {
	return f.sign
}

// SetSign sets the sign bit.
func (f *BitField) SetSign(neg bool) {
	f.sign = neg
}

// Exponent returns a copy of the exponent bits, MSB first.
func (f *BitField) Exponent() []bool {
	return append([]bool(nil), f.exponent...)
}

// Significand returns a copy of the significand bits, MSB first.
func (f *BitField) Significand() []bool {
	return append([]bool(nil), f.significand...)
}

// ExponentLen returns the number of exponent bits.
func (f *BitField) ExponentLen() int {
	return len(f.exponent)
}

// SignificandLen returns the number of significand bits.
func (f *BitField) SignificandLen() int {
	return len(f.significand)
}

// Len returns the total number of bits.
func (f *BitField) Len() int {
	return 1 + len(f.exponent) + len(f.significand)
}

// Layout returns current widths.
func (f *BitField) Layout() Layout {
	return Layout{ExponentBits: len(f.exponent), SignificandBits: len(f.significand)}
}

// Reset clears all the bits keeping the widths.
func (f *BitField) Reset() {
	f.sign = false
	for i := range f.exponent {
		f.exponent[i] = false
	}
	for i := range f.significand {
		f.significand[i] = false
	}
}

// Clone returns a deep copy of f.
func (f *BitField) Clone() *BitField {
	return &BitField{
		sign:        f.sign,
		exponent:    f.Exponent(),
		significand: f.Significand(),
	}
}

// Equal returns true, if both fields have the same widths and bits.
func (f *BitField) Equal(other *BitField) bool {
	if f.sign != other.sign || len(f.exponent) != len(other.exponent) || len(f.significand) != len(other.significand) {
		return false
	}
	for i, b := range f.exponent {
		if other.exponent[i] != b {
			return false
		}
	}
	for i, b := range f.significand {
		if other.significand[i] != b {
			return false
		}
	}
	return true
}

// String returns regions as groups of 0 and 1 separated by spaces, like "0 10000000000 0000".
// The result can be parsed back by ParseBits.
func (f *BitField) String() string {
	var builder strings.Builder
	builder.Grow(f.Len() + 2)
	writeBits(&builder, f.sign)
	builder.WriteByte(' ')
	writeBits(&builder, f.exponent...)
	builder.WriteByte(' ')
	writeBits(&builder, f.significand...)
	return builder.String()
}

func writeBits(builder *strings.Builder, bs ...bool) {
	for _, b := range bs {
		if b {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
}

func bitString(bs []bool) string {
	var builder strings.Builder
	writeBits(&builder, bs...)
	return builder.String()
}

type jsonBitField struct {
	Sign        bool   `json:"sign"`
	Exponent    string `json:"exponent"`
	Significand string `json:"significand"`
}

// MarshalJSON marshals the field as an object with exponent and significand as bit strings,
// like `{"sign":false,"exponent":"01111","significand":"0000000000"}`.
func (f *BitField) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonBitField{
		Sign:        f.sign,
		Exponent:    bitString(f.exponent),
		Significand: bitString(f.significand),
	})
}

// UnmarshalJSON unmarshals an object produced by MarshalJSON.
// Widths are taken from the lengths of the bit strings.
func (f *BitField) UnmarshalJSON(data []byte) error {
	var d jsonBitField
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	exponent, err := parseRun(d.Exponent)
	if err != nil {
		return fmt.Errorf("bad exponent: %w", err)
	}
	significand, err := parseRun(d.Significand)
	if err != nil {
		return fmt.Errorf("bad significand: %w", err)
	}
	result, err := fromRegions(d.Sign, exponent, significand)
	if err != nil {
		return err
	}
	*f = *result
	return nil
}

// fromRegions builds a field from ready regions, checking their widths.
func fromRegions(sign bool, exponent, significand []bool) (*BitField, error) {
	l := Layout{ExponentBits: len(exponent), SignificandBits: len(significand)}
	if !l.Valid() {
		return nil, fmt.Errorf("bad layout %s: %w", l, errRange)
	}
	return &BitField{sign: sign, exponent: exponent, significand: significand}, nil
}
