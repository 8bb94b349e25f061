// Package format renders decoded float64 values for display.
package format

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

const (
	// values with magnitudes in [minFixed, maxFixed) and zeros are shown in fixed notation.
	minFixed = 1e-10
	maxFixed = 1e10
)

// IsFixed reports whether v is shown in fixed notation by Value.
func IsFixed(v float64) bool {
	abs := math.Abs(v)
	return abs == 0 || (minFixed <= abs && abs < maxFixed)
}

// Value returns v in fixed notation, if it's zero or its magnitude is in [1e-10, 1e10),
// and in scientific notation otherwise. Both forms are the shortest ones, that parse back to v.
// Fixed notation always has a decimal point, like "123.0" or "-0.0".
// NaN is "NaN", infinities are "+Inf" and "-Inf".
func Value(v float64) string {
	return string(AppendValue(nil, v))
}

// AppendValue appends the result of Value(v) to dst.
func AppendValue(dst []byte, v float64) []byte {
	switch {
	case math.IsNaN(v):
		return append(dst, "NaN"...)
	case math.IsInf(v, 1):
		return append(dst, "+Inf"...)
	case math.IsInf(v, -1):
		return append(dst, "-Inf"...)
	}
	if !IsFixed(v) {
		return strconv.AppendFloat(dst, v, 'e', -1, 64)
	}
	start := len(dst)
	dst = strconv.AppendFloat(dst, v, 'f', -1, 64)
	if bytes.IndexByte(dst[start:], '.') < 0 {
		dst = append(dst, ".0"...)
	}
	return dst
}

// Hex returns v as a hexadecimal floating-point literal, like "0x1.8p+01".
func Hex(v float64) string {
	return strconv.FormatFloat(v, 'x', -1, 64)
}

// Bits64 returns the float64 bit pattern of v grouped as sign, exponent and significand.
func Bits64(v float64) string {
	b := math.Float64bits(v)
	return fmt.Sprintf("%01b %011b %052b", b>>63, b>>52&0x7ff, b&(1<<52-1))
}
