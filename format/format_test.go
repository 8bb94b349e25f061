package format

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   float64
		res string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{123, "123.0"},
		{-123.5, "-123.5"},
		{0.1, "0.1"},
		{1.5, "1.5"},
		{1e-10, "0.0000000001"},
		{9999999999, "9999999999.0"},
		{1e10, "1e+10"},
		{1e12, "1e+12"},
		{-1e12, "-1e+12"},
		{9e-11, "9e-11"},
		{math.SmallestNonzeroFloat64, "5e-324"},
		{math.MaxFloat64, "1.7976931348623157e+308"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
		{math.NaN(), "NaN"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, Value(test.v))
		})
	}
}

func TestIsFixed(t *testing.T) {
	a := assert.New(t)
	a.True(IsFixed(0))
	a.True(IsFixed(123))
	a.True(IsFixed(-1e-10))
	a.False(IsFixed(1e12))
	a.False(IsFixed(1e-11))
	a.False(IsFixed(math.NaN()))
	a.False(IsFixed(math.Inf(-1)))
}

func TestAppendValue(t *testing.T) {
	a := assert.New(t)
	a.Equal("v=2.0", string(AppendValue([]byte("v="), 2)))
	a.Equal("v=2.5", string(AppendValue([]byte("v="), 2.5)))
}

func TestHexAndBits(t *testing.T) {
	a := assert.New(t)
	a.Equal("0x1.8p+01", Hex(3))
	a.Equal("-0x1p+00", Hex(-1))
	a.Equal("0 10000000000 "+fmt.Sprintf("%052b", 0), Bits64(2))
	a.Equal("1 01111111111 1"+fmt.Sprintf("%051b", 0), Bits64(-1.5))
	a.Equal("0 11111111111 "+fmt.Sprintf("%052b", 0), Bits64(math.Inf(1)))
}
