package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func bitsOf(s string) []bool {
	result := make([]bool, len(s))
	for i, r := range s {
		result[i] = r == '1'
	}
	return result
}

func TestFromBits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		bits string
		res  uint64
	}{
		{"", 0},
		{"0", 0},
		{"1", 1},
		{"10", 2},
		{"0001", 1},
		{"10000000001", 1025},
		{"11111111111", 2047},
		{"1111111111111111111111111111111111111111111111111111", 1<<52 - 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, FromBits[uint64](bitsOf(test.bits)))
		})
	}
	a.Equal(uint8(0xff), FromBits[uint8](bitsOf("1011111111")))
}

func TestToBits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v    uint64
		n    int
		bits string
	}{
		{0, 3, "000"},
		{5, 3, "101"},
		{5, 5, "00101"},
		{13, 2, "01"},
		{1024, 11, "10000000000"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			dst := make([]bool, test.n)
			ToBits(test.v, dst)
			a.Empty(cmp.Diff(bitsOf(test.bits), dst))
		})
	}
}

func TestMaskAndBias(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint64(0), Mask(0))
	a.Equal(uint64(1), Mask(1))
	a.Equal(uint64(0x7ff), Mask(11))
	a.Equal(uint64(math.MaxUint64), Mask(64))
	a.Equal(uint64(0), Bias(1))
	a.Equal(uint64(7), Bias(4))
	a.Equal(uint64(15), Bias(5))
	a.Equal(uint64(127), Bias(8))
	a.Equal(uint64(1023), Bias(11))
}

func TestClamp(t *testing.T) {
	a := assert.New(t)
	a.Equal(1, Clamp(-5, 1, 11))
	a.Equal(11, Clamp(64, 1, 11))
	a.Equal(7, Clamp(7, 1, 11))
}

func TestAllAnySet(t *testing.T) {
	a := assert.New(t)
	a.True(AllSet(bitsOf("111")))
	a.False(AllSet(bitsOf("101")))
	a.True(AnySet(bitsOf("001")))
	a.False(AnySet(bitsOf("000")))
}

func TestResize(t *testing.T) {
	a := assert.New(t)
	bs := bitsOf("1111")
	bs = Resize(bs, 2)
	a.Empty(cmp.Diff(bitsOf("11"), bs))
	// growing back inside capacity must not resurrect old bits.
	bs = Resize(bs, 4)
	a.Empty(cmp.Diff(bitsOf("1100"), bs))
	bs = Resize(bs, 6)
	a.Empty(cmp.Diff(bitsOf("110000"), bs))
}

func BenchmarkFromBits(b *testing.B) {
	bs := bitsOf("1010101010101010101010101010101010101010101010101010")
	var dummy uint64
	for i := 0; i < b.N; i++ {
		dummy += FromBits[uint64](bs)
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}
