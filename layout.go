package floatbits

import (
	"fmt"
	"sort"

	"github.com/avdva/floatbits/internal/mathutil"
)

// Field widths of the binary64 format, which is the widest layout supported.
const (
	MinExponentBits    = 1
	MaxExponentBits    = 11
	MinSignificandBits = 1
	MaxSignificandBits = 52

	binary64Bias = 1<<(MaxExponentBits-1) - 1
	expShift     = MaxSignificandBits
	signShift    = MaxExponentBits + MaxSignificandBits

	expMask  = 1<<MaxExponentBits - 1
	sigMask  = 1<<MaxSignificandBits - 1
	signMask = 1 << signShift
)

// Layout describes the widths of exponent and significand fields.
// The sign field is always one bit wide.
type Layout struct {
	ExponentBits    int `json:"exponent"`
	SignificandBits int `json:"significand"`
}

// Commonly used layouts.
var (
	Binary16 = Layout{ExponentBits: 5, SignificandBits: 10}
	BFloat16 = Layout{ExponentBits: 8, SignificandBits: 7}
	Binary32 = Layout{ExponentBits: 8, SignificandBits: 23}
	Binary64 = Layout{ExponentBits: 11, SignificandBits: 52}
	E4M3     = Layout{ExponentBits: 4, SignificandBits: 3}
	E5M2     = Layout{ExponentBits: 5, SignificandBits: 2}
)

var (
	layouts = map[string]Layout{
		"binary16": Binary16,
		"bfloat16": BFloat16,
		"binary32": Binary32,
		"binary64": Binary64,
		"e4m3":     E4M3,
		"e5m2":     E5M2,
	}

	errUnknownLayout = fmt.Errorf("unknown layout")
)

// LayoutByName returns a preset layout by its name, like "binary32".
func LayoutByName(name string) (Layout, error) {
	l, found := layouts[name]
	if !found {
		return Layout{}, fmt.Errorf("%w %q", errUnknownLayout, name)
	}
	return l, nil
}

// LayoutNames returns sorted names of all preset layouts.
func LayoutNames() []string {
	result := make([]string, 0, len(layouts))
	for name := range layouts {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// Valid returns true, if both widths are within their bounds.
func (l Layout) Valid() bool {
	return MinExponentBits <= l.ExponentBits && l.ExponentBits <= MaxExponentBits &&
		MinSignificandBits <= l.SignificandBits && l.SignificandBits <= MaxSignificandBits
}

// Clamped returns the layout with both widths moved into their bounds.
func (l Layout) Clamped() Layout {
	return Layout{
		ExponentBits:    mathutil.Clamp(l.ExponentBits, MinExponentBits, MaxExponentBits),
		SignificandBits: mathutil.Clamp(l.SignificandBits, MinSignificandBits, MaxSignificandBits),
	}
}

// Len returns the total number of bits, including the sign bit.
func (l Layout) Len() int {
	return 1 + l.ExponentBits + l.SignificandBits
}

// Bias returns the exponent bias, 2^(e-1)-1.
func (l Layout) Bias() int {
	if l.ExponentBits < MinExponentBits {
		return 0
	}
	return int(mathutil.Bias(l.ExponentBits))
}

// Name returns the name of a preset with the same widths, or an empty string.
func (l Layout) Name() string {
	for _, name := range LayoutNames() {
		if layouts[name] == l {
			return name
		}
	}
	return ""
}

// String returns the preset name or the widths as "1+e+s".
func (l Layout) String() string {
	if name := l.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("1+%d+%d", l.ExponentBits, l.SignificandBits)
}
