package floatbits

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func addPosErrorOffset(err error, offset int) error {
	var pe *posError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.pos += offset
	return pe
}

// ParseBits parses a string of grouped bits, like "0 10000000000 0000", into a bit field.
// Groups are separated with spaces, '_', or '|' and must be: one sign bit,
// the exponent, and the significand. Widths are taken from the groups.
// Surrounding quotes and spaces are ignored.
func ParseBits(s string) (*BitField, error) {
	groups, err := parseGroups(s)
	if err != nil {
		return nil, err
	}
	if len(groups) != 3 {
		return nil, fmt.Errorf("expected 3 groups of bits, got %d", len(groups))
	}
	if len(groups[0]) != 1 {
		return nil, fmt.Errorf("sign must be a single bit, got %d", len(groups[0]))
	}
	return fromRegions(groups[0][0], groups[1], groups[2])
}

// ParseBitsLayout parses a string of bits for a known layout.
// Separators are allowed anywhere and ignored, the total number of bits must be l.Len().
func ParseBitsLayout(s string, l Layout) (*BitField, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("bad layout %s: %w", l, errRange)
	}
	groups, err := parseGroups(s)
	if err != nil {
		return nil, err
	}
	var all []bool
	for _, g := range groups {
		all = append(all, g...)
	}
	if len(all) != l.Len() {
		return nil, fmt.Errorf("expected %d bits for %s, got %d", l.Len(), l, len(all))
	}
	sigStart := 1 + l.ExponentBits
	return fromRegions(all[0], all[1:sigStart:sigStart], all[sigStart:])
}

func parseGroups(s string) ([][]bool, error) {
	s, offset := prepareString(s)
	if len(s) == 0 {
		return nil, fmt.Errorf("empty input")
	}
	groups, err := splitGroups(s)
	if err != nil {
		// add what we've trimmed before and add +1 to the offset to start indices from 1.
		return nil, fmt.Errorf("parsing failed: %w", addPosErrorOffset(err, offset+1))
	}
	return groups, nil
}

// prepareString cleans the string from " symbols and spaces.
func prepareString(s string) (prepared string, offset int) {
	if len(s) > 0 && s[0] == '"' {
		s = s[1:]
		offset++
	}
	if len(s) > 0 && s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	return strings.TrimRightFunc(s, unicode.IsSpace), offset
}

func splitGroups(s string) ([][]bool, error) {
	var (
		groups  [][]bool
		current []bool
	)
	for i, r := range s {
		switch {
		case r == '0' || r == '1':
			current = append(current, r == '1')
		case r == '_' || r == '|' || unicode.IsSpace(r):
			if len(current) > 0 {
				groups = append(groups, current)
				current = nil
			}
		default:
			return nil, newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups, nil
}

// parseRun parses a string of 0 and 1 without separators.
func parseRun(s string) ([]bool, error) {
	result := make([]bool, len(s))
	for i, r := range s {
		if r != '0' && r != '1' {
			return nil, newPosError(fmt.Sprintf("unexpected symbol %q", r), i+1)
		}
		result[i] = r == '1'
	}
	return result, nil
}
