// Package version provides the normalization and ordering primitives used by
// the update checker: dotted-numeric version comparison, stability tag
// classification and artifact parsing. All functions are pure and safe for
// concurrent use.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// InvalidVersionError reports input that could not be interpreted as a
// version. It is returned instead of a silent zero ordering so a malformed
// remote version surfaces as a classified failure rather than a phantom
// "latest" result.
type InvalidVersionError struct {
	Input string
}

// Error implements the error interface.
func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version: %q", e.Input)
}

// Compare orders two dotted-numeric versions and returns -1, 0 or 1 as a is
// less than, equal to or greater than b. Each dot-separated run is compared
// as an integer from left to right; missing trailing segments are treated as
// zero, so "1.2" and "1.2.0" are equal. A non-numeric segment yields an
// *InvalidVersionError; the comparison never degrades to 0 for unparsable
// input.
func Compare(a, b string) (int, error) {
	as, err := segments(a)
	if err != nil {
		return 0, err
	}
	bs, err := segments(b)
	if err != nil {
		return 0, err
	}

	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		var av, bv int
		if i < len(as) {
			av = as[i]
		}
		if i < len(bs) {
			bv = bs[i]
		}
		if av != bv {
			if av < bv {
				return -1, nil
			}
			return 1, nil
		}
	}
	return 0, nil
}

func segments(v string) ([]int, error) {
	if v == "" {
		return nil, &InvalidVersionError{Input: v}
	}
	parts := strings.Split(v, ".")
	segs := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, &InvalidVersionError{Input: v}
		}
		segs[i] = n
	}
	return segs, nil
}

// IsEqual reports whether both versions are equal.
func IsEqual(a, b string) (bool, error) {
	c, err := Compare(a, b)
	return err == nil && c == 0, err
}

// IsGreater reports whether a is strictly greater than b.
func IsGreater(a, b string) (bool, error) {
	c, err := Compare(a, b)
	return err == nil && c > 0, err
}

// IsGreaterOrEqual reports whether a is greater than or equal to b.
func IsGreaterOrEqual(a, b string) (bool, error) {
	c, err := Compare(a, b)
	return err == nil && c >= 0, err
}

// IsLess reports whether a is strictly less than b.
func IsLess(a, b string) (bool, error) {
	c, err := Compare(a, b)
	return err == nil && c < 0, err
}

// IsLessOrEqual reports whether a is less than or equal to b.
func IsLessOrEqual(a, b string) (bool, error) {
	c, err := Compare(a, b)
	return err == nil && c <= 0, err
}
