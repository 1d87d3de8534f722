// Package input normalizes user supplied and generated arrays before any
// generator runs.
package input

import (
	"errors"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/san-kum/sortviz/internal/step"
)

// Limits bounds generated and custom arrays.
type Limits struct {
	MinValue     int
	MaxValue     int
	MaxLength    int
	MaxGenerated int
	DefaultSize  int
}

func DefaultLimits() Limits {
	return Limits{
		MinValue:     10,
		MaxValue:     400,
		MaxLength:    50,
		MaxGenerated: 100,
		DefaultSize:  15,
	}
}

// ParseCustom parses comma separated integers and normalizes them. Entries
// that do not start with a number are skipped.
func ParseCustom(text string, lim Limits) ([]int, error) {
	var values []int
	for _, field := range strings.Split(text, ",") {
		if n, ok := leadingInt(strings.TrimSpace(field)); ok {
			values = append(values, n)
		}
	}

	out, err := Normalize(values, lim)
	if errors.Is(err, step.ErrEmptyInput) {
		return nil, &step.ValidationError{
			Field:   "array",
			Reason:  "invalid or empty custom array input, use comma separated integers (e.g. 5,12,3,40)",
			Wrapped: step.ErrEmptyInput,
		}
	}
	return out, err
}

// Normalize drops non-positive values and caps the rest at MaxValue. An
// empty result or one longer than MaxLength is a validation error.
func Normalize(values []int, lim Limits) ([]int, error) {
	out := make([]int, 0, len(values))
	for _, n := range values {
		if n <= 0 {
			continue
		}
		if lim.MaxValue > 0 && n > lim.MaxValue {
			n = lim.MaxValue
		}
		out = append(out, n)
	}

	if len(out) == 0 {
		return nil, &step.ValidationError{
			Field:   "array",
			Reason:  "no positive integers in input",
			Wrapped: step.ErrEmptyInput,
		}
	}
	if lim.MaxLength > 0 && len(out) > lim.MaxLength {
		return nil, &step.ValidationError{
			Field:   "array",
			Reason:  "at most " + strconv.Itoa(lim.MaxLength) + " elements are allowed",
			Wrapped: step.ErrInputTooLong,
		}
	}
	return out, nil
}

// leadingInt reads an optionally signed run of digits at the start of s.
func leadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && unicode.IsDigit(rune(s[end])) {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Random returns size values drawn uniformly from [MinValue, MaxValue].
func Random(size int, lim Limits, rng *rand.Rand) ([]int, error) {
	if size < 1 || (lim.MaxGenerated > 0 && size > lim.MaxGenerated) {
		return nil, &step.ValidationError{
			Field:   "size",
			Reason:  "must be between 1 and " + strconv.Itoa(lim.MaxGenerated),
			Wrapped: step.ErrSizeOutOfRange,
		}
	}
	lo, hi := lim.MinValue, lim.MaxValue
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	out := make([]int, size)
	for i := range out {
		out[i] = lo + rng.Intn(hi-lo+1)
	}
	return out, nil
}

// PrepareForBinarySearch returns a sorted copy of a. The warning is non-nil
// when a was not already non-decreasing.
func PrepareForBinarySearch(a []int) ([]int, *step.PreconditionWarning) {
	out := make([]int, len(a))
	copy(out, a)
	if sort.IntsAreSorted(out) {
		return out, nil
	}
	sort.Ints(out)
	return out, &step.PreconditionWarning{Message: "binary search requires a sorted array, the input was sorted automatically"}
}

// PickTarget chooses a random element of a, or fallback when a is empty.
func PickTarget(a []int, fallback int, rng *rand.Rand) int {
	if len(a) == 0 {
		return fallback
	}
	return a[rng.Intn(len(a))]
}
