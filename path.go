package ojson

import (
	"fmt"
	"strconv"
	"strings"
)

// splitPath splits a dot-separated path into its segments. The empty path
// and paths with empty segments ("a..b", ".a", "a.") are rejected.
func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	segs := strings.Split(path, ".")
	for _, seg := range segs {
		if seg == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrInvalidPath, path)
		}
	}
	return segs, nil
}

// JoinPath joins literal segments into dot notation. Segments are not
// escaped because the path grammar has no escape sequences; a segment that
// is empty or contains a dot cannot round-trip and is rejected.
func JoinPath(segments ...string) (string, error) {
	if len(segments) == 0 {
		return "", ErrEmptyPath
	}
	for _, seg := range segments {
		if seg == "" || strings.Contains(seg, ".") {
			return "", fmt.Errorf("%w: segment %q cannot appear in a path", ErrInvalidPath, seg)
		}
	}
	return strings.Join(segments, "."), nil
}

// resolveArrayIndex resolves a path segment against an array of the given
// length. Negative values count from the end: -1 is the last element.
// Positive indices beyond the current length are not an error here; they
// signal the mutator to extend the array.
func resolveArrayIndex(seg string, length int) (int, error) {
	n, err := strconv.ParseInt(seg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNonNumericArrayKey, seg)
	}
	if n >= 0 {
		return int(n), nil
	}
	if -n > int64(length) {
		return 0, fmt.Errorf("%w: index %s out of range for length %d", ErrInvalidPath, seg, length)
	}
	return length + int(n), nil
}

// isOptimisticPath reports whether a path may be attempted via the text
// splice route. Every byte must fall in the band '.'..'z' excluding
// ':'..'@', which rules out quotes, colons, braces, whitespace and control
// characters that carry meaning in JSON syntax. Note that '-' is outside
// the band, so negative-index paths always take the authoritative route.
func isOptimisticPath(path string) bool {
	for i := 0; i < len(path); i++ {
		c := path[i]
		if c < '.' || c > 'z' {
			return false
		}
		if c > '9' && c < 'A' {
			return false
		}
	}
	return true
}
