// Package ojson sets and deletes values in JSON documents addressed by
// dot-separated paths, such as "name.last" or "friends.1.age". Array
// segments may be negative: "-1" addresses the last element.
//
// Every operation has two routes. The authoritative route parses the
// document, mutates the value tree and serializes it back; it is always
// correct but does not preserve object key order (the serializer emits map
// keys lexicographically). The optimistic route, enabled with
// Options.Optimistic, splices the new value directly into the original
// document text when the target path already exists as literal text; it
// preserves the document byte-for-byte outside the replaced span. When the
// optimistic route cannot locate the target it silently falls back to the
// authoritative route, so callers that depend on exact key order should only
// rely on it for paths that are known to exist.
package ojson

import (
	jsongo "encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
)

// Common errors for set and delete operations
var (
	ErrEmptyPath          = errors.New("path cannot be empty")
	ErrInvalidPath        = errors.New("invalid path")
	ErrNoChange           = errors.New("no change")
	ErrNotContainer       = errors.New("json must be an object or array")
	ErrNonNumericArrayKey = errors.New("cannot set array element for non-numeric key")
	ErrInvalidJSON        = errors.New("invalid json document")
	ErrInvalidRawValue    = errors.New("invalid raw json value")
	ErrSerialize          = errors.New("failed to serialize document")
)

// Options represents additional options for the Set and Delete functions.
type Options struct {
	// Optimistic is a hint that the value likely exists, allowing a
	// fast-track search and replace over the document text before the
	// parsing route is tried.
	Optimistic bool
}

// DefaultOptions provides default settings for set and delete operations.
var DefaultOptions = Options{
	Optimistic: false,
}

// Set sets the value at the specified path and returns the new document.
//
// The value is a bare literal interpreted by type: "true", "false" and
// "null" become the corresponding JSON values, JSON number tokens become
// numbers, bracket- or brace-delimited text that parses as JSON becomes
// that value, and anything else becomes a string. Literals such as "037",
// "NaN" or "Infinity" are not JSON number tokens and become strings; use
// SetRaw or the typed setters when the value type must not be guessed.
//
// A path is a series of keys separated by dots:
//
//	{
//	  "name": {"first": "Tom", "last": "Anderson"},
//	  "children": ["Sara", "Alex", "Jack"]
//	}
//
//	"name.last"   >> addresses "Anderson"
//	"children.1"  >> addresses "Alex"
//	"children.-1" >> addresses "Jack"
//
// Missing object keys are created, arrays are extended with nulls up to a
// written index, and scalar intermediates are replaced by objects.
func Set(json []byte, path, value string) ([]byte, error) {
	return SetWithOptions(json, path, value, nil)
}

// SetWithOptions sets a literal value with the specified options.
// Passing nil options is equivalent to DefaultOptions.
//
// In optimistic mode a literal that does not look self-delimited is wrapped
// in quotes verbatim, without escaping. Values containing quote or
// backslash characters must be pre-escaped by the caller to take the
// optimistic route safely; the authoritative route escapes correctly. The
// same heuristic makes two more literal families diverge from the
// authoritative route when the splice resolves: a number token too large
// for a finite float64 (such as "1e999") is spliced as a bare number where
// the authoritative route stores a string, and a literal opening with a
// quote, brace or bracket is spliced verbatim, so one that is not valid
// JSON produces a malformed document. Callers that cannot rule such
// literals out should use SetRaw or leave optimism off.
func SetWithOptions(json []byte, path, value string, options *Options) ([]byte, error) {
	opts := DefaultOptions
	if options != nil {
		opts = *options
	}

	segs, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	if opts.Optimistic && isOptimisticPath(path) {
		if out, ok := spliceSet(json, segs, value, true); ok {
			return out, nil
		}
	}

	return treeSet(json, segs, coerceLiteral(value))
}

// SetString sets a literal value in a JSON string and returns the modified string.
func SetString(json, path, value string) (string, error) {
	out, err := Set([]byte(json), path, value)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// SetRaw sets a pre-encoded JSON value at the specified path. The value
// must be valid JSON text; it is inserted without re-encoding, which allows
// setting premarshalled objects and arrays.
func SetRaw(json []byte, path, value string) ([]byte, error) {
	return SetRawWithOptions(json, path, value, nil)
}

// SetRawWithOptions sets a raw JSON value with the specified options.
func SetRawWithOptions(json []byte, path, value string, options *Options) ([]byte, error) {
	opts := DefaultOptions
	if options != nil {
		opts = *options
	}

	segs, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	if !gjson.Valid(value) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRawValue, value)
	}

	if opts.Optimistic && isOptimisticPath(path) {
		if out, ok := spliceSet(json, segs, value, false); ok {
			return out, nil
		}
	}

	raw, err := parseValue([]byte(value))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRawValue, value)
	}
	return treeSet(json, segs, raw)
}

// SetRawString sets a raw JSON value in a JSON string and returns the modified string.
func SetRawString(json, path, value string) (string, error) {
	out, err := SetRaw([]byte(json), path, value)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// SetBool sets a boolean value at the specified path.
func SetBool(json []byte, path string, value bool, options *Options) ([]byte, error) {
	return SetWithOptions(json, path, strconv.FormatBool(value), options)
}

// SetInt sets an integer value at the specified path.
func SetInt(json []byte, path string, value int64, options *Options) ([]byte, error) {
	return SetWithOptions(json, path, strconv.FormatInt(value, 10), options)
}

// SetFloat sets a floating-point value at the specified path. Non-finite
// values have no JSON number form and are stored as strings.
func SetFloat(json []byte, path string, value float64, options *Options) ([]byte, error) {
	return SetWithOptions(json, path, strconv.FormatFloat(value, 'g', -1, 64), options)
}

// SetValue marshals an arbitrary value to JSON and sets it at the
// specified path.
func SetValue(json []byte, path string, value interface{}, options *Options) ([]byte, error) {
	raw, err := jsongo.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRawValue, err)
	}
	return SetRawWithOptions(json, path, string(raw), options)
}

// Delete removes the value at the specified path and returns the new
// document. Deleting a path that does not exist returns ErrNoChange.
func Delete(json []byte, path string) ([]byte, error) {
	return DeleteWithOptions(json, path, nil)
}

// DeleteWithOptions removes a value with the specified options.
func DeleteWithOptions(json []byte, path string, options *Options) ([]byte, error) {
	opts := DefaultOptions
	if options != nil {
		opts = *options
	}

	segs, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	if opts.Optimistic && isOptimisticPath(path) {
		if out, ok := spliceDelete(json, segs); ok {
			return out, nil
		}
	}

	return treeDelete(json, segs)
}

// DeleteString removes the value at the specified path from a JSON string.
func DeleteString(json, path string) (string, error) {
	out, err := Delete([]byte(json), path)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
