package ojson

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// FormatOptions controls Pretty output.
type FormatOptions struct {
	// Indent is the nesting indentation. Defaults to two spaces.
	Indent string

	// SortKeys sorts object keys alphabetically.
	SortKeys bool
}

// Pretty formats a JSON document for readability with two-space
// indentation. The input is expected to be valid JSON.
func Pretty(json []byte) []byte {
	return pretty.Pretty(json)
}

// PrettyWithOptions formats a JSON document with custom options. An empty
// indent minifies instead.
func PrettyWithOptions(json []byte, opts *FormatOptions) []byte {
	if opts == nil {
		return pretty.Pretty(json)
	}
	if opts.Indent == "" && !opts.SortKeys {
		return pretty.Ugly(json)
	}
	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}
	return pretty.PrettyOptions(json, &pretty.Options{
		Width:    80,
		Indent:   indent,
		SortKeys: opts.SortKeys,
	})
}

// Ugly removes all insignificant whitespace from a JSON document.
func Ugly(json []byte) []byte {
	return pretty.Ugly(json)
}

// Valid reports whether data is a valid JSON document.
func Valid(data []byte) bool {
	return gjson.ValidBytes(data)
}
