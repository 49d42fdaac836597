package ojson

import (
	"bytes"
)

// The optimistic route. Nothing here builds a tree: the target value's byte
// span is located by scanning the original document text, then the splice
// is prefix + replacement + suffix. Every helper reports failure as a plain
// "not found" so the caller can fall back to the authoritative route; no
// partial result ever escapes.

// findValueSpan walks the path segments textually, searching forward from a
// cursor for the literal pattern `"segment":` at each step. The search is
// not confined to the enclosing object's span, so duplicate key text
// appearing earlier in the document can be matched first; callers accept
// this as the price of never parsing. The returned span is half-open.
func findValueSpan(data []byte, segs []string) (start, end int, ok bool) {
	cursor := 0
	for i, seg := range segs {
		pat := make([]byte, 0, len(seg)+3)
		pat = append(pat, '"')
		pat = append(pat, seg...)
		pat = append(pat, '"', ':')
		rel := bytes.Index(data[cursor:], pat)
		if rel < 0 {
			return 0, 0, false
		}
		vs := cursor + rel + len(pat)
		for vs < len(data) && data[vs] <= ' ' {
			vs++
		}
		if i == len(segs)-1 {
			return vs, vs + findValueEnd(data[vs:]), true
		}
		cursor = vs
	}
	return 0, 0, false
}

// findValueEnd returns the length of the single JSON value starting at
// s[0]. It tracks string state with backslash awareness and bracket depth
// outside strings. A value ends just past its last non-whitespace byte when
// a top-level comma or a closing bracket belonging to the enclosing
// container terminates the scan, or just after its own closing bracket when
// the value itself is an object or array. Whitespace between the value and
// its terminating delimiter is never part of the span; it stays with the
// document. If nothing terminates the value, it runs to its last
// non-whitespace byte before the end of the input.
func findValueEnd(s []byte) int {
	depth := 0
	inString := false
	escaped := false
	end := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			end = i + 1
			continue
		}
		if inString {
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			end = i + 1
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			if depth == 0 {
				return end
			}
			depth--
			if depth == 0 {
				return i + 1
			}
		case ',':
			if depth == 0 {
				return end
			}
		}
		if c > ' ' {
			end = i + 1
		}
	}
	return end
}

// isSelfDelimited reports whether raw can be spliced into a document
// without quoting: strings, objects and arrays announce themselves with
// their first byte, and number/keyword tokens are unambiguous.
func isSelfDelimited(raw string) bool {
	if raw == "true" || raw == "false" || raw == "null" {
		return true
	}
	if len(raw) > 0 && (raw[0] == '"' || raw[0] == '{' || raw[0] == '[') {
		return true
	}
	return isJSONNumber(raw)
}

// spliceSet replaces the value at segs with raw. When quoteBare is true
// (the literal entry points) a value that is not self-delimited is wrapped
// in bare quotes with no escaping; callers were warned.
func spliceSet(data []byte, segs []string, raw string, quoteBare bool) ([]byte, bool) {
	start, end, ok := findValueSpan(data, segs)
	if !ok {
		return nil, false
	}
	quote := quoteBare && !isSelfDelimited(raw)

	out := make([]byte, 0, len(data)-(end-start)+len(raw)+2)
	out = append(out, data[:start]...)
	if quote {
		out = append(out, '"')
	}
	out = append(out, raw...)
	if quote {
		out = append(out, '"')
	}
	out = append(out, data[end:]...)
	return out, true
}

// spliceDelete removes the member at segs along with whichever separator
// comma keeps the enclosing object well formed: the comma before the key
// when a prior sibling exists, otherwise the comma after the value, and
// neither when the member stood alone.
func spliceDelete(data []byte, segs []string) ([]byte, bool) {
	start, end, ok := findValueSpan(data, segs)
	if !ok {
		return nil, false
	}

	last := segs[len(segs)-1]
	pat := make([]byte, 0, len(last)+3)
	pat = append(pat, '"')
	pat = append(pat, last...)
	pat = append(pat, '"', ':')
	keyStart := bytes.LastIndex(data[:start], pat)
	if keyStart < 0 {
		keyStart = start
	}

	delStart, delEnd := keyStart, end
	i := keyStart
	for i > 0 && data[i-1] <= ' ' {
		i--
	}
	if i > 0 && data[i-1] == ',' {
		i--
		for i > 0 && data[i-1] <= ' ' {
			i--
		}
		delStart = i
	} else {
		j := end
		for j < len(data) && data[j] <= ' ' {
			j++
		}
		if j < len(data) && data[j] == ',' {
			j++
			for j < len(data) && data[j] <= ' ' {
				j++
			}
			delEnd = j
		}
	}

	out := make([]byte, 0, len(data)-(delEnd-delStart))
	out = append(out, data[:delStart]...)
	out = append(out, data[delEnd:]...)
	return out, true
}
