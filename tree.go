package ojson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// The authoritative route: parse the document into a value tree, mutate the
// tree, serialize it back. Numbers are carried as json.Number so their
// source text survives the round trip. Object keys come back in whatever
// order the serializer emits for maps (lexicographic), which is why the
// package doc tells callers not to depend on key order on this route.

// parseValue decodes a single JSON value, keeping numbers textual.
func parseValue(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after value")
	}
	return v, nil
}

// parseDocument decodes a whole document and enforces the container-root
// invariant: paths address members, so the root must be able to hold them.
func parseDocument(data []byte) (interface{}, error) {
	v, err := parseValue(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	switch v.(type) {
	case map[string]interface{}, []interface{}:
		return v, nil
	}
	return nil, ErrNotContainer
}

func encodeDocument(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	// Encode terminates the stream with a newline.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// coerceLiteral infers a JSON value from a bare literal string. First match
// wins: booleans, null, JSON number tokens, delimited JSON, then string.
// The number branch requires the RFC 8259 token grammar, so "037", "NaN"
// and "Infinity" deliberately land in the string branch, as does any number
// too large for a finite float64.
func coerceLiteral(value string) interface{} {
	switch value {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}
	if isJSONNumber(value) {
		if _, err := strconv.ParseInt(value, 10, 64); err == nil {
			return json.Number(value)
		}
		if _, err := strconv.ParseFloat(value, 64); err == nil {
			return json.Number(value)
		}
		return value
	}
	if len(value) >= 2 {
		delimited := (value[0] == '[' && value[len(value)-1] == ']') ||
			(value[0] == '{' && value[len(value)-1] == '}')
		if delimited {
			if v, err := parseValue([]byte(value)); err == nil {
				return v
			}
		}
	}
	return value
}

// isJSONNumber reports whether s is exactly one RFC 8259 number token.
func isJSONNumber(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	switch {
	case i < len(s) && s[i] == '0':
		i++
	case i < len(s) && s[i] >= '1' && s[i] <= '9':
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	default:
		return false
	}
	if i < len(s) && s[i] == '.' {
		i++
		if i >= len(s) || s[i] < '0' || s[i] > '9' {
			return false
		}
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i >= len(s) || s[i] < '0' || s[i] > '9' {
			return false
		}
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}
	return i == len(s)
}

func treeSet(data []byte, segs []string, value interface{}) ([]byte, error) {
	root, err := parseDocument(data)
	if err != nil {
		return nil, err
	}
	mutated, err := setNode(root, segs, value)
	if err != nil {
		return nil, err
	}
	return encodeDocument(mutated)
}

func treeDelete(data []byte, segs []string) ([]byte, error) {
	root, err := parseDocument(data)
	if err != nil {
		return nil, err
	}
	mutated, err := deleteNode(root, segs)
	if err != nil {
		return nil, err
	}
	return encodeDocument(mutated)
}

// setNode applies the remaining path segments to node and returns the node
// that should replace it. Each step dispatches on the runtime type of the
// current node, not on the segment text: the same segment is an object key
// against an object and an index against an array.
func setNode(node interface{}, segs []string, value interface{}) (interface{}, error) {
	seg := segs[0]
	switch cur := node.(type) {
	case map[string]interface{}:
		if len(segs) == 1 {
			cur[seg] = value
			return cur, nil
		}
		child, err := setNode(cur[seg], segs[1:], value)
		if err != nil {
			return nil, err
		}
		cur[seg] = child
		return cur, nil
	case []interface{}:
		idx, err := resolveArrayIndex(seg, len(cur))
		if err != nil {
			return nil, err
		}
		for len(cur) <= idx {
			cur = append(cur, nil)
		}
		if len(segs) == 1 {
			cur[idx] = value
			return cur, nil
		}
		child, err := setNode(cur[idx], segs[1:], value)
		if err != nil {
			return nil, err
		}
		cur[idx] = child
		return cur, nil
	default:
		// Scalars and nulls cannot hold members; replace with an object.
		return setNode(map[string]interface{}{}, segs, value)
	}
}

// deleteNode removes the member addressed by segs. Unlike setNode it never
// creates structure: a missing key, an out-of-range index or a scalar in
// the way all mean there is nothing to delete.
func deleteNode(node interface{}, segs []string) (interface{}, error) {
	seg := segs[0]
	switch cur := node.(type) {
	case map[string]interface{}:
		if len(segs) == 1 {
			if _, ok := cur[seg]; !ok {
				return nil, ErrNoChange
			}
			delete(cur, seg)
			return cur, nil
		}
		child, ok := cur[seg]
		if !ok {
			return nil, ErrNoChange
		}
		mutated, err := deleteNode(child, segs[1:])
		if err != nil {
			return nil, err
		}
		cur[seg] = mutated
		return cur, nil
	case []interface{}:
		idx, err := resolveArrayIndex(seg, len(cur))
		if err != nil {
			return nil, err
		}
		if idx >= len(cur) {
			return nil, ErrNoChange
		}
		if len(segs) == 1 {
			return append(cur[:idx], cur[idx+1:]...), nil
		}
		mutated, err := deleteNode(cur[idx], segs[1:])
		if err != nil {
			return nil, err
		}
		cur[idx] = mutated
		return cur, nil
	default:
		return nil, ErrNoChange
	}
}
