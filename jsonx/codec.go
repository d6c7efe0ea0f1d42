package jsonx

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// Parse decodes JSON bytes into a Node tree. Object key order is preserved
// and numbers keep their textual form.
func Parse(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	n, err := parseValue(dec)
	if err != nil {
		return nil, fmt.Errorf("jsonx: failed to parse JSON: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("jsonx: trailing data after document")
	}
	return n, nil
}

func parseValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %T, not string", keyTok)
				}
				val, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // closing '}'
				return nil, err
			}
			return obj, nil
		case '[':
			arr := NewArray()
			for dec.More() {
				item, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				arr.Items = append(arr.Items, item)
			}
			if _, err := dec.Token(); err != nil { // closing ']'
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", v.String())
		}
	case string:
		return String(v), nil
	case json.Number:
		return Number(v), nil
	case bool:
		return Boolean(v), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v (%T)", tok, tok)
	}
}

// MarshalJSON encodes the node, writing object keys in insertion order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) encode(buf *bytes.Buffer) error {
	switch n.Kind {
	case NullKind:
		buf.WriteString("null")
	case BoolKind:
		if n.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case NumberKind:
		if n.Num == "" {
			return fmt.Errorf("jsonx: Number node has no value")
		}
		buf.WriteString(n.Num.String())
	case StringKind:
		b, err := json.Marshal(n.Str)
		if err != nil {
			return err
		}
		buf.Write(b)
	case ObjectKind:
		buf.WriteByte('{')
		for i, k := range n.Keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			if err := n.Vals[i].encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case ArrayKind:
		buf.WriteByte('[')
		for i, v := range n.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := v.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		return fmt.Errorf("jsonx: cannot encode %s node", n.Kind)
	}
	return nil
}

// Marshal serializes the tree back to JSON bytes.
func Marshal(n *Node) ([]byte, error) {
	return n.MarshalJSON()
}

// String renders the node as compact JSON, for debugging and test output.
func (n *Node) String() string {
	b, err := Marshal(n)
	if err != nil {
		return "<invalid: " + err.Error() + ">"
	}
	return string(b)
}
