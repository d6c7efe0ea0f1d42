package jsonx

import (
	json "github.com/goccy/go-json"
)

// Kind discriminates the node variants of a JSON document tree.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ObjectKind
	ArrayKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:   "Null",
		BoolKind:   "Bool",
		NumberKind: "Number",
		StringKind: "String",
		ObjectKind: "Object",
		ArrayKind:  "Array",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// Node is one node of a JSON document tree. Exactly one variant is active,
// selected by Kind. Objects keep Keys and Vals as parallel slices in
// insertion order; Arrays keep Items index-addressable with contiguous
// indices. Every node is owned by exactly one parent container.
type Node struct {
	Kind Kind

	Bool bool
	Num  json.Number
	Str  string

	Keys  []string // ObjectKind, parallel to Vals
	Vals  []*Node  // ObjectKind
	Items []*Node  // ArrayKind
}

// Null returns a null leaf.
func Null() *Node { return &Node{Kind: NullKind} }

// Boolean returns a bool leaf.
func Boolean(b bool) *Node { return &Node{Kind: BoolKind, Bool: b} }

// Number returns a number leaf. The textual form is kept verbatim.
func Number(n json.Number) *Node { return &Node{Kind: NumberKind, Num: n} }

// String returns a string leaf.
func String(s string) *Node { return &Node{Kind: StringKind, Str: s} }

// NewObject returns an empty object node.
func NewObject() *Node { return &Node{Kind: ObjectKind} }

// NewArray returns an array node holding items.
func NewArray(items ...*Node) *Node { return &Node{Kind: ArrayKind, Items: items} }

// Lookup returns the value stored under key.
func (n *Node) Lookup(key string) (*Node, bool) {
	for i, k := range n.Keys {
		if k == key {
			return n.Vals[i], true
		}
	}
	return nil, false
}

// Set upserts val under key, keeping the key's original position when it
// already exists and appending otherwise.
func (n *Node) Set(key string, val *Node) {
	for i, k := range n.Keys {
		if k == key {
			n.Vals[i] = val
			return
		}
	}
	n.Keys = append(n.Keys, key)
	n.Vals = append(n.Vals, val)
}

// Delete removes key from the object and reports whether it was present.
func (n *Node) Delete(key string) bool {
	for i, k := range n.Keys {
		if k == key {
			n.Keys = append(n.Keys[:i], n.Keys[i+1:]...)
			n.Vals = append(n.Vals[:i], n.Vals[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Kind: n.Kind, Bool: n.Bool, Num: n.Num, Str: n.Str}
	if n.Keys != nil {
		out.Keys = append([]string(nil), n.Keys...)
		out.Vals = make([]*Node, len(n.Vals))
		for i, v := range n.Vals {
			out.Vals[i] = v.Clone()
		}
	}
	if n.Items != nil {
		out.Items = make([]*Node, len(n.Items))
		for i, v := range n.Items {
			out.Items[i] = v.Clone()
		}
	}
	return out
}

// Equal reports deep equality, including object key order.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Kind != o.Kind {
		return false
	}
	switch n.Kind {
	case NullKind:
		return true
	case BoolKind:
		return n.Bool == o.Bool
	case NumberKind:
		return n.Num == o.Num
	case StringKind:
		return n.Str == o.Str
	case ObjectKind:
		if len(n.Keys) != len(o.Keys) {
			return false
		}
		for i, k := range n.Keys {
			if k != o.Keys[i] || !n.Vals[i].Equal(o.Vals[i]) {
				return false
			}
		}
		return true
	case ArrayKind:
		if len(n.Items) != len(o.Items) {
			return false
		}
		for i, v := range n.Items {
			if !v.Equal(o.Items[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
