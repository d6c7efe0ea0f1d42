package jsonx

import (
	patchdemo "github.com/SvetozarSlivarov/JsonXmlPatchDemo"
)

// AppendToken is the reference token that addresses the position one past
// the end of an array for Add.
const AppendToken = "-"

// Add upserts value at token inside parent. On objects the key is created or
// overwritten; on arrays the value is inserted at the token's index (shifting
// later elements right) or appended when the token is the append marker.
// The stored value is a deep copy, so an operation payload can never end up
// shared between two trees.
func Add(parent *Node, token string, value *Node, path string) error {
	if value == nil {
		return patchdemo.Errorf(patchdemo.ErrMissingValue, path, "add requires a value")
	}
	switch parent.Kind {
	case ObjectKind:
		parent.Set(token, value.Clone())
		return nil
	case ArrayKind:
		if token == AppendToken {
			parent.Items = append(parent.Items, value.Clone())
			return nil
		}
		i, err := arrayIndex(token)
		if err != nil {
			return patchdemo.Errorf(patchdemo.ErrIndexOutOfRange, path, "bad array index %q", token)
		}
		if i > len(parent.Items) {
			return patchdemo.Errorf(patchdemo.ErrIndexOutOfRange, path, "index %d out of range (len %d)", i, len(parent.Items))
		}
		parent.Items = append(parent.Items, nil)
		copy(parent.Items[i+1:], parent.Items[i:])
		parent.Items[i] = value.Clone()
		return nil
	default:
		return patchdemo.Errorf(patchdemo.ErrUnsupportedTarget, path, "cannot add to %s node", parent.Kind)
	}
}

// Replace overwrites the value at token inside parent. Object keys must
// already exist and array indices must be in range.
func Replace(parent *Node, token string, value *Node, path string) error {
	if value == nil {
		return patchdemo.Errorf(patchdemo.ErrMissingValue, path, "replace requires a value")
	}
	switch parent.Kind {
	case ObjectKind:
		if _, ok := parent.Lookup(token); !ok {
			return patchdemo.Errorf(patchdemo.ErrKeyNotFound, path, "no key %q", token)
		}
		parent.Set(token, value.Clone())
		return nil
	case ArrayKind:
		i, err := arrayIndex(token)
		if err != nil {
			return patchdemo.Errorf(patchdemo.ErrIndexOutOfRange, path, "bad array index %q", token)
		}
		if i >= len(parent.Items) {
			return patchdemo.Errorf(patchdemo.ErrIndexOutOfRange, path, "index %d out of range (len %d)", i, len(parent.Items))
		}
		parent.Items[i] = value.Clone()
		return nil
	default:
		return patchdemo.Errorf(patchdemo.ErrUnsupportedTarget, path, "cannot replace inside %s node", parent.Kind)
	}
}

// Remove deletes the value at token inside parent, shifting later array
// elements left. Removing a missing object key fails with the key-not-found
// kind, for parity with Replace.
func Remove(parent *Node, token string, path string) error {
	switch parent.Kind {
	case ObjectKind:
		if !parent.Delete(token) {
			return patchdemo.Errorf(patchdemo.ErrKeyNotFound, path, "no key %q", token)
		}
		return nil
	case ArrayKind:
		i, err := arrayIndex(token)
		if err != nil {
			return patchdemo.Errorf(patchdemo.ErrIndexOutOfRange, path, "bad array index %q", token)
		}
		if i >= len(parent.Items) {
			return patchdemo.Errorf(patchdemo.ErrIndexOutOfRange, path, "index %d out of range (len %d)", i, len(parent.Items))
		}
		parent.Items = append(parent.Items[:i], parent.Items[i+1:]...)
		return nil
	default:
		return patchdemo.Errorf(patchdemo.ErrUnsupportedTarget, path, "cannot remove from %s node", parent.Kind)
	}
}
