package jsonx

import (
	"fmt"

	patchdemo "github.com/SvetozarSlivarov/JsonXmlPatchDemo"
)

// Operation is one JSON patch instruction: an operation kind, a JSON Pointer
// target and, for add/replace, the value to store.
type Operation struct {
	Op    patchdemo.Op
	Path  string
	Value *Node
}

func (o Operation) Kind() patchdemo.Op { return o.Op }
func (o Operation) Target() string     { return o.Path }

// ParsePatch decodes a patch given as a JSON array of {"op","path","value"}
// objects.
func ParsePatch(data []byte) ([]Operation, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return PatchFromNode(doc)
}

// PatchFromNode extracts an operation list from an already-parsed tree. The
// tree must be an array of objects; each object needs a string "op" naming a
// known operation and a string "path".
func PatchFromNode(doc *Node) ([]Operation, error) {
	if doc.Kind != ArrayKind {
		return nil, fmt.Errorf("jsonx: patch must be an array, got %s", doc.Kind)
	}
	ops := make([]Operation, 0, len(doc.Items))
	for i, item := range doc.Items {
		if item.Kind != ObjectKind {
			return nil, fmt.Errorf("jsonx: patch entry %d is %s, not an object", i, item.Kind)
		}
		opNode, ok := item.Lookup("op")
		if !ok || opNode.Kind != StringKind {
			return nil, patchdemo.Errorf(patchdemo.ErrUnknownOperation, "", "patch entry %d has no op name", i)
		}
		kind, err := patchdemo.ParseOp(opNode.Str)
		if err != nil {
			return nil, fmt.Errorf("jsonx: patch entry %d: %w", i, err)
		}
		pathNode, ok := item.Lookup("path")
		if !ok || pathNode.Kind != StringKind {
			return nil, patchdemo.Errorf(patchdemo.ErrInvalidPath, "", "patch entry %d has no path", i)
		}
		op := Operation{Op: kind, Path: pathNode.Str}
		if v, ok := item.Lookup("value"); ok {
			op.Value = v
		}
		ops = append(ops, op)
	}
	return ops, nil
}
