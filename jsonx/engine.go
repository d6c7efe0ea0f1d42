// Package jsonx implements the JSON variant of the patch engine: an ordered
// document tree, a JSON Pointer resolver, and in-place add/remove/replace
// mutations.
package jsonx

import (
	patchdemo "github.com/SvetozarSlivarov/JsonXmlPatchDemo"
)

// Engine applies JSON patch operations to one document tree. It is not safe
// for concurrent use; a document must not be shared across runs.
type Engine struct {
	root *Node
}

// NewEngine wraps root for a patch run.
func NewEngine(root *Node) *Engine { return &Engine{root: root} }

// Apply resolves the operation's pointer to a parent container and performs
// the mutation in place.
func (e *Engine) Apply(op Operation) error {
	parent, token, err := Resolve(e.root, op.Path)
	if err != nil {
		return err
	}
	switch op.Op {
	case patchdemo.OpAdd:
		return Add(parent, token, op.Value, op.Path)
	case patchdemo.OpReplace:
		return Replace(parent, token, op.Value, op.Path)
	case patchdemo.OpRemove:
		return Remove(parent, token, op.Path)
	default:
		return patchdemo.Errorf(patchdemo.ErrUnknownOperation, op.Path, "%q", op.Op)
	}
}

// Apply runs ops against doc in order, stopping at the first failure, and
// returns the mutated document. On failure the document may already be
// partially patched; callers must not serialize it as a completed result.
func Apply(doc *Node, ops []Operation) (*Node, error) {
	if err := patchdemo.Run(NewEngine(doc), ops); err != nil {
		return nil, err
	}
	return doc, nil
}
