// Package xmlx implements the XML variant of the patch engine: operations
// address a single element by path and replace its text, detach it, or
// append new child elements to it.
package xmlx

import (
	"github.com/beevik/etree"

	patchdemo "github.com/SvetozarSlivarov/JsonXmlPatchDemo"
)

// Resolve evaluates path against the document and returns the matching
// element, or nil when nothing matches. A nil result is not an error by
// itself; each mutation decides how to treat a missing target. When several
// elements match, the first in document order wins; that deterministic pick
// is a documented policy, not an error.
func Resolve(doc *etree.Document, path string) (*etree.Element, error) {
	p, err := etree.CompilePath(path)
	if err != nil {
		return nil, patchdemo.Errorf(patchdemo.ErrInvalidPath, path, "%v", err)
	}
	return doc.FindElementPath(p), nil
}

// Engine applies XML patch operations to one document. It is not safe for
// concurrent use; a document must not be shared across runs.
type Engine struct {
	doc *etree.Document
}

// NewEngine wraps doc for a patch run.
func NewEngine(doc *etree.Document) *Engine { return &Engine{doc: doc} }

// Apply resolves the operation's path and mutates the matched element in
// place. An operation whose path matches nothing is a silent no-op; callers
// that need strict failure must check existence first.
func (e *Engine) Apply(op Operation) error {
	target, err := Resolve(e.doc, op.Path)
	if err != nil {
		return err
	}
	if target == nil {
		return nil
	}
	switch op.Op {
	case patchdemo.OpReplace:
		// Prior children and text are discarded.
		target.Child = nil
		target.SetText(op.Value)
	case patchdemo.OpRemove:
		if parent := target.Parent(); parent != nil {
			parent.RemoveChild(target)
		}
	case patchdemo.OpAdd:
		for _, child := range op.Children {
			target.AddChild(child.Copy())
		}
	default:
		return patchdemo.Errorf(patchdemo.ErrUnknownOperation, op.Path, "%q", op.Op)
	}
	return nil
}

// Apply runs ops against doc in order, stopping at the first failure, and
// returns the mutated document. On failure the document may already be
// partially patched; callers must not serialize it as a completed result.
func Apply(doc *etree.Document, ops []Operation) (*etree.Document, error) {
	if err := patchdemo.Run(NewEngine(doc), ops); err != nil {
		return nil, err
	}
	return doc, nil
}
