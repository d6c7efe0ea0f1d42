package xmlx

import (
	"fmt"

	"github.com/beevik/etree"

	patchdemo "github.com/SvetozarSlivarov/JsonXmlPatchDemo"
)

// Operation is one XML patch instruction. Value carries the text a Replace
// writes; Children carries the elements an Add inserts, in declared order.
type Operation struct {
	Op       patchdemo.Op
	Path     string
	Value    string
	Children []*etree.Element
}

func (o Operation) Kind() patchdemo.Op { return o.Op }
func (o Operation) Target() string     { return o.Path }

// ParseDocument reads an XML document into an element tree.
func ParseDocument(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("xmlx: failed to parse XML: %w", err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("xmlx: document has no root element")
	}
	return doc, nil
}

// SerializeDocument writes the document back to bytes.
func SerializeDocument(doc *etree.Document) ([]byte, error) {
	return doc.WriteToBytes()
}

// ParsePatch reads a patch document of the form
//
//	<Patch>
//	  <Replace path="/Root/X" value="new"/>
//	  <Remove path="/Root/Y"/>
//	  <Add path="/Root"><Z/></Add>
//	</Patch>
//
// A child element with an unrecognized name, a missing path attribute, or a
// Replace without a value attribute is a structural error.
func ParsePatch(data []byte) ([]Operation, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("xmlx: failed to parse patch: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("xmlx: patch has no root element")
	}
	var ops []Operation
	for _, el := range root.ChildElements() {
		kind, err := patchdemo.ParseOp(el.Tag)
		if err != nil {
			return nil, patchdemo.Errorf(patchdemo.ErrUnknownOperation, "", "patch element <%s>", el.Tag)
		}
		path := el.SelectAttrValue("path", "")
		if path == "" {
			return nil, patchdemo.Errorf(patchdemo.ErrInvalidPath, "", "<%s> has no path attribute", el.Tag)
		}
		op := Operation{Op: kind, Path: path}
		switch kind {
		case patchdemo.OpReplace:
			attr := el.SelectAttr("value")
			if attr == nil {
				return nil, patchdemo.Errorf(patchdemo.ErrMissingValue, path, "<Replace> has no value attribute")
			}
			op.Value = attr.Value
		case patchdemo.OpAdd:
			for _, child := range el.ChildElements() {
				op.Children = append(op.Children, child.Copy())
			}
		}
		ops = append(ops, op)
	}
	return ops, nil
}
