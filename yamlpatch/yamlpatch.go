// Package yamlpatch applies JSON Pointer patch operations to YAML documents.
// Documents are converted to the jsonx tree, patched there, and encoded back
// with the indent style detected from the source bytes.
package yamlpatch

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/SvetozarSlivarov/JsonXmlPatchDemo/jsonx"
)

// Document couples a parsed YAML tree with the formatting detected from its
// source bytes.
type Document struct {
	Root      *jsonx.Node
	indent    int
	indentSeq bool
}

// Parse reads YAML data into a Document. The top level must be a mapping.
func Parse(data []byte) (*Document, error) {
	var tmp yaml.Node
	if err := yaml.Unmarshal(data, &tmp); err != nil {
		return nil, fmt.Errorf("yamlpatch: failed to parse YAML: %w", err)
	}
	if tmp.Kind != yaml.DocumentNode || len(tmp.Content) == 0 || tmp.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("yamlpatch: top-level YAML is not a mapping")
	}
	root, err := fromYAML(tmp.Content[0])
	if err != nil {
		return nil, err
	}
	ind, seq := detectIndentAndSequence(data)
	return &Document{Root: root, indent: ind, indentSeq: seq}, nil
}

// Apply runs the operations against the document tree, stopping at the
// first failure.
func (d *Document) Apply(ops []jsonx.Operation) error {
	_, err := jsonx.Apply(d.Root, ops)
	return err
}

// ParsePatch reads a patch given as a YAML list of {op, path, value}
// entries.
func ParsePatch(data []byte) ([]jsonx.Operation, error) {
	var tmp yaml.Node
	if err := yaml.Unmarshal(data, &tmp); err != nil {
		return nil, fmt.Errorf("yamlpatch: failed to parse patch: %w", err)
	}
	if tmp.Kind != yaml.DocumentNode || len(tmp.Content) == 0 {
		return nil, fmt.Errorf("yamlpatch: empty patch")
	}
	doc, err := fromYAML(tmp.Content[0])
	if err != nil {
		return nil, err
	}
	return jsonx.PatchFromNode(doc)
}

// fromYAML converts a yaml.v3 node into a jsonx node, preserving mapping
// key order.
func fromYAML(n *yaml.Node) (*jsonx.Node, error) {
	switch n.Kind {
	case yaml.MappingNode:
		obj := jsonx.NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("yamlpatch: non-scalar mapping key at line %d", k.Line)
			}
			v, err := fromYAML(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Set(k.Value, v)
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := jsonx.NewArray()
		for _, c := range n.Content {
			item, err := fromYAML(c)
			if err != nil {
				return nil, err
			}
			arr.Items = append(arr.Items, item)
		}
		return arr, nil
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return jsonx.Null(), nil
		case "!!bool":
			// yaml.v3 resolves true/True/TRUE (and friends) to !!bool
			b, err := strconv.ParseBool(n.Value)
			if err != nil {
				return nil, fmt.Errorf("yamlpatch: bad bool %q at line %d", n.Value, n.Line)
			}
			return jsonx.Boolean(b), nil
		case "!!int":
			// normalize hex/octal/binary forms so the tree holds a valid
			// JSON number and the YAML round trip keeps the int type
			v := n.Value
			if i, err := strconv.ParseInt(v, 0, 64); err == nil {
				v = strconv.FormatInt(i, 10)
			}
			return jsonx.Number(json.Number(v)), nil
		case "!!float":
			return jsonx.Number(json.Number(n.Value)), nil
		default:
			return jsonx.String(n.Value), nil
		}
	case yaml.AliasNode:
		return fromYAML(n.Alias)
	default:
		return nil, fmt.Errorf("yamlpatch: unsupported YAML node kind %d at line %d", n.Kind, n.Line)
	}
}
