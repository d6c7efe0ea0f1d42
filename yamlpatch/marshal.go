package yamlpatch

import (
	"bytes"
	"fmt"

	gyaml "github.com/goccy/go-yaml"

	"github.com/SvetozarSlivarov/JsonXmlPatchDemo/jsonx"
)

// Marshal encodes the document back to YAML with the indent style detected
// at parse time.
func (d *Document) Marshal() ([]byte, error) {
	ordered, err := toMapSlice(d.Root)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := gyaml.NewEncoder(
		&buf, gyaml.Indent(d.indent), gyaml.IndentSequence(d.indentSeq),
	)
	if err := enc.Encode(ordered); err != nil {
		return nil, err
	}
	_ = enc.Close()

	return buf.Bytes(), nil
}

func toMapSlice(n *jsonx.Node) (gyaml.MapSlice, error) {
	if n.Kind != jsonx.ObjectKind {
		return nil, fmt.Errorf("yamlpatch: top-level node is %s, not Object", n.Kind)
	}
	ms := make(gyaml.MapSlice, 0, len(n.Keys))
	for i, k := range n.Keys {
		v, err := toValue(n.Vals[i])
		if err != nil {
			return nil, err
		}
		ms = append(ms, gyaml.MapItem{Key: k, Value: v})
	}
	return ms, nil
}

func toValue(n *jsonx.Node) (any, error) {
	switch n.Kind {
	case jsonx.NullKind:
		return nil, nil
	case jsonx.BoolKind:
		return n.Bool, nil
	case jsonx.NumberKind:
		if i, err := n.Num.Int64(); err == nil {
			return i, nil
		}
		if f, err := n.Num.Float64(); err == nil {
			return f, nil
		}
		return n.Num.String(), nil
	case jsonx.StringKind:
		return n.Str, nil
	case jsonx.ObjectKind:
		return toMapSlice(n)
	case jsonx.ArrayKind:
		out := make([]any, 0, len(n.Items))
		for _, item := range n.Items {
			v, err := toValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("yamlpatch: cannot encode %s node", n.Kind)
	}
}
