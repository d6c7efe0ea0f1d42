package jsonx

import (
	"strconv"
	"strings"

	patchdemo "github.com/SvetozarSlivarov/JsonXmlPatchDemo"
)

// ParsePointer splits a JSON Pointer into its unescaped reference tokens
// ("~1" -> "/", "~0" -> "~"). The engine addresses locations inside a
// document, so the empty pointer (which names the whole document) carries no
// mutation target and is rejected.
func ParsePointer(ptr string) ([]string, error) {
	if ptr == "" {
		return nil, patchdemo.Errorf(patchdemo.ErrInvalidPath, ptr, "empty pointer")
	}
	if ptr[0] != '/' {
		return nil, patchdemo.Errorf(patchdemo.ErrInvalidPath, ptr, "pointer must start with '/'")
	}
	toks := strings.Split(ptr[1:], "/")
	for i, tok := range toks {
		for j := 0; j < len(tok); j++ {
			if tok[j] != '~' {
				continue
			}
			if j+1 >= len(tok) || (tok[j+1] != '0' && tok[j+1] != '1') {
				return nil, patchdemo.Errorf(patchdemo.ErrInvalidPath, ptr, "bad escape in token %q", tok)
			}
		}
		tok = strings.ReplaceAll(tok, "~1", "/")
		toks[i] = strings.ReplaceAll(tok, "~0", "~")
	}
	return toks, nil
}

// Resolve walks ptr from root and returns the container holding the final
// reference token, plus the token itself. The token is returned unresolved;
// each mutation decides what it means (existing key, insertion index, append
// marker).
func Resolve(root *Node, ptr string) (*Node, string, error) {
	toks, err := ParsePointer(ptr)
	if err != nil {
		return nil, "", err
	}
	cur := root
	for _, tok := range toks[:len(toks)-1] {
		switch cur.Kind {
		case ObjectKind:
			next, ok := cur.Lookup(tok)
			if !ok {
				return nil, "", patchdemo.Errorf(patchdemo.ErrPathResolution, ptr, "no key %q", tok)
			}
			cur = next
		case ArrayKind:
			i, err := arrayIndex(tok)
			if err != nil {
				return nil, "", patchdemo.Errorf(patchdemo.ErrPathResolution, ptr, "bad array index %q", tok)
			}
			if i >= len(cur.Items) {
				return nil, "", patchdemo.Errorf(patchdemo.ErrPathResolution, ptr, "index %d out of range (len %d)", i, len(cur.Items))
			}
			cur = cur.Items[i]
		default:
			return nil, "", patchdemo.Errorf(patchdemo.ErrPathResolution, ptr, "cannot descend into %s at %q", cur.Kind, tok)
		}
	}
	return cur, toks[len(toks)-1], nil
}

// arrayIndex parses tok as a non-negative decimal index. Leading zeros are
// rejected per RFC 6901.
func arrayIndex(tok string) (int, error) {
	if len(tok) > 1 && tok[0] == '0' {
		return 0, strconv.ErrSyntax
	}
	i, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(i), nil
}
