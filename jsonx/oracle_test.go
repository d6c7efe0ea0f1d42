package jsonx

import (
	"reflect"
	"testing"

	jsonpatch "github.com/evanphx/json-patch/v5"
	json "github.com/goccy/go-json"
	"github.com/pmezard/go-difflib/difflib"
)

// The engine's semantics for well-formed RFC 6902 input should agree with
// the json-patch library, so run the same patch through both and compare.
func TestApplyMatchesJSONPatchLibrary(t *testing.T) {
	docJSON := []byte(`{"a":{"b":1},"list":[1,2,3],"keep":"x"}`)
	patchJSON := []byte(`[
		{"op":"add","path":"/a/c","value":2},
		{"op":"replace","path":"/a/b","value":{"nested":[null,true]}},
		{"op":"add","path":"/list/-","value":4},
		{"op":"add","path":"/list/0","value":0},
		{"op":"remove","path":"/list/2"},
		{"op":"remove","path":"/keep"}
	]`)

	doc := mustParse(t, string(docJSON))
	ops, err := ParsePatch(patchJSON)
	if err != nil {
		t.Fatalf("ParsePatch error: %v", err)
	}
	if _, err := Apply(doc, ops); err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	got, err := Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	p, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		t.Fatalf("DecodePatch error: %v", err)
	}
	want, err := p.Apply(docJSON)
	if err != nil {
		t.Fatalf("reference Apply error: %v", err)
	}

	var gotVal, wantVal any
	if err := json.Unmarshal(got, &gotVal); err != nil {
		t.Fatalf("unmarshal our output: %v", err)
	}
	if err := json.Unmarshal(want, &wantVal); err != nil {
		t.Fatalf("unmarshal reference output: %v", err)
	}
	if !reflect.DeepEqual(gotVal, wantVal) {
		t.Fatalf("engine output diverges from json-patch:\n%s", unifiedDiff(string(want), string(got)))
	}
}

func TestMarshalRoundTripPreservesKeyOrder(t *testing.T) {
	in := `{"z":1,"a":{"y":2,"b":[1,"two",false,null]},"m":3.5}`
	doc := mustParse(t, in)
	out, err := Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(out) != in {
		t.Fatalf("round trip changed the document:\n%s", unifiedDiff(in, string(out)))
	}
}

func TestMarshalRejectsEmptyNumber(t *testing.T) {
	n := &Node{Kind: NumberKind}
	if _, err := Marshal(n); err == nil {
		t.Fatalf("expected error for Number node with no value, got nil")
	}
}

func unifiedDiff(want, got string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}
