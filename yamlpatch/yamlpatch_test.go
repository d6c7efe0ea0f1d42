package yamlpatch

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	patchdemo "github.com/SvetozarSlivarov/JsonXmlPatchDemo"
)

func TestParseErrorsOnNonMappingTopLevel(t *testing.T) {
	in := []byte("- 1\n- 2\n")
	if _, err := Parse(in); err == nil {
		t.Fatalf("expected error for non-mapping top-level, got nil")
	}
}

func TestApplyAddAndReplace(t *testing.T) {
	in := []byte("service:\n  replicas: 1\n  image: app:v1\n")
	doc, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	ops, err := ParsePatch([]byte(`
- op: replace
  path: /service/replicas
  value: 5
- op: add
  path: /service/port
  value: 8080
`))
	if err != nil {
		t.Fatalf("ParsePatch error: %v", err)
	}
	if err := doc.Apply(ops); err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	out, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	for _, want := range []string{"replicas: 5", "port: 8080", "image: app:v1"} {
		if !strings.Contains(string(out), want) {
			t.Fatalf("expected %q in output, got:\n%s", want, string(out))
		}
	}
}

func TestApplyPreservesKeyOrder(t *testing.T) {
	in := []byte("z: 1\na: 2\nm: 3\n")
	doc, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	ops, err := ParsePatch([]byte("- op: replace\n  path: /a\n  value: 9\n"))
	if err != nil {
		t.Fatalf("ParsePatch error: %v", err)
	}
	if err := doc.Apply(ops); err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	out, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(out) != "z: 1\na: 9\nm: 3\n" {
		t.Fatalf("key order not preserved, got:\n%s", string(out))
	}
}

func TestMarshalKeepsDetectedIndent(t *testing.T) {
	in := []byte("a:\n    b: 1\n")
	doc, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	ops, err := ParsePatch([]byte("- op: add\n  path: /a/c\n  value: 2\n"))
	if err != nil {
		t.Fatalf("ParsePatch error: %v", err)
	}
	if err := doc.Apply(ops); err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	out, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if !strings.Contains(string(out), "    b: 1") || !strings.Contains(string(out), "    c: 2") {
		t.Fatalf("expected 4-space indent preserved, got:\n%s", string(out))
	}
}

func TestApplyFailureLeavesTaggedError(t *testing.T) {
	doc, err := Parse([]byte("a: 1\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	ops, err := ParsePatch([]byte("- op: replace\n  path: /missing\n  value: 2\n"))
	if err != nil {
		t.Fatalf("ParsePatch error: %v", err)
	}
	if err := doc.Apply(ops); !errors.Is(err, patchdemo.ErrKeyNotFound) {
		t.Fatalf("expected key-not-found kind, got %v", err)
	}
}

func TestUppercaseBoolRoundTrip(t *testing.T) {
	doc, err := Parse([]byte("flag: TRUE\nother: False\nplain: true\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	out, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	for _, want := range []string{"flag: true", "other: false", "plain: true"} {
		if !strings.Contains(string(out), want) {
			t.Fatalf("expected %q in output, got:\n%s", want, string(out))
		}
	}
}

func TestHexIntKeepsIntType(t *testing.T) {
	doc, err := Parse([]byte("a: 0x1A\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	out, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(out) != "a: 26\n" {
		t.Fatalf("expected unquoted decimal int, got:\n%s", string(out))
	}
}

func TestMarshalOutputIsValidYAML(t *testing.T) {
	doc, err := Parse([]byte("a:\n  list:\n    - 1\n    - two\n  flag: true\n  empty: null\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	out, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var round map[string]any
	if err := yaml.Unmarshal(out, &round); err != nil {
		t.Fatalf("round trip unmarshal: %v\n%s", err, string(out))
	}
	if _, ok := round["a"]; !ok {
		t.Fatalf("missing key a after round trip:\n%s", string(out))
	}
}
